package feeconfig

import (
	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Recipient is a single unchecked fee recipient: a raw address string paired
// with a relative weight. Weights are not percentages; a recipient receives
// weight/sum(weights) of every distributed amount.
type Recipient struct {
	Address string `json:"address" yaml:"address"`
	Weight  int64  `json:"weight" yaml:"weight"`
}

// FeeConfig is the unchecked form of a fee distribution configuration, as
// supplied by the host application (deployment parameters, governance
// proposals). Address syntax is opaque at this stage; call Check to resolve
// addresses and obtain a CheckedFeeConfig.
type FeeConfig struct {
	Recipients []Recipient `json:"recipients" yaml:"recipients"`
}

// NewFeeConfig returns a structurally validated FeeConfig.
func NewFeeConfig(recipients []Recipient) (FeeConfig, error) {
	cfg := FeeConfig{Recipients: recipients}
	if err := cfg.Validate(); err != nil {
		return FeeConfig{}, err
	}
	return cfg, nil
}

// Validate checks the structural invariants: at least one recipient, every
// weight positive and within bounds. Repeated addresses are allowed; their
// weights are additive in effect.
func (c FeeConfig) Validate() error {
	switch n := len(c.Recipients); {
	case n == 0:
		return ErrEmptyRecipients
	case n > MaxRecipients:
		return errors.Wrapf(ErrTooManyRecipients, "%d recipients, maximum is %d", n, MaxRecipients)
	}
	for i, r := range c.Recipients {
		switch {
		case r.Weight <= 0:
			return errors.Wrapf(ErrInvalidWeight, "recipient %d weight %d", i, r.Weight)
		case r.Weight > MaxWeight:
			return errors.Wrapf(ErrInvalidWeight, "recipient %d weight must not be greater than %d", i, int64(MaxWeight))
		}
	}
	return nil
}

// RecipientWeight returns the total weight registered for the given raw
// address, summed over duplicate entries, and whether the address is present.
func (c FeeConfig) RecipientWeight(address string) (int64, bool) {
	var weight int64
	found := false
	for _, r := range c.Recipients {
		if r.Address == address {
			weight += r.Weight
			found = true
		}
	}
	return weight, found
}

// Check validates the config and resolves every recipient address, returning
// the checked form. The receiver is left untouched, so a failed check can be
// inspected or corrected by the caller.
func (c FeeConfig) Check(resolver AddressResolver) (CheckedFeeConfig, error) {
	if err := c.Validate(); err != nil {
		return CheckedFeeConfig{}, err
	}
	recipients := make([]CheckedRecipient, len(c.Recipients))
	var totalWeight int64
	for i, r := range c.Recipients {
		addr, err := resolver.Resolve(r.Address)
		if err != nil {
			return CheckedFeeConfig{}, errors.Wrapf(ErrInvalidAddress, "recipient %d (%s): %s", i, r.Address, err)
		}
		recipients[i] = CheckedRecipient{Address: addr, Weight: r.Weight}
		totalWeight += r.Weight
	}
	return CheckedFeeConfig{recipients: recipients, totalWeight: totalWeight}, nil
}

// CheckedRecipient is a fee recipient with a resolved account address.
type CheckedRecipient struct {
	Address sdk.AccAddress
	Weight  int64
}

// CheckedFeeConfig is a validated fee distribution configuration. It is
// immutable after construction and safe for concurrent read-only use. The zero
// value is not usable; obtain one through FeeConfig.Check.
type CheckedFeeConfig struct {
	recipients  []CheckedRecipient
	totalWeight int64
}

// Recipients returns a copy of the recipient list in configuration order.
func (c CheckedFeeConfig) Recipients() []CheckedRecipient {
	out := make([]CheckedRecipient, len(c.recipients))
	copy(out, c.recipients)
	return out
}

// TotalWeight returns the sum of all recipient weights.
func (c CheckedFeeConfig) TotalWeight() int64 {
	return c.totalWeight
}

// RecipientWeight returns the total weight registered for the given address,
// summed over duplicate entries, and whether the address is present.
func (c CheckedFeeConfig) RecipientWeight(address sdk.AccAddress) (int64, bool) {
	var weight int64
	found := false
	for _, r := range c.recipients {
		if r.Address.Equals(address) {
			weight += r.Weight
			found = true
		}
	}
	return weight, found
}

// Unchecked converts the config back to its raw string form, for example to
// echo the active configuration in a query response.
func (c CheckedFeeConfig) Unchecked() FeeConfig {
	recipients := make([]Recipient, len(c.recipients))
	for i, r := range c.recipients {
		recipients[i] = Recipient{Address: r.Address.String(), Weight: r.Weight}
	}
	return FeeConfig{Recipients: recipients}
}

package feeconfig

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AddressResolver resolves a raw address string into a validated account
// address. FeeConfig.Check calls it once per recipient; any failure aborts the
// check with ErrInvalidAddress.
type AddressResolver interface {
	Resolve(raw string) (sdk.AccAddress, error)
}

// Bech32Resolver resolves addresses using the SDK bech32 account address
// codec. It is the resolver to use on a live chain.
type Bech32Resolver struct{}

var _ AddressResolver = Bech32Resolver{}

// Resolve decodes and verifies a bech32 account address.
func (Bech32Resolver) Resolve(raw string) (sdk.AccAddress, error) {
	return sdk.AccAddressFromBech32(raw)
}

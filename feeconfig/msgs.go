package feeconfig

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// TransferCoinMsgs splits total between the recipients and returns one bank
// send message per recipient with a non-zero share, in recipient order. Zero
// shares produce no message, so a zero total returns no messages at all.
func (c CheckedFeeConfig) TransferCoinMsgs(from sdk.AccAddress, total sdk.Coin) []sdk.Msg {
	shares := c.Split(total.Amount)
	msgs := make([]sdk.Msg, 0, len(shares))
	for _, share := range shares {
		if !share.Amount.IsPositive() {
			continue
		}
		msgs = append(msgs, banktypes.NewMsgSend(from, share.Address, sdk.NewCoins(sdk.NewCoin(total.Denom, share.Amount))))
	}
	return msgs
}

// TransferCoinsMsgs splits each coin independently between the recipients and
// merges the results into at most one bank send message per recipient, in
// recipient order. Within a merged message the coins keep the order in which
// their denoms first appear in totals; callers that need the canonical sdk
// ordering can Sort the amount. Denoms in totals must be unique, which
// sdk.Coins guarantees.
func (c CheckedFeeConfig) TransferCoinsMsgs(from sdk.AccAddress, totals sdk.Coins) []sdk.Msg {
	perRecipient := make([]sdk.Coins, len(c.recipients))
	for _, coin := range totals {
		for i, share := range c.Split(coin.Amount) {
			if !share.Amount.IsPositive() {
				continue
			}
			perRecipient[i] = append(perRecipient[i], sdk.NewCoin(coin.Denom, share.Amount))
		}
	}

	msgs := make([]sdk.Msg, 0, len(c.recipients))
	for i, amount := range perRecipient {
		if amount.IsZero() {
			continue
		}
		msgs = append(msgs, banktypes.NewMsgSend(from, c.recipients[i].Address, amount))
	}
	return msgs
}

// FeeMsgsFromCoin is the historical name for TransferCoinMsgs, kept for
// compatibility with earlier releases. Both behave identically.
func (c CheckedFeeConfig) FeeMsgsFromCoin(from sdk.AccAddress, total sdk.Coin) []sdk.Msg {
	return c.TransferCoinMsgs(from, total)
}

// TakeFee cuts a fee of the given rate out of totals. The per-coin fee is
// truncated, zero cuts are dropped, and the remainder is totals minus the fee,
// so fee + remainder always equals totals. Returns ErrInvalidFeeRate when rate
// is negative or above one.
func TakeFee(rate math.LegacyDec, totals sdk.Coins) (fee, remainder sdk.Coins, err error) {
	if rate.IsNegative() || rate.GT(math.LegacyOneDec()) {
		return nil, nil, errors.Wrapf(ErrInvalidFeeRate, "rate %s", rate)
	}
	for _, coin := range totals {
		cut := rate.MulInt(coin.Amount).TruncateInt()
		if cut.IsPositive() {
			fee = fee.Add(sdk.NewCoin(coin.Denom, cut))
		}
	}
	return fee, totals.Sub(fee...), nil
}

// DeductFeeMsgs cuts a fee of the given rate out of totals, builds the merged
// transfer messages distributing that fee between the recipients, and returns
// them together with the coins left after the fee. A zero rate returns no
// messages and the untouched totals.
func (c CheckedFeeConfig) DeductFeeMsgs(from sdk.AccAddress, rate math.LegacyDec, totals sdk.Coins) ([]sdk.Msg, sdk.Coins, error) {
	fee, remainder, err := TakeFee(rate, totals)
	if err != nil {
		return nil, nil, err
	}
	if fee.IsZero() {
		return nil, remainder, nil
	}
	return c.TransferCoinsMsgs(from, fee), remainder, nil
}

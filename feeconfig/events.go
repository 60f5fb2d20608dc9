package feeconfig

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// NewDistributeFeeEvent returns the event a host should emit alongside the
// transfer messages produced for a fee distribution.
func NewDistributeFeeEvent(total sdk.Coins, recipients int) sdk.Event {
	return sdk.NewEvent(EventTypeDistributeFee,
		sdk.NewAttribute(AttributeKeyAmount, total.String()),
		sdk.NewAttribute(AttributeKeyRecipients, strconv.Itoa(recipients)),
	)
}

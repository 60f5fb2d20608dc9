package feeconfig

import "math"

const (
	// ModuleName is the codespace used for error registration and events.
	ModuleName = "feeconfig"

	EventTypeDistributeFee = "feeconfig.distribute_fee"

	AttributeKeyAmount     = "amount"
	AttributeKeyRecipients = "recipients"
)

const (
	// MaxRecipients bounds the number of recipients in a single fee config.
	// This is far above any realistic configuration but keeps validation and
	// message building cheap for untrusted input.
	MaxRecipients = 200

	// MaxWeight bounds a single recipient weight so that the sum of all
	// weights of a maximally sized config still fits in an int64.
	MaxWeight = math.MaxInt64 / (MaxRecipients + 1)
)

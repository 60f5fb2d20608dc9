package feeconfig

import "cosmossdk.io/errors"

// Fee config sentinel errors
var (
	ErrEmptyRecipients   = errors.Register(ModuleName, 2, "fee config has no recipients")
	ErrInvalidWeight     = errors.Register(ModuleName, 3, "recipient weight must be positive")
	ErrInvalidAddress    = errors.Register(ModuleName, 4, "invalid recipient address")
	ErrTooManyRecipients = errors.Register(ModuleName, 5, "too many recipients")
	ErrInvalidFeeRate    = errors.Register(ModuleName, 6, "fee rate must be between 0 and 1")
)

package config

import "cosmossdk.io/errors"

// Config store sentinel errors
var (
	ErrUnauthorized  = errors.Register(ModuleName, 2, "sender is not allowed to update the config")
	ErrInvalidConfig = errors.Register(ModuleName, 3, "invalid config")
)

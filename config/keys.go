package config

const (
	// ModuleName is the codespace used for error registration and events.
	ModuleName = "cwconfig"

	EventTypeUpdateConfig = "cwconfig.update_config"

	AttributeKeyName   = "name"
	AttributeKeySender = "sender"
)

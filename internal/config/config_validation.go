package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// server startup invariants.
//
// Validation is intentionally lax at this level: the shared structured config
// is also the base for the client view, which does not require server-side
// fields like the database DSN. Role-specific checks live in the view
// constructors.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.KV.Path == "" || strings.Contains(cfg.KV.Path, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.PullInterval <= 0 || cfg.Sync.PushRetryInterval <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

// ValidateServer checks the fields the server binary requires before it can
// start: a listen address, a database DSN, and token signing parameters.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}

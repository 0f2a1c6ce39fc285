package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.DebounceWindow <= 0 || cfg.App.GuestTodoCap <= 0 || cfg.App.TodoTextLimit <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.CatalogBaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Identity.Mode {
	case "firebase":
		if cfg.Identity.ProjectID == "" {
			return ErrInvalidIdentityConfigs
		}
	case "token", "manual":
	default:
		return ErrInvalidIdentityConfigs
	}

	return nil
}

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d local database DSN (SQLite file path)
//	-catalog-url product catalog base URL
//	-request-timeout outbound request timeout (e.g., "15s")
//	-debounce-window persistence quiescence window (e.g., "500ms")
//	-guest-todo-cap maximum todos for guest sessions
//	-todo-text-limit maximum todo text length
//	-identity-mode identity source mode (firebase, token, manual)
//	-identity-project identity provider project id
//	-identity-credentials service-account credentials file path
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var catalogBaseURL string
	var requestTimeout time.Duration
	var debounceWindow time.Duration
	var guestTodoCap int
	var todoTextLimit int
	var identityMode string
	var identityProject string
	var identityCredentials string
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&catalogBaseURL, "catalog-url", "", "Product catalog base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 15s)")
	flag.DurationVar(&debounceWindow, "debounce-window", 0, "Persistence quiescence window (e.g., 500ms)")
	flag.IntVar(&guestTodoCap, "guest-todo-cap", 0, "Maximum todos for guest sessions")
	flag.IntVar(&todoTextLimit, "todo-text-limit", 0, "Maximum todo text length")
	flag.StringVar(&identityMode, "identity-mode", "", "Identity source mode (firebase, token, manual)")
	flag.StringVar(&identityProject, "identity-project", "", "Identity provider project id")
	flag.StringVar(&identityCredentials, "identity-credentials", "", "Service-account credentials file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DebounceWindow: debounceWindow,
			GuestTodoCap:   guestTodoCap,
			TodoTextLimit:  todoTextLimit,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			CatalogBaseURL: catalogBaseURL,
			RequestTimeout: requestTimeout,
		},
		Identity: Identity{
			Mode:            identityMode,
			ProjectID:       identityProject,
			CredentialsFile: identityCredentials,
		},
		JSONFilePath: jsonConfigPath,
	}
}

package config

import (
	"fmt"
	"time"
)

// Default configuration values applied when neither environment variables,
// flags, nor the JSON file provide one.
const (
	DefaultDSN            = "cart-keeper.db"
	DefaultDebounceWindow = 500 * time.Millisecond
	DefaultGuestTodoCap   = 3
	DefaultTodoTextLimit  = 100
	DefaultCatalogBaseURL = "https://dummyjson.com"
	DefaultRequestTimeout = 15 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// go-cart-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: collection limits and the
	// persistence debounce window.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local snapshot store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds configuration for outbound API clients.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Identity holds configuration for the identity event source.
	Identity Identity `envPrefix:"IDENTITY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values controlling collection
// behaviour and write-back scheduling.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DebounceWindow is the quiescence delay after the last collection
	// mutation before the snapshot is persisted (e.g. "500ms").
	// Env: APP_DEBOUNCE_WINDOW
	DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW"`

	// GuestTodoCap is the maximum number of todos a guest session may hold
	// before the application prompts for account creation.
	// Env: APP_GUEST_TODO_CAP
	GuestTodoCap int `env:"GUEST_TODO_CAP"`

	// TodoTextLimit is the maximum todo text length in characters.
	// Env: APP_TODO_TEXT_LIMIT
	TodoTextLimit int `env:"TODO_TEXT_LIMIT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite snapshot database.
type DB struct {
	// DSN is the SQLite file path (or ":memory:") used to open the local
	// snapshot database.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration for outbound API integrations.
type Adapter struct {
	// CatalogBaseURL is the base URL of the remote product catalog API.
	// Env: ADAPTER_CATALOG_BASE_URL
	CatalogBaseURL string `env:"CATALOG_BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Identity holds configuration for the identity provider integration.
type Identity struct {
	// Mode selects the identity source implementation: "firebase" verifies
	// ID tokens against the provider, "token" parses token claims offline,
	// "manual" expects in-process identity announcements.
	// Env: IDENTITY_MODE
	Mode string `env:"MODE"`

	// ProjectID is the identity provider's project identifier, required in
	// "firebase" mode.
	// Env: IDENTITY_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// CredentialsFile is an optional path to a service-account credentials
	// file used when constructing the provider client.
	// Env: IDENTITY_CREDENTIALS_FILE
	CredentialsFile string `env:"CREDENTIALS_FILE"`
}

// defaults returns a StructuredConfig carrying the fallback values. It is
// merged last in the builder so explicit settings always win.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DebounceWindow: DefaultDebounceWindow,
			GuestTodoCap:   DefaultGuestTodoCap,
			TodoTextLimit:  DefaultTodoTextLimit,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Adapter: Adapter{
			CatalogBaseURL: DefaultCatalogBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Identity: Identity{
			Mode: "manual",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all supported sources.
//
// Precedence (highest first): environment variables, command-line flags,
// JSON file, built-in defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building config: %w", err)
	}

	return cfg, nil
}

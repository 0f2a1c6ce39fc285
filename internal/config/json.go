package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration parsing for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		Version        string   `json:"version"`
		DebounceWindow Duration `json:"debounce_window"`
		GuestTodoCap   int      `json:"guest_todo_cap"`
		TodoTextLimit  int      `json:"todo_text_limit"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		CatalogBaseURL string   `json:"catalog_base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Identity struct {
		Mode            string `json:"mode"`
		ProjectID       string `json:"project_id"`
		CredentialsFile string `json:"credentials_file"`
	} `json:"identity,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:        jsonCfg.App.Version,
			DebounceWindow: time.Duration(jsonCfg.App.DebounceWindow),
			GuestTodoCap:   jsonCfg.App.GuestTodoCap,
			TodoTextLimit:  jsonCfg.App.TodoTextLimit,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Adapter: Adapter{
			CatalogBaseURL: jsonCfg.Adapter.CatalogBaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Identity: Identity{
			Mode:            jsonCfg.Identity.Mode,
			ProjectID:       jsonCfg.Identity.ProjectID,
			CredentialsFile: jsonCfg.Identity.CredentialsFile,
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from either a JSON number of
// nanoseconds or a Go duration string such as "500ms".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

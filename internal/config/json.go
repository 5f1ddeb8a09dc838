package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON config files can carry durations in
// their human form ("30s", "1m") instead of nanosecond integers.
type Duration struct {
	time.Duration
}

// UnmarshalJSON accepts either a duration string ("30s") or a bare number
// of nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration value: %v", raw)
	}
}

// jsonConfig mirrors [StructuredConfig] with JSON tags and duration wrappers
// suitable for a config file.
type jsonConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		BcryptCost    int      `json:"bcrypt_cost"`
		Environment   string   `json:"environment"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN            string   `json:"dsn"`
			FallbackDSN    string   `json:"fallback_dsn"`
			RetryAttempts  int      `json:"retry_attempts"`
			RetryDelay     Duration `json:"retry_delay"`
			ConnectTimeout Duration `json:"connect_timeout"`
			ExitOnFail     bool     `json:"exit_on_fail"`
		} `json:"db,omitempty"`

		Files struct {
			UploadsDir string `json:"uploads_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		CORSOrigins    []string `json:"cors_origins"`
	} `json:"server,omitempty"`
}

// parseJSON reads and decodes the JSON configuration file at path and
// converts it into a [StructuredConfig] suitable for merging.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file: %w", err)
	}

	var fileCfg jsonConfig
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("error parsing json config file: %w", err)
	}

	cfg := &StructuredConfig{}
	cfg.App.TokenSignKey = fileCfg.App.TokenSignKey
	cfg.App.TokenIssuer = fileCfg.App.TokenIssuer
	cfg.App.TokenDuration = fileCfg.App.TokenDuration.Duration
	cfg.App.BcryptCost = fileCfg.App.BcryptCost
	cfg.App.Environment = fileCfg.App.Environment
	cfg.Storage.DB.DSN = fileCfg.Storage.DB.DSN
	cfg.Storage.DB.FallbackDSN = fileCfg.Storage.DB.FallbackDSN
	cfg.Storage.DB.RetryAttempts = fileCfg.Storage.DB.RetryAttempts
	cfg.Storage.DB.RetryDelay = fileCfg.Storage.DB.RetryDelay.Duration
	cfg.Storage.DB.ConnectTimeout = fileCfg.Storage.DB.ConnectTimeout.Duration
	cfg.Storage.DB.ExitOnFail = fileCfg.Storage.DB.ExitOnFail
	cfg.Storage.Files.UploadsDir = fileCfg.Storage.Files.UploadsDir
	cfg.Server.HTTPAddress = fileCfg.Server.HTTPAddress
	cfg.Server.RequestTimeout = fileCfg.Server.RequestTimeout.Duration
	cfg.Server.CORSOrigins = fileCfg.Server.CORSOrigins

	return cfg, nil
}

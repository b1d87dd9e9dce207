package app

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/rpngrid/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath string // empty reads the workbook from the input reader

	Format    string // plain | pretty | json
	LogFormat string // text | json
	LogLevel  string // debug | info | warn | error
	Dump      bool
}

// NewConfig validates cfg and fills in defaults for empty fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Format == "" {
		cfg.Format = render.FormatPlain
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Format = strings.ToLower(cfg.Format)
	if _, err := render.Lookup(cfg.Format); err != nil {
		return nil, err
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}

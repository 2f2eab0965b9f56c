// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers file and env values on top.
// - Spreadsheet credentials are optional at load time. Handlers report them
//   missing per request.
package config

import (
	"strings"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SheetID is the spreadsheet read by the leaderboard (env SHEET_ID).
	SheetID string `koanf:"sheet_id"`

	// GoogleAPIKey is sent as the key query parameter (env GOOGLE_API_KEY).
	GoogleAPIKey string `koanf:"google_api_key"`

	// SheetsEndpoint overrides the Sheets API base URL. Empty means Google.
	SheetsEndpoint string `koanf:"sheets_endpoint"`

	// UpstreamTimeout bounds the Sheets call. Zero disables the bound.
	UpstreamTimeout time.Duration `koanf:"upstream_timeout"`

	// CORSAllowedOrigins lists origins allowed by the CORS layer.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// Credentials is the pair of values the leaderboard needs to reach the sheet.
type Credentials struct {
	SheetID string
	APIKey  string
}

// Complete reports whether both values are present.
func (c Credentials) Complete() bool {
	return c.SheetID != "" && c.APIKey != ""
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		CORSAllowedOrigins: []string{"*"},
	}
}

// Credentials returns the normalized spreadsheet credentials.
func (c *Config) Credentials() Credentials {
	return Credentials{
		SheetID: cleanSecret(c.SheetID),
		APIKey:  cleanSecret(c.GoogleAPIKey),
	}
}

// cleanSecret strips whitespace and one layer of surrounding quotes, which
// hosting dashboards tend to leave on pasted values.
func cleanSecret(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

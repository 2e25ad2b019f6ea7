// Package config loads and validates the connector configuration supplied
// via --config, and exposes its connection specification schema.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrInvalidConfig indicates a malformed or incomplete configuration.
// It is fatal and reported before any network call is made.
var ErrInvalidConfig = errors.New("invalid connector configuration")

// Config is the connector configuration. The three credential fields are
// required; everything else is optional. Config is immutable for the
// duration of a run.
type Config struct {
	// ClientID is the OAuth client ID of the Google Cloud application.
	ClientID string `json:"client_id"`
	// ClientSecret is the OAuth client secret.
	ClientSecret string `json:"client_secret"`
	// RefreshToken is the long-lived token obtained from the OAuth flow.
	RefreshToken string `json:"refresh_token"`
	// IncludeSpamTrash includes messages from SPAM and TRASH when true.
	IncludeSpamTrash bool `json:"include_spam_trash"`
	// Query is an optional Gmail search query applied to message listing.
	Query string `json:"query,omitempty"`
	// Labels restricts message listing to the given label IDs.
	Labels []string `json:"labels,omitempty"`
	// StartDate limits messages to those received on or after this date,
	// ISO 8601 (the date part is used).
	StartDate string `json:"start_date,omitempty"`
	// IncludeRaw includes the base64url-encoded RFC 2822 payload in each
	// message record.
	IncludeRaw bool `json:"include_raw,omitempty"`
}

// Load reads, parses and validates a config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read config file: %v", ErrInvalidConfig, err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parse config file: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the required credential fields.
func (c *Config) Validate() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "client_secret")
	}
	if c.RefreshToken == "" {
		missing = append(missing, "refresh_token")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required field(s): %s",
			ErrInvalidConfig, strings.Join(missing, ", "))
	}
	return nil
}

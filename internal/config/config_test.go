package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"client_id": "id.apps.googleusercontent.com",
		"client_secret": "secret",
		"refresh_token": "1//refresh",
		"include_spam_trash": true,
		"query": "is:unread",
		"labels": ["INBOX"],
		"start_date": "2024-01-01",
		"include_raw": true
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "id.apps.googleusercontent.com", cfg.ClientID)
	assert.Equal(t, "secret", cfg.ClientSecret)
	assert.Equal(t, "1//refresh", cfg.RefreshToken)
	assert.True(t, cfg.IncludeSpamTrash)
	assert.Equal(t, "is:unread", cfg.Query)
	assert.Equal(t, []string{"INBOX"}, cfg.Labels)
	assert.Equal(t, "2024-01-01", cfg.StartDate)
	assert.True(t, cfg.IncludeRaw)
}

func TestLoad_DefaultsForOptionalFields(t *testing.T) {
	path := writeConfig(t, `{
		"client_id": "id",
		"client_secret": "secret",
		"refresh_token": "token"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.IncludeSpamTrash)
	assert.False(t, cfg.IncludeRaw)
	assert.Empty(t, cfg.Query)
	assert.Empty(t, cfg.Labels)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantIn  string
	}{
		{
			name:    "not json",
			content: "client_id = nope",
			wantIn:  "parse config file",
		},
		{
			name:    "missing refresh token",
			content: `{"client_id": "id", "client_secret": "secret"}`,
			wantIn:  "refresh_token",
		},
		{
			name:    "all credentials missing",
			content: `{}`,
			wantIn:  "client_id, client_secret, refresh_token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantIn)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSpec_SchemaIsSelfConsistent(t *testing.T) {
	spec := Spec()

	require.NotEmpty(t, spec.DocumentationURL)
	schema := spec.ConnectionSpecification

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)

	// Every required field is a declared property.
	required, ok := schema["required"].([]string)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"client_id", "client_secret", "refresh_token"}, required)
	for _, field := range required {
		assert.Contains(t, props, field)
	}

	// Credentials are marked secret.
	for _, field := range required {
		prop := props[field].(map[string]any)
		assert.Equal(t, true, prop["airbyte_secret"], "%s must be a secret", field)
	}

	// Every optional config field is declared too.
	for _, field := range []string{"include_spam_trash", "query", "labels", "start_date", "include_raw"} {
		assert.Contains(t, props, field)
	}
}

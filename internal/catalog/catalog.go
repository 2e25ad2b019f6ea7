// Package catalog defines the stream catalog the connector advertises on
// discover and the configured catalog callers supply to read.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// SyncModeFullRefresh is the only sync mode the connector supports.
// No incremental cursor is defined for either stream.
const SyncModeFullRefresh = "full_refresh"

// Stream describes one available stream and its record schema.
type Stream struct {
	Name                    string         `json:"name"`
	JSONSchema              map[string]any `json:"json_schema"`
	SupportedSyncModes      []string       `json:"supported_sync_modes"`
	SourceDefinedPrimaryKey [][]string     `json:"source_defined_primary_key,omitempty"`
}

// Catalog is the full set of streams the connector can produce.
type Catalog struct {
	Streams []Stream `json:"streams"`
}

// ConfiguredStream is one stream selected for a read, with its sync mode.
type ConfiguredStream struct {
	Stream              Stream `json:"stream"`
	SyncMode            string `json:"sync_mode"`
	DestinationSyncMode string `json:"destination_sync_mode,omitempty"`
}

// ConfiguredCatalog is the caller-supplied selection for a read invocation.
type ConfiguredCatalog struct {
	Streams []ConfiguredStream `json:"streams"`
}

// LoadConfigured reads and validates a configured catalog file.
func LoadConfigured(path string) (*ConfiguredCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var cat ConfiguredCatalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks that every selected stream is named and uses a supported
// sync mode. An empty sync mode defaults to full refresh.
func (c *ConfiguredCatalog) Validate() error {
	if len(c.Streams) == 0 {
		return fmt.Errorf("catalog selects no streams")
	}
	for _, cs := range c.Streams {
		if cs.Stream.Name == "" {
			return fmt.Errorf("catalog contains a stream with no name")
		}
		if cs.SyncMode != "" && cs.SyncMode != SyncModeFullRefresh {
			return fmt.Errorf("stream %q: unsupported sync mode %q (only %q is supported)",
				cs.Stream.Name, cs.SyncMode, SyncModeFullRefresh)
		}
	}
	return nil
}

// SelectedNames returns the names of the selected streams in catalog order.
func (c *ConfiguredCatalog) SelectedNames() []string {
	names := make([]string, 0, len(c.Streams))
	for _, cs := range c.Streams {
		names = append(names, cs.Stream.Name)
	}
	return names
}

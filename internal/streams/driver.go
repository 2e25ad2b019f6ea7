// Package streams implements the connector's two stream drivers and the
// runner that orchestrates a read across the selected streams.
package streams

import (
	"context"

	"github.com/saif-qureshi/airbyte-source-gmail/internal/catalog"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/protocol"
)

// Stream names.
const (
	StreamMessages = "messages"
	StreamLabels   = "labels"
)

// Result summarises one stream's read.
type Result struct {
	// Records is the number of records emitted.
	Records int
	// Skipped is the number of items dropped by partial-failure handling
	// (fetch failures and mapping failures).
	Skipped int
}

// Driver reads one stream end to end, emitting records as it goes.
// Drivers are stateless across invocations and independent of each other:
// one stream failing never affects another.
type Driver interface {
	// Name is the stream's catalog name.
	Name() string
	// Schema is the JSON Schema of the stream's records.
	Schema() map[string]any
	// Read fetches, maps and emits the stream's records. It returns a
	// partial Result alongside any stream-level error.
	Read(ctx context.Context, emitter *protocol.Emitter) (Result, error)
}

// CatalogStream describes a driver as a discoverable catalog entry.
func CatalogStream(d Driver) catalog.Stream {
	return catalog.Stream{
		Name:                    d.Name(),
		JSONSchema:              d.Schema(),
		SupportedSyncModes:      []string{catalog.SyncModeFullRefresh},
		SourceDefinedPrimaryKey: [][]string{{"id"}},
	}
}

// DiscoverCatalog builds the catalog advertised by the discover command.
func DiscoverCatalog(drivers []Driver) *catalog.Catalog {
	cat := &catalog.Catalog{}
	for _, d := range drivers {
		cat.Streams = append(cat.Streams, CatalogStream(d))
	}
	return cat
}

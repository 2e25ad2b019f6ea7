// Package gmail implements the Gmail side of the connector: the paginated
// message/label fetcher, the batched detail loader and the raw-to-record
// mappers.
package gmail

import (
	"fmt"
	"strings"

	"github.com/saif-qureshi/airbyte-source-gmail/internal/config"
)

// Config holds the Gmail stream configuration derived from the connector
// configuration.
type Config struct {
	// Query is a Gmail search query (optional).
	Query string
	// LabelIDs limits syncing to specific label IDs (optional).
	LabelIDs []string
	// StartDate limits messages to those received on or after this date.
	StartDate string
	// IncludeSpamTrash includes spam and trash if true.
	IncludeSpamTrash bool
	// IncludeRaw includes the base64url RFC 2822 payload in records.
	IncludeRaw bool
	// PageSize is the page size for list requests.
	PageSize int64
	// BatchSize is the maximum number of detail fetches grouped together.
	BatchSize int
}

// DefaultPageSize and DefaultBatchSize match the connector's published
// behaviour.
const (
	DefaultPageSize  = 100
	DefaultBatchSize = 10
)

// DefaultConfig returns the default stream configuration.
func DefaultConfig() *Config {
	return &Config{
		PageSize:  DefaultPageSize,
		BatchSize: DefaultBatchSize,
	}
}

// FromConnectorConfig derives the Gmail stream configuration from the
// validated connector configuration.
func FromConnectorConfig(c *config.Config) *Config {
	cfg := DefaultConfig()
	cfg.Query = c.Query
	cfg.LabelIDs = append([]string(nil), c.Labels...)
	cfg.StartDate = c.StartDate
	cfg.IncludeSpamTrash = c.IncludeSpamTrash
	cfg.IncludeRaw = c.IncludeRaw
	return cfg
}

// BuildQuery assembles the Gmail search query from the configured filters.
// The spam/trash exclusion is applied here rather than post-hoc so excluded
// messages are never listed at all.
func (c *Config) BuildQuery() string {
	var parts []string

	if c.Query != "" {
		parts = append(parts, c.Query)
	}

	if !c.IncludeSpamTrash {
		parts = append(parts, "-in:spam -in:trash")
	}

	if c.StartDate != "" {
		parts = append(parts, "after:"+gmailDate(c.StartDate))
	}

	return strings.Join(parts, " ")
}

// gmailDate converts an ISO 8601 date or timestamp to Gmail's query date
// format (YYYY/M/D, no leading zeros). Unparseable values are passed
// through unchanged.
func gmailDate(iso string) string {
	datePart, _, _ := strings.Cut(iso, "T")
	fields := strings.SplitN(datePart, "-", 3)
	if len(fields) != 3 {
		return iso
	}

	var year, month, day int
	if _, err := fmt.Sscanf(datePart, "%d-%d-%d", &year, &month, &day); err != nil {
		return iso
	}
	return fmt.Sprintf("%d/%d/%d", year, month, day)
}

// IsSpamOrTrash checks if the message has spam or trash labels.
func IsSpamOrTrash(labels []string) bool {
	for _, label := range labels {
		if label == "SPAM" || label == "TRASH" {
			return true
		}
	}
	return false
}

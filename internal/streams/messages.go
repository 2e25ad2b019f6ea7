package streams

import (
	"context"
	"fmt"

	"github.com/saif-qureshi/airbyte-source-gmail/internal/connectors/google/gmail"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/logger"
	"github.com/saif-qureshi/airbyte-source-gmail/internal/protocol"
)

// MessagesDriver reads the messages stream: page through the message-id
// listing, batch-load full message content, map each message to a record.
type MessagesDriver struct {
	client gmail.Client
	cfg    *gmail.Config
}

// NewMessagesDriver creates the messages stream driver.
func NewMessagesDriver(client gmail.Client, cfg *gmail.Config) *MessagesDriver {
	if cfg == nil {
		cfg = gmail.DefaultConfig()
	}
	return &MessagesDriver{client: client, cfg: cfg}
}

// Name implements Driver.
func (d *MessagesDriver) Name() string { return StreamMessages }

// Schema implements Driver.
func (d *MessagesDriver) Schema() map[string]any { return MessagesSchema() }

// Read implements Driver. Pagination threads the next-page token from each
// list response into the following request until a response omits it.
// Within the stream, output order matches page and batch iteration order.
func (d *MessagesDriver) Read(ctx context.Context, emitter *protocol.Emitter) (Result, error) {
	var res Result

	pageToken := ""
	page := 0
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		ids, next, err := d.client.ListMessages(ctx, pageToken)
		if err != nil {
			return res, fmt.Errorf("page %d: %w", page, err)
		}
		logger.Debug("messages: page %d listed %d ids", page, len(ids))

		msgs, err := gmail.LoadDetails(ctx, d.client, ids, d.cfg.BatchSize, func(id string, err error) {
			res.Skipped++
			logger.Warn("messages: skipping %s: %v", id, err)
			_ = emitter.Log(protocol.LogLevelWarn, "messages: skipping message %s: %v", id, err)
		})
		if err != nil {
			return res, fmt.Errorf("page %d: load details: %w", page, err)
		}

		for _, msg := range msgs {
			// The list query already excludes spam and trash; this guards
			// against messages relabelled between listing and fetching.
			if !d.cfg.IncludeSpamTrash && gmail.IsSpamOrTrash(msg.LabelIds) {
				continue
			}

			record, err := gmail.MapMessage(msg, d.cfg.IncludeRaw)
			if err != nil {
				res.Skipped++
				logger.Warn("messages: skipping %s: %v", msg.Id, err)
				_ = emitter.Log(protocol.LogLevelWarn, "messages: skipping message %s: %v", msg.Id, err)
				continue
			}

			if err := emitter.Record(StreamMessages, record); err != nil {
				return res, fmt.Errorf("emit record: %w", err)
			}
			res.Records++
		}

		if next == "" {
			return res, nil
		}
		pageToken = next
		page++
	}
}

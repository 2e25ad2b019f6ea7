package gmail

import (
	"context"

	gmailapi "google.golang.org/api/gmail/v1"

	"github.com/saif-qureshi/airbyte-source-gmail/internal/connectors/google"
)

// SkipFunc is invoked for each message that could not be fetched. The
// message is skipped; the batch continues.
type SkipFunc func(id string, err error)

// Partition splits ids into groups of at most size, preserving order.
func Partition(ids []string, size int) [][]string {
	if size <= 0 {
		size = DefaultBatchSize
	}
	var groups [][]string
	for len(ids) > 0 {
		n := size
		if n > len(ids) {
			n = len(ids)
		}
		groups = append(groups, ids[:n])
		ids = ids[n:]
	}
	return groups
}

// LoadDetails fetches full message content for ids, grouped into batches of
// at most batchSize. Output order matches input order. A failed item does
// not abort its batch: it is reported through onSkip and omitted. Auth
// failures and cancellation abort the load, since neither can be recovered
// by skipping forward.
func LoadDetails(ctx context.Context, c Client, ids []string, batchSize int, onSkip SkipFunc) ([]*gmailapi.Message, error) {
	out := make([]*gmailapi.Message, 0, len(ids))

	for _, batch := range Partition(ids, batchSize) {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		for _, id := range batch {
			msg, err := c.GetMessage(ctx, id)
			if err != nil {
				if ctx.Err() != nil {
					return out, ctx.Err()
				}
				if google.IsUnauthorized(err) || google.IsForbidden(err) {
					return out, err
				}
				if onSkip != nil {
					onSkip(id, err)
				}
				continue
			}
			out = append(out, msg)
		}
	}

	return out, nil
}

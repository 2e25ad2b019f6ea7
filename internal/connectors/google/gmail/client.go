package gmail

import (
	"context"
	"errors"
	"fmt"
	"time"

	gmailapi "google.golang.org/api/gmail/v1"

	"github.com/saif-qureshi/airbyte-source-gmail/internal/connectors/google"
)

// Client is the narrow Gmail API surface the stream drivers need. Tests
// substitute a fake; production code uses the API-backed implementation
// returned by NewClient.
type Client interface {
	// ListMessages returns one page of message IDs matching the configured
	// filters, plus the token for the next page. An empty next token
	// signals the end of pagination.
	ListMessages(ctx context.Context, pageToken string) (ids []string, next string, err error)
	// GetMessage fetches one message with its full payload.
	GetMessage(ctx context.Context, id string) (*gmailapi.Message, error)
	// ListLabels returns all labels in the mailbox, counts included.
	ListLabels(ctx context.Context) ([]*gmailapi.Label, error)
	// GetProfile returns the authenticated account's email address.
	GetProfile(ctx context.Context) (string, error)
}

// callTimeout bounds every individual API request so no call can block a
// stream indefinitely.
const callTimeout = 2 * time.Minute

// apiClient implements Client against the real Gmail API. Every call goes
// through the rate limiter and the bounded retry policy.
type apiClient struct {
	svc     *gmailapi.Service
	cfg     *Config
	limiter *google.RateLimiter
	retry   google.RetryPolicy
}

// NewClient wraps a Gmail service with the stream configuration, rate
// limiting and retry behaviour.
func NewClient(svc *gmailapi.Service, cfg *Config) Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &apiClient{
		svc:     svc,
		cfg:     cfg,
		limiter: google.NewRateLimiter(),
		retry:   google.DefaultRetryPolicy(),
	}
}

// do runs op under the rate limiter inside the retry loop, feeding 429
// responses back into the limiter's backoff window. Each attempt gets its
// own deadline; an attempt that hits it is retried as long as the caller's
// context is still live.
func (c *apiClient) do(ctx context.Context, op func(ctx context.Context) error) error {
	return c.retry.Do(ctx, func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		callCtx, cancel := context.WithTimeout(ctx, callTimeout)
		defer cancel()

		err := op(callCtx)
		if err != nil && ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s: %v", google.ErrRequestTimeout, callTimeout, err)
		}
		if google.IsRateLimited(err) {
			c.limiter.RecordRateLimitError(0)
		}
		return err
	})
}

func (c *apiClient) ListMessages(ctx context.Context, pageToken string) ([]string, string, error) {
	var res *gmailapi.ListMessagesResponse
	err := c.do(ctx, func(callCtx context.Context) error {
		call := c.svc.Users.Messages.List("me").MaxResults(c.cfg.PageSize)
		if q := c.cfg.BuildQuery(); q != "" {
			call = call.Q(q)
		}
		if len(c.cfg.LabelIDs) > 0 {
			call = call.LabelIds(c.cfg.LabelIDs...)
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		var callErr error
		res, callErr = call.Context(callCtx).Do()
		return callErr
	})
	if err != nil {
		return nil, "", fmt.Errorf("list messages: %w", err)
	}

	ids := make([]string, 0, len(res.Messages))
	for _, m := range res.Messages {
		ids = append(ids, m.Id)
	}
	return ids, res.NextPageToken, nil
}

func (c *apiClient) GetMessage(ctx context.Context, id string) (*gmailapi.Message, error) {
	var msg *gmailapi.Message
	err := c.do(ctx, func(callCtx context.Context) error {
		var callErr error
		msg, callErr = c.svc.Users.Messages.Get("me", id).Format("full").Context(callCtx).Do()
		return callErr
	})
	if err != nil {
		return nil, fmt.Errorf("get message %s: %w", id, err)
	}
	return msg, nil
}

func (c *apiClient) ListLabels(ctx context.Context) ([]*gmailapi.Label, error) {
	var res *gmailapi.ListLabelsResponse
	err := c.do(ctx, func(callCtx context.Context) error {
		var callErr error
		res, callErr = c.svc.Users.Labels.List("me").Context(callCtx).Do()
		return callErr
	})
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	return res.Labels, nil
}

func (c *apiClient) GetProfile(ctx context.Context) (string, error) {
	var profile *gmailapi.Profile
	err := c.do(ctx, func(callCtx context.Context) error {
		var callErr error
		profile, callErr = c.svc.Users.GetProfile("me").Context(callCtx).Do()
		return callErr
	})
	if err != nil {
		return "", fmt.Errorf("get profile: %w", err)
	}
	return profile.EmailAddress, nil
}

package google

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
)

// ErrAuthRejected indicates the refresh-token exchange was rejected by the
// identity provider (invalid or revoked credentials). It is fatal for the
// whole run: retrying a rejected credential cannot succeed.
var ErrAuthRejected = errors.New("google: refresh token rejected")

// Credentials holds the OAuth client credentials and refresh token supplied
// at startup. Immutable.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// NewTokenSource builds an oauth2.TokenSource that exchanges the refresh
// token for short-lived access tokens on demand. The returned source caches
// the current token until expiry and serialises concurrent refreshes, so it
// is safe to share across streams.
func NewTokenSource(ctx context.Context, creds Credentials) oauth2.TokenSource {
	cfg := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     googleoauth.Endpoint,
		Scopes:       []string{gmailapi.GmailReadonlyScope},
	}
	// Config.TokenSource wraps the exchange in a ReuseTokenSource, which
	// provides the caching and single-flight refresh behaviour.
	return cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})
}

// ClassifyTokenError maps token-exchange failures onto ErrAuthRejected when
// the identity provider rejected the credential, and returns other errors
// (network failures and the like) unchanged.
func ClassifyTokenError(err error) error {
	if err == nil {
		return nil
	}
	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) {
		// The token endpoint answered; a 4xx answer means the credential
		// itself is bad.
		if rerr.Response != nil && rerr.Response.StatusCode >= 400 && rerr.Response.StatusCode < 500 {
			if rerr.ErrorCode != "" {
				return fmt.Errorf("%w: %s", ErrAuthRejected, rerr.ErrorCode)
			}
			return fmt.Errorf("%w: status %d", ErrAuthRejected, rerr.Response.StatusCode)
		}
	}
	return err
}

// IsAuthRejected reports whether err indicates rejected credentials.
func IsAuthRejected(err error) bool {
	if errors.Is(err, ErrAuthRejected) {
		return true
	}
	return errors.Is(ClassifyTokenError(err), ErrAuthRejected)
}

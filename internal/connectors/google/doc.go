// Package google provides shared infrastructure for talking to the Gmail API.
//
// This package contains:
//   - a refresh-token credential provider producing a cached oauth2.TokenSource
//   - a service factory for the Gmail API client
//   - error classification for common Google API errors (401, 403, 404, 429, 5xx)
//   - rate limiting to respect Google API quotas
//   - a bounded retry policy with exponential backoff for transient failures
//
// # Usage
//
//	ts := google.NewTokenSource(ctx, creds)
//	svc, err := google.NewGmailService(ctx, ts)
//
// # OAuth2 Scopes
//
// The connector is read-only and requests a single scope:
//   - https://www.googleapis.com/auth/gmail.readonly (restricted)
package google

package google

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/oauth2"
)

func retrieveError(status int, code string) error {
	return &oauth2.RetrieveError{
		Response:  &http.Response{StatusCode: status},
		ErrorCode: code,
	}
}

func TestClassifyTokenError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantRejected bool
	}{
		{
			name:         "invalid_grant is a rejection",
			err:          retrieveError(http.StatusBadRequest, "invalid_grant"),
			wantRejected: true,
		},
		{
			name:         "401 without error code is a rejection",
			err:          retrieveError(http.StatusUnauthorized, ""),
			wantRejected: true,
		},
		{
			name:         "token endpoint 500 is not a rejection",
			err:          retrieveError(http.StatusInternalServerError, ""),
			wantRejected: false,
		},
		{
			name:         "network error is not a rejection",
			err:          errors.New("dial tcp: connection refused"),
			wantRejected: false,
		},
		{
			name:         "nil stays nil",
			err:          nil,
			wantRejected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTokenError(tt.err)
			if tt.wantRejected {
				assert.ErrorIs(t, got, ErrAuthRejected)
				assert.True(t, IsAuthRejected(tt.err))
			} else {
				assert.NotErrorIs(t, got, ErrAuthRejected)
				assert.False(t, IsAuthRejected(tt.err))
			}
		})
	}
}

func TestClassifyTokenError_PreservesDetail(t *testing.T) {
	got := ClassifyTokenError(retrieveError(http.StatusBadRequest, "invalid_grant"))
	assert.Contains(t, got.Error(), "invalid_grant")
}

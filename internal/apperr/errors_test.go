package apperr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsMatchSentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"missing config", &MissingConfigError{Key: "BUNDLE_ID"}, ErrMissingConfiguration},
		{"file access", &FileAccessError{Path: "x", Err: os.ErrNotExist}, ErrFileAccess},
		{"remote failure", &RemoteFailureError{StatusCode: 404}, ErrRemoteFailure},
		{"network", &NetworkError{Op: "GET", URL: "http://x", Err: context.DeadlineExceeded}, ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.target)
			for _, other := range []error{ErrMissingConfiguration, ErrFileAccess, ErrRemoteFailure, ErrNetwork} {
				if other != tt.target {
					assert.False(t, errors.Is(wrapped, other), "unexpected match with %v", other)
				}
			}
		})
	}
}

func TestUnwrapKeepsCause(t *testing.T) {
	err := &FileAccessError{Path: "a.txt", Err: os.ErrNotExist}
	assert.ErrorIs(t, err, os.ErrNotExist)

	nerr := &NetworkError{Op: "POST", URL: "http://x/upload", Err: context.DeadlineExceeded}
	assert.ErrorIs(t, nerr, context.DeadlineExceeded)
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "BUNDLE_ID environment variable is not set", (&MissingConfigError{Key: "BUNDLE_ID"}).Error())
	assert.Equal(t, "status code: 404", (&RemoteFailureError{StatusCode: 404}).Error())
	assert.Equal(t, "status code: 500 response: boom", (&RemoteFailureError{StatusCode: 500, Body: "boom"}).Error())
}

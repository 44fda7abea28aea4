// Package apperr defines the failure kinds shared by the upload and download
// commands. Every kind is terminal; callers match them with errors.Is or
// errors.As.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrMissingConfiguration = errors.New("missing configuration")
	ErrFileAccess           = errors.New("file access error")
	ErrRemoteFailure        = errors.New("remote failure")
	ErrNetwork              = errors.New("network error")
)

// MissingConfigError reports a required configuration key that is absent or empty.
type MissingConfigError struct {
	Key string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("%s environment variable is not set", e.Key)
}

func (e *MissingConfigError) Is(target error) bool { return target == ErrMissingConfiguration }

// FileAccessError wraps a failure to read or write a local file.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot access file %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

func (e *FileAccessError) Is(target error) bool { return target == ErrFileAccess }

// RemoteFailureError is returned when the server answers with a non-2xx status.
// Body holds at most a short prefix of the response for diagnostics.
type RemoteFailureError struct {
	StatusCode int
	Body       string
}

func (e *RemoteFailureError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("status code: %d response: %s", e.StatusCode, e.Body)
}

func (e *RemoteFailureError) Is(target error) bool { return target == ErrRemoteFailure }

// NetworkError wraps a transport-level failure: dial, TLS, deadline or a
// body that could not be read to the end.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

package cli

import (
	"errors"
	"fmt"

	"bundlexfer/internal/apperr"
)

// diagnostic turns any failure into the single line shown to the operator.
// Remote and network failures read the same way so scripts can grep for
// "Failed to".
func diagnostic(cmd Command, err error) string {
	var (
		missing *apperr.MissingConfigError
		file    *apperr.FileAccessError
		remote  *apperr.RemoteFailureError
		network *apperr.NetworkError
	)

	switch {
	case errors.As(err, &missing):
		return missing.Error()
	case errors.As(err, &file):
		return fmt.Sprintf("Failed to access file %s: %v", file.Path, file.Err)
	case errors.As(err, &remote):
		if remote.Body == "" {
			return fmt.Sprintf("Failed to %s. Status code: %d", cmd.action(), remote.StatusCode)
		}
		return fmt.Sprintf("Failed to %s. Status code: %d Response: %s", cmd.action(), remote.StatusCode, remote.Body)
	case errors.As(err, &network):
		return fmt.Sprintf("Failed to %s. network error: %v", cmd.action(), network.Err)
	default:
		return fmt.Sprintf("Failed to %s: %v", cmd.action(), err)
	}
}

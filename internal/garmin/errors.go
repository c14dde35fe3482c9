// ABOUTME: Error types for the Garmin Connect client.
// ABOUTME: Distinguishes authentication failures from upstream API failures.
package garmin

import "fmt"

// AuthError wraps any failure to authenticate: bad credentials, a locked
// account, or a token pair that can no longer be refreshed.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

// APIError is a non-success response from the Garmin Connect API.
type APIError struct {
	StatusCode int
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("garmin api: %s returned status %d", e.Path, e.StatusCode)
}

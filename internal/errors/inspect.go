package errors

import (
	"errors"
	"net"
	"os"
)

// IsAuthError reports whether err is an authentication failure.
func IsAuthError(err error) bool {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return errors.Is(err, ErrAuthFailed) || errors.Is(err, ErrNoAPIKey)
}

// IsRateLimitError reports whether err is a quota/rate limit rejection.
func IsRateLimitError(err error) bool {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}

// IsTimeoutError reports whether err is a request timeout.
func IsTimeoutError(err error) bool {
	var toErr *TimeoutError
	if errors.As(err, &toErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return errors.Is(err, os.ErrDeadlineExceeded)
}

// IsNetworkError reports whether err came from the transport rather than
// the API itself.
func IsNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// IsBlockedError reports whether err is a safety filter rejection.
func IsBlockedError(err error) bool {
	var blockErr *BlockedError
	return errors.As(err, &blockErr)
}

// GetHTTPStatus extracts the HTTP status code from an APIError chain.
// Returns 0 when no status is available.
func GetHTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// GetEndpoint extracts the failing endpoint from an APIError chain.
func GetEndpoint(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Endpoint
	}
	return ""
}

// GetResponseBody extracts the raw response body from an APIError chain.
// The body often carries detail the status line does not.
func GetResponseBody(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.ResponseBody
	}
	return ""
}

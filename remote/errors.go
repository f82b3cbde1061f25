package remote

import "errors"

// Sentinel errors for remote fetches.
// Callers should use errors.Is to check.
var (
	// ErrFetchFailed indicates the file could not be retrieved (transport, status or body error).
	ErrFetchFailed = errors.New("remote: fetch failed")
	// ErrHTTPStatus indicates a non-2xx HTTP status (e.g. 404, 500).
	ErrHTTPStatus = errors.New("remote: unexpected HTTP status")
	// ErrBodyTooLarge indicates the response exceeded the configured size limit.
	ErrBodyTooLarge = errors.New("remote: response body exceeds size limit")
)

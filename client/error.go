package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidUUID is wrapped by [APIError] when the API answers 400.
	// The API uses 400 for malformed or unknown player UUIDs, so this is a
	// mapping of the service's behaviour rather than a local check.
	ErrInvalidUUID = errors.New("invalid uuid")
	// ErrRateLimited is wrapped by [APIError] when the API answers 429.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrUnexpectedStatusCode is wrapped by [APIError] for every other
	// non-2xx status.
	ErrUnexpectedStatusCode = errors.New("unexpected status code")

	// ErrClientClosed is returned by fetches issued after [Client.Close].
	ErrClientClosed = errors.New("client closed")
	// ErrUnknownKind is returned for a render kind outside the path table.
	ErrUnknownKind = errors.New("unknown render kind")
)

// statusErrs maps the statuses the API gives meaning to onto their
// sentinel. Anything else that isn't 2xx is ErrUnexpectedStatusCode.
var statusErrs = map[int]error{
	http.StatusTooManyRequests: ErrRateLimited,
	http.StatusBadRequest:      ErrInvalidUUID,
}

// APIError is returned when the API answers with a non-2xx status.
// Use [errors.Is] against [ErrRateLimited], [ErrInvalidUUID] or
// [ErrUnexpectedStatusCode] to tell the cases apart.
type APIError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v: %d, body: %s", e.Err, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrDispatchTokenMissing is returned by the dispatcher when no bearer
	// credential is configured; no request is sent in that case.
	ErrDispatchTokenMissing = errors.New("dispatch token is not configured")

	// ErrDispatchRejected matches every [*UpstreamError].
	ErrDispatchRejected = errors.New("dispatch rejected by upstream")

	// ErrRelayRejected is returned by the relay client when the relay answers
	// with a protocol error status (405, 413).
	ErrRelayRejected = errors.New("relay rejected submission")

	// ErrInvalidRelayResponse is returned when the relay answer cannot be
	// decoded as an envelope.
	ErrInvalidRelayResponse = errors.New("invalid relay response")
)

// UpstreamError describes a non-2xx answer of the dispatch endpoint.
type UpstreamError struct {
	// StatusCode is the HTTP status returned by the endpoint.
	StatusCode int
	// Body is the endpoint's response text, verbatim.
	Body string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: http %d", ErrDispatchRejected, e.StatusCode)
}

// Is lets errors.Is(err, ErrDispatchRejected) match any UpstreamError.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrDispatchRejected
}

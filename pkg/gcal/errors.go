package gcal

import "fmt"

// TransportError wraps a network-level failure reaching the provider.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("calendar API unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamError is a non-success status from the provider, carrying the
// provider's own message when it could be parsed.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "Unknown API error"
	}
	return fmt.Sprintf("API Error %d: %s", e.StatusCode, msg)
}

// MalformedResponseError is a success status whose body did not carry the
// expected payload shape.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("invalid API response format: %s", e.Reason)
}

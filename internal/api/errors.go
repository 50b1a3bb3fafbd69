package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed remote call. The set is closed so callers can
// dispatch exhaustively on it.
type Kind int

const (
	// KindTransport covers network-level failures: bad URL, DNS,
	// connection refused, timeout. No response was obtained.
	KindTransport Kind = iota
	// KindRemote is a structured server-reported failure: the response
	// carried an {error: string} body alongside an unexpected status.
	KindRemote
	// KindUnexpectedStatus is a status mismatch whose body was not a
	// structured error payload.
	KindUnexpectedStatus
	// KindDecode means the status matched but the body did not decode
	// into the expected shape. Body retains the raw bytes.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindRemote:
		return "remote"
	case KindUnexpectedStatus:
		return "unexpected status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the typed failure for every remote call made by Client.
type Error struct {
	Kind Kind

	// Status is the HTTP status actually received. Zero for KindTransport.
	Status int

	// Message is the server-provided error text. Set for KindRemote.
	Message string

	// Body holds the raw response body for diagnostics. Set for
	// KindDecode and KindUnexpectedStatus.
	Body []byte

	err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("transport failure: %v", e.err)
	case KindRemote:
		return fmt.Sprintf("server error (status %d): %s", e.Status, e.Message)
	case KindUnexpectedStatus:
		return fmt.Sprintf("unexpected status %d", e.Status)
	case KindDecode:
		return fmt.Sprintf("failed to decode response (status %d): %v", e.Status, e.err)
	default:
		return fmt.Sprintf("api error (status %d)", e.Status)
	}
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.err
}

// IsNotFound reports whether err is a server-reported 404. A 404 during
// guess submission means the session no longer exists server-side.
func IsNotFound(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Kind == KindRemote && apiErr.Status == http.StatusNotFound
}

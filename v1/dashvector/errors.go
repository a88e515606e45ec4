package dashvector

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrInvalidRequest wraps every client-side validation failure.
	ErrInvalidRequest = errors.New("dashvector: invalid request")

	// ErrMalformedResponse is returned when a response body is not a valid envelope.
	ErrMalformedResponse = errors.New("dashvector: malformed response")
)

// Error is the remote failure reported by DashVector, either through a
// non-zero envelope code or a non-2xx HTTP status.
type Error struct {
	// Operation is the client method that failed, e.g. "describe_collection".
	Operation string

	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Code is the DashVector error code; 0 only when the HTTP status alone signalled failure.
	Code int

	Message   string
	RequestID string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("dashvector")
	if e.Operation != "" {
		b.WriteString(": ")
		b.WriteString(e.Operation)
	}
	fmt.Fprintf(&b, ": code %d", e.Code)
	if e.StatusCode != 0 && e.StatusCode != http.StatusOK {
		fmt.Fprintf(&b, " (http %d)", e.StatusCode)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.RequestID != "" {
		b.WriteString(" [request_id=")
		b.WriteString(e.RequestID)
		b.WriteString("]")
	}
	return b.String()
}

// IsNotFound reports whether err is a remote error for a missing collection,
// partition or document. DashVector signals this through its message text
// ("Not found collection") and sometimes through HTTP 404.
func IsNotFound(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	if e.StatusCode == http.StatusNotFound {
		return true
	}
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "not found") || strings.Contains(msg, "not exist")
}

// IsAlreadyExists reports whether err says the collection or partition exists already.
func IsAlreadyExists(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "already exist") || strings.Contains(msg, "duplicate")
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

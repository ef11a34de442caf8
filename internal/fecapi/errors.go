package fecapi

import (
	"fmt"

	"github.com/systmms/fecops/internal/redact"
)

// QueryError wraps FEC API transport and status failures. Its message
// is redacted at construction: the raw error (which can embed the
// request URL, api_key included) is never stored, so no downstream
// formatting can resurface the key.
type QueryError struct {
	Op         string // Operation: "search_committees", "get_filings"
	StatusCode int    // 0 for transport-level failures
	Message    string // already redacted
}

func (e *QueryError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fec api %s error (status %d): %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fec api %s error: %s", e.Op, e.Message)
}

// newTransportError builds a QueryError from a client-side failure
// (connection refused, timeout, cancellation).
func newTransportError(op string, err error) *QueryError {
	return &QueryError{
		Op:      op,
		Message: redact.Error(err),
	}
}

// newStatusError builds a QueryError from a non-2xx response. The body
// excerpt is redacted in case the server echoed the request URL back.
func newStatusError(op string, status int, body string) *QueryError {
	return &QueryError{
		Op:         op,
		StatusCode: status,
		Message:    redact.QueryParam(body),
	}
}

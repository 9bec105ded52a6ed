// Package apierr defines the errors returned by every layer of the client.
//
// Callers match sentinels with errors.Is and structured errors with errors.As:
//
//	var upstream *apierr.UpstreamError
//	if errors.As(err, &upstream) && upstream.IsNotFound() {
//		// handle missing mod
//	}
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingAPIKey    = errors.New("curseforge API key required")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidRequest   = errors.New("invalid request parameters")
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("access denied (check API key)")
	ErrMalformedJSON    = errors.New("response body is not valid JSON")
	ErrMissingField     = errors.New("missing required field")
	ErrUnknownEnumValue = errors.New("unknown enum value")
	ErrTypeMismatch     = errors.New("type mismatch")
)

// TransportError reports a request that never produced an HTTP response.
type TransportError struct {
	Method   string
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: transport: %v", e.Method, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError is a non-2xx response from the API.
type UpstreamError struct {
	StatusCode int
	// Message is the service's own error text, when the body carried one.
	Message string
	// Body holds at most the first 10 KiB of the response body.
	Body []byte
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
	}
	if len(e.Body) > 0 {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, string(e.Body))
	}
	return fmt.Sprintf("API error (status %d)", e.StatusCode)
}

// Unwrap maps well-known statuses onto the package sentinels.
func (e *UpstreamError) Unwrap() error {
	switch {
	case e.IsNotFound():
		return ErrNotFound
	case e.IsUnauthorized():
		return ErrUnauthorized
	}
	return nil
}

// IsNotFound reports a 404 response.
func (e *UpstreamError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports a 401 or 403 response.
//
// A 403 on a download-url endpoint usually means the mod author has disabled
// third-party distribution rather than a bad key.
func (e *UpstreamError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// SchemaValidationError reports a response that does not match its declared record.
type SchemaValidationError struct {
	// Field is the wire path of the offending value, e.g. "data[0].releaseType".
	// It is empty when the body as a whole is unusable.
	Field string
	Err   error
}

func (e *SchemaValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema validation failed: %v", e.Err)
	}
	return fmt.Sprintf("schema validation failed at %s: %v", e.Field, e.Err)
}

func (e *SchemaValidationError) Unwrap() error {
	return e.Err
}

// OperationError is the outermost error of every endpoint operation.
type OperationError struct {
	Op   string
	Path string
	Err  error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

package restclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error codes carried by the domain error. Server codes pass through as-is;
// CodeTransport marks failures that never produced a response.
const (
	CodeTransport       = "transport"
	CodeNotFound        = "not_found"
	CodeInvalidArgument = "invalid_argument"
	CodeUnavailable     = "unavailable"
	CodeInternal        = "internal"
)

// Error is the domain error the gateway hands to callers. It carries a
// human-readable message; the raw response never escapes this package.
type Error struct {
	Code    string
	Message string
	err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.err
}

// IsNotFound reports whether err is a domain error for an absent id.
func IsNotFound(err error) bool {
	var domainErr *Error
	return errors.As(err, &domainErr) && domainErr.Code == CodeNotFound
}

func transportError(err error) *Error {
	return &Error{
		Code:    CodeTransport,
		Message: fmt.Sprintf("request failed: %v", err),
		err:     err,
	}
}

// wireError matches the server's error body shape.
type wireError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// errorFromResponse converts a non-2xx response to the domain error,
// preferring the server's own message and code when the body carries them.
func errorFromResponse(resp *http.Response) *Error {
	domainErr := &Error{
		Code:    codeForStatus(resp.StatusCode),
		Message: fmt.Sprintf("server responded %s", resp.Status),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return domainErr
	}

	var wire wireError
	if err := json.Unmarshal(body, &wire); err == nil && wire.Error != "" {
		domainErr.Message = wire.Error
		if wire.Code != "" {
			domainErr.Code = wire.Code
		}
	}

	return domainErr
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusBadRequest:
		return CodeInvalidArgument
	case http.StatusServiceUnavailable:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}

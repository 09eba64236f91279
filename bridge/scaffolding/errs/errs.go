// Package errs provides types and support related to web error functionality.
// An *Error implements web.Encoder, so handlers can return one directly and
// the errors middleware turns it into the status code and wire body.
package errs

import (
	"encoding/json"
	"fmt"
	"runtime"
)

// Error represents an error in the system.
type Error struct {
	Code     ErrCode `json:"code"`
	Message  string  `json:"message"`
	FuncName string  `json:"-"`
	FileName string  `json:"-"`
}

// New constructs an error based on an app error.
func New(code ErrCode, err error) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  err.Error(),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Newf constructs an error based on an error format string.
func Newf(code ErrCode, format string, v ...any) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  fmt.Sprintf(format, v...),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// wireError is the shape written to the client: the human message plus the
// machine-readable code, never internal detail.
type wireError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Encode implements the web.Encoder interface.
func (e *Error) Encode() ([]byte, string, error) {
	data, err := json.Marshal(wireError{
		Error: e.Message,
		Code:  e.Code.String(),
	})
	return data, "application/json; charset=utf-8", err
}

// HTTPStatus implements the web httpStatus interface so the Respond function
// can use the correct status code.
func (e *Error) HTTPStatus() int {
	return httpStatus[e.Code]
}

package errs

import "net/http"

// ErrCode represents a machine-readable error classification.
type ErrCode int

const (
	// OK is the zero value and not a valid error code.
	OK ErrCode = iota

	// InvalidArgument covers malformed input: non-numeric path ids, missing
	// required fields, undecodable bodies.
	InvalidArgument

	// NotFound means the referenced id is absent from the store.
	NotFound

	// Unavailable means the backing store could not be reached. The message
	// stays generic; internal detail is logged server-side only.
	Unavailable

	// Internal is an unclassified server-side failure.
	Internal

	// InternalOnlyLog behaves like Internal but the errors middleware
	// replaces the message before it reaches the client.
	InternalOnlyLog
)

var codeNames = map[ErrCode]string{
	OK:              "ok",
	InvalidArgument: "invalid_argument",
	NotFound:        "not_found",
	Unavailable:     "unavailable",
	Internal:        "internal",
	InternalOnlyLog: "internal",
}

var httpStatus = map[ErrCode]int{
	OK:              http.StatusOK,
	InvalidArgument: http.StatusBadRequest,
	NotFound:        http.StatusNotFound,
	Unavailable:     http.StatusInternalServerError,
	Internal:        http.StatusInternalServerError,
	InternalOnlyLog: http.StatusInternalServerError,
}

// String returns the wire name of the code.
func (c ErrCode) String() string {
	name, ok := codeNames[c]
	if !ok {
		return "internal"
	}
	return name
}

// MarshalJSON implements json.Marshaler so codes render as their wire names.
func (c ErrCode) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

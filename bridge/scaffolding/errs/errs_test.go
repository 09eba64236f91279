package errs_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/OreBoia/my-rest-app/bridge/scaffolding/errs"
)

func TestEncodeWireShape(t *testing.T) {
	e := errs.Newf(errs.NotFound, "task %d not found", 7)

	data, contentType, err := e.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if contentType != "application/json; charset=utf-8" {
		t.Errorf("got content type %q", contentType)
	}

	var wire struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal wire body: %v", err)
	}
	if wire.Error != "task 7 not found" || wire.Code != "not_found" {
		t.Errorf("got %+v", wire)
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		code errs.ErrCode
		want int
	}{
		{errs.InvalidArgument, http.StatusBadRequest},
		{errs.NotFound, http.StatusNotFound},
		{errs.Unavailable, http.StatusInternalServerError},
		{errs.Internal, http.StatusInternalServerError},
		{errs.InternalOnlyLog, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		e := errs.Newf(tt.code, "boom")
		if got := e.HTTPStatus(); got != tt.want {
			t.Errorf("%s: got status %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestCallerCapture(t *testing.T) {
	e := errs.Newf(errs.Internal, "boom")

	if e.FuncName == "" || e.FileName == "" {
		t.Errorf("caller metadata not captured: %+v", e)
	}
}

func TestInternalOnlyLogSharesWireName(t *testing.T) {
	// clients see the same "internal" code either way; only the middleware
	// treats them differently
	if errs.Internal.String() != errs.InternalOnlyLog.String() {
		t.Errorf("got %q and %q, want identical wire names",
			errs.Internal.String(), errs.InternalOnlyLog.String())
	}
}

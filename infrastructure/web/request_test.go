package web_test

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/OreBoia/my-rest-app/infrastructure/web"
)

type draft struct {
	Title string `json:"title"`
}

func (d draft) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"title":"fare la spesa"}`, wantErr: false},
		{name: "empty body", body: "", wantErr: true},
		{name: "malformed json", body: `{"title":`, wantErr: true},
		{name: "fails validation", body: `{"title":""}`, wantErr: true},
		{name: "unknown fields ignored", body: `{"title":"ok","id":42}`, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/tasks", strings.NewReader(tt.body))

			var d draft
			err := web.Decode(r, &d)
			if tt.wantErr && err == nil {
				t.Error("got nil error, want failure")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("got err %v, want nil", err)
			}
		})
	}
}

func TestQueryParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/tasks?completed=true", nil)

	if got := web.QueryParam(r, "completed"); got != "true" {
		t.Errorf("got %q, want %q", got, "true")
	}
	if got := web.QueryParam(r, "missing"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

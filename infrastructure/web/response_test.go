package web_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/OreBoia/my-rest-app/infrastructure/web"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	type payload struct {
		Name string `json:"name"`
	}
	resp := web.NewJSONResponse(payload{Name: "Mario"})

	if err := web.Respond(context.Background(), rec, resp); err != nil {
		t.Fatalf("respond: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("got status %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("got content type %q", ct)
	}

	var got payload
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if got.Name != "Mario" {
		t.Errorf("got %+v", got)
	}
}

func TestRespondExplicitStatus(t *testing.T) {
	rec := httptest.NewRecorder()

	resp := web.NewJSONResponseWithStatus(map[string]int{"id": 1}, http.StatusCreated)
	if err := web.Respond(context.Background(), rec, resp); err != nil {
		t.Fatalf("respond: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("got status %d, want 201", rec.Code)
	}
}

func TestRespondNoResponseWritesNothing(t *testing.T) {
	rec := httptest.NewRecorder()

	if err := web.Respond(context.Background(), rec, web.NewNoResponse()); err != nil {
		t.Fatalf("respond: %v", err)
	}

	if rec.Body.Len() != 0 {
		t.Errorf("got body %q, want empty", rec.Body.String())
	}
}

func TestRespondCanceledContext(t *testing.T) {
	rec := httptest.NewRecorder()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := web.Respond(ctx, rec, web.NewJSONResponse("late"))
	if err == nil {
		t.Fatal("got nil error, want client-disconnected error")
	}
	if rec.Body.Len() != 0 {
		t.Errorf("wrote %q to a disconnected client", rec.Body.String())
	}
}

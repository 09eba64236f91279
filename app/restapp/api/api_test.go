package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/OreBoia/my-rest-app/app/restapp/api"
	"github.com/OreBoia/my-rest-app/app/restapp/config"
	"github.com/OreBoia/my-rest-app/bridge/scaffolding/mid"
	"github.com/OreBoia/my-rest-app/core/repositories/tasksrepo"
	"github.com/OreBoia/my-rest-app/core/repositories/tasksrepo/stores/tasksmemstore"
	"github.com/OreBoia/my-rest-app/core/repositories/usersrepo"
	"github.com/OreBoia/my-rest-app/core/repositories/usersrepo/stores/usersmemstore"
	"github.com/OreBoia/my-rest-app/infrastructure/web"
	"github.com/OreBoia/my-rest-app/sdk/logger"
	"github.com/OreBoia/my-rest-app/sdk/telemetry"
)

// newTestServer builds the full handler with the middleware chain used in
// production, backed by the given storers.
func newTestServer(t *testing.T, users usersrepo.Storer, tasks tasksrepo.Storer) *httptest.Server {
	t.Helper()

	log := logger.NewDefault(logger.WithOutput(io.Discard))

	cfg := config.RestApp{
		Build:     "test",
		Logger:    log,
		Telemetry: telemetry.NewTelemetry(),
		Repositories: config.Repositories{
			Users: usersrepo.NewRepository(log, users),
			Tasks: tasksrepo.NewRepository(log, tasks),
		},
	}

	wh := web.NewWebHandler(log,
		web.WithTelemetry(cfg.Telemetry),
		web.WithGlobalMiddleware(
			mid.CORS("http://localhost:4200"),
			mid.Logger(log),
			mid.Errors(log),
			mid.Metrics(),
			mid.Panics(),
		),
	)
	api.AddHandlers(wh, cfg)

	srv := httptest.NewServer(wh)
	t.Cleanup(srv.Close)
	return srv
}

// errorBody matches the wire shape produced by the errs middleware.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func decodeInto(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
}

func TestListUsersEmptyCollection(t *testing.T) {
	log := logger.NewDefault(logger.WithOutput(io.Discard))
	srv := newTestServer(t, usersmemstore.NewStore(log), tasksmemstore.NewStore(log))

	resp, err := http.Get(srv.URL + "/api/users")
	if err != nil {
		t.Fatalf("GET /api/users: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, want 200", resp.StatusCode)
	}

	var users []usersrepo.User
	decodeInto(t, resp, &users)
	if users == nil || len(users) != 0 {
		t.Errorf("empty collection must encode as [], got %+v", users)
	}
}

func TestCreateUserAssignsNextID(t *testing.T) {
	log := logger.NewDefault(logger.WithOutput(io.Discard))
	store := usersmemstore.NewStoreWithUsers(log, []usersrepo.User{
		{ID: 1, Name: "Mario Rossi", Email: "mario@example.com"},
		{ID: 2, Name: "Luigi Verdi", Email: "luigi@example.com"},
	})
	srv := newTestServer(t, store, tasksmemstore.NewStore(log))

	body := bytes.NewBufferString(`{"name":"Anna Bianchi","email":"anna@example.com"}`)
	resp, err := http.Post(srv.URL+"/api/users", "application/json", body)
	if err != nil {
		t.Fatalf("POST /api/users: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("got status %d, want 201", resp.StatusCode)
	}

	var user usersrepo.User
	decodeInto(t, resp, &user)
	if user.ID != 3 {
		t.Errorf("got id %d, want 3", user.ID)
	}
	if user.Name != "Anna Bianchi" {
		t.Errorf("got name %q, want %q", user.Name, "Anna Bianchi")
	}
}

func TestCreateUserRejectsMissingFields(t *testing.T) {
	log := logger.NewDefault(logger.WithOutput(io.Discard))
	srv := newTestServer(t, usersmemstore.NewStore(log), tasksmemstore.NewStore(log))

	body := bytes.NewBufferString(`{"name":"Mario Rossi"}`)
	resp, err := http.Post(srv.URL+"/api/users", "application/json", body)
	if err != nil {
		t.Fatalf("POST /api/users: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", resp.StatusCode)
	}

	var got errorBody
	decodeInto(t, resp, &got)
	if got.Code != "invalid_argument" {
		t.Errorf("got code %q, want invalid_argument", got.Code)
	}
}

func TestDeleteMissingUser(t *testing.T) {
	log := logger.NewDefault(logger.WithOutput(io.Discard))
	srv := newTestServer(t, usersmemstore.NewStore(log), tasksmemstore.NewStore(log))

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/users/99", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE /api/users/99: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", resp.StatusCode)
	}

	var got errorBody
	decodeInto(t, resp, &got)
	if got.Error != "user 99 not found" || got.Code != "not_found" {
		t.Errorf("got %+v, want {user 99 not found not_found}", got)
	}
}

func TestDeleteUserNonNumericID(t *testing.T) {
	log := logger.NewDefault(logger.WithOutput(io.Discard))
	srv := newTestServer(t, usersmemstore.NewStore(log), tasksmemstore.NewStore(log))

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/users/abc", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE /api/users/abc: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", resp.StatusCode)
	}

	var got errorBody
	decodeInto(t, resp, &got)
	if got.Code != "invalid_argument" {
		t.Errorf("got code %q, want invalid_argument", got.Code)
	}
}

func TestToggleTaskRoundTrip(t *testing.T) {
	log := logger.NewDefault(logger.WithOutput(io.Discard))
	store := tasksmemstore.NewStoreWithTasks(log, []tasksrepo.Task{
		{ID: 1, Title: "fare la spesa"},
	})
	srv := newTestServer(t, usersmemstore.NewStore(log), store)

	req, _ := http.NewRequest(http.MethodPatch, srv.URL+"/api/tasks/1", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PATCH /api/tasks/1: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, want 200", resp.StatusCode)
	}

	var task tasksrepo.Task
	decodeInto(t, resp, &task)
	if !task.Completed {
		t.Error("got completed=false, want true")
	}

	// the change must be visible on a subsequent read
	listResp, err := http.Get(srv.URL + "/api/tasks")
	if err != nil {
		t.Fatalf("GET /api/tasks: %v", err)
	}
	var tasks []tasksrepo.Task
	decodeInto(t, listResp, &tasks)
	if len(tasks) != 1 || !tasks[0].Completed {
		t.Errorf("got %+v, want one completed task", tasks)
	}
}

// failingTasksStore simulates a backend outage.
type failingTasksStore struct{}

func (failingTasksStore) List(ctx context.Context) ([]tasksrepo.Task, error) {
	return nil, errors.New("connection refused")
}
func (failingTasksStore) Create(ctx context.Context, nt tasksrepo.NewTask) (tasksrepo.Task, error) {
	return tasksrepo.Task{}, errors.New("connection refused")
}
func (failingTasksStore) Delete(ctx context.Context, id int) (tasksrepo.Task, error) {
	return tasksrepo.Task{}, errors.New("connection refused")
}
func (failingTasksStore) Toggle(ctx context.Context, id int) (tasksrepo.Task, error) {
	return tasksrepo.Task{}, errors.New("connection refused")
}

func TestStoreFailureMapsToGenericError(t *testing.T) {
	log := logger.NewDefault(logger.WithOutput(io.Discard))
	srv := newTestServer(t, usersmemstore.NewStore(log), failingTasksStore{})

	resp, err := http.Get(srv.URL + "/api/tasks")
	if err != nil {
		t.Fatalf("GET /api/tasks: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("got status %d, want 500", resp.StatusCode)
	}

	var got errorBody
	decodeInto(t, resp, &got)
	if got.Error != "could not retrieve tasks" || got.Code != "unavailable" {
		t.Errorf("got %+v, want the generic message, not the store error", got)
	}
}

func TestPreflightAnswered(t *testing.T) {
	log := logger.NewDefault(logger.WithOutput(io.Discard))
	srv := newTestServer(t, usersmemstore.NewStore(log), tasksmemstore.NewStore(log))

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/tasks", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS /api/tasks: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("got status %d, want 204", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:4200" {
		t.Errorf("got allow-origin %q, want the configured origin", got)
	}
}

func TestLivenessProbe(t *testing.T) {
	log := logger.NewDefault(logger.WithOutput(io.Discard))
	srv := newTestServer(t, usersmemstore.NewStore(log), tasksmemstore.NewStore(log))

	resp, err := http.Get(srv.URL + "/api/liveness")
	if err != nil {
		t.Fatalf("GET /api/liveness: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, want 200", resp.StatusCode)
	}
}

func TestFullCrudThroughGateway(t *testing.T) {
	log := logger.NewDefault(logger.WithOutput(io.Discard))
	srv := newTestServer(t, usersmemstore.NewStore(log), tasksmemstore.NewStore(log))

	// Create two tasks, toggle the first, delete the second, list the rest.
	for i := 1; i <= 2; i++ {
		body := bytes.NewBufferString(fmt.Sprintf(`{"title":"task %d"}`, i))
		resp, err := http.Post(srv.URL+"/api/tasks", "application/json", body)
		if err != nil {
			t.Fatalf("POST /api/tasks: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create %d: got status %d, want 201", i, resp.StatusCode)
		}
	}

	req, _ := http.NewRequest(http.MethodPatch, srv.URL+"/api/tasks/1", nil)
	if resp, err := http.DefaultClient.Do(req); err != nil {
		t.Fatalf("PATCH /api/tasks/1: %v", err)
	} else {
		resp.Body.Close()
	}

	req, _ = http.NewRequest(http.MethodDelete, srv.URL+"/api/tasks/2", nil)
	if resp, err := http.DefaultClient.Do(req); err != nil {
		t.Fatalf("DELETE /api/tasks/2: %v", err)
	} else {
		resp.Body.Close()
	}

	listResp, err := http.Get(srv.URL + "/api/tasks")
	if err != nil {
		t.Fatalf("GET /api/tasks: %v", err)
	}
	var tasks []tasksrepo.Task
	decodeInto(t, listResp, &tasks)
	if len(tasks) != 1 || tasks[0].ID != 1 || !tasks[0].Completed {
		t.Errorf("got %+v, want only task 1, completed", tasks)
	}
}

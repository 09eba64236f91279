package restclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OreBoia/my-rest-app/core/repositories/tasksrepo"
	"github.com/OreBoia/my-rest-app/core/repositories/usersrepo"
)

func TestUsersList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"name":"Mario Rossi","email":"mario@example.com"}]`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	users, err := client.Users().List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, usersrepo.User{ID: 1, Name: "Mario Rossi", Email: "mario@example.com"}, users[0])
}

func TestTasksCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tasks", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":4,"title":"spesa","description":"","completed":false}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	task, err := client.Tasks().Create(context.Background(), tasksrepo.NewTask{Title: "spesa"})
	require.NoError(t, err)
	assert.Equal(t, 4, task.ID)
	assert.False(t, task.Completed)
}

func TestTasksToggle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/tasks/2", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":2,"title":"spesa","description":"","completed":true}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	task, err := client.Tasks().Toggle(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, task.Completed)
}

func TestErrorBodyBecomesDomainError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"user 99 not found","code":"not_found"}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.Users().Delete(context.Background(), 99)
	require.Error(t, err)

	assert.True(t, IsNotFound(err))
	assert.Equal(t, "user 99 not found", err.Error())
}

func TestNonJSONErrorFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.Tasks().List(context.Background())
	require.Error(t, err)

	var domainErr *Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeInternal, domainErr.Code)
	assert.Contains(t, domainErr.Message, "500")
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := New(srv.URL)
	_, err := client.Users().List(context.Background())
	require.Error(t, err)

	var domainErr *Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeTransport, domainErr.Code)
	assert.False(t, IsNotFound(err))
}

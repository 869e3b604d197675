package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotodo/internal/models"
)

func TestGetTasks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/tasks", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Task{
			{ID: "abc", Description: "Learn FastAPI", Completed: false},
			{ID: "def", Description: "Integrate React Frontend", Completed: true},
		})
	}))
	defer server.Close()

	c := New(server.URL)

	tasks, err := c.GetTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Learn FastAPI", tasks[0].Description)
	assert.True(t, tasks[1].Completed)
}

func TestGetTasksServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL)

	_, err := c.GetTasks(context.Background())
	assert.Error(t, err)
}

func TestCreateTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tasks", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.CreateTaskRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "buy milk", req.Description)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Task{ID: "srv-1", Description: req.Description, Completed: false})
	}))
	defer server.Close()

	c := New(server.URL)

	task, err := c.CreateTask(context.Background(), "buy milk")
	require.NoError(t, err)
	assert.Equal(t, "srv-1", task.ID)
	assert.False(t, task.Completed)
}

func TestUpdateTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/tasks/abc", r.URL.Path)

		var req models.UpdateTaskRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if assert.NotNil(t, req.Completed) {
			assert.True(t, *req.Completed)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Task{ID: "abc", Description: "Learn FastAPI", Completed: true})
	}))
	defer server.Close()

	c := New(server.URL)

	task, err := c.UpdateTask(context.Background(), "abc", true)
	require.NoError(t, err)
	assert.True(t, task.Completed)
}

func TestGetUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.User{
			{ID: "user1", Username: "alice", Email: "alice@example.com", Password: "securepassword123"},
		})
	}))
	defer server.Close()

	c := New(server.URL)

	users, err := c.GetUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "securepassword123", users[0].Password, "пароль приходит открытым текстом")
}

func TestCreateUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)

		var req models.CreateUserRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.User{
			ID:       "7",
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		})
	}))
	defer server.Close()

	c := New(server.URL)

	user, err := c.CreateUser(context.Background(), "alice", "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: "7", Username: "alice", Email: "a@x.com", Password: "secret"}, user)
}

func TestCreateUserStructuredError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Detail: models.ErrorDetail{Code: "duplicate_username", Message: "Username already exists."},
		})
	}))
	defer server.Close()

	c := New(server.URL)

	_, err := c.CreateUser(context.Background(), "alice", "a@x.com", "secret")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "duplicate_username", apiErr.Code)
	assert.Equal(t, "Username already exists.", apiErr.Error())
}

func TestCreateUserErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL)

	_, err := c.CreateUser(context.Background(), "alice", "a@x.com", "secret")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "500")
}

func TestNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := New(server.URL)

	_, err := c.GetTasks(context.Background())
	assert.Error(t, err)
}

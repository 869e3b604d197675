package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotodo/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSeedData(t *testing.T) {
	s := newTestStorage(t)

	tasks, err := s.GetTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Learn FastAPI", tasks[0].Description)
	assert.True(t, tasks[1].Completed)

	users, err := s.GetUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "securepassword123", users[0].Password)
}

func TestInsertAndGetTask(t *testing.T) {
	s := newTestStorage(t)

	task := models.Task{ID: "t-1", Description: "new task", Completed: false}
	require.NoError(t, s.InsertTask(task))

	got, err := s.GetTaskByID("t-1")
	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func TestUpdateTaskCompleted(t *testing.T) {
	s := newTestStorage(t)

	task, err := s.UpdateTaskCompleted("abc", true)
	require.NoError(t, err)
	assert.True(t, task.Completed)
	assert.Equal(t, "Learn FastAPI", task.Description)

	_, err = s.UpdateTaskCompleted("no-such-id", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetTaskByIDNotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetTaskByID("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsernameExists(t *testing.T) {
	s := newTestStorage(t)

	exists, err := s.UsernameExists("alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.UsernameExists("nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdateUser(t *testing.T) {
	s := newTestStorage(t)

	user, err := s.GetUserByID("user1")
	require.NoError(t, err)

	user.Email = "new@example.com"
	require.NoError(t, s.UpdateUser(user))

	got, err := s.GetUserByID("user1")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)

	err = s.UpdateUser(models.User{ID: "no-such-id", Username: "x", Email: "y", Password: "z"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	s := newTestStorage(t)

	n, err := s.DeleteUser("user2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// Повторное удаление: строк нет, но это не ошибка
	n, err = s.DeleteUser("user2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestClear(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.ClearTasks())
	require.NoError(t, s.ClearUsers())

	tasks, err := s.GetTasks()
	require.NoError(t, err)
	assert.Empty(t, tasks)

	users, err := s.GetUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}

package services

import (
	"strings"
	"testing"

	"github.com/ahmed-226/Task-Management/internal/models"
	"github.com/ahmed-226/Task-Management/internal/repository"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTaskService(t *testing.T) *TaskService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewTaskService(repository.NewTaskRepository(db))
}

func TestTaskService_CreateValidation(t *testing.T) {
	svc := setupTaskService(t)
	owner := uuid.Must(uuid.NewV4())

	cases := []struct {
		name  string
		input CreateTaskInput
		want  error
	}{
		{"empty title", CreateTaskInput{Title: "", OwnerID: owner}, ErrTitleRequired},
		{"whitespace title", CreateTaskInput{Title: "   ", OwnerID: owner}, ErrTitleRequired},
		{"overlong title", CreateTaskInput{Title: strings.Repeat("x", 101), OwnerID: owner}, ErrTitleTooLong},
		{"overlong description", CreateTaskInput{Title: "ok", Description: strings.Repeat("x", 256), OwnerID: owner}, ErrDescriptionTooLong},
		{"invalid status", CreateTaskInput{Title: "ok", Status: "done", OwnerID: owner}, ErrInvalidStatus},
		{"untitled step", CreateTaskInput{Title: "ok", Steps: []models.Step{{Title: " "}}, OwnerID: owner}, ErrStepTitleRequired},
	}

	for _, tc := range cases {
		_, err := svc.CreateTask(tc.input)
		require.ErrorIs(t, err, tc.want, tc.name)
	}

	// Boundary lengths are accepted
	task, err := svc.CreateTask(CreateTaskInput{
		Title:       strings.Repeat("t", 100),
		Description: strings.Repeat("d", 255),
		OwnerID:     owner,
	})
	require.NoError(t, err)
	require.Equal(t, models.TaskStatusTodo, task.Status)
}

func TestTaskService_UpdatePartialMerge(t *testing.T) {
	svc := setupTaskService(t)
	owner := uuid.Must(uuid.NewV4())

	task, err := svc.CreateTask(CreateTaskInput{
		Title:       "title",
		Description: "description",
		Steps:       []models.Step{{Title: "step one"}},
		OwnerID:     owner,
	})
	require.NoError(t, err)

	status := models.TaskStatusCompleted
	updated, err := svc.UpdateTask(task.ID, owner, UpdateTaskInput{Status: &status})
	require.NoError(t, err)

	require.Equal(t, models.TaskStatusCompleted, updated.Status)
	require.Equal(t, "title", updated.Title)
	require.Equal(t, "description", updated.Description)
	require.Len(t, updated.Steps, 1)
}

func TestTaskService_UpdateRejectsInvalid(t *testing.T) {
	svc := setupTaskService(t)
	owner := uuid.Must(uuid.NewV4())

	task, err := svc.CreateTask(CreateTaskInput{Title: "task", OwnerID: owner})
	require.NoError(t, err)

	empty := ""
	_, err = svc.UpdateTask(task.ID, owner, UpdateTaskInput{Title: &empty})
	require.ErrorIs(t, err, ErrTitleRequired)

	bogus := models.TaskStatus("bogus")
	_, err = svc.UpdateTask(task.ID, owner, UpdateTaskInput{Status: &bogus})
	require.ErrorIs(t, err, ErrInvalidStatus)

	// A rejected update leaves the task untouched
	fetched, err := svc.GetTask(task.ID, owner)
	require.NoError(t, err)
	require.Equal(t, "task", fetched.Title)
	require.Equal(t, models.TaskStatusTodo, fetched.Status)
}

func TestTaskService_OwnerScoping(t *testing.T) {
	svc := setupTaskService(t)
	alice := uuid.Must(uuid.NewV4())
	bob := uuid.Must(uuid.NewV4())

	task, err := svc.CreateTask(CreateTaskInput{Title: "alice's", OwnerID: alice})
	require.NoError(t, err)

	_, err = svc.GetTask(task.ID, bob)
	require.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.UpdateTask(task.ID, bob, UpdateTaskInput{})
	require.ErrorIs(t, err, ErrTaskNotFound)

	require.ErrorIs(t, svc.DeleteTask(task.ID, bob), ErrTaskNotFound)

	tasks, err := svc.ListTasks(bob)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestTaskService_DeleteTwice(t *testing.T) {
	svc := setupTaskService(t)
	owner := uuid.Must(uuid.NewV4())

	task, err := svc.CreateTask(CreateTaskInput{Title: "ephemeral", OwnerID: owner})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(task.ID, owner))
	require.ErrorIs(t, svc.DeleteTask(task.ID, owner), ErrTaskNotFound)
}

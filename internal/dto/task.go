package dto

import (
	"time"

	"github.com/ahmed-226/Task-Management/internal/models"
)

// UserDTO represents a user in API responses. The password hash never leaves
// the server.
type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// StepDTO represents an embedded checklist step
type StepDTO struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	UserID      string            `json:"user_id"`
	Steps       []StepDTO         `json:"steps"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}
}

// ToTaskDTO converts a Task model to TaskDTO. Steps always serialize as an
// array, in stored order, so clients can address them by position.
func ToTaskDTO(task models.Task) TaskDTO {
	steps := make([]StepDTO, len(task.Steps))
	for i, step := range task.Steps {
		steps[i] = StepDTO{
			Title:     step.Title,
			Completed: step.Completed,
		}
	}

	return TaskDTO{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		UserID:      task.UserID.String(),
		Steps:       steps,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks preserving store order
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}

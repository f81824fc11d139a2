package repository

import (
	"github.com/ahmed-226/Task-Management/internal/models"
	"github.com/gofrs/uuid"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uuid.UUID) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// TaskRepository defines the interface for task data access.
//
// Every lookup is scoped by owner: a task that exists but belongs to another
// user is reported exactly like a task that does not exist, so callers never
// learn whether a foreign ID is real.
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task owned by the given user
	FindByID(id, userID uuid.UUID) (*models.Task, error)

	// ListByOwner returns all tasks owned by the given user in store order
	ListByOwner(userID uuid.UUID) ([]models.Task, error)

	// Update saves a task
	Update(task *models.Task) error

	// Delete removes a task owned by the given user; returns
	// gorm.ErrRecordNotFound if no owned row was deleted
	Delete(id, userID uuid.UUID) error
}

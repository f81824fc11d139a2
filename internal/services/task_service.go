package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ahmed-226/Task-Management/internal/constants"
	"github.com/ahmed-226/Task-Management/internal/models"
	"github.com/ahmed-226/Task-Management/internal/repository"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooLong       = fmt.Errorf("title must be at most %d characters", constants.MaxTitleLength)
	ErrDescriptionTooLong = fmt.Errorf("description must be at most %d characters", constants.MaxDescriptionLength)
	ErrInvalidStatus      = errors.New("status must be one of: todo, pending, in-progress, completed")
	ErrStepTitleRequired  = errors.New("every step requires a title")
)

// TaskService handles task business logic. Every operation is scoped to the
// authenticated owner: tasks belonging to other users are reported as not
// found, never as forbidden.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	Status      models.TaskStatus
	Steps       []models.Step
	OwnerID     uuid.UUID
}

// UpdateTaskInput represents a partial update. Nil fields are left untouched;
// a non-nil Steps replaces the whole sequence.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
	Steps       *[]models.Step
}

// ListTasks returns all tasks owned by the user in store order.
func (s *TaskService) ListTasks(ownerID uuid.UUID) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns an owned task by ID.
func (s *TaskService) GetTask(taskID, ownerID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// CreateTask validates and persists a new task for the owner.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = models.TaskStatusTodo
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if err := validateSteps(input.Steps); err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		UserID:      input.OwnerID,
		Steps:       normalizeSteps(input.Steps),
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask applies a partial merge of provided fields onto the owned task.
func (s *TaskService) UpdateTask(taskID, ownerID uuid.UUID, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleRequired
		}
		if err := validateTitle(*input.Title); err != nil {
			return nil, err
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		if err := validateDescription(*input.Description); err != nil {
			return nil, err
		}
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		task.Status = *input.Status
	}
	if input.Steps != nil {
		if err := validateSteps(*input.Steps); err != nil {
			return nil, err
		}
		task.Steps = normalizeSteps(*input.Steps)
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask removes an owned task.
func (s *TaskService) DeleteTask(taskID, ownerID uuid.UUID) error {
	if err := s.taskRepo.Delete(taskID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func validateTitle(title string) error {
	if len(title) > constants.MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) > constants.MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

func validateSteps(steps []models.Step) error {
	for _, step := range steps {
		if strings.TrimSpace(step.Title) == "" {
			return ErrStepTitleRequired
		}
	}
	return nil
}

// normalizeSteps keeps the steps column a real array so positions stay
// addressable even when no steps were submitted.
func normalizeSteps(steps []models.Step) []models.Step {
	if steps == nil {
		return []models.Step{}
	}
	return steps
}

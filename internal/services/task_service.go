package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/todotrack/todo-api/internal/models"
	"github.com/todotrack/todo-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskForbidden    = errors.New("task belongs to another user")
	ErrNoTasksFound     = errors.New("no tasks found")
	ErrNameRequired     = errors.New("name is required")
	ErrNameTaken        = errors.New("task name already exists")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrCannotSetDeleted = errors.New("status DELETED can only be set by deleting the task")
)

// TaskService implements the task lifecycle and ownership rules. Every
// operation takes the authenticated user id resolved by the auth middleware.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// ListTasksInput represents optional filters for listing tasks
type ListTasksInput struct {
	Status *models.TaskStatus
	DueMax *time.Time
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Name    string
	DueDate *time.Time
}

// UpdateTaskInput represents a partial update; nil fields are left untouched.
type UpdateTaskInput struct {
	Name         *string
	DueDate      *time.Time
	ClearDueDate bool
	Status       *models.TaskStatus
}

// ListTasks returns the user's tasks matching the filters. An empty match is
// reported as ErrNoTasksFound rather than an empty success; existing clients
// treat "nothing matched" as a 404.
func (s *TaskService) ListTasks(userID uint64, input ListTasksInput) ([]models.Task, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	filter := repository.TaskFilter{
		AuthorID: userID,
		Status:   input.Status,
		DueMax:   input.DueMax,
	}

	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(tasks) == 0 {
		return nil, ErrNoTasksFound
	}

	return tasks, nil
}

// GetTask returns a single task. Existence is checked before ownership, so a
// non-owner probing a valid id gets ErrTaskForbidden rather than not-found.
func (s *TaskService) GetTask(userID, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.AuthorID != userID {
		return nil, ErrTaskForbidden
	}

	return task, nil
}

// CreateTask creates a PENDING task owned by the user. Task names are unique
// across all users.
func (s *TaskService) CreateTask(userID uint64, input CreateTaskInput) (*models.Task, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}

	if _, err := s.taskRepo.FindByName(input.Name); err == nil {
		return nil, ErrNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check task name: %w", err)
	}

	task := &models.Task{
		Name:     input.Name,
		DueDate:  input.DueDate,
		Status:   models.TaskStatusPending,
		AuthorID: userID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask applies a partial update to an owned, live task. A non-owner gets
// ErrTaskNotFound so the update path never confirms foreign ids. The find and
// the save are two round trips; the gap is a known race accepted for the
// single-user-per-task model.
func (s *TaskService) UpdateTask(userID, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.AuthorID != userID {
		return nil, ErrTaskNotFound
	}

	// DELETED is terminal.
	if task.Status == models.TaskStatusDeleted {
		return nil, ErrTaskNotFound
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, ErrNameRequired
		}
		if *input.Name != task.Name {
			if _, err := s.taskRepo.FindByName(*input.Name); err == nil {
				return nil, ErrNameTaken
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check task name: %w", err)
			}
			task.Name = *input.Name
		}
	}
	if input.ClearDueDate {
		task.DueDate = nil
	} else if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		if *input.Status == models.TaskStatusDeleted {
			return nil, ErrCannotSetDeleted
		}
		task.Status = *input.Status
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask soft-deletes an owned task: status becomes DELETED and deleted_at
// is stamped, while updated_at is left alone. Deleting an already-deleted task
// reports ErrTaskNotFound, so the second of two deletes always fails.
func (s *TaskService) DeleteTask(userID, taskID uint64) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if task.AuthorID != userID {
		return ErrTaskForbidden
	}

	deleted, err := s.taskRepo.SoftDelete(taskID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if !deleted {
		return ErrTaskNotFound
	}

	return nil
}

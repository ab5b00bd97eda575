package repository

import (
	"time"

	"github.com/todotrack/todo-api/internal/models"
)

// TaskFilter holds filtering options for listing tasks. Filters compose by
// logical AND; AuthorID is always applied.
type TaskFilter struct {
	AuthorID uint64
	Status   *models.TaskStatus
	DueMax   *time.Time // inclusive upper bound on due_date
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// FindByName finds a task by its name
	FindByName(name string) (*models.Task, error)

	// List retrieves tasks matching the filter
	List(filter TaskFilter) ([]models.Task, error)

	// Update persists changes to a task
	Update(task *models.Task) error

	// SoftDelete marks a not-yet-deleted task DELETED and stamps deleted_at.
	// It reports false when no live task matched the id.
	SoftDelete(id uint64, at time.Time) (bool, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

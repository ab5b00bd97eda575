package dto

import (
	"time"

	"github.com/todotrack/todo-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID        uint64            `json:"id"`
	Name      string            `json:"name"`
	DueDate   *time.Time        `json:"due_date"`
	Status    models.TaskStatus `json:"status"`
	DeletedAt *time.Time        `json:"deleted_at,omitempty"`
	AuthorID  uint64            `json:"author_id"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:        task.ID,
		Name:      task.Name,
		DueDate:   task.DueDate,
		Status:    task.Status,
		DeletedAt: task.DeletedAt,
		AuthorID:  task.AuthorID,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}

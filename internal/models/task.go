package models

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusPostponed  TaskStatus = "POSTPONED"
	TaskStatusDeleted    TaskStatus = "DELETED"
)

// Valid reports whether s is one of the five known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted,
		TaskStatusPostponed, TaskStatusDeleted:
		return true
	}
	return false
}

// Task is a soft-deletable to-do item owned by a single user.
// DeletedAt is an ordinary column rather than gorm.DeletedAt: deleted tasks
// stay readable with status DELETED instead of vanishing from queries.
type Task struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	Name      string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	DueDate   *time.Time `json:"due_date"`
	Status    TaskStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	AuthorID  uint64     `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relations
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

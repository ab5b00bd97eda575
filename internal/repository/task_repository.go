package repository

import (
	"time"

	"github.com/todotrack/todo-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByName finds a task by its name
func (r *GormTaskRepository) FindByName(name string) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("name = ?", name).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks matching the filter
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{}).Where("tasks.author_id = ?", filter.AuthorID)

	if filter.Status != nil {
		query = query.Where("tasks.status = ?", *filter.Status)
	}
	if filter.DueMax != nil {
		query = query.Where("tasks.due_date <= ?", *filter.DueMax)
	}

	if err := query.Order("tasks.created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// Update persists changes to a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// SoftDelete marks a live task DELETED in a single conditional UPDATE.
// UpdateColumns bypasses GORM's UpdatedAt tracking: lifecycle transitions
// must not disturb the content-modification timestamp.
func (r *GormTaskRepository) SoftDelete(id uint64, at time.Time) (bool, error) {
	result := r.db.Model(&models.Task{}).
		Where("id = ? AND status <> ?", id, models.TaskStatusDeleted).
		UpdateColumns(map[string]interface{}{
			"status":     models.TaskStatusDeleted,
			"deleted_at": at,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

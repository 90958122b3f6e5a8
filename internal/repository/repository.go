package repository

import (
	"github.com/mochizukey/task-rest-api/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create persists a new task; GORM fills TaskID and both timestamps.
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// List retrieves a page of tasks plus the total count of the filtered set
	List(filter TaskFilter) ([]models.Task, int64, error)

	// Update saves all task fields in a single statement
	Update(task *models.Task) error

	// Delete hard-deletes a task and returns the row as it was before deletion
	Delete(id uint64) (*models.Task, error)
}

// TaskFilter holds filtering and pagination options for listing tasks
type TaskFilter struct {
	UserID   *uint64
	Page     int
	PageSize int
}

package dto

import (
	"time"

	"github.com/mochizukey/task-rest-api/internal/models"
	"github.com/mochizukey/task-rest-api/internal/utils"
)

// TaskResponse represents a task in API responses
type TaskResponse struct {
	TaskID      uint64              `json:"task_id"`
	UserID      uint64              `json:"user_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	DueDate     *time.Time          `json:"due_date"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Links       map[string]string   `json:"links"`
}

// PaginatedTaskResponse represents a page of tasks with navigation links
type PaginatedTaskResponse struct {
	Items []TaskResponse    `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
	Links map[string]string `json:"links"`
}

// ToTaskResponse converts a Task model to TaskResponse with action links
func ToTaskResponse(task models.Task) TaskResponse {
	return TaskResponse{
		TaskID:      task.TaskID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		Links:       utils.ResourceLinks(task.TaskID),
	}
}

// ToPaginatedTaskResponse converts a page of tasks to PaginatedTaskResponse
func ToPaginatedTaskResponse(tasks []models.Task, total int64, params utils.PaginationParams, baseURL string) PaginatedTaskResponse {
	items := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskResponse(task)
	}

	return PaginatedTaskResponse{
		Items: items,
		Total: total,
		Page:  params.Page,
		Size:  params.Size,
		Links: utils.PaginationLinks(baseURL, params.Page, params.Size, int(total)),
	}
}

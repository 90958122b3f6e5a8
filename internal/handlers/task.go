package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mochizukey/task-rest-api/internal/dto"
	apierrors "github.com/mochizukey/task-rest-api/internal/errors"
	"github.com/mochizukey/task-rest-api/internal/models"
	"github.com/mochizukey/task-rest-api/internal/services"
	"github.com/mochizukey/task-rest-api/internal/utils"
	"github.com/mochizukey/task-rest-api/internal/worker"
)

type TaskHandler struct {
	service *services.TaskService
	worker  *worker.Worker

	// updateDelay simulates a slow update path when configured; zero disables it
	updateDelay time.Duration
}

func NewTaskHandler(service *services.TaskService, w *worker.Worker, updateDelay time.Duration) *TaskHandler {
	return &TaskHandler{
		service:     service,
		worker:      w,
		updateDelay: updateDelay,
	}
}

// CreateTaskRequest is the POST /tasks body
type CreateTaskRequest struct {
	Title       string              `json:"title" binding:"required"`
	UserID      uint64              `json:"user_id" binding:"required"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	DueDate     *time.Time          `json:"due_date"`
}

// UpdateTaskRequest is the PUT /tasks/:id body; absent fields keep their
// stored values. There is no status field: any update marks the task completed.
type UpdateTaskRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Priority    *models.TaskPriority `json:"priority"`
	DueDate     *time.Time           `json:"due_date"`
}

// CreateTask creates a new task and answers 201 with a Location header
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body", err.Error())
		return
	}

	task, err := h.service.CreateTask(services.CreateTaskInput{
		Title:       req.Title,
		UserID:      req.UserID,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		if isValidationError(err) {
			apierrors.UnprocessableEntity(c, err.Error(), nil)
			return
		}
		apierrors.InternalError(c, "Failed to create task")
		return
	}

	c.Header("Location", requestURL(c)+"/"+strconv.FormatUint(task.TaskID, 10))
	c.JSON(http.StatusCreated, dto.ToTaskResponse(*task))
}

// ListTasks returns a page of tasks with navigation links
func (h *TaskHandler) ListTasks(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var userID *uint64
	if userIDStr := c.Query("user_id"); userIDStr != "" {
		id, err := strconv.ParseUint(userIDStr, 10, 64)
		if err != nil {
			apierrors.UnprocessableEntity(c, "Invalid user_id", nil)
			return
		}
		userID = &id
	}

	tasks, total, err := h.service.ListTasks(services.ListTasksInput{
		UserID:   userID,
		Page:     params.Page,
		PageSize: params.Size,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaginatedTaskResponse(tasks, total, params, requestURL(c)))
}

// GetTask returns a single task by ID. A not-yet-persisted async-create
// placeholder answers 202 so immediate polls see progress instead of a 404.
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	if h.worker != nil && h.worker.Pending(taskID) {
		c.JSON(http.StatusAccepted, gin.H{
			"task_id": taskID,
			"detail":  "Task is still being processed",
		})
		return
	}

	task, err := h.service.GetTask(taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch task")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(*task))
}

// UpdateTask applies a partial update and marks the task completed
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body", err.Error())
		return
	}

	if h.updateDelay > 0 {
		time.Sleep(h.updateDelay)
	}

	task, err := h.service.UpdateTask(taskID, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		if isValidationError(err) {
			apierrors.UnprocessableEntity(c, err.Error(), nil)
			return
		}
		apierrors.InternalError(c, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(*task))
}

// DeleteTask removes a task and answers 204 with no body
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	if _, err := h.service.DeleteTask(taskID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete task")
		return
	}

	c.Status(http.StatusNoContent)
}

// AsyncCreateTask accepts a create request for deferred processing and
// answers 202 with a placeholder ID that can be polled right away
func (h *TaskHandler) AsyncCreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body", err.Error())
		return
	}

	placeholderID := h.worker.EnqueueCreate(services.CreateTaskInput{
		Title:       req.Title,
		UserID:      req.UserID,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})

	c.Header("Location", "/tasks/"+strconv.FormatUint(placeholderID, 10))
	c.JSON(http.StatusAccepted, gin.H{
		"task_id": placeholderID,
		"detail":  "Task accepted for processing",
	})
}

func parseTaskID(c *gin.Context) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Task not found")
		return 0, false
	}
	return taskID, true
}

func isValidationError(err error) bool {
	return errors.Is(err, services.ErrTitleRequired) ||
		errors.Is(err, services.ErrTitleEmpty) ||
		errors.Is(err, services.ErrInvalidStatus) ||
		errors.Is(err, services.ErrInvalidPriority)
}

// requestURL rebuilds the request URL without its query string, matching the
// base the pagination links are computed against.
func requestURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.Path
}

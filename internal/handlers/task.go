package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/todotrack/todo-api/internal/dto"
	apierrors "github.com/todotrack/todo-api/internal/errors"
	"github.com/todotrack/todo-api/internal/middleware"
	"github.com/todotrack/todo-api/internal/models"
	"github.com/todotrack/todo-api/internal/services"
)

// TaskHandler coordinates task HTTP handlers. Every route behind it runs
// after middleware.RequireAuth, so a missing user id is a wiring bug.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns the current user's tasks, optionally filtered by exact
// status and by an inclusive due-date upper bound (?datemax=).
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.NotFound(c, "Missing token")
		return
	}

	var input services.ListTasksInput

	if statusStr := c.Query("status"); statusStr != "" {
		status := models.TaskStatus(statusStr)
		input.Status = &status
	}

	if dateStr := c.Query("datemax"); dateStr != "" {
		datemax, err := parseDate(dateStr)
		if err != nil {
			apierrors.BadRequest(c, "Invalid datemax format")
			return
		}
		input.DueMax = &datemax
	}

	tasks, err := h.taskService.ListTasks(userID, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a single task by id. A task owned by someone else responds
// exactly like a missing one.
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.NotFound(c, "Missing token")
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(userID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) || errors.Is(err, services.ErrTaskForbidden) {
			apierrors.NotFound(c, "No tasks found")
			return
		}
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new PENDING task owned by the current user.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.NotFound(c, "Missing token")
		return
	}

	type CreateTaskRequest struct {
		Name    string     `json:"name" binding:"required"`
		DueDate *time.Time `json:"due_date"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(userID, services.CreateTaskInput{
		Name:    req.Name,
		DueDate: req.DueDate,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// UpdateTask applies a partial update. The raw JSON is inspected so that only
// fields present in the body are touched; "due_date": null clears the due date.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.NotFound(c, "Missing token")
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var input services.UpdateTaskInput

	if name, ok := rawReq["name"]; ok {
		nameStr, ok := name.(string)
		if !ok {
			apierrors.BadRequest(c, "Invalid name")
			return
		}
		input.Name = &nameStr
	}
	if status, ok := rawReq["status"]; ok {
		statusStr, ok := status.(string)
		if !ok {
			apierrors.BadRequest(c, "Invalid status")
			return
		}
		taskStatus := models.TaskStatus(statusStr)
		input.Status = &taskStatus
	}
	if rawDue, ok := rawReq["due_date"]; ok {
		if rawDue == nil {
			input.ClearDueDate = true
		} else if dueStr, ok := rawDue.(string); ok {
			parsed, err := parseDate(dueStr)
			if err != nil {
				apierrors.BadRequest(c, "Invalid due_date format")
				return
			}
			input.DueDate = &parsed
		} else {
			apierrors.BadRequest(c, "Invalid due_date")
			return
		}
	}

	task, err := h.taskService.UpdateTask(userID, taskID, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask soft-deletes a task owned by the current user.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.NotFound(c, "Missing token")
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(userID, taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// parseTaskID reads the :id route parameter, responding 400 on a malformed id.
func parseTaskID(c *gin.Context) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id format")
		return 0, false
	}
	return taskID, true
}

// parseDate accepts RFC3339 timestamps or bare YYYY-MM-DD dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoTasksFound):
		apierrors.NotFound(c, "No tasks found")
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrTaskForbidden):
		apierrors.Forbidden(c, "")
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrCannotSetDeleted):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNameTaken):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}

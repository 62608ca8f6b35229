// Package handler provides the HTTP handlers for the tasks feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"questify_backend/internal/api"
	"questify_backend/internal/feature/tasks/domain/entity"
	"questify_backend/internal/feature/tasks/transport/http/dto"
	"questify_backend/internal/feature/tasks/usecase"
)

// TaskUsecase defines the usecase interface for task operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TaskUsecase interface {
	List(ctx context.Context) ([]entity.Task, error)
	Create(ctx context.Context, task *entity.Task) error
	Update(ctx context.Context, id uint, patch usecase.TaskPatch) error
	Delete(ctx context.Context, id uint) error
	Finish(ctx context.Context, id uint) error
}

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	tasks TaskUsecase
}

// NewTaskHandler creates a new TaskHandler instance.
func NewTaskHandler(tasks TaskUsecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List handles GET /tasks. It returns every task, unfiltered.
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context())
	if err != nil {
		api.WriteError(c, err)
		return
	}
	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, dto.NewTaskResponse(t))
	}
	c.JSON(http.StatusOK, dto.ListTasksResponse{Tasks: out})
}

// Create handles POST /tasks.
// - Binds the request JSON to CreateTaskReq
// - Returns 400 with the violation list when validation fails
// - Returns 201 with the created task on success
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("task validation failed", "error", err, "remote_addr", c.ClientIP())
		api.WriteValidationError(c, err)
		return
	}

	task := req.ToEntity()
	if err := h.tasks.Create(c.Request.Context(), &task); err != nil {
		api.WriteError(c, err)
		return
	}
	slog.Info("task created", "task_id", task.ID, "group", task.Group)
	c.JSON(http.StatusCreated, dto.CreateTaskResponse{Task: dto.NewTaskResponse(task)})
}

// Update handles PATCH /tasks/:taskId.
// Fields absent from the body keep their current values; the response
// carries no body, so callers re-fetch if they need the updated resource.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	var req dto.EditTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("task validation failed", "error", err, "remote_addr", c.ClientIP())
		api.WriteValidationError(c, err)
		return
	}

	if err := h.tasks.Update(c.Request.Context(), id, req.Patch()); err != nil {
		h.writeTaskError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /tasks/:taskId.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), id); err != nil {
		h.writeTaskError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Finish handles POST /tasks/:taskId/finish.
// It forces progress to true regardless of any request body and is
// idempotent: finishing a finished task still returns 204.
func (h *TaskHandler) Finish(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	if err := h.tasks.Finish(c.Request.Context(), id); err != nil {
		h.writeTaskError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// taskID parses the :taskId path parameter.
// A non-numeric ID cannot match any task, so it is reported the same way
// as a missing one.
func (h *TaskHandler) taskID(c *gin.Context) (uint, bool) {
	raw := c.Param("taskId")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Message: taskNotFoundMessage(raw)})
		return 0, false
	}
	return uint(id), true
}

// writeTaskError renders a not-found with the task's ID in the message,
// delegating everything else to the central translation.
func (h *TaskHandler) writeTaskError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Message: taskNotFoundMessage(c.Param("taskId"))})
		return
	}
	api.WriteError(c, err)
}

func taskNotFoundMessage(id string) string {
	return fmt.Sprintf("Task with id: '%s' does not exist", id)
}

package dto

import (
	"time"

	"questify_backend/internal/feature/tasks/domain/entity"
)

// TaskResponse is the public projection of a task.
type TaskResponse struct {
	ID        uint      `json:"id"`
	Level     string    `json:"level"`
	Group     string    `json:"group"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	Progress  bool      `json:"progress"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewTaskResponse converts a task entity into its response form.
func NewTaskResponse(t entity.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Level:     t.Level,
		Group:     t.Group,
		Type:      t.Type,
		Name:      t.Name,
		Date:      t.Date,
		Progress:  t.Progress,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ListTasksResponse is the body for GET /tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// CreateTaskResponse is the body for a successful POST /tasks.
type CreateTaskResponse struct {
	Task TaskResponse `json:"task"`
}

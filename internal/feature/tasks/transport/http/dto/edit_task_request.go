package dto

import (
	"time"

	"questify_backend/internal/feature/tasks/usecase"
)

// EditTaskReq represents the request body for PATCH /tasks/:taskId.
// Every field is optional; a field that is present must satisfy the same
// constraints as on create. Absent fields are left unchanged (merge-patch).
type EditTaskReq struct {
	Level    *string    `json:"level" binding:"omitempty,oneof=Easy Normal Hard"`
	Group    *string    `json:"group" binding:"omitempty,oneof=HEALTH FAMILY STUFF LEARNING LEISURE WORK"`
	Type     *string    `json:"type" binding:"omitempty,oneof=TASK CHALLENGE"`
	Name     *string    `json:"name" binding:"omitempty,min=6"`
	Date     *time.Time `json:"date" binding:"omitempty"`
	Progress *bool      `json:"progress"`
}

// Patch converts the request into a merge-patch for the usecase layer.
func (r EditTaskReq) Patch() usecase.TaskPatch {
	return usecase.TaskPatch{
		Level:    r.Level,
		Group:    r.Group,
		Type:     r.Type,
		Name:     r.Name,
		Date:     r.Date,
		Progress: r.Progress,
	}
}

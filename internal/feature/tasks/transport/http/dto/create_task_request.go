// Package dto defines data transfer objects for the tasks feature's HTTP transport layer.
package dto

import (
	"time"

	"questify_backend/internal/feature/tasks/domain/entity"
)

// CreateTaskReq represents the request body for POST /tasks.
// Gin's binding tags enforce the task schema: enum membership for level,
// group and type, a minimum name length of 6, and a parsable date.
type CreateTaskReq struct {
	Level    string    `json:"level" binding:"required,oneof=Easy Normal Hard"`
	Group    string    `json:"group" binding:"required,oneof=HEALTH FAMILY STUFF LEARNING LEISURE WORK"`
	Type     string    `json:"type" binding:"omitempty,oneof=TASK CHALLENGE"`
	Name     string    `json:"name" binding:"required,min=6"`
	Date     time.Time `json:"date" binding:"required"`
	Progress bool      `json:"progress"`
}

// ToEntity converts the request into a task entity.
func (r CreateTaskReq) ToEntity() entity.Task {
	return entity.Task{
		Level:    r.Level,
		Group:    r.Group,
		Type:     r.Type,
		Name:     r.Name,
		Date:     r.Date,
		Progress: r.Progress,
	}
}

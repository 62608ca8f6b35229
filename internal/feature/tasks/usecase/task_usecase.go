// Package usecase implements the business logic for task operations.
package usecase

import (
	"context"
	"errors"
	"time"

	"questify_backend/internal/feature/tasks/domain/entity"
)

// ErrTaskNotFound is returned when no task matches the requested ID.
var ErrTaskNotFound = errors.New("task not found")

// TaskPatch carries a partial update. Nil fields are left unchanged,
// giving merge-patch rather than replace semantics.
type TaskPatch struct {
	Level    *string
	Group    *string
	Type     *string
	Name     *string
	Date     *time.Time
	Progress *bool
}

// TaskRepository abstracts the persistence layer for task entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TaskRepository interface {
	// FindAll retrieves every task, unfiltered and unpaginated.
	FindAll(ctx context.Context) ([]entity.Task, error)

	// Create persists a new task and fills in its ID and timestamps.
	Create(ctx context.Context, task *entity.Task) error

	// Update applies the non-nil fields of the patch to the task with the
	// given ID. It returns ErrTaskNotFound when no task matches.
	Update(ctx context.Context, id uint, patch TaskPatch) error

	// Delete removes the task with the given ID.
	// It returns ErrTaskNotFound when no task matches.
	Delete(ctx context.Context, id uint) error
}

// TaskUsecase provides the task CRUD operations.
type TaskUsecase struct {
	repo TaskRepository
}

// NewTaskUsecase creates a new TaskUsecase with the given repository.
func NewTaskUsecase(repo TaskRepository) *TaskUsecase {
	return &TaskUsecase{repo: repo}
}

// List returns all tasks in store order.
func (u *TaskUsecase) List(ctx context.Context) ([]entity.Task, error) {
	return u.repo.FindAll(ctx)
}

// Create persists a new task. The type defaults to TASK when unset.
func (u *TaskUsecase) Create(ctx context.Context, task *entity.Task) error {
	if task.Type == "" {
		task.Type = entity.TypeTask
	}
	return u.repo.Create(ctx, task)
}

// Update applies a merge-patch to the task with the given ID.
func (u *TaskUsecase) Update(ctx context.Context, id uint, patch TaskPatch) error {
	return u.repo.Update(ctx, id, patch)
}

// Delete removes the task with the given ID. Deletion is immediate and
// irreversible; there is no soft delete.
func (u *TaskUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}

// Finish marks the task as done. It is a fixed patch of progress=true,
// so finishing an already finished task succeeds and changes nothing.
func (u *TaskUsecase) Finish(ctx context.Context, id uint) error {
	done := true
	return u.repo.Update(ctx, id, TaskPatch{Progress: &done})
}

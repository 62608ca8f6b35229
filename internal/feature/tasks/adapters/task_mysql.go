// Package adapters provides the repository implementations for the tasks feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"questify_backend/internal/feature/tasks/domain/entity"
	"questify_backend/internal/feature/tasks/usecase"
)

// taskMySQL is the gorm-backed implementation of the TaskRepository interface.
type taskMySQL struct {
	db *gorm.DB
}

// Compile-time check that taskMySQL implements TaskRepository.
var _ usecase.TaskRepository = (*taskMySQL)(nil)

// NewTaskMySQL creates a new taskMySQL instance with the given gorm.DB connection.
func NewTaskMySQL(db *gorm.DB) *taskMySQL {
	return &taskMySQL{db: db}
}

// FindAll returns every task in store order.
func (r *taskMySQL) FindAll(ctx context.Context) ([]entity.Task, error) {
	var tasks []entity.Task
	if err := r.db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create adds a task to the database.
func (r *taskMySQL) Create(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// Update applies the non-nil patch fields to the task with the given ID.
// The existence check is separate from the update so that a patch that
// changes nothing (e.g. finishing a finished task) still succeeds.
func (r *taskMySQL) Update(ctx context.Context, id uint, patch usecase.TaskPatch) error {
	var task entity.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.ErrTaskNotFound
		}
		return err
	}

	fields := patchFields(patch)
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&task).Updates(fields).Error
}

// Delete removes the task with the given ID.
func (r *taskMySQL) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Task{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTaskNotFound
	}
	return nil
}

// patchFields converts a patch into the column map gorm expects.
// Column names live here so the storage naming (task_group for the
// reserved word "group") does not leak out of the adapter.
func patchFields(patch usecase.TaskPatch) map[string]interface{} {
	fields := map[string]interface{}{}
	if patch.Level != nil {
		fields["level"] = *patch.Level
	}
	if patch.Group != nil {
		fields["task_group"] = *patch.Group
	}
	if patch.Type != nil {
		fields["type"] = *patch.Type
	}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Date != nil {
		fields["date"] = *patch.Date
	}
	if patch.Progress != nil {
		fields["progress"] = *patch.Progress
	}
	return fields
}

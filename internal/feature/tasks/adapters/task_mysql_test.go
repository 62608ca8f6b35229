package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"questify_backend/internal/feature/tasks/domain/entity"
	"questify_backend/internal/feature/tasks/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Task{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// createTask inserts a task fixture and returns it.
func createTask(t *testing.T, repo *taskMySQL) *entity.Task {
	t.Helper()

	task := &entity.Task{
		Level: entity.LevelEasy,
		Group: entity.GroupWork,
		Type:  entity.TypeTask,
		Name:  "My easy work task",
		Date:  time.Date(2023, 7, 21, 17, 32, 28, 0, time.UTC),
	}
	require.NoError(t, repo.Create(context.Background(), task), "failed to create fixture")
	return task
}

func TestTaskMySQL_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskMySQL(db)

	task := createTask(t, repo)

	assert.NotZero(t, task.ID, "ID is not set")
	assert.False(t, task.CreatedAt.IsZero(), "CreatedAt is not set")
	assert.False(t, task.UpdatedAt.IsZero(), "UpdatedAt is not set")
	assert.False(t, task.Progress, "new task should not be in progress")
}

func TestTaskMySQL_FindAll(t *testing.T) {
	t.Run("returns every task", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskMySQL(db)

		createTask(t, repo)
		second := &entity.Task{
			Level: entity.LevelHard,
			Group: entity.GroupHealth,
			Type:  entity.TypeChallenge,
			Name:  "Morning run routine",
			Date:  time.Date(2023, 8, 1, 6, 0, 0, 0, time.UTC),
		}
		require.NoError(t, repo.Create(context.Background(), second))

		tasks, err := repo.FindAll(context.Background())

		require.NoError(t, err)
		assert.Len(t, tasks, 2)
	})

	t.Run("empty store yields empty slice", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskMySQL(db)

		tasks, err := repo.FindAll(context.Background())

		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}

func TestTaskMySQL_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update leaves other fields unchanged", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskMySQL(db)
		task := createTask(t, repo)

		done := true
		err := repo.Update(ctx, task.ID, usecase.TaskPatch{Progress: &done})
		require.NoError(t, err)

		var found entity.Task
		require.NoError(t, db.First(&found, task.ID).Error)
		assert.True(t, found.Progress, "progress was not updated")
		assert.Equal(t, task.Name, found.Name, "name must be unchanged")
		assert.Equal(t, task.Level, found.Level, "level must be unchanged")
		assert.Equal(t, task.Group, found.Group, "group must be unchanged")
		assert.True(t, task.Date.Equal(found.Date), "date must be unchanged")
	})

	t.Run("updates several fields at once", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskMySQL(db)
		task := createTask(t, repo)

		level := entity.LevelHard
		name := "A much harder task"
		err := repo.Update(ctx, task.ID, usecase.TaskPatch{Level: &level, Name: &name})
		require.NoError(t, err)

		var found entity.Task
		require.NoError(t, db.First(&found, task.ID).Error)
		assert.Equal(t, entity.LevelHard, found.Level)
		assert.Equal(t, "A much harder task", found.Name)
		assert.Equal(t, task.Group, found.Group, "group must be unchanged")
	})

	t.Run("empty patch succeeds for an existing task", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskMySQL(db)
		task := createTask(t, repo)

		err := repo.Update(ctx, task.ID, usecase.TaskPatch{})
		assert.NoError(t, err)
	})

	t.Run("missing task returns ErrTaskNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskMySQL(db)

		done := true
		err := repo.Update(ctx, 12345, usecase.TaskPatch{Progress: &done})
		assert.ErrorIs(t, err, usecase.ErrTaskNotFound)
	})

	t.Run("repeated finish patch is idempotent", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskMySQL(db)
		task := createTask(t, repo)

		done := true
		require.NoError(t, repo.Update(ctx, task.ID, usecase.TaskPatch{Progress: &done}))
		require.NoError(t, repo.Update(ctx, task.ID, usecase.TaskPatch{Progress: &done}))

		var found entity.Task
		require.NoError(t, db.First(&found, task.ID).Error)
		assert.True(t, found.Progress)
	})
}

func TestTaskMySQL_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes only the matching task", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskMySQL(db)
		doomed := createTask(t, repo)
		survivor := &entity.Task{
			Level: entity.LevelNormal,
			Group: entity.GroupLearning,
			Type:  entity.TypeTask,
			Name:  "Read one chapter",
			Date:  time.Date(2023, 9, 1, 12, 0, 0, 0, time.UTC),
		}
		require.NoError(t, repo.Create(ctx, survivor))

		err := repo.Delete(ctx, doomed.ID)
		require.NoError(t, err)

		tasks, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, survivor.ID, tasks[0].ID, "wrong task was deleted")
	})

	t.Run("missing task returns ErrTaskNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskMySQL(db)

		err := repo.Delete(ctx, 12345)
		assert.ErrorIs(t, err, usecase.ErrTaskNotFound)
	})

	t.Run("second delete of the same task fails", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaskMySQL(db)
		task := createTask(t, repo)

		require.NoError(t, repo.Delete(ctx, task.ID))
		err := repo.Delete(ctx, task.ID)
		assert.ErrorIs(t, err, usecase.ErrTaskNotFound)
	})
}

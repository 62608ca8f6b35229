// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	taskadapters "questify_backend/internal/feature/tasks/adapters"
	"questify_backend/internal/feature/tasks/usecase"
	"questify_backend/internal/platform/cache"
)

// taskListTTL bounds staleness when a cache invalidation is lost.
const taskListTTL = 5 * time.Minute

// NewTaskRepository creates a TaskRepository implementation.
// If Redis is available, the database repository is wrapped with a caching
// decorator for the task list. Otherwise the database repository is used
// directly.
func NewTaskRepository(rdb *redis.Client, db *gorm.DB) usecase.TaskRepository {
	repo := taskadapters.NewTaskMySQL(db)
	if rdb != nil {
		return cache.NewCachingTaskRepository(rdb, taskListTTL, repo, "tasks")
	}
	return repo
}

// Package entity defines the domain models for the tasks feature.
package entity

import "time"

// Task difficulty levels.
const (
	LevelEasy   = "Easy"
	LevelNormal = "Normal"
	LevelHard   = "Hard"
)

// Task groups.
const (
	GroupHealth   = "HEALTH"
	GroupFamily   = "FAMILY"
	GroupStuff    = "STUFF"
	GroupLearning = "LEARNING"
	GroupLeisure  = "LEISURE"
	GroupWork     = "WORK"
)

// Task types.
const (
	TypeTask      = "TASK"
	TypeChallenge = "CHALLENGE"
)

// Task represents a single tracked task or challenge.
// Tasks are not owned by a specific user; any authenticated user may
// read and mutate any task.
type Task struct {
	ID        uint      `gorm:"primaryKey"`
	Level     string    `gorm:"size:20;not null"`
	Group     string    `gorm:"size:20;not null;column:task_group"`
	Type      string    `gorm:"size:20;not null;default:TASK"`
	Name      string    `gorm:"size:255;not null"`
	Date      time.Time `gorm:"not null"`
	Progress  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

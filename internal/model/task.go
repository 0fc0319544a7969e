package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskPriority is a closed set of priority tiers. Values are stored
// lowercase; ordering between tiers goes through Ordinal, never through
// string comparison.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Ordinal ranks priority tiers for sorting. Unknown values rank below low.
func (p TaskPriority) Ordinal() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

func ParsePriority(s string) (TaskPriority, bool) {
	switch TaskPriority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return TaskPriority(s), true
	}
	return "", false
}

// TaskStatus has exactly one open state and one done state.
type TaskStatus string

const (
	StatusActive   TaskStatus = "active"
	StatusComplete TaskStatus = "complete"
)

func ParseStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(s) {
	case StatusActive, StatusComplete:
		return TaskStatus(s), true
	}
	return "", false
}

// Task carries OwnerID redundantly alongside CourseID so list queries can
// filter by owner without joining through courses.
type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	DueDate     *time.Time
	Priority    TaskPriority `gorm:"type:varchar(16);not null;default:'medium'"`
	Status      TaskStatus   `gorm:"type:varchar(16);not null;default:'active'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner  User   `gorm:"foreignKey:OwnerID"`
	Course Course `gorm:"foreignKey:CourseID"`
}

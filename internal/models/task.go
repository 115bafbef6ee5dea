package models

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo TaskStatus = "TODO"
	TaskStatusDone TaskStatus = "DONE"
)

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityLow    TaskPriority = "LOW"
)

// Weight returns the fixed ordinal used as a sort key: HIGH > MEDIUM > LOW.
// Unknown priorities weigh zero and therefore rank below LOW.
func (p TaskPriority) Weight() int {
	switch p {
	case TaskPriorityHigh:
		return 3
	case TaskPriorityMedium:
		return 2
	case TaskPriorityLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether p is one of the known priorities.
func (p TaskPriority) Valid() bool {
	return p.Weight() > 0
}

// Task is the single entity of the dashboard. ID and CreatedAt are assigned
// once by the store and never change afterwards. ROI is derived from Revenue
// and TimeTaken on demand and is deliberately not a column here.
type Task struct {
	ID        string       `gorm:"primarykey;size:36" json:"id"`
	Title     string       `gorm:"not null" json:"title"`
	Revenue   float64      `gorm:"not null" json:"revenue"`
	TimeTaken float64      `gorm:"not null" json:"time_taken"`
	Priority  TaskPriority `gorm:"type:varchar(10);not null;default:'MEDIUM'" json:"priority"`
	Status    TaskStatus   `gorm:"type:varchar(20);not null;default:'TODO'" json:"status"`
	Notes     string       `gorm:"type:text" json:"notes"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

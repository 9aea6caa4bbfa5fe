package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the completion state of a task
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// IsValid reports whether s is one of the known task statuses
func (s TaskStatus) IsValid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// Task is a todo item owned by exactly one project.
// Invariant: CompletedAt is non-nil iff Status is completed.
type Task struct {
	BaseModel
	ProjectID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_tasks_project_id" json:"projectId"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Priority    Priority   `gorm:"type:varchar(10);default:'medium'" json:"priority"`
	Status      TaskStatus `gorm:"type:varchar(20);default:'pending';index:idx_tasks_status" json:"status"`
	DueDate     *time.Time `gorm:"type:date" json:"dueDate"`
	CompletedAt *time.Time `json:"completedAt"`
	Project     *Project   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

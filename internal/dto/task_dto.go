package dto

import (
	"github.com/google/uuid"

	"memeboard-api/internal/domain"
)

// CreateTaskRequest creates a task under a project. DueDate is a plain
// date string, YYYY-MM-DD.
type CreateTaskRequest struct {
	ProjectID   uuid.UUID        `json:"projectId" binding:"required"`
	Title       string           `json:"title" binding:"required,min=1,max=255"`
	Description string           `json:"description"`
	Priority    *domain.Priority `json:"priority,omitempty"`
	DueDate     *string          `json:"dueDate,omitempty"`
}

// UpdateTaskRequest is the partial update for a task. Flipping status
// to completed stamps completedAt; flipping back clears it.
type UpdateTaskRequest struct {
	Title       *string            `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string            `json:"description,omitempty"`
	Priority    *domain.Priority   `json:"priority,omitempty"`
	Status      *domain.TaskStatus `json:"status,omitempty"`
	DueDate     *string            `json:"dueDate,omitempty"`
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"memeboard-api/internal/domain"
	"memeboard-api/internal/dto"
	"memeboard-api/internal/metrics"
	"memeboard-api/internal/repository"
	"memeboard-api/internal/response"
)

// TaskService defines the interface for task business logic
type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*domain.Task, error)
	GetTasks(ctx context.Context, projectID *uuid.UUID) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*domain.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

// taskServiceImpl is the implementation of TaskService
type taskServiceImpl struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, m *metrics.Metrics, logger *zap.Logger) TaskService {
	return &taskServiceImpl{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateTask creates a task under an existing project
func (s *taskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*domain.Task, error) {
	if _, err := s.projectRepo.FindByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("project not found")
		}
		return nil, err
	}

	priority := domain.PriorityMedium
	if req.Priority != nil {
		if !req.Priority.IsValid() {
			return nil, response.NewValidationError("invalid priority", string(*req.Priority))
		}
		priority = *req.Priority
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := parseDate(*req.DueDate)
		if err != nil {
			return nil, response.NewValidationError("invalid due date, expected YYYY-MM-DD", *req.DueDate)
		}
		dueDate = &parsed
	}

	task := &domain.Task{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      domain.TaskStatusPending,
		DueDate:     dueDate,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task", zap.String("project_id", req.ProjectID.String()), zap.Error(err))
		return nil, err
	}

	s.metrics.IncrementTaskCreated()
	if err := s.projectRepo.TouchActivity(ctx, req.ProjectID); err != nil {
		s.logger.Warn("failed to touch project activity", zap.String("project_id", req.ProjectID.String()), zap.Error(err))
	}

	return task, nil
}

// GetTasks returns tasks newest first, optionally scoped to a project
func (s *taskServiceImpl) GetTasks(ctx context.Context, projectID *uuid.UUID) ([]*domain.Task, error) {
	return s.taskRepo.FindAll(ctx, projectID)
}

// UpdateTask applies a partial update. Flipping the status to completed
// stamps completedAt; flipping back to pending clears it.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("task not found")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Priority != nil {
		if !req.Priority.IsValid() {
			return nil, response.NewValidationError("invalid priority", string(*req.Priority))
		}
		updates["priority"] = *req.Priority
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, response.NewValidationError("invalid status", string(*req.Status))
		}
		if *req.Status != task.Status {
			updates["status"] = *req.Status
			if *req.Status == domain.TaskStatusCompleted {
				updates["completed_at"] = time.Now().UTC()
			} else {
				updates["completed_at"] = nil
			}
		}
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			updates["due_date"] = nil
		} else {
			parsed, err := parseDate(*req.DueDate)
			if err != nil {
				return nil, response.NewValidationError("invalid due date, expected YYYY-MM-DD", *req.DueDate)
			}
			updates["due_date"] = parsed
		}
	}

	if len(updates) > 0 {
		if err := s.taskRepo.UpdateFields(ctx, id, updates); err != nil {
			s.logger.Error("failed to update task", zap.String("task_id", id.String()), zap.Error(err))
			return nil, err
		}
		if err := s.projectRepo.TouchActivity(ctx, task.ProjectID); err != nil {
			s.logger.Warn("failed to touch project activity", zap.String("project_id", task.ProjectID.String()), zap.Error(err))
		}
	}

	return s.taskRepo.FindByID(ctx, id)
}

// DeleteTask removes a task. Deleting a missing task succeeds.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return s.taskRepo.Delete(ctx, id)
}

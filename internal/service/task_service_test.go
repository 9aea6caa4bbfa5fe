package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"memeboard-api/internal/domain"
	"memeboard-api/internal/dto"
	"memeboard-api/internal/response"
)

func newTaskService(taskRepo *MockTaskRepository, projectRepo *MockProjectRepository) TaskService {
	return NewTaskService(taskRepo, projectRepo, newTestMetrics(), zap.NewNop())
}

func TestCreateTask_ProjectMissing(t *testing.T) {
	projectRepo := &MockProjectRepository{
		FindByIDFunc: func(ctx context.Context, _ uuid.UUID) (*domain.Project, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newTaskService(&MockTaskRepository{}, projectRepo)

	_, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		ProjectID: uuid.New(),
		Title:     "deploy token",
	})
	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
}

func TestCreateTask_DefaultsAndActivityTouch(t *testing.T) {
	projectID := uuid.New()
	touched := false

	projectRepo := &MockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
			return activeProject(id), nil
		},
		TouchActivityFunc: func(ctx context.Context, id uuid.UUID) error {
			touched = true
			return nil
		},
	}
	svc := newTaskService(&MockTaskRepository{}, projectRepo)

	task, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		ProjectID: projectID,
		Title:     "deploy token",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TaskStatusPending, task.Status)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Nil(t, task.CompletedAt)
	assert.True(t, touched)
}

func TestCreateTask_BadDueDate(t *testing.T) {
	projectRepo := &MockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
			return activeProject(id), nil
		},
	}
	svc := newTaskService(&MockTaskRepository{}, projectRepo)

	due := "next tuesday"
	_, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		ProjectID: uuid.New(),
		Title:     "deploy token",
		DueDate:   &due,
	})
	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeValidation, appErr.Code)
}

func TestUpdateTask_CompletionStampsTimestamp(t *testing.T) {
	id := uuid.New()
	var gotUpdates map[string]interface{}

	taskRepo := &MockTaskRepository{
		FindByIDFunc: func(ctx context.Context, _ uuid.UUID) (*domain.Task, error) {
			return &domain.Task{
				BaseModel: domain.BaseModel{ID: id},
				ProjectID: uuid.New(),
				Title:     "deploy token",
				Status:    domain.TaskStatusPending,
			}, nil
		},
		UpdateFieldsFunc: func(ctx context.Context, _ uuid.UUID, updates map[string]interface{}) error {
			gotUpdates = updates
			return nil
		},
	}
	svc := newTaskService(taskRepo, &MockProjectRepository{})

	status := domain.TaskStatusCompleted
	_, err := svc.UpdateTask(context.Background(), id, &dto.UpdateTaskRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, domain.TaskStatusCompleted, gotUpdates["status"])
	assert.NotNil(t, gotUpdates["completed_at"])
}

func TestUpdateTask_ReopeningClearsTimestamp(t *testing.T) {
	id := uuid.New()
	var gotUpdates map[string]interface{}

	taskRepo := &MockTaskRepository{
		FindByIDFunc: func(ctx context.Context, _ uuid.UUID) (*domain.Task, error) {
			return &domain.Task{
				BaseModel: domain.BaseModel{ID: id},
				ProjectID: uuid.New(),
				Title:     "deploy token",
				Status:    domain.TaskStatusCompleted,
			}, nil
		},
		UpdateFieldsFunc: func(ctx context.Context, _ uuid.UUID, updates map[string]interface{}) error {
			gotUpdates = updates
			return nil
		},
	}
	svc := newTaskService(taskRepo, &MockProjectRepository{})

	status := domain.TaskStatusPending
	_, err := svc.UpdateTask(context.Background(), id, &dto.UpdateTaskRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, domain.TaskStatusPending, gotUpdates["status"])
	val, present := gotUpdates["completed_at"]
	assert.True(t, present)
	assert.Nil(t, val)
}

func TestUpdateTask_SameStatusIsNoop(t *testing.T) {
	id := uuid.New()
	updateCalled := false

	taskRepo := &MockTaskRepository{
		FindByIDFunc: func(ctx context.Context, _ uuid.UUID) (*domain.Task, error) {
			return &domain.Task{
				BaseModel: domain.BaseModel{ID: id},
				ProjectID: uuid.New(),
				Status:    domain.TaskStatusPending,
			}, nil
		},
		UpdateFieldsFunc: func(ctx context.Context, _ uuid.UUID, updates map[string]interface{}) error {
			updateCalled = true
			return nil
		},
	}
	svc := newTaskService(taskRepo, &MockProjectRepository{})

	status := domain.TaskStatusPending
	_, err := svc.UpdateTask(context.Background(), id, &dto.UpdateTaskRequest{Status: &status})
	require.NoError(t, err)
	assert.False(t, updateCalled)
}

func TestDeleteTask_Idempotent(t *testing.T) {
	svc := newTaskService(&MockTaskRepository{}, &MockProjectRepository{})

	id := uuid.New()
	require.NoError(t, svc.DeleteTask(context.Background(), id))
	require.NoError(t, svc.DeleteTask(context.Background(), id))
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"memeboard-api/internal/domain"
	"memeboard-api/internal/metrics"
	"memeboard-api/internal/repository"
)

// newTestMetrics returns a metrics instance backed by a private
// registry so tests never collide on registration
func newTestMetrics() *metrics.Metrics {
	return metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	CreateWithSectionsFunc func(ctx context.Context, project *domain.Project) error
	FindAllFunc            func(ctx context.Context) ([]*domain.Project, error)
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindLaunchedFunc       func(ctx context.Context) ([]*domain.Project, error)
	UpdateFieldsFunc       func(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	UpdateIdeaFunc         func(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error
	UpdateBrandingFunc     func(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error
	UpdateWebsiteFunc      func(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error
	UpdateXFunc            func(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error
	UpdateLaunchFunc       func(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error
	ArchiveFunc            func(ctx context.Context, id uuid.UUID) error
	CompleteLaunchFunc     func(ctx context.Context, id uuid.UUID, launchUpdates map[string]interface{}, pnl *domain.ProjectPnl) error
	UpdatePnlFunc          func(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error
	ReplaceTagsFunc        func(ctx context.Context, projectID uuid.UUID, tags []domain.Tag) error
	FindTweetsFunc         func(ctx context.Context, projectID uuid.UUID) ([]*domain.DraftTweet, error)
	CreateTweetFunc        func(ctx context.Context, tweet *domain.DraftTweet) error
	DeleteTweetFunc        func(ctx context.Context, projectID, tweetID uuid.UUID) error
	TouchActivityFunc      func(ctx context.Context, id uuid.UUID) error
}

func (m *MockProjectRepository) CreateWithSections(ctx context.Context, project *domain.Project) error {
	if m.CreateWithSectionsFunc != nil {
		return m.CreateWithSectionsFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindAll(ctx context.Context) ([]*domain.Project, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindLaunched(ctx context.Context) ([]*domain.Project, error) {
	if m.FindLaunchedFunc != nil {
		return m.FindLaunchedFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjectRepository) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, updates)
	}
	return nil
}

func (m *MockProjectRepository) UpdateIdea(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error {
	if m.UpdateIdeaFunc != nil {
		return m.UpdateIdeaFunc(ctx, projectID, updates)
	}
	return nil
}

func (m *MockProjectRepository) UpdateBranding(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error {
	if m.UpdateBrandingFunc != nil {
		return m.UpdateBrandingFunc(ctx, projectID, updates)
	}
	return nil
}

func (m *MockProjectRepository) UpdateWebsite(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error {
	if m.UpdateWebsiteFunc != nil {
		return m.UpdateWebsiteFunc(ctx, projectID, updates)
	}
	return nil
}

func (m *MockProjectRepository) UpdateX(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error {
	if m.UpdateXFunc != nil {
		return m.UpdateXFunc(ctx, projectID, updates)
	}
	return nil
}

func (m *MockProjectRepository) UpdateLaunch(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error {
	if m.UpdateLaunchFunc != nil {
		return m.UpdateLaunchFunc(ctx, projectID, updates)
	}
	return nil
}

func (m *MockProjectRepository) Archive(ctx context.Context, id uuid.UUID) error {
	if m.ArchiveFunc != nil {
		return m.ArchiveFunc(ctx, id)
	}
	return nil
}

func (m *MockProjectRepository) CompleteLaunch(ctx context.Context, id uuid.UUID, launchUpdates map[string]interface{}, pnl *domain.ProjectPnl) error {
	if m.CompleteLaunchFunc != nil {
		return m.CompleteLaunchFunc(ctx, id, launchUpdates, pnl)
	}
	return nil
}

func (m *MockProjectRepository) UpdatePnl(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error {
	if m.UpdatePnlFunc != nil {
		return m.UpdatePnlFunc(ctx, projectID, updates)
	}
	return nil
}

func (m *MockProjectRepository) ReplaceTags(ctx context.Context, projectID uuid.UUID, tags []domain.Tag) error {
	if m.ReplaceTagsFunc != nil {
		return m.ReplaceTagsFunc(ctx, projectID, tags)
	}
	return nil
}

func (m *MockProjectRepository) FindTweets(ctx context.Context, projectID uuid.UUID) ([]*domain.DraftTweet, error) {
	if m.FindTweetsFunc != nil {
		return m.FindTweetsFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockProjectRepository) CreateTweet(ctx context.Context, tweet *domain.DraftTweet) error {
	if m.CreateTweetFunc != nil {
		return m.CreateTweetFunc(ctx, tweet)
	}
	return nil
}

func (m *MockProjectRepository) DeleteTweet(ctx context.Context, projectID, tweetID uuid.UUID) error {
	if m.DeleteTweetFunc != nil {
		return m.DeleteTweetFunc(ctx, projectID, tweetID)
	}
	return nil
}

func (m *MockProjectRepository) TouchActivity(ctx context.Context, id uuid.UUID) error {
	if m.TouchActivityFunc != nil {
		return m.TouchActivityFunc(ctx, id)
	}
	return nil
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	CreateFunc       func(ctx context.Context, task *domain.Task) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindAllFunc      func(ctx context.Context, projectID *uuid.UUID) ([]*domain.Task, error)
	UpdateFieldsFunc func(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindAll(ctx context.Context, projectID *uuid.UUID) ([]*domain.Task, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockTaskRepository) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, updates)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockMediaRepository is a mock implementation of MediaRepository
type MockMediaRepository struct {
	CreateFunc                     func(ctx context.Context, media *domain.Media) error
	UpdateFunc                     func(ctx context.Context, media *domain.Media) error
	FindByIDFunc                   func(ctx context.Context, id uuid.UUID) (*domain.Media, error)
	FindAllFunc                    func(ctx context.Context, filter repository.MediaFilter) ([]*domain.Media, error)
	DeleteFunc                     func(ctx context.Context, id uuid.UUID) error
	FindExpiredDraftsFunc          func(ctx context.Context, olderThan time.Time) ([]*domain.Media, error)
	DeleteBatchFunc                func(ctx context.Context, ids []uuid.UUID) error
	FindAssetTypesByProjectIDsFunc func(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]map[domain.AssetType]bool, error)
}

func (m *MockMediaRepository) Create(ctx context.Context, media *domain.Media) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, media)
	}
	return nil
}

func (m *MockMediaRepository) Update(ctx context.Context, media *domain.Media) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, media)
	}
	return nil
}

func (m *MockMediaRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMediaRepository) FindAll(ctx context.Context, filter repository.MediaFilter) ([]*domain.Media, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockMediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockMediaRepository) FindExpiredDrafts(ctx context.Context, olderThan time.Time) ([]*domain.Media, error) {
	if m.FindExpiredDraftsFunc != nil {
		return m.FindExpiredDraftsFunc(ctx, olderThan)
	}
	return nil, nil
}

func (m *MockMediaRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	if m.DeleteBatchFunc != nil {
		return m.DeleteBatchFunc(ctx, ids)
	}
	return nil
}

func (m *MockMediaRepository) FindAssetTypesByProjectIDs(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]map[domain.AssetType]bool, error) {
	if m.FindAssetTypesByProjectIDsFunc != nil {
		return m.FindAssetTypesByProjectIDsFunc(ctx, projectIDs)
	}
	return map[uuid.UUID]map[domain.AssetType]bool{}, nil
}

// MockTagRepository is a mock implementation of TagRepository
type MockTagRepository struct {
	CreateFunc     func(ctx context.Context, tag *domain.Tag) error
	FindAllFunc    func(ctx context.Context) ([]*domain.Tag, error)
	FindByIDsFunc  func(ctx context.Context, ids []uuid.UUID) ([]domain.Tag, error)
	FindByNameFunc func(ctx context.Context, name string) (*domain.Tag, error)
}

func (m *MockTagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tag)
	}
	return nil
}

func (m *MockTagRepository) FindAll(ctx context.Context) ([]*domain.Tag, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockTagRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Tag, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockTagRepository) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

// MockStatsInvalidator records cache invalidations
type MockStatsInvalidator struct {
	Invalidations int
}

func (m *MockStatsInvalidator) Invalidate(ctx context.Context) {
	m.Invalidations++
}

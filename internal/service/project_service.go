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

// ProjectService defines the interface for project business logic
type ProjectService interface {
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProjects(ctx context.Context) ([]*dto.ProjectResponse, error)
	GetProject(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, id uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	ArchiveProject(ctx context.Context, id uuid.UUID) error
	CompleteLaunch(ctx context.Context, id uuid.UUID, req *dto.CompleteLaunchRequest) (*dto.ProjectResponse, error)
	UpdatePnl(ctx context.Context, id uuid.UUID, req *dto.UpdatePnlRequest) (*dto.ProjectResponse, error)
	ReplaceTags(ctx context.Context, id uuid.UUID, req *dto.UpdateProjectTagsRequest) (*dto.ProjectResponse, error)
	GetTweets(ctx context.Context, projectID uuid.UUID) ([]*domain.DraftTweet, error)
	CreateTweet(ctx context.Context, projectID uuid.UUID, req *dto.CreateTweetRequest) (*domain.DraftTweet, error)
	DeleteTweet(ctx context.Context, projectID, tweetID uuid.UUID) error
}

// projectServiceImpl is the implementation of ProjectService
type projectServiceImpl struct {
	projectRepo repository.ProjectRepository
	mediaRepo   repository.MediaRepository
	tagRepo     repository.TagRepository
	stats       StatsInvalidator
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, mediaRepo repository.MediaRepository, tagRepo repository.TagRepository, stats StatsInvalidator, m *metrics.Metrics, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		mediaRepo:   mediaRepo,
		tagRepo:     tagRepo,
		stats:       stats,
		metrics:     m,
		logger:      logger,
	}
}

// CreateProject creates a project with its five empty section records
func (s *projectServiceImpl) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	stage := domain.StageIdea
	if req.Stage != nil {
		if !req.Stage.IsValid() {
			return nil, response.NewValidationError("invalid stage", string(*req.Stage))
		}
		stage = *req.Stage
	}

	priority := domain.PriorityMedium
	if req.Priority != nil {
		if !req.Priority.IsValid() {
			return nil, response.NewValidationError("invalid priority", string(*req.Priority))
		}
		priority = *req.Priority
	}

	project := &domain.Project{
		Name:           req.Name,
		Stage:          stage,
		Status:         domain.StatusActive,
		Priority:       priority,
		LastActivityAt: time.Now().UTC(),
	}

	if err := s.projectRepo.CreateWithSections(ctx, project); err != nil {
		s.logger.Error("failed to create project", zap.Error(err))
		return nil, err
	}

	s.metrics.IncrementProjectCreated()
	s.logger.Info("project created",
		zap.String("project_id", project.ID.String()),
		zap.String("name", project.Name))

	return s.loadResponse(ctx, project.ID)
}

// GetProjects returns every project, most recently active first, with
// the derived dashboard fields attached
func (s *projectServiceImpl) GetProjects(ctx context.Context) ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to list projects", zap.Error(err))
		return nil, err
	}

	ids := make([]uuid.UUID, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	assetsByProject, err := s.mediaRepo.FindAssetTypesByProjectIDs(ctx, ids)
	if err != nil {
		s.logger.Error("failed to load media asset types", zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC()
	responses := make([]*dto.ProjectResponse, len(projects))
	for i, p := range projects {
		responses[i] = toProjectResponse(p, assetsByProject[p.ID], now)
	}
	return responses, nil
}

// GetProject returns one project with the derived dashboard fields
func (s *projectServiceImpl) GetProject(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	return s.loadResponse(ctx, id)
}

// ArchiveProject archives a project. Archiving an already archived or
// missing project succeeds without effect.
func (s *projectServiceImpl) ArchiveProject(ctx context.Context, id uuid.UUID) error {
	if err := s.projectRepo.Archive(ctx, id); err != nil {
		s.logger.Error("failed to archive project", zap.String("project_id", id.String()), zap.Error(err))
		return err
	}

	s.metrics.IncrementProjectArchived()
	s.stats.Invalidate(ctx)
	s.logger.Info("project archived", zap.String("project_id", id.String()))
	return nil
}

// ReplaceTags replaces the full tag set of a project
func (s *projectServiceImpl) ReplaceTags(ctx context.Context, id uuid.UUID, req *dto.UpdateProjectTagsRequest) (*dto.ProjectResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, id); err != nil {
		return nil, s.wrapNotFound(err, "project not found")
	}

	tagIDs := make([]uuid.UUID, 0, len(req.TagIDs))
	for _, raw := range req.TagIDs {
		tagID, err := uuid.Parse(raw)
		if err != nil {
			return nil, response.NewValidationError("invalid tag id", raw)
		}
		tagIDs = append(tagIDs, tagID)
	}

	tags, err := s.tagRepo.FindByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(tagIDs) {
		return nil, response.NewValidationError("one or more tags do not exist", "")
	}

	if err := s.projectRepo.ReplaceTags(ctx, id, tags); err != nil {
		s.logger.Error("failed to replace tags", zap.String("project_id", id.String()), zap.Error(err))
		return nil, err
	}
	if err := s.projectRepo.TouchActivity(ctx, id); err != nil {
		s.logger.Warn("failed to touch project activity", zap.String("project_id", id.String()), zap.Error(err))
	}

	return s.loadResponse(ctx, id)
}

// GetTweets returns a project's draft tweet queue
func (s *projectServiceImpl) GetTweets(ctx context.Context, projectID uuid.UUID) ([]*domain.DraftTweet, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, s.wrapNotFound(err, "project not found")
	}
	return s.projectRepo.FindTweets(ctx, projectID)
}

// CreateTweet appends a draft tweet to a project's queue
func (s *projectServiceImpl) CreateTweet(ctx context.Context, projectID uuid.UUID, req *dto.CreateTweetRequest) (*domain.DraftTweet, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, s.wrapNotFound(err, "project not found")
	}

	tweet := &domain.DraftTweet{
		ProjectID:  projectID,
		Content:    req.Content,
		OrderIndex: req.OrderIndex,
	}
	if err := s.projectRepo.CreateTweet(ctx, tweet); err != nil {
		s.logger.Error("failed to create draft tweet", zap.String("project_id", projectID.String()), zap.Error(err))
		return nil, err
	}
	if err := s.projectRepo.TouchActivity(ctx, projectID); err != nil {
		s.logger.Warn("failed to touch project activity", zap.String("project_id", projectID.String()), zap.Error(err))
	}
	return tweet, nil
}

// DeleteTweet removes a draft tweet. Deleting a missing tweet succeeds.
func (s *projectServiceImpl) DeleteTweet(ctx context.Context, projectID, tweetID uuid.UUID) error {
	return s.projectRepo.DeleteTweet(ctx, projectID, tweetID)
}

// loadResponse fetches a project and attaches the derived fields
func (s *projectServiceImpl) loadResponse(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrapNotFound(err, "project not found")
	}

	assetsByProject, err := s.mediaRepo.FindAssetTypesByProjectIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}

	return toProjectResponse(project, assetsByProject[id], time.Now().UTC()), nil
}

// wrapNotFound converts a gorm record-not-found into the service error
// vocabulary, passing everything else through
func (s *projectServiceImpl) wrapNotFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewNotFoundError(message)
	}
	return err
}

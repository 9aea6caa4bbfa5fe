package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"memeboard-api/internal/domain"
	"memeboard-api/internal/dto"
	"memeboard-api/internal/repository"
	"memeboard-api/internal/response"
)

// TagService defines the interface for tag business logic
type TagService interface {
	CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*domain.Tag, error)
	GetTags(ctx context.Context) ([]*domain.Tag, error)
}

// tagServiceImpl is the implementation of TagService
type tagServiceImpl struct {
	tagRepo repository.TagRepository
	logger  *zap.Logger
}

// NewTagService creates a new instance of TagService
func NewTagService(tagRepo repository.TagRepository, logger *zap.Logger) TagService {
	return &tagServiceImpl{tagRepo: tagRepo, logger: logger}
}

// CreateTag creates a tag. Tag names are unique.
func (s *tagServiceImpl) CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*domain.Tag, error) {
	if _, err := s.tagRepo.FindByName(ctx, req.Name); err == nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "tag already exists", req.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := &domain.Tag{Name: req.Name, Color: req.Color}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		s.logger.Error("failed to create tag", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return tag, nil
}

// GetTags returns all tags ordered by name
func (s *tagServiceImpl) GetTags(ctx context.Context) ([]*domain.Tag, error) {
	return s.tagRepo.FindAll(ctx)
}

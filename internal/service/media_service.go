package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"memeboard-api/internal/client"
	"memeboard-api/internal/domain"
	"memeboard-api/internal/dto"
	"memeboard-api/internal/metrics"
	"memeboard-api/internal/repository"
	"memeboard-api/internal/response"
)

// MediaService defines the interface for media business logic
type MediaService interface {
	GeneratePresignedURL(ctx context.Context, req *dto.PresignedURLRequest) (*dto.PresignedURLResponse, error)
	CreateMedia(ctx context.Context, req *dto.CreateMediaRequest) (*domain.Media, error)
	GetMedia(ctx context.Context, filter repository.MediaFilter) ([]*domain.Media, error)
	UpdateMedia(ctx context.Context, id uuid.UUID, req *dto.UpdateMediaRequest) (*domain.Media, error)
	DeleteMedia(ctx context.Context, id uuid.UUID) error
}

// mediaServiceImpl is the implementation of MediaService
type mediaServiceImpl struct {
	mediaRepo   repository.MediaRepository
	projectRepo repository.ProjectRepository
	s3Client    client.S3ClientInterface
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewMediaService creates a new instance of MediaService
func NewMediaService(mediaRepo repository.MediaRepository, projectRepo repository.ProjectRepository, s3Client client.S3ClientInterface, m *metrics.Metrics, logger *zap.Logger) MediaService {
	return &mediaServiceImpl{
		mediaRepo:   mediaRepo,
		projectRepo: projectRepo,
		s3Client:    s3Client,
		metrics:     m,
		logger:      logger,
	}
}

// GeneratePresignedURL hands out a direct-to-storage upload slot
func (s *mediaServiceImpl) GeneratePresignedURL(ctx context.Context, req *dto.PresignedURLRequest) (*dto.PresignedURLResponse, error) {
	uploadURL, fileKey, err := s.s3Client.GeneratePresignedUploadURL(ctx, req.FileName, req.ContentType)
	if err != nil {
		s.logger.Error("failed to generate presigned URL", zap.String("file_name", req.FileName), zap.Error(err))
		return nil, err
	}

	return &dto.PresignedURLResponse{
		UploadURL: uploadURL,
		FileKey:   fileKey,
		FileURL:   s.s3Client.GetFileURL(fileKey),
	}, nil
}

// CreateMedia registers an uploaded file. Media attached to a project
// is final immediately; unattached media stays draft until claimed or
// cleaned up.
func (s *mediaServiceImpl) CreateMedia(ctx context.Context, req *dto.CreateMediaRequest) (*domain.Media, error) {
	assetType := domain.AssetTypeOther
	if req.AssetType != nil {
		if !req.AssetType.IsValid() {
			return nil, response.NewValidationError("invalid asset type", string(*req.AssetType))
		}
		assetType = *req.AssetType
	}

	status := domain.MediaStatusDraft
	if req.ProjectID != nil {
		if _, err := s.projectRepo.FindByID(ctx, *req.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewNotFoundError("project not found")
			}
			return nil, err
		}
		status = domain.MediaStatusFinal
	}

	originalFilename := req.OriginalFilename
	if originalFilename == "" {
		originalFilename = req.Filename
	}

	media := &domain.Media{
		ProjectID:        req.ProjectID,
		Filename:         req.Filename,
		OriginalFilename: originalFilename,
		MimeType:         req.MimeType,
		FileSize:         req.FileSize,
		S3Key:            req.S3Key,
		S3URL:            s.s3Client.GetFileURL(req.S3Key),
		Width:            req.Width,
		Height:           req.Height,
		AssetType:        assetType,
		Status:           status,
		UsageTags:        datatypes.NewJSONSlice(req.UsageTags),
	}

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		s.logger.Error("failed to create media record", zap.String("s3_key", req.S3Key), zap.Error(err))
		return nil, err
	}

	s.metrics.IncrementMediaUploaded()
	if req.ProjectID != nil {
		if err := s.projectRepo.TouchActivity(ctx, *req.ProjectID); err != nil {
			s.logger.Warn("failed to touch project activity", zap.String("project_id", req.ProjectID.String()), zap.Error(err))
		}
	}

	return media, nil
}

// GetMedia returns media records, optionally filtered by project
// and/or asset type
func (s *mediaServiceImpl) GetMedia(ctx context.Context, filter repository.MediaFilter) ([]*domain.Media, error) {
	if filter.AssetType != nil && !filter.AssetType.IsValid() {
		return nil, response.NewValidationError("invalid asset type", string(*filter.AssetType))
	}
	return s.mediaRepo.FindAll(ctx, filter)
}

// UpdateMedia applies a partial update. Attaching a draft to a project
// finalizes it.
func (s *mediaServiceImpl) UpdateMedia(ctx context.Context, id uuid.UUID, req *dto.UpdateMediaRequest) (*domain.Media, error) {
	media, err := s.mediaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("media not found")
		}
		return nil, err
	}

	if req.ProjectID != nil {
		if _, err := s.projectRepo.FindByID(ctx, *req.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewNotFoundError("project not found")
			}
			return nil, err
		}
		media.ProjectID = req.ProjectID
		media.Status = domain.MediaStatusFinal
	}
	if req.AssetType != nil {
		if !req.AssetType.IsValid() {
			return nil, response.NewValidationError("invalid asset type", string(*req.AssetType))
		}
		media.AssetType = *req.AssetType
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, response.NewValidationError("invalid media status", string(*req.Status))
		}
		media.Status = *req.Status
	}
	if req.UsageTags != nil {
		media.UsageTags = datatypes.NewJSONSlice(*req.UsageTags)
	}

	if err := s.mediaRepo.Update(ctx, media); err != nil {
		s.logger.Error("failed to update media record", zap.String("media_id", id.String()), zap.Error(err))
		return nil, err
	}

	if media.ProjectID != nil {
		if err := s.projectRepo.TouchActivity(ctx, *media.ProjectID); err != nil {
			s.logger.Warn("failed to touch project activity", zap.String("project_id", media.ProjectID.String()), zap.Error(err))
		}
	}

	return media, nil
}

// DeleteMedia removes a media record and its stored file. Deleting a
// missing record succeeds. A storage deletion failure is logged, not
// surfaced; the cleanup job retries orphaned keys.
func (s *mediaServiceImpl) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	media, err := s.mediaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := s.s3Client.DeleteFile(ctx, media.S3Key); err != nil {
		s.logger.Warn("failed to delete file from storage", zap.String("s3_key", media.S3Key), zap.Error(err))
	}

	return s.mediaRepo.Delete(ctx, id)
}

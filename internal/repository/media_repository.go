package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"memeboard-api/internal/domain"
)

// MediaFilter narrows media listings
type MediaFilter struct {
	ProjectID *uuid.UUID
	AssetType *domain.AssetType
}

// MediaRepository defines the interface for media data access
type MediaRepository interface {
	Create(ctx context.Context, media *domain.Media) error
	Update(ctx context.Context, media *domain.Media) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Media, error)
	FindAll(ctx context.Context, filter MediaFilter) ([]*domain.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindExpiredDrafts(ctx context.Context, olderThan time.Time) ([]*domain.Media, error)
	DeleteBatch(ctx context.Context, ids []uuid.UUID) error
	FindAssetTypesByProjectIDs(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]map[domain.AssetType]bool, error)
}

// mediaRepositoryImpl is the GORM implementation of MediaRepository
type mediaRepositoryImpl struct {
	db *gorm.DB
}

// NewMediaRepository creates a new instance of MediaRepository
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepositoryImpl{db: db}
}

// Create creates a new media record
func (r *mediaRepositoryImpl) Create(ctx context.Context, media *domain.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

// Update saves the full media record
func (r *mediaRepositoryImpl) Update(ctx context.Context, media *domain.Media) error {
	return r.db.WithContext(ctx).Save(media).Error
}

// FindByID finds a media record by its ID
func (r *mediaRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	var media domain.Media
	if err := r.db.WithContext(ctx).First(&media, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

// FindAll returns media records newest first, filtered by project
// and/or asset type when requested
func (r *mediaRepositoryImpl) FindAll(ctx context.Context, filter MediaFilter) ([]*domain.Media, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.AssetType != nil {
		query = query.Where("asset_type = ?", *filter.AssetType)
	}

	var media []*domain.Media
	if err := query.Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

// Delete removes a media record. Deleting a missing id is not an error.
func (r *mediaRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Media{}, "id = ?", id).Error
}

// FindExpiredDrafts returns draft media not attached to any project
// and created before the cutoff
func (r *mediaRepositoryImpl) FindExpiredDrafts(ctx context.Context, olderThan time.Time) ([]*domain.Media, error) {
	var media []*domain.Media
	if err := r.db.WithContext(ctx).
		Where("status = ? AND project_id IS NULL AND created_at < ?", domain.MediaStatusDraft, olderThan).
		Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

// DeleteBatch removes a set of media records
func (r *mediaRepositoryImpl) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&domain.Media{}, "id IN ?", ids).Error
}

// FindAssetTypesByProjectIDs reports which asset types exist for each
// of the given projects, in one query. Used by the branding-stage
// completion derivation.
func (r *mediaRepositoryImpl) FindAssetTypesByProjectIDs(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]map[domain.AssetType]bool, error) {
	result := make(map[uuid.UUID]map[domain.AssetType]bool, len(projectIDs))
	if len(projectIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		ProjectID uuid.UUID
		AssetType domain.AssetType
	}
	if err := r.db.WithContext(ctx).
		Model(&domain.Media{}).
		Select("project_id", "asset_type").
		Where("project_id IN ?", projectIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		if result[row.ProjectID] == nil {
			result[row.ProjectID] = make(map[domain.AssetType]bool)
		}
		result[row.ProjectID][row.AssetType] = true
	}
	return result, nil
}

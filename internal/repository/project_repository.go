package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"memeboard-api/internal/domain"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	CreateWithSections(ctx context.Context, project *domain.Project) error
	FindAll(ctx context.Context) ([]*domain.Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindLaunched(ctx context.Context) ([]*domain.Project, error)
	UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	UpdateIdea(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error
	UpdateBranding(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error
	UpdateWebsite(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error
	UpdateX(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error
	UpdateLaunch(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error
	Archive(ctx context.Context, id uuid.UUID) error
	CompleteLaunch(ctx context.Context, id uuid.UUID, launchUpdates map[string]interface{}, pnl *domain.ProjectPnl) error
	UpdatePnl(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error
	ReplaceTags(ctx context.Context, projectID uuid.UUID, tags []domain.Tag) error
	FindTweets(ctx context.Context, projectID uuid.UUID) ([]*domain.DraftTweet, error)
	CreateTweet(ctx context.Context, tweet *domain.DraftTweet) error
	DeleteTweet(ctx context.Context, projectID, tweetID uuid.UUID) error
	TouchActivity(ctx context.Context, id uuid.UUID) error
}

// projectRepositoryImpl is the GORM implementation of ProjectRepository
type projectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// preloadAll attaches every relation the dashboard needs in one fetch
func (r *projectRepositoryImpl) preloadAll(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Idea").
		Preload("Branding").
		Preload("Website").
		Preload("X").
		Preload("Launch").
		Preload("Pnl").
		Preload("Tasks").
		Preload("Tags")
}

// CreateWithSections creates a project together with its five empty
// section records in a single transaction. A project without its
// sections must never be observable.
func (r *projectRepositoryImpl) CreateWithSections(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		sections := []interface{}{
			&domain.ProjectIdea{ProjectID: project.ID},
			&domain.ProjectBranding{ProjectID: project.ID},
			&domain.ProjectWebsite{ProjectID: project.ID},
			&domain.ProjectX{ProjectID: project.ID},
			&domain.ProjectLaunch{ProjectID: project.ID},
		}
		for _, section := range sections {
			if err := tx.Create(section).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindAll returns all projects with their relations, most recently
// active first
func (r *projectRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Project, error) {
	var projects []*domain.Project
	if err := r.preloadAll(r.db.WithContext(ctx)).
		Order("last_activity_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByID returns one project with its relations
func (r *projectRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	if err := r.preloadAll(r.db.WithContext(ctx)).
		First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindLaunched returns all launched projects with their Pnl and Launch
// records, for stats aggregation
func (r *projectRepositoryImpl) FindLaunched(ctx context.Context) ([]*domain.Project, error) {
	var projects []*domain.Project
	if err := r.db.WithContext(ctx).
		Preload("Pnl").
		Preload("Launch").
		Where("status = ?", domain.StatusLaunched).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateFields applies a partial update to the projects table and
// refreshes the activity timestamps
func (r *projectRepositoryImpl) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	now := time.Now().UTC()
	updates["updated_at"] = now
	updates["last_activity_at"] = now
	return r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *projectRepositoryImpl) updateSection(ctx context.Context, model interface{}, projectID uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(model).
		Where("project_id = ?", projectID).
		Updates(updates).Error
}

// UpdateIdea applies a partial update to a project's idea section
func (r *projectRepositoryImpl) UpdateIdea(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error {
	return r.updateSection(ctx, &domain.ProjectIdea{}, projectID, updates)
}

// UpdateBranding applies a partial update to a project's branding section
func (r *projectRepositoryImpl) UpdateBranding(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error {
	return r.updateSection(ctx, &domain.ProjectBranding{}, projectID, updates)
}

// UpdateWebsite applies a partial update to a project's website section
func (r *projectRepositoryImpl) UpdateWebsite(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error {
	return r.updateSection(ctx, &domain.ProjectWebsite{}, projectID, updates)
}

// UpdateX applies a partial update to a project's X section
func (r *projectRepositoryImpl) UpdateX(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error {
	return r.updateSection(ctx, &domain.ProjectX{}, projectID, updates)
}

// UpdateLaunch applies a partial update to a project's launch section
func (r *projectRepositoryImpl) UpdateLaunch(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error {
	return r.updateSection(ctx, &domain.ProjectLaunch{}, projectID, updates)
}

// Archive soft-deletes a project by flipping its status. Archiving an
// already archived project is a no-op.
func (r *projectRepositoryImpl) Archive(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     domain.StatusArchived,
			"updated_at": time.Now().UTC(),
		}).Error
}

// CompleteLaunch performs the three launch-completion writes in one
// transaction: project status flip, launch checklist update, and Pnl
// upsert. Either all three land or none do.
func (r *projectRepositoryImpl) CompleteLaunch(ctx context.Context, id uuid.UUID, launchUpdates map[string]interface{}, pnl *domain.ProjectPnl) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		result := tx.Model(&domain.Project{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":           domain.StatusLaunched,
				"stage":            domain.StageLaunch,
				"updated_at":       now,
				"last_activity_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		launchUpdates["updated_at"] = now
		if err := tx.Model(&domain.ProjectLaunch{}).
			Where("project_id = ?", id).
			Updates(launchUpdates).Error; err != nil {
			return err
		}

		var existing domain.ProjectPnl
		err := tx.Where("project_id = ?", id).First(&existing).Error
		switch {
		case err == nil:
			return tx.Model(&existing).Updates(map[string]interface{}{
				"initial_sol":       pnl.InitialSol,
				"current_value_sol": pnl.CurrentValueSol,
				"realized_sol":      pnl.RealizedSol,
				"notes":             pnl.Notes,
				"updated_at":        now,
			}).Error
		case err == gorm.ErrRecordNotFound:
			pnl.ProjectID = id
			return tx.Create(pnl).Error
		default:
			return err
		}
	})
}

// UpdatePnl applies a partial update to a project's PNL record
func (r *projectRepositoryImpl) UpdatePnl(ctx context.Context, projectID uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&domain.ProjectPnl{}).
		Where("project_id = ?", projectID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceTags replaces the full tag set of a project
func (r *projectRepositoryImpl) ReplaceTags(ctx context.Context, projectID uuid.UUID, tags []domain.Tag) error {
	project := domain.Project{BaseModel: domain.BaseModel{ID: projectID}}
	return r.db.WithContext(ctx).
		Model(&project).
		Association("Tags").
		Replace(tags)
}

// FindTweets returns a project's draft tweets in queue order
func (r *projectRepositoryImpl) FindTweets(ctx context.Context, projectID uuid.UUID) ([]*domain.DraftTweet, error) {
	var tweets []*domain.DraftTweet
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("order_index ASC, created_at ASC").
		Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}

// CreateTweet creates a draft tweet
func (r *projectRepositoryImpl) CreateTweet(ctx context.Context, tweet *domain.DraftTweet) error {
	return r.db.WithContext(ctx).Create(tweet).Error
}

// DeleteTweet removes a draft tweet. Deleting a missing tweet is not
// an error.
func (r *projectRepositoryImpl) DeleteTweet(ctx context.Context, projectID, tweetID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&domain.DraftTweet{}, "id = ?", tweetID).Error
}

// TouchActivity refreshes a project's lastActivityAt timestamp
func (r *projectRepositoryImpl) TouchActivity(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("id = ?", id).
		Update("last_activity_at", time.Now().UTC()).Error
}

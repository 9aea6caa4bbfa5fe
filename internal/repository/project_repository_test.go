package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"memeboard-api/internal/database"
	"memeboard-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err, "failed to open database")
	require.NoError(t, database.AutoMigrate(db), "failed to migrate")
	return db
}

func seedProject(t *testing.T, db *gorm.DB) *domain.Project {
	t.Helper()
	repo := NewProjectRepository(db)
	project := &domain.Project{
		Name:           "DogeFi",
		Stage:          domain.StageIdea,
		Status:         domain.StatusActive,
		Priority:       domain.PriorityMedium,
		LastActivityAt: time.Now().UTC(),
	}
	require.NoError(t, repo.CreateWithSections(context.Background(), project))
	return project
}

func TestProjectRepository_CreateWithSections(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	project := seedProject(t, db)

	found, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "DogeFi", found.Name)
	assert.NotNil(t, found.Idea)
	assert.NotNil(t, found.Branding)
	assert.NotNil(t, found.Website)
	assert.NotNil(t, found.X)
	assert.NotNil(t, found.Launch)
	assert.Nil(t, found.Pnl, "no pnl before launch")

	var count int64
	db.Model(&domain.ProjectIdea{}).Where("project_id = ?", project.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestProjectRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectRepository_CompleteLaunch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	project := seedProject(t, db)

	launchUpdates := map[string]interface{}{
		"ticker":          "DOGE",
		"token_deployed":  true,
		"liquidity_added": true,
		"site_live":       true,
		"x_live":          true,
		"tg_live":         true,
	}
	pnl := &domain.ProjectPnl{
		InitialSol:      decimal.NewFromInt(10),
		CurrentValueSol: decimal.NewFromInt(25),
		RealizedSol:     decimal.NewFromInt(5),
	}
	require.NoError(t, repo.CompleteLaunch(ctx, project.ID, launchUpdates, pnl))

	found, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLaunched, found.Status)
	assert.Equal(t, domain.StageLaunch, found.Stage)
	assert.Equal(t, "DOGE", found.Launch.Ticker)
	assert.True(t, found.Launch.TokenDeployed)
	assert.True(t, found.Launch.TgLive)
	require.NotNil(t, found.Pnl)
	assert.True(t, found.Pnl.InitialSol.Equal(decimal.NewFromInt(10)))

	// Re-running upserts the existing pnl row instead of duplicating it
	pnl2 := &domain.ProjectPnl{
		InitialSol:      decimal.NewFromInt(10),
		CurrentValueSol: decimal.NewFromInt(40),
	}
	require.NoError(t, repo.CompleteLaunch(ctx, project.ID, map[string]interface{}{"ticker": "DOGE"}, pnl2))

	var count int64
	db.Model(&domain.ProjectPnl{}).Where("project_id = ?", project.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	found, err = repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.True(t, found.Pnl.CurrentValueSol.Equal(decimal.NewFromInt(40)))
}

func TestProjectRepository_CompleteLaunch_RollsBackOnPnlFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	project := seedProject(t, db)

	// Make the final write of the transaction fail: the status flip and
	// checklist update must not survive it.
	err := db.Callback().Create().Before("gorm:create").Register("fail_pnl_insert", func(tx *gorm.DB) {
		if tx.Statement.Table == "project_pnl" {
			tx.AddError(errors.New("pnl insert rejected"))
		}
	})
	require.NoError(t, err)

	launchErr := repo.CompleteLaunch(ctx, project.ID, map[string]interface{}{
		"ticker":         "DOGE",
		"token_deployed": true,
	}, &domain.ProjectPnl{
		InitialSol:      decimal.NewFromInt(10),
		CurrentValueSol: decimal.NewFromInt(25),
	})
	require.Error(t, launchErr)

	found, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, found.Status)
	assert.Equal(t, domain.StageIdea, found.Stage)
	assert.Equal(t, "", found.Launch.Ticker)
	assert.False(t, found.Launch.TokenDeployed)
	assert.Nil(t, found.Pnl)
}

func TestProjectRepository_CompleteLaunch_MissingProject(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	err := repo.CompleteLaunch(context.Background(), uuid.New(), map[string]interface{}{"ticker": "X"}, &domain.ProjectPnl{})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectRepository_UpdatePnl_NoRecord(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	project := seedProject(t, db)

	err := repo.UpdatePnl(context.Background(), project.ID, map[string]interface{}{
		"current_value_sol": decimal.NewFromInt(50),
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectRepository_UpdateSection(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	project := seedProject(t, db)

	require.NoError(t, repo.UpdateIdea(ctx, project.ID, map[string]interface{}{
		"one_liner": "dog coin but faster",
	}))
	require.NoError(t, repo.UpdateWebsite(ctx, project.ID, map[string]interface{}{
		"landing_page_done": true,
	}))

	found, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "dog coin but faster", found.Idea.OneLiner)
	assert.True(t, found.Website.LandingPageDone)
	assert.Equal(t, "", found.Idea.Narrative, "untouched fields keep their zero value")
}

func TestProjectRepository_FindLaunched(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	active := seedProject(t, db)
	launched := seedProject(t, db)
	require.NoError(t, repo.CompleteLaunch(ctx, launched.ID, map[string]interface{}{"ticker": "DOGE"}, &domain.ProjectPnl{
		InitialSol:      decimal.NewFromInt(1),
		CurrentValueSol: decimal.NewFromInt(2),
	}))

	projects, err := repo.FindLaunched(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, launched.ID, projects[0].ID)
	assert.NotEqual(t, active.ID, projects[0].ID)
	require.NotNil(t, projects[0].Pnl)
}

func TestProjectRepository_ReplaceTags(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	tagRepo := NewTagRepository(db)
	ctx := context.Background()

	project := seedProject(t, db)

	solana := &domain.Tag{Name: "solana"}
	degen := &domain.Tag{Name: "degen"}
	require.NoError(t, tagRepo.Create(ctx, solana))
	require.NoError(t, tagRepo.Create(ctx, degen))

	require.NoError(t, repo.ReplaceTags(ctx, project.ID, []domain.Tag{*solana, *degen}))
	found, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, found.Tags, 2)

	require.NoError(t, repo.ReplaceTags(ctx, project.ID, []domain.Tag{*degen}))
	found, err = repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, found.Tags, 1)
	assert.Equal(t, "degen", found.Tags[0].Name)
}

func TestProjectRepository_TweetOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	project := seedProject(t, db)

	second := &domain.DraftTweet{ProjectID: project.ID, Content: "second", OrderIndex: 2}
	first := &domain.DraftTweet{ProjectID: project.ID, Content: "first", OrderIndex: 1}
	require.NoError(t, repo.CreateTweet(ctx, second))
	require.NoError(t, repo.CreateTweet(ctx, first))

	tweets, err := repo.FindTweets(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, tweets, 2)
	assert.Equal(t, "first", tweets[0].Content)
	assert.Equal(t, "second", tweets[1].Content)

	// Deleting twice is fine
	require.NoError(t, repo.DeleteTweet(ctx, project.ID, first.ID))
	require.NoError(t, repo.DeleteTweet(ctx, project.ID, first.ID))

	tweets, err = repo.FindTweets(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, tweets, 1)
}

func TestProjectRepository_TouchActivity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	project := seedProject(t, db)
	stale := time.Now().UTC().Add(-48 * time.Hour)
	db.Model(&domain.Project{}).Where("id = ?", project.ID).Update("last_activity_at", stale)

	require.NoError(t, repo.TouchActivity(ctx, project.ID))

	found, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.True(t, found.LastActivityAt.After(stale.Add(time.Hour)))
}

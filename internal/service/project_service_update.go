package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"memeboard-api/internal/dto"
	"memeboard-api/internal/response"
)

// UpdateProject applies a partial update across the project row and any
// of its section records. Absent fields are untouched. Stage moves are
// rejected once the project is launched or archived.
func (s *projectServiceImpl) UpdateProject(ctx context.Context, id uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrapNotFound(err, "project not found")
	}

	if req.IsEmpty() {
		return s.loadResponse(ctx, id)
	}

	if req.Stage != nil {
		if !req.Stage.IsValid() {
			return nil, response.NewValidationError("invalid stage", string(*req.Stage))
		}
		if project.Status.IsTerminal() && *req.Stage != project.Stage {
			return nil, response.NewAppError(response.ErrCodeConflict,
				"cannot move stage of a "+string(project.Status)+" project", "")
		}
	}
	if req.Priority != nil && !req.Priority.IsValid() {
		return nil, response.NewValidationError("invalid priority", string(*req.Priority))
	}

	updates := buildProjectUpdates(req)
	if err := s.projectRepo.UpdateFields(ctx, id, updates); err != nil {
		s.logger.Error("failed to update project", zap.String("project_id", id.String()), zap.Error(err))
		return nil, err
	}

	if err := s.applySectionUpdates(ctx, id, req); err != nil {
		return nil, err
	}

	// Section-only updates still count as activity
	if len(updates) == 0 {
		if err := s.projectRepo.TouchActivity(ctx, id); err != nil {
			s.logger.Warn("failed to touch project activity", zap.String("project_id", id.String()), zap.Error(err))
		}
	}

	return s.loadResponse(ctx, id)
}

func (s *projectServiceImpl) applySectionUpdates(ctx context.Context, id uuid.UUID, req *dto.UpdateProjectRequest) error {
	type sectionUpdate struct {
		updates map[string]interface{}
		apply   func(context.Context, uuid.UUID, map[string]interface{}) error
	}

	sections := []sectionUpdate{
		{buildIdeaUpdates(req.Idea), s.projectRepo.UpdateIdea},
		{buildBrandingUpdates(req.Branding), s.projectRepo.UpdateBranding},
		{buildWebsiteUpdates(req.Website), s.projectRepo.UpdateWebsite},
		{buildXUpdates(req.X), s.projectRepo.UpdateX},
	}
	launchUpdates, err := buildLaunchUpdates(req.Launch)
	if err != nil {
		return err
	}
	sections = append(sections, sectionUpdate{launchUpdates, s.projectRepo.UpdateLaunch})

	for _, section := range sections {
		if len(section.updates) == 0 {
			continue
		}
		if err := section.apply(ctx, id, section.updates); err != nil {
			s.logger.Error("failed to update project section", zap.String("project_id", id.String()), zap.Error(err))
			return err
		}
	}
	return nil
}

func buildProjectUpdates(req *dto.UpdateProjectRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Stage != nil {
		updates["stage"] = *req.Stage
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.WebsiteURL != nil {
		updates["website_url"] = *req.WebsiteURL
	}
	if req.XHandle != nil {
		updates["x_handle"] = *req.XHandle
	}
	if req.TelegramURL != nil {
		updates["telegram_url"] = *req.TelegramURL
	}
	if req.GithubURL != nil {
		updates["github_url"] = *req.GithubURL
	}
	return updates
}

func buildIdeaUpdates(req *dto.UpdateIdeaRequest) map[string]interface{} {
	if req == nil {
		return nil
	}
	updates := map[string]interface{}{}
	if req.OneLiner != nil {
		updates["one_liner"] = *req.OneLiner
	}
	if req.Narrative != nil {
		updates["narrative"] = *req.Narrative
	}
	if req.WhyExists != nil {
		updates["why_exists"] = *req.WhyExists
	}
	if req.WhyWins != nil {
		updates["why_wins"] = *req.WhyWins
	}
	if req.TargetAudience != nil {
		updates["target_audience"] = *req.TargetAudience
	}
	if req.ComparableProjects != nil {
		updates["comparable_projects"] = *req.ComparableProjects
	}
	return updates
}

func buildBrandingUpdates(req *dto.UpdateBrandingRequest) map[string]interface{} {
	if req == nil {
		return nil
	}
	updates := map[string]interface{}{}
	if req.ColorPalette != nil {
		updates["color_palette"] = datatypes.NewJSONSlice(*req.ColorPalette)
	}
	if req.PrimaryFont != nil {
		updates["primary_font"] = *req.PrimaryFont
	}
	if req.DisplayFont != nil {
		updates["display_font"] = *req.DisplayFont
	}
	if req.VibeTags != nil {
		updates["vibe_tags"] = datatypes.NewJSONSlice(*req.VibeTags)
	}
	return updates
}

func buildWebsiteUpdates(req *dto.UpdateWebsiteRequest) map[string]interface{} {
	if req == nil {
		return nil
	}
	updates := map[string]interface{}{}
	if req.WebsiteURL != nil {
		updates["website_url"] = *req.WebsiteURL
	}
	if req.RepoURL != nil {
		updates["repo_url"] = *req.RepoURL
	}
	if req.HostingNotes != nil {
		updates["hosting_notes"] = *req.HostingNotes
	}
	if req.LandingPageDone != nil {
		updates["landing_page_done"] = *req.LandingPageDone
	}
	if req.CopyWritten != nil {
		updates["copy_written"] = *req.CopyWritten
	}
	if req.MobileChecked != nil {
		updates["mobile_checked"] = *req.MobileChecked
	}
	if req.AnalyticsAdded != nil {
		updates["analytics_added"] = *req.AnalyticsAdded
	}
	return updates
}

func buildXUpdates(req *dto.UpdateXRequest) map[string]interface{} {
	if req == nil {
		return nil
	}
	updates := map[string]interface{}{}
	if req.Handle != nil {
		updates["handle"] = *req.Handle
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.PinnedTweetURL != nil {
		updates["pinned_tweet_url"] = *req.PinnedTweetURL
	}
	if req.SchedulingNotes != nil {
		updates["scheduling_notes"] = *req.SchedulingNotes
	}
	if req.BannerUploaded != nil {
		updates["banner_uploaded"] = *req.BannerUploaded
	}
	if req.LaunchThreadDrafted != nil {
		updates["launch_thread_drafted"] = *req.LaunchThreadDrafted
	}
	return updates
}

func buildLaunchUpdates(req *dto.UpdateLaunchRequest) (map[string]interface{}, error) {
	if req == nil {
		return nil, nil
	}
	updates := map[string]interface{}{}
	if req.PreLaunchNotes != nil {
		updates["pre_launch_notes"] = *req.PreLaunchNotes
	}
	if req.TokenDeployed != nil {
		updates["token_deployed"] = *req.TokenDeployed
	}
	if req.LiquidityAdded != nil {
		updates["liquidity_added"] = *req.LiquidityAdded
	}
	if req.SiteLive != nil {
		updates["site_live"] = *req.SiteLive
	}
	if req.XLive != nil {
		updates["x_live"] = *req.XLive
	}
	if req.TgLive != nil {
		updates["tg_live"] = *req.TgLive
	}
	if req.LaunchDate != nil {
		date, err := parseDate(*req.LaunchDate)
		if err != nil {
			return nil, response.NewValidationError("invalid launch date, expected YYYY-MM-DD", *req.LaunchDate)
		}
		updates["launch_date"] = date
	}
	if req.Chain != nil {
		updates["chain"] = *req.Chain
	}
	if req.Ticker != nil {
		updates["ticker"] = *req.Ticker
	}
	if req.ContractAddress != nil {
		updates["contract_address"] = *req.ContractAddress
	}
	return updates, nil
}

// parseDate parses a plain YYYY-MM-DD date string
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

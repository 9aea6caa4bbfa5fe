package service

import (
	"math"
	"time"

	"memeboard-api/internal/domain"
	"memeboard-api/internal/dto"
)

// hotWindow is how recently a project must have been touched to count
// as hot on the dashboard
const hotWindow = 24 * time.Hour

// stageCompletion derives the completion percentage of a project's
// current stage. Each stage has a fixed set of checks; the percentage
// is the share of checks satisfied, rounded to the nearest integer.
// Branding completion comes from uploaded media, so the caller passes
// the asset types present for the project.
func stageCompletion(p *domain.Project, assets map[domain.AssetType]bool) float64 {
	var done, total int

	switch p.Stage {
	case domain.StageIdea:
		total = 5
		if p.Idea != nil {
			fields := []string{
				p.Idea.OneLiner,
				p.Idea.Narrative,
				p.Idea.WhyExists,
				p.Idea.WhyWins,
				p.Idea.TargetAudience,
			}
			for _, f := range fields {
				if f != "" {
					done++
				}
			}
		}

	case domain.StageBranding:
		total = 2
		if assets[domain.AssetTypePFP] {
			done++
		}
		if assets[domain.AssetTypeBanner] {
			done++
		}

	case domain.StageWebsite:
		total = 4
		if p.Website != nil {
			checks := []bool{
				p.Website.LandingPageDone,
				p.Website.CopyWritten,
				p.Website.MobileChecked,
				p.Website.AnalyticsAdded,
			}
			for _, c := range checks {
				if c {
					done++
				}
			}
		}

	case domain.StageX:
		total = 4
		if p.X != nil {
			if p.X.Handle != "" {
				done++
			}
			if p.X.Bio != "" {
				done++
			}
			if p.X.BannerUploaded {
				done++
			}
			if p.X.LaunchThreadDrafted {
				done++
			}
		}

	case domain.StageLaunch:
		total = 5
		if p.Launch != nil {
			checks := []bool{
				p.Launch.TokenDeployed,
				p.Launch.LiquidityAdded,
				p.Launch.SiteLive,
				p.Launch.XLive,
				p.Launch.TgLive,
			}
			for _, c := range checks {
				if c {
					done++
				}
			}
		}

	default:
		return 0
	}

	return math.Round(float64(done) / float64(total) * 100)
}

// isHot reports whether the project saw activity inside the hot window
func isHot(p *domain.Project, now time.Time) bool {
	return p.Status == domain.StatusActive && now.Sub(p.LastActivityAt) < hotWindow
}

// toProjectResponse attaches the derived dashboard fields to a project
func toProjectResponse(p *domain.Project, assets map[domain.AssetType]bool, now time.Time) *dto.ProjectResponse {
	pending := 0
	for _, t := range p.Tasks {
		if t.Status == domain.TaskStatusPending {
			pending++
		}
	}

	return &dto.ProjectResponse{
		Project:              p,
		CompletionPercentage: stageCompletion(p, assets),
		PendingTaskCount:     pending,
		IsHot:                isHot(p, now),
	}
}

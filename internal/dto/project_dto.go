package dto

import (
	"memeboard-api/internal/domain"
)

// CreateProjectRequest represents the request to create a new project.
// Stage and priority fall back to their defaults when omitted.
type CreateProjectRequest struct {
	Name     string           `json:"name" binding:"required,min=1,max=100"`
	Stage    *domain.Stage    `json:"stage,omitempty"`
	Priority *domain.Priority `json:"priority,omitempty"`
}

// UpdateProjectRequest represents an explicit partial update. Only
// fields that are present in the request are written; each section has
// its own optional block so a PATCH can touch any mix of tables.
type UpdateProjectRequest struct {
	Name        *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Stage       *domain.Stage    `json:"stage,omitempty"`
	Priority    *domain.Priority `json:"priority,omitempty"`
	WebsiteURL  *string          `json:"websiteUrl,omitempty"`
	XHandle     *string          `json:"xHandle,omitempty"`
	TelegramURL *string          `json:"telegramUrl,omitempty"`
	GithubURL   *string          `json:"githubUrl,omitempty"`

	Idea     *UpdateIdeaRequest     `json:"idea,omitempty"`
	Branding *UpdateBrandingRequest `json:"branding,omitempty"`
	Website  *UpdateWebsiteRequest  `json:"website,omitempty"`
	X        *UpdateXRequest        `json:"x,omitempty"`
	Launch   *UpdateLaunchRequest   `json:"launch,omitempty"`
}

// IsEmpty reports whether the request carries no updates at all
func (r *UpdateProjectRequest) IsEmpty() bool {
	return r.Name == nil && r.Stage == nil && r.Priority == nil &&
		r.WebsiteURL == nil && r.XHandle == nil && r.TelegramURL == nil &&
		r.GithubURL == nil && r.Idea == nil && r.Branding == nil &&
		r.Website == nil && r.X == nil && r.Launch == nil
}

// UpdateIdeaRequest is the partial update for the idea section
type UpdateIdeaRequest struct {
	OneLiner           *string `json:"oneLiner,omitempty"`
	Narrative          *string `json:"narrative,omitempty"`
	WhyExists          *string `json:"whyExists,omitempty"`
	WhyWins            *string `json:"whyWins,omitempty"`
	TargetAudience     *string `json:"targetAudience,omitempty"`
	ComparableProjects *string `json:"comparableProjects,omitempty"`
}

// UpdateBrandingRequest is the partial update for the branding section
type UpdateBrandingRequest struct {
	ColorPalette *[]string `json:"colorPalette,omitempty"`
	PrimaryFont  *string   `json:"primaryFont,omitempty"`
	DisplayFont  *string   `json:"displayFont,omitempty"`
	VibeTags     *[]string `json:"vibeTags,omitempty"`
}

// UpdateWebsiteRequest is the partial update for the website section
type UpdateWebsiteRequest struct {
	WebsiteURL      *string `json:"websiteUrl,omitempty"`
	RepoURL         *string `json:"repoUrl,omitempty"`
	HostingNotes    *string `json:"hostingNotes,omitempty"`
	LandingPageDone *bool   `json:"landingPageDone,omitempty"`
	CopyWritten     *bool   `json:"copyWritten,omitempty"`
	MobileChecked   *bool   `json:"mobileChecked,omitempty"`
	AnalyticsAdded  *bool   `json:"analyticsAdded,omitempty"`
}

// UpdateXRequest is the partial update for the X section
type UpdateXRequest struct {
	Handle              *string `json:"handle,omitempty"`
	Bio                 *string `json:"bio,omitempty"`
	PinnedTweetURL      *string `json:"pinnedTweetUrl,omitempty"`
	SchedulingNotes     *string `json:"schedulingNotes,omitempty"`
	BannerUploaded      *bool   `json:"bannerUploaded,omitempty"`
	LaunchThreadDrafted *bool   `json:"launchThreadDrafted,omitempty"`
}

// UpdateLaunchRequest is the partial update for the launch section
type UpdateLaunchRequest struct {
	PreLaunchNotes  *string `json:"preLaunchNotes,omitempty"`
	TokenDeployed   *bool   `json:"tokenDeployed,omitempty"`
	LiquidityAdded  *bool   `json:"liquidityAdded,omitempty"`
	SiteLive        *bool   `json:"siteLive,omitempty"`
	XLive           *bool   `json:"xLive,omitempty"`
	TgLive          *bool   `json:"tgLive,omitempty"`
	LaunchDate      *string `json:"launchDate,omitempty"`
	Chain           *string `json:"chain,omitempty"`
	Ticker          *string `json:"ticker,omitempty"`
	ContractAddress *string `json:"contractAddress,omitempty"`
}

// ProjectResponse is the joined project record returned by every
// project endpoint, with the presentation-only derivations attached
type ProjectResponse struct {
	*domain.Project
	CompletionPercentage float64 `json:"completionPercentage"`
	PendingTaskCount     int     `json:"pendingTaskCount"`
	IsHot                bool    `json:"isHot"`
}

// UpdateProjectTagsRequest replaces the full tag set of a project
type UpdateProjectTagsRequest struct {
	TagIDs []string `json:"tagIds" binding:"omitempty,dive,uuid"`
}

// CreateTweetRequest creates a draft tweet under a project
type CreateTweetRequest struct {
	Content    string `json:"content" binding:"required"`
	OrderIndex int    `json:"orderIndex"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// The five section records are created together with their project and
// live for exactly as long as it does. Each holds the free-form content
// for one pipeline stage.

// ProjectIdea holds the idea-stage content for a project
type ProjectIdea struct {
	BaseModel
	ProjectID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_project_ideas_project_id" json:"projectId"`
	OneLiner           string    `gorm:"type:text" json:"oneLiner"`
	Narrative          string    `gorm:"type:text" json:"narrative"`
	WhyExists          string    `gorm:"type:text" json:"whyExists"`
	WhyWins            string    `gorm:"type:text" json:"whyWins"`
	TargetAudience     string    `gorm:"type:text" json:"targetAudience"`
	ComparableProjects string    `gorm:"type:text" json:"comparableProjects"`
}

// TableName specifies the table name for ProjectIdea
func (ProjectIdea) TableName() string {
	return "project_ideas"
}

// ProjectBranding holds the branding-stage content for a project
type ProjectBranding struct {
	BaseModel
	ProjectID    uuid.UUID                  `gorm:"type:uuid;not null;uniqueIndex:uq_project_branding_project_id" json:"projectId"`
	ColorPalette datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"colorPalette"`
	PrimaryFont  string                     `gorm:"type:varchar(100)" json:"primaryFont"`
	DisplayFont  string                     `gorm:"type:varchar(100)" json:"displayFont"`
	VibeTags     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"vibeTags"`
}

// TableName specifies the table name for ProjectBranding
func (ProjectBranding) TableName() string {
	return "project_branding"
}

// ProjectWebsite holds the website-stage content for a project
type ProjectWebsite struct {
	BaseModel
	ProjectID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_project_websites_project_id" json:"projectId"`
	WebsiteURL      string    `gorm:"type:varchar(500)" json:"websiteUrl"`
	RepoURL         string    `gorm:"type:varchar(500)" json:"repoUrl"`
	HostingNotes    string    `gorm:"type:text" json:"hostingNotes"`
	LandingPageDone bool      `gorm:"not null;default:false" json:"landingPageDone"`
	CopyWritten     bool      `gorm:"not null;default:false" json:"copyWritten"`
	MobileChecked   bool      `gorm:"not null;default:false" json:"mobileChecked"`
	AnalyticsAdded  bool      `gorm:"not null;default:false" json:"analyticsAdded"`
}

// TableName specifies the table name for ProjectWebsite
func (ProjectWebsite) TableName() string {
	return "project_websites"
}

// ProjectX holds the X (Twitter) stage content for a project
type ProjectX struct {
	BaseModel
	ProjectID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_project_x_project_id" json:"projectId"`
	Handle              string    `gorm:"type:varchar(100)" json:"handle"`
	Bio                 string    `gorm:"type:text" json:"bio"`
	PinnedTweetURL      string    `gorm:"type:varchar(500)" json:"pinnedTweetUrl"`
	SchedulingNotes     string    `gorm:"type:text" json:"schedulingNotes"`
	BannerUploaded      bool      `gorm:"not null;default:false" json:"bannerUploaded"`
	LaunchThreadDrafted bool      `gorm:"not null;default:false" json:"launchThreadDrafted"`
}

// TableName specifies the table name for ProjectX
func (ProjectX) TableName() string {
	return "project_x"
}

// ProjectLaunch holds the launch-stage checklist and token details
type ProjectLaunch struct {
	BaseModel
	ProjectID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_project_launches_project_id" json:"projectId"`
	PreLaunchNotes  string     `gorm:"type:text" json:"preLaunchNotes"`
	TokenDeployed   bool       `gorm:"not null;default:false" json:"tokenDeployed"`
	LiquidityAdded  bool       `gorm:"not null;default:false" json:"liquidityAdded"`
	SiteLive        bool       `gorm:"not null;default:false" json:"siteLive"`
	XLive           bool       `gorm:"not null;default:false" json:"xLive"`
	TgLive          bool       `gorm:"not null;default:false" json:"tgLive"`
	LaunchDate      *time.Time `gorm:"type:date" json:"launchDate"`
	Chain           string     `gorm:"type:varchar(20);default:'SOL'" json:"chain"`
	Ticker          string     `gorm:"type:varchar(20)" json:"ticker"`
	ContractAddress string     `gorm:"type:varchar(100)" json:"contractAddress"`
}

// TableName specifies the table name for ProjectLaunch
func (ProjectLaunch) TableName() string {
	return "project_launches"
}

// DraftTweet is a queued tweet drafted under a project's X section
type DraftTweet struct {
	BaseModel
	ProjectID  uuid.UUID `gorm:"type:uuid;not null;index:idx_draft_tweets_project_id" json:"projectId"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	OrderIndex int       `gorm:"not null;default:0" json:"orderIndex"`
}

// TableName specifies the table name for DraftTweet
func (DraftTweet) TableName() string {
	return "draft_tweets"
}

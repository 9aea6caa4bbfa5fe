package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stage represents the pipeline position of a project.
// It is an ordered position, not a gated state machine: any stage can
// be set from any other stage while the project is active.
type Stage string

const (
	StageIdea     Stage = "idea"
	StageBranding Stage = "branding"
	StageWebsite  Stage = "website"
	StageX        Stage = "x"
	StageLaunch   Stage = "launch"
)

// IsValid reports whether s is one of the known stages
func (s Stage) IsValid() bool {
	switch s {
	case StageIdea, StageBranding, StageWebsite, StageX, StageLaunch:
		return true
	}
	return false
}

// Status represents the lifecycle state of a project.
// launched and archived are terminal: no transition leaves either.
type Status string

const (
	StatusActive   Status = "active"
	StatusLaunched Status = "launched"
	StatusArchived Status = "archived"
)

// IsValid reports whether s is one of the known statuses
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusLaunched, StatusArchived:
		return true
	}
	return false
}

// IsTerminal reports whether the status blocks further stage/content edits
func (s Status) IsTerminal() bool {
	return s == StatusLaunched || s == StatusArchived
}

// Priority represents a project or task priority
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is one of the known priorities
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Project represents a meme-token project tracked through the
// idea → branding → website → x → launch pipeline
type Project struct {
	BaseModel
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	Stage          Stage     `gorm:"type:varchar(20);not null;default:'idea';index:idx_projects_stage" json:"stage"`
	Status         Status    `gorm:"type:varchar(20);not null;default:'active';index:idx_projects_status" json:"status"`
	Priority       Priority  `gorm:"type:varchar(10);default:'medium'" json:"priority"`
	WebsiteURL     string    `gorm:"type:varchar(500)" json:"websiteUrl"`
	XHandle        string    `gorm:"type:varchar(100)" json:"xHandle"`
	TelegramURL    string    `gorm:"type:varchar(500)" json:"telegramUrl"`
	GithubURL      string    `gorm:"type:varchar(500)" json:"githubUrl"`
	LastActivityAt time.Time `gorm:"not null;index:idx_projects_last_activity_at" json:"lastActivityAt"`

	Idea     *ProjectIdea     `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"idea,omitempty"`
	Branding *ProjectBranding `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"branding,omitempty"`
	Website  *ProjectWebsite  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"website,omitempty"`
	X        *ProjectX        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"x,omitempty"`
	Launch   *ProjectLaunch   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"launch,omitempty"`
	Pnl      *ProjectPnl      `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"pnl,omitempty"`
	Tasks    []Task           `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	Media    []Media          `gorm:"foreignKey:ProjectID" json:"media,omitempty"`
	Tags     []Tag            `gorm:"many2many:project_tags;constraint:OnDelete:CASCADE" json:"tags"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// Tag is a global label that can be attached to any number of projects
type Tag struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_tags_name" json:"name"`
	Color string    `gorm:"type:varchar(7);default:'#6B7280'" json:"color"`
}

// TableName specifies the table name for Tag
func (Tag) TableName() string {
	return "tags"
}

// BeforeCreate generates a UUID primary key when none is set
func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

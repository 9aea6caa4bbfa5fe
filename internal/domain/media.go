package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AssetType classifies an uploaded media asset
type AssetType string

const (
	AssetTypePFP    AssetType = "PFP"
	AssetTypeBanner AssetType = "Banner"
	AssetTypeMeme   AssetType = "Meme"
	AssetTypePromo  AssetType = "Promo"
	AssetTypeOther  AssetType = "Other"
)

// IsValid reports whether a is one of the known asset types
func (a AssetType) IsValid() bool {
	switch a {
	case AssetTypePFP, AssetTypeBanner, AssetTypeMeme, AssetTypePromo, AssetTypeOther:
		return true
	}
	return false
}

// MediaStatus represents the lifecycle of a media record
type MediaStatus string

const (
	MediaStatusDraft MediaStatus = "draft"
	MediaStatusFinal MediaStatus = "final"
)

// IsValid reports whether s is one of the known media statuses
func (s MediaStatus) IsValid() bool {
	switch s {
	case MediaStatusDraft, MediaStatusFinal:
		return true
	}
	return false
}

// Media stores the descriptor of a file that has already been uploaded
// to object storage. The service never performs the upload itself; it
// only persists what the upload flow reports back.
type Media struct {
	BaseModel
	ProjectID        *uuid.UUID                  `gorm:"type:uuid;index:idx_media_project_id;constraint:OnDelete:SET NULL" json:"projectId"`
	Filename         string                      `gorm:"type:varchar(255);not null" json:"filename"`
	OriginalFilename string                      `gorm:"type:varchar(255);not null" json:"originalFilename"`
	MimeType         string                      `gorm:"type:varchar(100);not null" json:"mimeType"`
	FileSize         int64                       `gorm:"not null" json:"fileSize"`
	S3Key            string                      `gorm:"type:varchar(500);not null" json:"s3Key"`
	S3URL            string                      `gorm:"type:varchar(1000);not null" json:"s3Url"`
	Width            *int                        `json:"width"`
	Height           *int                        `json:"height"`
	AssetType        AssetType                   `gorm:"type:varchar(50)" json:"assetType"`
	Status           MediaStatus                 `gorm:"type:varchar(20);default:'draft';index:idx_media_status" json:"status"`
	UsageTags        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"usageTags"`
	Notes            string                      `gorm:"type:text" json:"notes"`
}

// TableName specifies the table name for Media
func (Media) TableName() string {
	return "media"
}

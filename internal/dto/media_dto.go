package dto

import (
	"github.com/google/uuid"

	"memeboard-api/internal/domain"
)

// CreateMediaRequest registers an uploaded file. The file itself goes
// to object storage through a presigned URL first; this call records
// the metadata.
type CreateMediaRequest struct {
	Filename         string            `json:"filename" binding:"required"`
	OriginalFilename string            `json:"originalFilename"`
	MimeType         string            `json:"mimeType" binding:"required"`
	FileSize         int64             `json:"fileSize" binding:"required,gt=0"`
	S3Key            string            `json:"s3Key" binding:"required"`
	ProjectID        *uuid.UUID        `json:"projectId,omitempty"`
	AssetType        *domain.AssetType `json:"assetType,omitempty"`
	Width            *int              `json:"width,omitempty"`
	Height           *int              `json:"height,omitempty"`
	UsageTags        []string          `json:"usageTags,omitempty"`
}

// UpdateMediaRequest is the partial update for a media record
type UpdateMediaRequest struct {
	ProjectID *uuid.UUID          `json:"projectId,omitempty"`
	AssetType *domain.AssetType   `json:"assetType,omitempty"`
	Status    *domain.MediaStatus `json:"status,omitempty"`
	UsageTags *[]string           `json:"usageTags,omitempty"`
}

// PresignedURLRequest asks for a direct-to-storage upload slot
type PresignedURLRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// PresignedURLResponse carries the upload slot back to the client.
// The client PUTs the file to UploadURL, then registers the media
// record with FileKey.
type PresignedURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileKey   string `json:"fileKey"`
	FileURL   string `json:"fileUrl"`
}

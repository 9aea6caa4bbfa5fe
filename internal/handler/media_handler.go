package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"memeboard-api/internal/domain"
	"memeboard-api/internal/dto"
	"memeboard-api/internal/repository"
	"memeboard-api/internal/response"
	"memeboard-api/internal/service"
)

// MediaHandler serves the media endpoints
type MediaHandler struct {
	mediaService service.MediaService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// GeneratePresignedURL handles POST /media/presigned-url
func (h *MediaHandler) GeneratePresignedURL(c *gin.Context) {
	var req dto.PresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.mediaService.GeneratePresignedURL(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// CreateMedia handles POST /media
func (h *MediaHandler) CreateMedia(c *gin.Context) {
	var req dto.CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	media, err := h.mediaService.CreateMedia(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, media)
}

// GetMedia handles GET /media, optionally filtered by projectId and
// assetType
func (h *MediaHandler) GetMedia(c *gin.Context) {
	var filter repository.MediaFilter

	if raw := c.Query("projectId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid projectId")
			return
		}
		filter.ProjectID = &parsed
	}
	if raw := c.Query("assetType"); raw != "" {
		assetType := domain.AssetType(raw)
		filter.AssetType = &assetType
	}

	media, err := h.mediaService.GetMedia(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, media)
}

// UpdateMedia handles PATCH /media/:id
func (h *MediaHandler) UpdateMedia(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	media, err := h.mediaService.UpdateMedia(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, media)
}

// DeleteMedia handles DELETE /media/:id
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.mediaService.DeleteMedia(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

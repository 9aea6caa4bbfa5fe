package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"memeboard-api/internal/dto"
	"memeboard-api/internal/response"
	"memeboard-api/internal/service"
)

// TagHandler serves the tag endpoints
type TagHandler struct {
	tagService service.TagService
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// CreateTag handles POST /tags
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	tag, err := h.tagService.CreateTag(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, tag)
}

// GetTags handles GET /tags
func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.GetTags(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, tags)
}

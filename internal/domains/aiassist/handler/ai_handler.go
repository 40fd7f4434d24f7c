package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"scribverse-backend/internal/domains/aiassist"
	"scribverse-backend/internal/infrastructure/ai"
	"scribverse-backend/internal/shared/response"
	"scribverse-backend/pkg/logger"
)

type AIHandler struct {
	service aiassist.Service
}

func NewAIHandler(service aiassist.Service) *AIHandler {
	return &AIHandler{service: service}
}

// GetTopics handles GET /ai/get-topics.
func (h *AIHandler) GetTopics(c *gin.Context) {
	res, err := h.service.GetTopics(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// GenerateContent handles GET /ai/generate-content?title=.
func (h *AIHandler) GenerateContent(c *gin.Context) {
	res, err := h.service.GenerateContent(c.Request.Context(), c.Query("title"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *AIHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, aiassist.ErrMissingTitle):
		response.BadRequest(c, "title query parameter is required")
	case errors.Is(err, ai.ErrGeneratorUnavailable):
		logger.Error("ai generator error", err)
		response.UpstreamError(c, "content generator unavailable")
	default:
		logger.Error("ai handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}

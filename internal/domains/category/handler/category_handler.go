package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scribverse-backend/internal/domains/category"
	"scribverse-backend/internal/shared/response"
	"scribverse-backend/pkg/logger"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(service category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// ListAll handles GET /blog/categories.
func (h *CategoryHandler) ListAll(c *gin.Context) {
	categories, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		logger.Error("category handler error", err)
		response.InternalServerError(c, "internal server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

package handler

import (
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scribverse-backend/internal/domains/category"
	"scribverse-backend/internal/domains/post"
	"scribverse-backend/internal/shared/middleware"
	"scribverse-backend/internal/shared/response"
	"scribverse-backend/pkg/logger"
)

// maxUploadBytes caps the multipart form read; the image validator applies
// its own tighter limit on the decoded payload.
const maxUploadBytes = 8 << 20

// PostHandler maps HTTP requests to the post service. Stateless.
type PostHandler struct {
	service post.Service
}

func NewPostHandler(service post.Service) *PostHandler {
	return &PostHandler{service: service}
}

// ListPublished handles GET /blog/bulk.
func (h *PostHandler) ListPublished(c *gin.Context) {
	posts, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"blogs": posts})
}

// GetByID handles GET /blog/blogg/:id.
func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"blog": p})
}

// Create handles POST /blog/post.
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing identity")
		return
	}

	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res)
}

// Update handles PUT /blog/update.
func (h *PostHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing identity")
		return
	}

	var req post.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.Update(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// ListByCategory handles GET /blog/category/:slug.
func (h *PostHandler) ListByCategory(c *gin.Context) {
	posts, err := h.service.ListByCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"blogs": posts})
}

// Search handles GET /blog/search?q=.
func (h *PostHandler) Search(c *gin.Context) {
	posts, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"blogs": posts})
}

// UploadImage handles POST /blog/upload-image (multipart field "image").
func (h *PostHandler) UploadImage(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing identity")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		response.BadRequest(c, "image file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "unable to read image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		response.BadRequest(c, "unable to read image file")
		return
	}

	res, err := h.service.UploadImage(c.Request.Context(), userID, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res)
}

// handleError maps domain errors to HTTP responses. Unexpected errors are
// logged with their cause and surfaced as a sanitized 500.
func (h *PostHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.As(err, &validationErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", validationErrs)
	case errors.Is(err, post.ErrPostNotFound):
		response.NotFound(c, "blog not found")
	case errors.Is(err, category.ErrCategoryNotFound):
		response.NotFound(c, "category not found")
	case errors.Is(err, post.ErrNotPostAuthor):
		response.Forbidden(c, "you are not the author of this blog")
	case errors.Is(err, post.ErrEmptyQuery):
		response.BadRequest(c, "search query is required")
	case errors.Is(err, post.ErrInvalidImage):
		response.BadRequest(c, "invalid image file")
	default:
		logger.Error("post handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}

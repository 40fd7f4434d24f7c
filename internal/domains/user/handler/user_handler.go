package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"scribverse-backend/internal/domains/user"
	"scribverse-backend/internal/shared/middleware"
	"scribverse-backend/internal/shared/response"
	"scribverse-backend/pkg/logger"
)

// UserHandler maps HTTP requests to the user service. Stateless.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Signup handles POST /user/signup.
func (h *UserHandler) Signup(c *gin.Context) {
	var req user.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	token, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, token)
}

// Signin handles POST /user/signin.
func (h *UserHandler) Signin(c *gin.Context) {
	var req user.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	token, err := h.service.Signin(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, token)
}

// GetProfile handles GET /user/profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing identity")
		return
	}

	dto, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": dto})
}

// UpdateProfile handles PUT /user/update-profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "missing identity")
		return
	}

	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": dto})
}

// handleError maps domain errors to HTTP responses. Unexpected errors are
// logged with their cause and surfaced as a sanitized 500.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.As(err, &validationErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", validationErrs)
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.Conflict(c, "user with this email already exists")
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, "invalid email or password")
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, user.ErrNoFieldsToUpdate):
		response.BadRequest(c, "no valid fields to update")
	default:
		logger.Error("user handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}

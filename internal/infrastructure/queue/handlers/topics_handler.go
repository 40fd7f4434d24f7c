package handlers

import (
	"context"

	"github.com/hibiken/asynq"

	"scribverse-backend/internal/domains/aiassist"
	"scribverse-backend/pkg/logger"
)

// RefreshTopicsHandler re-fetches trending topics into the cache so API
// reads stay warm.
type RefreshTopicsHandler struct {
	service aiassist.Service
}

func NewRefreshTopicsHandler(service aiassist.Service) *RefreshTopicsHandler {
	return &RefreshTopicsHandler{service: service}
}

func (h *RefreshTopicsHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	if err := h.service.RefreshTopics(ctx); err != nil {
		logger.Error("refresh trending topics", err)
		return err
	}

	logger.Info("trending topics refreshed", nil)
	return nil
}

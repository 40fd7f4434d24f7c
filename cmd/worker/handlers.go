package main

import (
	"github.com/hibiken/asynq"

	"scribverse-backend/internal/infrastructure/queue/handlers"
	"scribverse-backend/internal/shared"
	"scribverse-backend/pkg/container"
)

// HandlerRegistry holds all background task handlers.
type HandlerRegistry struct {
	processImage  *handlers.ProcessImageHandler
	refreshTopics *handlers.RefreshTopicsHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		processImage:  handlers.NewProcessImageHandler(c.Storage, c.ImageProcessor),
		refreshTopics: handlers.NewRefreshTopicsHandler(c.AIService),
	}
}

// RegisterHandlers maps task types onto the mux.
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeProcessPostImage, h.processImage.ProcessTask)
	mux.HandleFunc(shared.TypeRefreshTrendingTopics, h.refreshTopics.ProcessTask)
}

package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/hibiken/asynq"

	postservice "scribverse-backend/internal/domains/post/service"
	"scribverse-backend/internal/infrastructure/storage"
	"scribverse-backend/pkg/logger"
)

// ProcessImageHandler downloads an uploaded original and stores resized
// JPEG variants next to it.
type ProcessImageHandler struct {
	storage   *storage.MinIOStorage
	processor *storage.ImageProcessor
}

func NewProcessImageHandler(s *storage.MinIOStorage, p *storage.ImageProcessor) *ProcessImageHandler {
	return &ProcessImageHandler{storage: s, processor: p}
}

func (h *ProcessImageHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p postservice.ProcessImagePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// Malformed payload will never succeed; drop it.
		return asynq.SkipRetry
	}

	data, err := h.storage.Download(ctx, p.Key)
	if err != nil {
		return fmt.Errorf("download original %s: %w", p.Key, err)
	}

	variants, err := h.processor.ProcessImage(data)
	if err != nil {
		logger.Error("decode uploaded image", err)
		return asynq.SkipRetry
	}

	dir := path.Dir(p.Key)
	for name, variant := range variants {
		key := fmt.Sprintf("%s/%s.jpg", dir, name)
		if _, err := h.storage.Upload(ctx, key, variant, "image/jpeg"); err != nil {
			return fmt.Errorf("upload variant %s: %w", key, err)
		}
	}

	logger.Info("generated image variants", map[string]interface{}{
		"key":      p.Key,
		"variants": len(variants),
	})
	return nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"scribverse-backend/internal/domains/aiassist"
	"scribverse-backend/internal/shared"
	"scribverse-backend/pkg/cache"
	"scribverse-backend/pkg/logger"
)

const (
	topicsTTL   = time.Hour
	topicsCount = 5

	topicsPrompt = "List %d trending blog topics for writers right now. " +
		"Respond with a JSON array of strings only, no prose."

	contentPrompt = "Write an engaging blog post for the title %q. " +
		"Use markdown formatting. Aim for 600-900 words. " +
		"Respond with the post body only, no preamble."
)

// Generator is the slice of the AI client the service needs.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type aiService struct {
	generator Generator
	cache     cache.Cache
}

func NewAIService(generator Generator, cache cache.Cache) aiassist.Service {
	return &aiService{generator: generator, cache: cache}
}

func (s *aiService) GetTopics(ctx context.Context) (*aiassist.TopicsResponse, error) {
	var cached []string
	if found, err := s.cache.Get(ctx, shared.CacheKeyTrendingTopics, &cached); err == nil && found {
		return &aiassist.TopicsResponse{Topics: cached}, nil
	}

	topics, err := s.fetchTopics(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, shared.CacheKeyTrendingTopics, topics, topicsTTL); err != nil {
		logger.Error("cache trending topics", err)
	}

	return &aiassist.TopicsResponse{Topics: topics}, nil
}

func (s *aiService) GenerateContent(ctx context.Context, title string) (*aiassist.ContentResponse, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, aiassist.ErrMissingTitle
	}

	content, err := s.generator.Complete(ctx, fmt.Sprintf(contentPrompt, title))
	if err != nil {
		return nil, err
	}

	return &aiassist.ContentResponse{
		Title:   title,
		Content: strings.TrimSpace(content),
	}, nil
}

func (s *aiService) RefreshTopics(ctx context.Context) error {
	topics, err := s.fetchTopics(ctx)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, shared.CacheKeyTrendingTopics, topics, topicsTTL)
}

// fetchTopics asks the generator for topics and parses its JSON reply.
// Models occasionally wrap the array in a markdown fence, so strip it.
func (s *aiService) fetchTopics(ctx context.Context) ([]string, error) {
	raw, err := s.generator.Complete(ctx, fmt.Sprintf(topicsPrompt, topicsCount))
	if err != nil {
		return nil, err
	}

	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var topics []string
	if err := json.Unmarshal([]byte(raw), &topics); err != nil {
		// Fall back to line splitting when the model ignores the format.
		for _, line := range strings.Split(raw, "\n") {
			line = strings.TrimSpace(strings.TrimLeft(line, "-*0123456789. "))
			if line != "" {
				topics = append(topics, line)
			}
		}
	}

	if len(topics) == 0 {
		return nil, fmt.Errorf("parse topics: empty generator reply")
	}
	if len(topics) > topicsCount {
		topics = topics[:topicsCount]
	}

	return topics, nil
}

package aiassist

import (
	"context"
)

// TopicsResponse carries suggested trending blog topics.
type TopicsResponse struct {
	Topics []string `json:"topics"`
}

// ContentResponse carries generated draft content for a title.
type ContentResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Service is the AI writing-assistant contract.
type Service interface {
	// GetTopics returns trending topic suggestions. Results are cached;
	// the worker refreshes the cache on a schedule.
	GetTopics(ctx context.Context) (*TopicsResponse, error)

	// GenerateContent drafts blog content for the given title. Returns
	// ErrMissingTitle when the title is blank.
	GenerateContent(ctx context.Context, title string) (*ContentResponse, error)

	// RefreshTopics fetches fresh topics from the generator and replaces
	// the cached set. Used by the scheduled worker task.
	RefreshTopics(ctx context.Context) error
}

package post

import (
	"context"

	"github.com/google/uuid"
)

// Service is the content lifecycle contract.
type Service interface {
	// ListPublished returns all published posts, newest first, with public
	// author fields and categories. No identity required.
	ListPublished(ctx context.Context) ([]Post, error)

	// GetByID returns the full post including extended author fields and
	// increments its view counter. Returns ErrPostNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// Create persists a new, immediately-published post owned by authorID.
	Create(ctx context.Context, authorID uuid.UUID, req CreatePostRequest) (*CreatePostResponse, error)

	// Update mutates an existing post. Returns ErrPostNotFound when absent
	// and ErrNotPostAuthor when callerID does not own the post; the stored
	// post is unchanged in both cases.
	Update(ctx context.Context, callerID uuid.UUID, req UpdatePostRequest) (*UpdatePostResponse, error)

	// ListByCategory returns published posts attached to the slug's
	// category. Returns category.ErrCategoryNotFound for unknown slugs.
	ListByCategory(ctx context.Context, slug string) ([]Post, error)

	// Search matches the query case-insensitively against title, content
	// and description of published posts. Returns ErrEmptyQuery for an
	// empty query; an empty result is a valid outcome.
	Search(ctx context.Context, query string) ([]Post, error)

	// UploadImage stores an image and enqueues variant generation.
	UploadImage(ctx context.Context, authorID uuid.UUID, data []byte, contentType string) (*UploadImageResponse, error)
}

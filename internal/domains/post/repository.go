package post

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for posts.
type Repository interface {
	// Create inserts the post and attaches its categories, creating
	// missing categories, all inside one transaction.
	Create(ctx context.Context, p *Post, categoryNames []string) error

	// Update rewrites the post row. An absent or empty categoryNames
	// leaves the category set alone; a non-empty one clears and
	// reattaches it. Runs in one transaction. Returns ErrPostNotFound
	// when the row is gone.
	Update(ctx context.Context, p *Post, categoryNames []string) error

	// FindByID loads the post with extended author fields and categories.
	// Returns ErrPostNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// IncrementViews atomically bumps the view counter and returns the
	// new value. Safe under concurrent reads.
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)

	// ListPublished returns published posts, newest first, with public
	// author fields and categories.
	ListPublished(ctx context.Context) ([]Post, error)

	// ListByCategorySlug returns published posts in the category.
	ListByCategorySlug(ctx context.Context, slug string) ([]Post, error)

	// Search returns published posts matching the query (case-insensitive
	// substring over title, content, description), newest first.
	Search(ctx context.Context, query string) ([]Post, error)
}

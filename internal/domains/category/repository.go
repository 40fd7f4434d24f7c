package category

import (
	"context"
)

// Repository is the data access contract for categories.
// Create-or-attach during post writes is owned by the post repository,
// which runs it inside the same transaction as the post itself.
type Repository interface {
	// ListAll returns every category with its attached post count.
	ListAll(ctx context.Context) ([]WithCount, error)

	// FindBySlug returns ErrCategoryNotFound for an unregistered slug.
	FindBySlug(ctx context.Context, slug string) (*Category, error)
}

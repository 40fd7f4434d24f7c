package category

import (
	"context"
)

// Service is the category read contract.
type Service interface {
	// ListAll returns every category with post counts, cached briefly.
	ListAll(ctx context.Context) ([]WithCount, error)
}

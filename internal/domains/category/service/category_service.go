package service

import (
	"context"
	"fmt"
	"time"

	"scribverse-backend/internal/domains/category"
	"scribverse-backend/internal/shared"
	"scribverse-backend/pkg/cache"
)

const listingTTL = time.Minute

type categoryService struct {
	repo  category.Repository
	cache cache.Cache
}

func NewCategoryService(repo category.Repository, cache cache.Cache) category.Service {
	return &categoryService{repo: repo, cache: cache}
}

func (s *categoryService) ListAll(ctx context.Context) ([]category.WithCount, error) {
	var cached []category.WithCount
	if found, err := s.cache.Get(ctx, shared.CacheKeyCategories, &cached); err == nil && found {
		return cached, nil
	}

	categories, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	// Post writes invalidate this key; the TTL bounds staleness either way.
	_ = s.cache.Set(ctx, shared.CacheKeyCategories, categories, listingTTL)

	return categories, nil
}

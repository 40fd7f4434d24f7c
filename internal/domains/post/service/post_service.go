package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"scribverse-backend/internal/domains/category"
	"scribverse-backend/internal/domains/post"
	"scribverse-backend/internal/shared"
	"scribverse-backend/pkg/logger"
)

// ImageStorage is the slice of the storage layer the post service needs.
type ImageStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ImageValidator rejects oversized or non-image uploads.
type ImageValidator interface {
	ValidateImage(data []byte) error
}

// TaskEnqueuer is the slice of the asynq client the service needs.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ProcessImagePayload is the asynq payload for image variant generation.
type ProcessImagePayload struct {
	Key string `json:"key"`
}

type postService struct {
	repo         post.Repository
	categoryRepo category.Repository
	storage      ImageStorage
	validator    ImageValidator
	queue        TaskEnqueuer
}

func NewPostService(
	repo post.Repository,
	categoryRepo category.Repository,
	storage ImageStorage,
	validator ImageValidator,
	queue TaskEnqueuer,
) post.Service {
	return &postService{
		repo:         repo,
		categoryRepo: categoryRepo,
		storage:      storage,
		validator:    validator,
		queue:        queue,
	}
}

func (s *postService) ListPublished(ctx context.Context) ([]post.Post, error) {
	posts, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published: %w", err)
	}
	return posts, nil
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Atomic server-side increment; concurrent reads cannot lose updates.
	views, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Views = views

	return p, nil
}

func (s *postService) Create(ctx context.Context, authorID uuid.UUID, req post.CreatePostRequest) (*post.CreatePostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &post.Post{
		ID:          uuid.New(),
		Title:       req.Title,
		Content:     req.Content,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		// No draft state: posts are published immediately.
		Published: true,
		ReadTime:  post.EstimateReadTime(req.Content),
		Views:     0,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p, req.Categories); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	return &post.CreatePostResponse{
		Message: "Blog created successfully",
		PostID:  p.ID,
	}, nil
}

func (s *postService) Update(ctx context.Context, callerID uuid.UUID, req post.UpdatePostRequest) (*post.UpdatePostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	// Ownership check before any write; rejection leaves the post intact.
	if existing.AuthorID != callerID {
		return nil, post.ErrNotPostAuthor
	}

	existing.Title = req.Title
	existing.Content = req.Content
	existing.Description = req.Description
	existing.ImageURL = req.ImageURL
	existing.ReadTime = post.EstimateReadTime(req.Content)
	existing.UpdatedAt = time.Now()

	// An explicitly-empty category list means "leave categories alone",
	// same as omitting the field.
	categories := req.Categories
	if len(categories) == 0 {
		categories = nil
	}

	if err := s.repo.Update(ctx, existing, categories); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	updated, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("reload post: %w", err)
	}

	return &post.UpdatePostResponse{
		Message: "Blog updated successfully",
		Post:    updated,
	}, nil
}

func (s *postService) ListByCategory(ctx context.Context, slug string) ([]post.Post, error) {
	// 404 for unregistered slugs, even when the category has no posts.
	if _, err := s.categoryRepo.FindBySlug(ctx, slug); err != nil {
		return nil, err
	}

	posts, err := s.repo.ListByCategorySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("list by category: %w", err)
	}
	return posts, nil
}

func (s *postService) Search(ctx context.Context, query string) ([]post.Post, error) {
	if strings.TrimSpace(query) == "" {
		return nil, post.ErrEmptyQuery
	}

	posts, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	return posts, nil
}

func (s *postService) UploadImage(ctx context.Context, authorID uuid.UUID, data []byte, contentType string) (*post.UploadImageResponse, error) {
	if err := s.validator.ValidateImage(data); err != nil {
		return nil, fmt.Errorf("%w: %v", post.ErrInvalidImage, err)
	}

	key := fmt.Sprintf("posts/%s/%s/original", authorID, uuid.New())
	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	// Variant generation is offloaded to the worker; enqueue failure is
	// non-fatal, the original is already stored.
	payload, err := json.Marshal(ProcessImagePayload{Key: key})
	if err == nil {
		task := asynq.NewTask(shared.TypeProcessPostImage, payload)
		if _, err := s.queue.EnqueueContext(ctx, task, asynq.Queue(shared.QueueImages)); err != nil {
			logger.Error("enqueue image processing", err)
		}
	}

	return &post.UploadImageResponse{ImageURL: url}, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scribverse-backend/internal/domains/category"
	"scribverse-backend/internal/domains/post"
	"scribverse-backend/internal/shared"
	"scribverse-backend/internal/shared/utils"
	"scribverse-backend/pkg/cache"
	"scribverse-backend/pkg/logger"
)

// postgresRepository implements post.Repository with cache-aside on the
// published listing.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) post.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) Create(ctx context.Context, p *post.Post, categoryNames []string) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO posts (
				id, title, content, description, image_url,
				published, read_time, views, author_id, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`
		_, err := tx.Exec(ctx, query,
			p.ID, p.Title, p.Content, p.Description, p.ImageURL,
			p.Published, p.ReadTime, p.Views, p.AuthorID, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert post: %w", err)
		}

		return r.attachCategories(ctx, tx, p.ID, categoryNames)
	})
	if err != nil {
		return err
	}

	r.invalidateListings(ctx)
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, p *post.Post, categoryNames []string) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			UPDATE posts
			SET title = $2, content = $3, description = $4, image_url = $5,
			    read_time = $6, updated_at = $7
			WHERE id = $1
		`
		tag, err := tx.Exec(ctx, query,
			p.ID, p.Title, p.Content, p.Description, p.ImageURL,
			p.ReadTime, p.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update post: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return post.ErrPostNotFound
		}

		// An absent or empty list leaves the category set alone; only a
		// non-empty list replaces it.
		if len(categoryNames) == 0 {
			return nil
		}

		// Wholesale replacement: clear then reattach.
		if _, err := tx.Exec(ctx, `DELETE FROM post_categories WHERE post_id = $1`, p.ID); err != nil {
			return fmt.Errorf("clear post categories: %w", err)
		}

		return r.attachCategories(ctx, tx, p.ID, categoryNames)
	})
	if err != nil {
		return err
	}

	r.invalidateListings(ctx)
	return nil
}

// attachCategories creates-or-attaches each named category inside the
// caller's transaction. The upsert is a single atomic statement, so two
// concurrent posts introducing the same new name cannot race into
// duplicates.
func (r *postgresRepository) attachCategories(ctx context.Context, tx pgx.Tx, postID uuid.UUID, names []string) error {
	for _, name := range names {
		slug := utils.GenerateSlug(name)

		var categoryID uuid.UUID
		err := tx.QueryRow(ctx, `
			INSERT INTO categories (id, name, slug)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, uuid.New(), name, slug).Scan(&categoryID)
		if err != nil {
			return fmt.Errorf("upsert category %q: %w", name, err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO post_categories (post_id, category_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, postID, categoryID)
		if err != nil {
			return fmt.Errorf("attach category %q: %w", name, err)
		}
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	query := `
		SELECT p.id, p.title, p.content, p.description, p.image_url,
		       p.published, p.read_time, p.views, p.created_at, p.updated_at,
		       p.author_id, u.name, u.avatar_url, u.email, u.bio
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	var p post.Post
	var author post.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Content, &p.Description, &p.ImageURL,
		&p.Published, &p.ReadTime, &p.Views, &p.CreatedAt, &p.UpdatedAt,
		&p.AuthorID, &author.Name, &author.AvatarURL, &author.Email, &author.Bio,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post by id: %w", err)
	}

	author.ID = p.AuthorID
	p.Author = &author

	categories, err := r.categoriesForPosts(ctx, []uuid.UUID{p.ID})
	if err != nil {
		return nil, err
	}
	p.Categories = categories[p.ID]
	if p.Categories == nil {
		p.Categories = []category.Category{}
	}

	return &p, nil
}

func (r *postgresRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	var views int
	err := r.pool.QueryRow(ctx,
		`UPDATE posts SET views = views + 1 WHERE id = $1 RETURNING views`, id,
	).Scan(&views)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, post.ErrPostNotFound
		}
		return 0, fmt.Errorf("increment views: %w", err)
	}
	return views, nil
}

const listColumns = `
	p.id, p.title, p.content, p.description, p.image_url,
	p.published, p.read_time, p.views, p.created_at, p.updated_at,
	p.author_id, u.name, u.avatar_url
`

func (r *postgresRepository) ListPublished(ctx context.Context) ([]post.Post, error) {
	var cached []post.Post
	if found, err := r.cache.Get(ctx, shared.CacheKeyPostsBulk, &cached); err == nil && found {
		return cached, nil
	}

	query := `
		SELECT ` + listColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.published = true
		ORDER BY p.created_at DESC
	`

	posts, err := r.queryPosts(ctx, query)
	if err != nil {
		return nil, err
	}

	// Short TTL; writes also invalidate explicitly.
	_ = r.cache.Set(ctx, shared.CacheKeyPostsBulk, posts, time.Minute)

	return posts, nil
}

func (r *postgresRepository) ListByCategorySlug(ctx context.Context, slug string) ([]post.Post, error) {
	query := `
		SELECT ` + listColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		JOIN post_categories pc ON pc.post_id = p.id
		JOIN categories c ON c.id = pc.category_id
		WHERE p.published = true AND c.slug = $1
		ORDER BY p.created_at DESC
	`
	return r.queryPosts(ctx, query, slug)
}

func (r *postgresRepository) Search(ctx context.Context, query string) ([]post.Post, error) {
	pattern := "%" + query + "%"
	sql := `
		SELECT ` + listColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.published = true
		  AND (p.title ILIKE $1 OR p.content ILIKE $1 OR p.description ILIKE $1)
		ORDER BY p.created_at DESC
	`
	return r.queryPosts(ctx, sql, pattern)
}

// queryPosts runs a listing query and hydrates each post's categories.
func (r *postgresRepository) queryPosts(ctx context.Context, query string, args ...interface{}) ([]post.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := []post.Post{}
	for rows.Next() {
		var p post.Post
		var author post.Author
		err := rows.Scan(
			&p.ID, &p.Title, &p.Content, &p.Description, &p.ImageURL,
			&p.Published, &p.ReadTime, &p.Views, &p.CreatedAt, &p.UpdatedAt,
			&p.AuthorID, &author.Name, &author.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		author.ID = p.AuthorID
		p.Author = &author
		p.Categories = []category.Category{}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	if len(posts) == 0 {
		return posts, nil
	}

	ids := make([]uuid.UUID, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}

	byPost, err := r.categoriesForPosts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if cats, ok := byPost[posts[i].ID]; ok {
			posts[i].Categories = cats
		}
	}

	return posts, nil
}

// categoriesForPosts loads categories for a set of posts in one query.
func (r *postgresRepository) categoriesForPosts(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID][]category.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT pc.post_id, c.id, c.name, c.slug
		FROM post_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.post_id = ANY($1)
		ORDER BY c.name
	`, postIDs)
	if err != nil {
		return nil, fmt.Errorf("query post categories: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]category.Category)
	for rows.Next() {
		var postID uuid.UUID
		var c category.Category
		if err := rows.Scan(&postID, &c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("scan post category: %w", err)
		}
		result[postID] = append(result[postID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post categories: %w", err)
	}

	return result, nil
}

// invalidateListings drops every cached listing after a write. Cache
// failures are logged but not surfaced; the TTL bounds staleness.
func (r *postgresRepository) invalidateListings(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, shared.CacheKeyListingsPattern); err != nil {
		logger.Error("invalidate listing caches", err)
	}
}

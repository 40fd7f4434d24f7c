package post

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"scribverse-backend/internal/domains/category"
)

// Post is the content entity.
type Post struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Content     string    `db:"content" json:"content"`
	Description *string   `db:"description" json:"description,omitempty"`
	ImageURL    *string   `db:"image_url" json:"image_url,omitempty"`

	Published bool `db:"published" json:"published"`
	ReadTime  int  `db:"read_time" json:"read_time"`
	Views     int  `db:"views" json:"views"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	AuthorID   uuid.UUID           `db:"author_id" json:"author_id"`
	Author     *Author             `db:"-" json:"author,omitempty"`
	Categories []category.Category `db:"-" json:"categories"`
}

// Author is the post's author projection. Email and Bio are populated only
// on the single-post view; listings carry the public fields.
type Author struct {
	ID        uuid.UUID `json:"id"`
	Name      *string   `json:"name,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
}

// wordsPerMinute is the assumed reading speed for the read-time estimate.
const wordsPerMinute = 200

// EstimateReadTime returns ceil(wordCount / 200) minutes.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

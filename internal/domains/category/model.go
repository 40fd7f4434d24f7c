package category

import (
	"github.com/google/uuid"
)

// Category is a flat label attached to posts. Categories are created
// implicitly the first time a post references their name and are never
// deleted.
type Category struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`
	Slug string    `db:"slug" json:"slug"`
}

// WithCount pairs a category with the number of posts attached to it,
// for the public category listing.
type WithCount struct {
	Category
	PostCount int `db:"post_count" json:"post_count"`
}

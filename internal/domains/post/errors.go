package post

import "errors"

// Repository-level errors
var (
	ErrPostNotFound = errors.New("post not found")
)

// Service-level errors
var (
	ErrNotPostAuthor = errors.New("caller is not the post author")
	ErrEmptyQuery    = errors.New("search query is required")
	ErrInvalidImage  = errors.New("invalid image upload")
)

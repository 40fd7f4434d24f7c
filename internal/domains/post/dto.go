package post

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreatePostRequest creates a post. Categories are attached by name;
// unknown names create the category on the fly.
type CreatePostRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Description *string  `json:"description,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 300),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Categories,
			validation.Each(validation.Required, validation.Length(1, 100)),
		),
	)
}

// UpdatePostRequest replaces the post's mutable fields. An absent or
// empty Categories list leaves the category set unchanged; a non-empty
// one replaces it wholesale.
type UpdatePostRequest struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Categories  []string  `json:"categories,omitempty"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID,
			validation.Required.Error("id is required"),
			validation.By(func(interface{}) error {
				if r.ID == uuid.Nil {
					return validation.NewError("validation_required", "id is required")
				}
				return nil
			}),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 300),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Categories,
			validation.Each(validation.Required, validation.Length(1, 100)),
		),
	)
}

// CreatePostResponse returns the new post id.
type CreatePostResponse struct {
	Message string    `json:"message"`
	PostID  uuid.UUID `json:"post_id"`
}

// UpdatePostResponse returns the updated post.
type UpdatePostResponse struct {
	Message string `json:"message"`
	Post    *Post  `json:"post"`
}

// UploadImageResponse returns the stored image URL.
type UploadImageResponse struct {
	ImageURL string `json:"image_url"`
}

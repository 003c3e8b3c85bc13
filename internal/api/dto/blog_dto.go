package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// CreateBlogPostRequest payload for admin article creation.
type CreateBlogPostRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsPublished *bool  `json:"isPublished"`
}

func (r CreateBlogPostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(3, 200)),
		validation.Field(&r.Content, validation.Required),
	)
}

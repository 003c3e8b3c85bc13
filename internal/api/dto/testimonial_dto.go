package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// CreateTestimonialRequest payload for user-submitted feedback.
type CreateTestimonialRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

func (r CreateTestimonialRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Content, validation.Required, validation.Length(10, 2000)),
	)
}

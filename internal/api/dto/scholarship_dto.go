package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// CreateScholarshipRequest payload for admin scholarship creation.
type CreateScholarshipRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Institution string    `json:"institution"`
	Country     string    `json:"country"`
	Amount      string    `json:"amount"`
	Deadline    time.Time `json:"deadline"`
	IsActive    *bool     `json:"isActive"`
}

func (r CreateScholarshipRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(3, 200)),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Institution, validation.Required, validation.Length(2, 200)),
		validation.Field(&r.Country, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Deadline, validation.Required),
	)
}

// UpdateScholarshipRequest payload for partial updates. Empty fields are
// left untouched.
type UpdateScholarshipRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Institution string     `json:"institution"`
	Country     string     `json:"country"`
	Amount      string     `json:"amount"`
	Deadline    *time.Time `json:"deadline"`
	IsActive    *bool      `json:"isActive"`
}

func (r UpdateScholarshipRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(3, 200)),
		validation.Field(&r.Institution, validation.Length(2, 200)),
		validation.Field(&r.Country, validation.Length(2, 100)),
	)
}

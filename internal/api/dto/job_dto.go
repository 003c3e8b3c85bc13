package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// CreateJobRequest payload for admin job creation.
type CreateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	IsActive    *bool  `json:"isActive"`
}

func (r CreateJobRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(3, 200)),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Company, validation.Required, validation.Length(2, 200)),
		validation.Field(&r.Location, validation.Required, validation.Length(2, 200)),
	)
}

// UpdateJobRequest payload for partial updates.
type UpdateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	IsActive    *bool  `json:"isActive"`
}

func (r UpdateJobRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(3, 200)),
		validation.Field(&r.Company, validation.Length(2, 200)),
		validation.Field(&r.Location, validation.Length(2, 200)),
	)
}

package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/spec-kit/opportunity-service/internal/domain"
)

// SubmitApplicationRequest payload for applying to an opportunity. Exactly
// one of the targets must be set; the service enforces that.
type SubmitApplicationRequest struct {
	ScholarshipID *string `json:"scholarshipId"`
	JobID         *string `json:"jobId"`
}

func (r SubmitApplicationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ScholarshipID, is.UUIDv4),
		validation.Field(&r.JobID, is.UUIDv4),
	)
}

// UpdateApplicationStatusRequest payload for admin review decisions.
type UpdateApplicationStatusRequest struct {
	Status domain.ApplicationStatus `json:"status"`
}

func (r UpdateApplicationStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required, validation.In(
			domain.ApplicationStatusPending,
			domain.ApplicationStatusReviewed,
			domain.ApplicationStatusAccepted,
			domain.ApplicationStatusRejected,
		)),
	)
}

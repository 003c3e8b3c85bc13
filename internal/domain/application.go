package domain

import "time"

// ApplicationStatus tracks the review lifecycle of an application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Application records a user applying to a scholarship or a job.
// Exactly one of ScholarshipID and JobID is set.
type Application struct {
	ID            string            `json:"id"`
	UserID        string            `json:"userId"`
	ScholarshipID *string           `json:"scholarshipId,omitempty"`
	JobID         *string           `json:"jobId,omitempty"`
	Status        ApplicationStatus `json:"status"`
	SubmittedAt   time.Time         `json:"submittedAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

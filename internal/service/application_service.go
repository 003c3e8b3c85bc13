package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/opportunity-service/internal/domain"
	"github.com/spec-kit/opportunity-service/internal/repository"
	apperrors "github.com/spec-kit/opportunity-service/pkg/util"
)

// ApplicationService coordinates user applications to opportunities.
type ApplicationService struct {
	applications repository.ApplicationRepository
	scholarships repository.ScholarshipRepository
	jobs         repository.JobRepository
}

// NewApplicationService builds the service.
func NewApplicationService(
	applications repository.ApplicationRepository,
	scholarships repository.ScholarshipRepository,
	jobs repository.JobRepository,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		scholarships: scholarships,
		jobs:         jobs,
	}
}

// ApplicationInput describes an application submission. Exactly one target
// must be set.
type ApplicationInput struct {
	ScholarshipID *string
	JobID         *string
}

// Submit records an application for the calling user after checking that the
// target exists.
func (s *ApplicationService) Submit(ctx context.Context, userID string, in ApplicationInput) (*domain.Application, error) {
	switch {
	case in.ScholarshipID != nil && in.JobID == nil:
		if _, err := s.scholarships.GetByID(ctx, *in.ScholarshipID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("scholarship")
			}
			return nil, err
		}
	case in.JobID != nil && in.ScholarshipID == nil:
		if _, err := s.jobs.GetByID(ctx, *in.JobID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("job")
			}
			return nil, err
		}
	default:
		return nil, apperrors.NewValidationError("exactly one of scholarshipId or jobId required", nil)
	}

	app := &domain.Application{
		UserID:        userID,
		ScholarshipID: in.ScholarshipID,
		JobID:         in.JobID,
		Status:        domain.ApplicationStatusPending,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListForUser returns the caller's own applications.
func (s *ApplicationService) ListForUser(ctx context.Context, userID string) ([]domain.Application, error) {
	return s.applications.ListByUser(ctx, userID)
}

// UpdateStatus moves an application through its review lifecycle.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	app, err := s.applications.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("application")
		}
		return nil, err
	}
	return app, nil
}

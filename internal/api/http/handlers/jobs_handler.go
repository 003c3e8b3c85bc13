package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/opportunity-service/internal/api/dto"
	"github.com/spec-kit/opportunity-service/internal/domain"
	"github.com/spec-kit/opportunity-service/internal/service"
	apperrors "github.com/spec-kit/opportunity-service/pkg/util"
)

// JobsHandler serves public job listings and admin mutations.
type JobsHandler struct {
	service    *service.ContentService
	hub        service.Broadcaster
	production bool
}

// NewJobsHandler constructs handler.
func NewJobsHandler(contentService *service.ContentService, hub service.Broadcaster, production bool) *JobsHandler {
	return &JobsHandler{service: contentService, hub: hub, production: production}
}

// List GET /api/jobs.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	items, err := h.service.ListActiveJobs(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Search GET /api/jobs/search?q=term.
func (h *JobsHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return apperrors.NewValidationError("search term required", nil)
	}
	items, err := h.service.SearchJobs(c.UserContext(), term)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Create POST /api/jobs. Broadcasts the stored entity on the jobs
// channel.
func (h *JobsHandler) Create() fiber.Handler {
	return CreateBroadcast(
		func(ctx context.Context, createdBy string, req dto.CreateJobRequest) (*domain.Job, error) {
			return h.service.CreateJob(ctx, createdBy, service.JobInput{
				Title:       req.Title,
				Description: req.Description,
				Company:     req.Company,
				Location:    req.Location,
				Salary:      req.Salary,
				IsActive:    req.IsActive,
			})
		},
		h.hub, "jobs", h.production,
	)
}

// Update PUT /api/jobs/:id.
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("invalid job data", err)
	}

	job, err := h.service.UpdateJob(c.UserContext(), c.Params("id"), service.JobInput{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
		Salary:      req.Salary,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(job)
}

// Delete DELETE /api/jobs/:id.
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteJob(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Job deleted"})
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/opportunity-service/internal/domain"
	"github.com/spec-kit/opportunity-service/internal/events"
	"github.com/spec-kit/opportunity-service/internal/repository"
	apperrors "github.com/spec-kit/opportunity-service/pkg/util"
)

// ContentService coordinates scholarship, job, blog post and testimonial
// workflows.
type ContentService struct {
	scholarships repository.ScholarshipRepository
	jobs         repository.JobRepository
	posts        repository.BlogPostRepository
	testimonials repository.TestimonialRepository
	cache        *ListingCache
	dispatcher   events.Dispatcher
}

// ContentDependencies bundles repositories for the content service.
type ContentDependencies struct {
	ScholarshipRepo repository.ScholarshipRepository
	JobRepo         repository.JobRepository
	BlogPostRepo    repository.BlogPostRepository
	TestimonialRepo repository.TestimonialRepository
	Cache           *ListingCache
	Dispatcher      events.Dispatcher
}

// NewContentService builds the service.
func NewContentService(deps ContentDependencies) *ContentService {
	return &ContentService{
		scholarships: deps.ScholarshipRepo,
		jobs:         deps.JobRepo,
		posts:        deps.BlogPostRepo,
		testimonials: deps.TestimonialRepo,
		cache:        deps.Cache,
		dispatcher:   deps.Dispatcher,
	}
}

// ScholarshipInput describes scholarship creation/update payload.
type ScholarshipInput struct {
	Title       string
	Description string
	Institution string
	Country     string
	Amount      string
	Deadline    time.Time
	IsActive    *bool
}

// JobInput describes job creation/update payload.
type JobInput struct {
	Title       string
	Description string
	Company     string
	Location    string
	Salary      string
	IsActive    *bool
}

// BlogPostInput describes blog post creation/update payload.
type BlogPostInput struct {
	Title       string
	Content     string
	IsPublished *bool
}

// CreateScholarship persists a new scholarship attributed to the caller.
func (s *ContentService) CreateScholarship(ctx context.Context, createdBy string, in ScholarshipInput) (*domain.Scholarship, error) {
	sch := &domain.Scholarship{
		Title:       in.Title,
		Description: in.Description,
		Institution: in.Institution,
		Country:     in.Country,
		Amount:      in.Amount,
		Deadline:    in.Deadline,
		IsActive:    boolOrDefault(in.IsActive, true),
		CreatedBy:   createdBy,
	}
	if err := s.scholarships.Create(ctx, sch); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cacheKeyActiveScholarships)
	s.publishCreated(ctx, createdBy, "scholarship", sch.ID)
	return sch, nil
}

// UpdateScholarship applies a partial update.
func (s *ContentService) UpdateScholarship(ctx context.Context, id string, in ScholarshipInput) (*domain.Scholarship, error) {
	sch, err := s.scholarships.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("scholarship")
		}
		return nil, err
	}

	if in.Title != "" {
		sch.Title = in.Title
	}
	if in.Description != "" {
		sch.Description = in.Description
	}
	if in.Institution != "" {
		sch.Institution = in.Institution
	}
	if in.Country != "" {
		sch.Country = in.Country
	}
	if in.Amount != "" {
		sch.Amount = in.Amount
	}
	if !in.Deadline.IsZero() {
		sch.Deadline = in.Deadline
	}
	if in.IsActive != nil {
		sch.IsActive = *in.IsActive
	}

	if err := s.scholarships.Update(ctx, sch); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cacheKeyActiveScholarships)
	return sch, nil
}

// DeleteScholarship removes a scholarship.
func (s *ContentService) DeleteScholarship(ctx context.Context, id string) error {
	if err := s.scholarships.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cacheKeyActiveScholarships)
	return nil
}

// ListActiveScholarships returns active, non-expired scholarships through the
// read-through cache.
func (s *ContentService) ListActiveScholarships(ctx context.Context) ([]domain.Scholarship, error) {
	var cached []domain.Scholarship
	if s.cache.Get(ctx, cacheKeyActiveScholarships, &cached) {
		return cached, nil
	}

	items, err := s.scholarships.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeyActiveScholarships, items)
	return items, nil
}

// SearchScholarships searches active scholarships by free text.
func (s *ContentService) SearchScholarships(ctx context.Context, term string) ([]domain.Scholarship, error) {
	return s.scholarships.Search(ctx, term)
}

// CreateJob persists a new job listing attributed to the caller.
func (s *ContentService) CreateJob(ctx context.Context, createdBy string, in JobInput) (*domain.Job, error) {
	job := &domain.Job{
		Title:       in.Title,
		Description: in.Description,
		Company:     in.Company,
		Location:    in.Location,
		Salary:      in.Salary,
		IsActive:    boolOrDefault(in.IsActive, true),
		CreatedBy:   createdBy,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cacheKeyActiveJobs)
	s.publishCreated(ctx, createdBy, "job", job.ID)
	return job, nil
}

// UpdateJob applies a partial update.
func (s *ContentService) UpdateJob(ctx context.Context, id string, in JobInput) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job")
		}
		return nil, err
	}

	if in.Title != "" {
		job.Title = in.Title
	}
	if in.Description != "" {
		job.Description = in.Description
	}
	if in.Company != "" {
		job.Company = in.Company
	}
	if in.Location != "" {
		job.Location = in.Location
	}
	if in.Salary != "" {
		job.Salary = in.Salary
	}
	if in.IsActive != nil {
		job.IsActive = *in.IsActive
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cacheKeyActiveJobs)
	return job, nil
}

// DeleteJob removes a job listing.
func (s *ContentService) DeleteJob(ctx context.Context, id string) error {
	if err := s.jobs.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cacheKeyActiveJobs)
	return nil
}

// ListActiveJobs returns active job listings through the read-through cache.
func (s *ContentService) ListActiveJobs(ctx context.Context) ([]domain.Job, error) {
	var cached []domain.Job
	if s.cache.Get(ctx, cacheKeyActiveJobs, &cached) {
		return cached, nil
	}

	items, err := s.jobs.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeyActiveJobs, items)
	return items, nil
}

// SearchJobs searches active job listings by free text.
func (s *ContentService) SearchJobs(ctx context.Context, term string) ([]domain.Job, error) {
	return s.jobs.Search(ctx, term)
}

// CreateBlogPost persists a new article attributed to the caller.
func (s *ContentService) CreateBlogPost(ctx context.Context, createdBy string, in BlogPostInput) (*domain.BlogPost, error) {
	post := &domain.BlogPost{
		Title:       in.Title,
		Content:     in.Content,
		IsPublished: boolOrDefault(in.IsPublished, false),
		CreatedBy:   createdBy,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	s.publishCreated(ctx, createdBy, "blog_post", post.ID)
	return post, nil
}

// ListPublishedBlogPosts returns publicly visible articles.
func (s *ContentService) ListPublishedBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	return s.posts.ListPublished(ctx)
}

// CreateTestimonial stores user feedback pending approval.
func (s *ContentService) CreateTestimonial(ctx context.Context, name, content string) (*domain.Testimonial, error) {
	t := &domain.Testimonial{Name: name, Content: content}
	if err := s.testimonials.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListApprovedTestimonials returns publicly visible testimonials.
func (s *ContentService) ListApprovedTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.testimonials.ListApproved(ctx)
}

func (s *ContentService) publishCreated(ctx context.Context, userID, kind, entityID string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventContentCreated,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   events.ContentCreatedPayload{Kind: kind, EntityID: entityID},
	})
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

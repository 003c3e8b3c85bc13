package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/opportunity-service/internal/api/dto"
	"github.com/spec-kit/opportunity-service/internal/domain"
	"github.com/spec-kit/opportunity-service/internal/service"
)

// BlogHandler serves published articles and admin article creation.
type BlogHandler struct {
	service    *service.ContentService
	hub        service.Broadcaster
	production bool
}

// NewBlogHandler constructs handler.
func NewBlogHandler(contentService *service.ContentService, hub service.Broadcaster, production bool) *BlogHandler {
	return &BlogHandler{service: contentService, hub: hub, production: production}
}

// List GET /api/blog-posts.
func (h *BlogHandler) List(c *fiber.Ctx) error {
	items, err := h.service.ListPublishedBlogPosts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Create POST /api/blog-posts. Broadcasts the stored entity on the
// blog_posts channel.
func (h *BlogHandler) Create() fiber.Handler {
	return CreateBroadcast(
		func(ctx context.Context, createdBy string, req dto.CreateBlogPostRequest) (*domain.BlogPost, error) {
			return h.service.CreateBlogPost(ctx, createdBy, service.BlogPostInput{
				Title:       req.Title,
				Content:     req.Content,
				IsPublished: req.IsPublished,
			})
		},
		h.hub, "blog_posts", h.production,
	)
}

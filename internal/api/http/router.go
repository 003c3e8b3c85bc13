package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/opportunity-service/internal/api/http/handlers"
	"github.com/spec-kit/opportunity-service/internal/auth"
	"github.com/spec-kit/opportunity-service/internal/ws"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Users        *handlers.UsersHandler
	Scholarships *handlers.ScholarshipsHandler
	Jobs         *handlers.JobsHandler
	Blog         *handlers.BlogHandler
	Applications *handlers.ApplicationsHandler
	Testimonials *handlers.TestimonialsHandler
	Chat         *handlers.ChatHandler
	Admin        *handlers.AdminHandler
	WS           *ws.Handler
	Tokens       *auth.TokenManager
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Use("/ws", cfg.WS.Upgrade())
	app.Get("/ws", cfg.WS.Serve())

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/refresh", cfg.Auth.Refresh)

	requireAuth := auth.RequireAuthenticated(cfg.Tokens)
	requireAdmin := auth.RequireAdmin()

	api.Get("/scholarships", cfg.Scholarships.List)
	api.Get("/scholarships/search", cfg.Scholarships.Search)
	api.Post("/scholarships", requireAuth, requireAdmin, cfg.Scholarships.Create())
	api.Put("/scholarships/:id", requireAuth, requireAdmin, cfg.Scholarships.Update)
	api.Delete("/scholarships/:id", requireAuth, requireAdmin, cfg.Scholarships.Delete)

	api.Get("/jobs", cfg.Jobs.List)
	api.Get("/jobs/search", cfg.Jobs.Search)
	api.Post("/jobs", requireAuth, requireAdmin, cfg.Jobs.Create())
	api.Put("/jobs/:id", requireAuth, requireAdmin, cfg.Jobs.Update)
	api.Delete("/jobs/:id", requireAuth, requireAdmin, cfg.Jobs.Delete)

	api.Get("/blog-posts", cfg.Blog.List)
	api.Post("/blog-posts", requireAuth, requireAdmin, cfg.Blog.Create())

	api.Get("/testimonials", cfg.Testimonials.List)
	api.Post("/testimonials", requireAuth, cfg.Testimonials.Create)

	api.Post("/chat", cfg.Chat.Chat)

	api.Get("/user/profile", requireAuth, cfg.Users.Profile)
	api.Post("/applications", requireAuth, cfg.Applications.Submit)
	api.Get("/applications", requireAuth, cfg.Applications.ListMine)

	admin := api.Group("/admin", requireAuth, requireAdmin)
	admin.Put("/applications/:id/status", cfg.Applications.UpdateStatus)
	admin.Get("/analytics/summary", cfg.Admin.ActivitySummary)
}

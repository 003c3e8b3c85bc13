package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/opportunity-service/internal/api/http"
	"github.com/spec-kit/opportunity-service/internal/api/http/handlers"
	"github.com/spec-kit/opportunity-service/internal/config"
	"github.com/spec-kit/opportunity-service/internal/events"
	"github.com/spec-kit/opportunity-service/internal/observability"
	"github.com/spec-kit/opportunity-service/internal/persistence"
	"github.com/spec-kit/opportunity-service/internal/repository"
	"github.com/spec-kit/opportunity-service/internal/service"
	"github.com/spec-kit/opportunity-service/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	scholarshipRepo := repository.NewScholarshipRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)
	blogPostRepo := repository.NewBlogPostRepository(pool)
	testimonialRepo := repository.NewTestimonialRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	hub := ws.NewHub(logger, metrics)
	defer hub.Close()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	cache := service.NewListingCache(redis, cfg.Redis.ListingTTL(), logger)
	contentService := service.NewContentService(service.ContentDependencies{
		ScholarshipRepo: scholarshipRepo,
		JobRepo:         jobRepo,
		BlogPostRepo:    blogPostRepo,
		TestimonialRepo: testimonialRepo,
		Cache:           cache,
		Dispatcher:      dispatcher,
	})
	applicationService := service.NewApplicationService(applicationRepo, scholarshipRepo, jobRepo)
	chatService := service.NewChatService(cfg.Chat)
	activityService := service.NewActivityService(activityRepo, hub, logger)
	activityService.RegisterHandlers(dispatcher)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.App.IsProduction())

	production := cfg.App.IsProduction()
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:         handlers.NewAuthHandler(authService),
		Users:        handlers.NewUsersHandler(authService),
		Scholarships: handlers.NewScholarshipsHandler(contentService, hub, production),
		Jobs:         handlers.NewJobsHandler(contentService, hub, production),
		Blog:         handlers.NewBlogHandler(contentService, hub, production),
		Applications: handlers.NewApplicationsHandler(applicationService),
		Testimonials: handlers.NewTestimonialsHandler(contentService),
		Chat:         handlers.NewChatHandler(chatService, logger),
		Admin:        handlers.NewAdminHandler(activityService),
		WS:           ws.NewHandler(hub, logger, cfg.App),
		Tokens:       authService.TokenManager(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

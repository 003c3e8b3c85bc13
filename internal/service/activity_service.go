package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/opportunity-service/internal/domain"
	"github.com/spec-kit/opportunity-service/internal/events"
	"github.com/spec-kit/opportunity-service/internal/repository"
)

// Broadcaster fans a payload out to channel subscribers. Satisfied by the
// WebSocket hub.
type Broadcaster interface {
	Broadcast(channel string, payload any)
}

// ActivityService bridges auth domain events into the analytics log and the
// user_activity broadcast channel.
type ActivityService struct {
	activity repository.ActivityRepository
	hub      Broadcaster
	logger   *zap.Logger
}

// NewActivityService creates the service.
func NewActivityService(activity repository.ActivityRepository, hub Broadcaster, logger *zap.Logger) *ActivityService {
	return &ActivityService{activity: activity, hub: hub, logger: logger}
}

// RegisterHandlers subscribes to the dispatcher.
func (a *ActivityService) RegisterHandlers(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventUserRegistered, a.handleUserRegistered)
	dispatcher.Subscribe(events.EventUserLoggedIn, a.handleUserLoggedIn)
	dispatcher.Subscribe(events.EventContentCreated, a.handleContentCreated)
}

func (a *ActivityService) handleUserRegistered(ctx context.Context, event events.Event) error {
	a.log(ctx, event, "user_registered")
	a.broadcastActivity("registered", event.UserID)
	return nil
}

func (a *ActivityService) handleUserLoggedIn(ctx context.Context, event events.Event) error {
	a.log(ctx, event, "user_logged_in")
	a.broadcastActivity("login", event.UserID)
	return nil
}

func (a *ActivityService) handleContentCreated(ctx context.Context, event events.Event) error {
	a.log(ctx, event, "content_created")
	return nil
}

// Summary aggregates counts for the admin dashboard.
func (a *ActivityService) Summary(ctx context.Context) (*domain.ActivitySummary, error) {
	return a.activity.Summary(ctx)
}

func (a *ActivityService) log(ctx context.Context, event events.Event, name string) {
	if a.activity == nil {
		return
	}
	rec := &domain.ActivityRecord{Event: name}
	if event.UserID != "" {
		userID := event.UserID
		rec.UserID = &userID
	}
	if metadata, ok := event.Payload.(map[string]any); ok {
		rec.Metadata = metadata
	}
	if payload, ok := event.Payload.(events.ContentCreatedPayload); ok {
		rec.Metadata = map[string]any{"kind": payload.Kind, "entityId": payload.EntityID}
	}
	if err := a.activity.Log(ctx, rec); err != nil {
		a.logger.Warn("activity log failed", zap.String("event", name), zap.Error(err))
	}
}

func (a *ActivityService) broadcastActivity(activityType, userID string) {
	if a.hub == nil {
		return
	}
	a.hub.Broadcast("user_activity", events.UserActivityPayload{Type: activityType, UserID: userID})
}

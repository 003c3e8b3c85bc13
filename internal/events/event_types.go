package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserLoggedIn   EventType = "user_logged_in"
	EventContentCreated EventType = "content_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// UserActivityPayload is what subscribers of the user_activity channel see.
type UserActivityPayload struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

// ContentCreatedPayload describes an admin-created entity.
type ContentCreatedPayload struct {
	Kind     string `json:"kind"`
	EntityID string `json:"entityId"`
}

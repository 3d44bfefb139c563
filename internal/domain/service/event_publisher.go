package service

import (
	"context"
)

// ProximityMatchEvent announces a freshly created proximity notification so
// the downstream delivery collaborator (inbox, push, digest email) can pick it
// up without coupling to this service's storage.
type ProximityMatchEvent struct {
	RequestID         string   `json:"request_id,omitempty"` // For distributed tracing
	NotificationID    string   `json:"notification_id"`
	BusinessID        string   `json:"business_id"`
	TravelerID        string   `json:"traveler_id"`
	Priority          string   `json:"priority"`
	MatchedInterests  []string `json:"matched_interests"`
	MatchedActivities []string `json:"matched_activities"`
	DistanceLabel     string   `json:"distance_label"`
}

// TravelerLocationEvent is a traveler location update pushed through the
// message queue to the geo worker, which runs the proximity engine.
type TravelerLocationEvent struct {
	RequestID  string  `json:"request_id,omitempty"` // For distributed tracing
	TravelerID string  `json:"traveler_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMatchEvent publishes a proximity match event for async delivery
	PublishMatchEvent(ctx context.Context, event *ProximityMatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

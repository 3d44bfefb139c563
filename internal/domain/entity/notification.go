// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchTypeTravelerInterest is the match type recorded for notifications
// produced by the traveler-interest proximity engine.
const MatchTypeTravelerInterest = "traveler_interest"

// ProximityNotification is the durable artifact of a proximity match: a business
// learns that a traveler with overlapping interests is nearby.
//
// At most one record exists per (business, traveler) pair within a rolling
// cooldown window. IsRead and IsProcessed are owned by the downstream
// notification inbox; the engine only ever creates records.
type ProximityNotification struct {
	ID                uuid.UUID `json:"id"`                 // The Global Unique Identifier (GUID) for the notification.
	BusinessID        uuid.UUID `json:"business_id"`        // The business being notified.
	TravelerID        uuid.UUID `json:"traveler_id"`        // The traveler whose location triggered the match.
	MatchType         string    `json:"match_type"`         // Always MatchTypeTravelerInterest for this engine.
	MatchedInterests  []string  `json:"matched_interests"`  // Interest tags shared by both parties.
	MatchedActivities []string  `json:"matched_activities"` // Activity tags shared by both parties.
	DistanceLabel     string    `json:"distance_label"`     // Human-readable distance, e.g. "1.0km away".
	Priority          Priority  `json:"priority"`           // Coarse importance tier derived from the match count.
	IsRead            bool      `json:"is_read"`            // Set by the inbox when the business opens the notification.
	IsProcessed       bool      `json:"is_processed"`       // Set by the delivery collaborator after hand-off.
	CreatedAt         time.Time `json:"created_at"`         // Timestamp of when this record was created.
}

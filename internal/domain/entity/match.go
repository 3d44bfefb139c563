package entity

import "github.com/google/uuid"

// Priority classifies how strong a proximity match is, based on the number of
// overlapping tags.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// MatchResult is the ephemeral outcome of scoring one business against one
// traveler. It is computed fresh per invocation and never persisted directly.
type MatchResult struct {
	MatchedInterests  []string // Interest tags present on both sides.
	MatchedActivities []string // Activity tags present on both sides.
	MatchCount        int      // len(MatchedInterests) + len(MatchedActivities).
	Priority          Priority // Tier derived from MatchCount.
}

// CandidateStatus describes what happened to a single candidate business
// during one engine invocation.
type CandidateStatus string

const (
	// CandidateNotified means a new notification record was created.
	CandidateNotified CandidateStatus = "notified"
	// CandidateOutOfRange means the business is beyond the proximity radius.
	CandidateOutOfRange CandidateStatus = "out_of_range"
	// CandidateNoMatch means no interest or activity tags overlap.
	CandidateNoMatch CandidateStatus = "no_match"
	// CandidateCooldown means a notification for this pair already exists
	// within the cooldown window.
	CandidateCooldown CandidateStatus = "cooldown"
	// CandidateStaleLocation means the business location is older than the
	// configured maximum age.
	CandidateStaleLocation CandidateStatus = "stale_location"
	// CandidateInvalidLocation means the candidate's coordinates are missing
	// or not finite.
	CandidateInvalidLocation CandidateStatus = "invalid_location"
	// CandidateFailed means persisting the notification failed; other
	// candidates are unaffected.
	CandidateFailed CandidateStatus = "failed"
)

// CandidateOutcome is the per-candidate result of one engine invocation,
// returned as a sequence so callers and tests can assert on individual
// candidates instead of inferring from side effects.
type CandidateOutcome struct {
	BusinessID   uuid.UUID       `json:"business_id"`
	BusinessName string          `json:"business_name"`
	Status       CandidateStatus `json:"status"`
	DistanceKm   float64         `json:"distance_km"`
	Match        *MatchResult    `json:"match,omitempty"`
	Err          error           `json:"-"`
}

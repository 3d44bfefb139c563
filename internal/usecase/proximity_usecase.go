package usecase

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
)

// TravelerLocationInput represents a traveler location update
type TravelerLocationInput struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// CandidateSource yields the candidate businesses to evaluate for one engine
// invocation. Implementations may return a superset of the businesses within
// the radius; the engine re-checks the exact distance for every candidate.
type CandidateSource interface {
	Candidates(ctx context.Context, lat, lon, radiusKm float64) ([]*entity.BusinessProfile, error)
}

// ProximityUsecase defines the interface for the proximity notification engine
type ProximityUsecase interface {
	// CheckProximityForTraveler runs the engine for one traveler location
	// update: it evaluates every candidate business and returns one outcome
	// per candidate. A traveler without a profile is a silent no-op.
	CheckProximityForTraveler(ctx context.Context, travelerID uuid.UUID, lat, lon float64) ([]entity.CandidateOutcome, error)
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrBusinessProfileNotFound is returned when a user exists but has no business profile.
	ErrBusinessProfileNotFound = errors.New("business profile not found")
)

// UserRepository defines the standard operations for user and profile persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with any traveler
	// and business profiles preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindBusinessesWithLocationSharing retrieves every business profile with
	// location sharing enabled and both coordinates present. No radius
	// filtering happens here; distance is the engine's job.
	FindBusinessesWithLocationSharing(ctx context.Context) ([]*entity.BusinessProfile, error)

	// UpdateBusinessLocation unconditionally overwrites the business's stored
	// coordinates and stamps the location-updated timestamp.
	UpdateBusinessLocation(ctx context.Context, businessID uuid.UUID, lat, lon float64, at time.Time) error

	// SetLocationSharing flips the proximity opt-in flag. Disabling does not
	// remove previously created notifications.
	SetLocationSharing(ctx context.Context, businessID uuid.UUID, enabled bool) error
}

package usecase

import (
	"context"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateBusinessLocationInput represents the input for updating a business location.
// Coordinates are stored as received; the engine ignores unusable candidate
// locations instead of rejecting the write.
type UpdateBusinessLocationInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationSharingInput represents the input for toggling location sharing
type LocationSharingInput struct {
	Enabled bool `json:"enabled"`
}

// BusinessUsecase defines the interface for business-side operations
type BusinessUsecase interface {
	// UpdateLocation sets the business's current coordinates.
	UpdateLocation(ctx context.Context, businessID uuid.UUID, input *UpdateBusinessLocationInput) error

	// SetLocationSharing toggles participation in proximity matching.
	SetLocationSharing(ctx context.Context, businessID uuid.UUID, enabled bool) error

	// NotificationHistory returns the business's notifications, newest first.
	NotificationHistory(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.ProximityNotification, error)

	// ListingQR renders a PNG QR code that links to the business listing.
	ListingQR(ctx context.Context, businessID uuid.UUID) ([]byte, error)

	// ResolveListingQR decodes scanned QR data back into the business listing
	// it points at.
	ResolveListingQR(ctx context.Context, qrData string) (*entity.BusinessProfile, error)
}

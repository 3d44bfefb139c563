// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// ProximityNotificationRepository defines the interface for proximity
// notification persistence.
type ProximityNotificationRepository interface {
	// CreateIfAbsent persists the notification unless one already exists for
	// the same (business, traveler) pair within the same cooldown bucket.
	// The uniqueness is enforced by the store (insert-or-ignore), so
	// concurrent invocations for the same pair create exactly one record.
	// Returns false when the insert was suppressed by the constraint.
	CreateIfAbsent(ctx context.Context, notification *entity.ProximityNotification, cooldown time.Duration) (bool, error)

	// HasRecentNotification reports whether a notification exists for the
	// pair with createdAt after the given instant. This is the cheap
	// rolling-window pre-check; CreateIfAbsent remains the authoritative gate.
	HasRecentNotification(ctx context.Context, businessID, travelerID uuid.UUID, after time.Time) (bool, error)

	// FindNotificationsByBusiness retrieves notifications emitted to a
	// business, newest first, with pagination.
	FindNotificationsByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.ProximityNotification, error)
}

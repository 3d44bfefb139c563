package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProximityNotificationModel is the GORM-specific struct for the
// 'proximity_notifications' table.
//
// The composite unique index on (business_id, traveler_id, cooldown_bucket)
// is the storage-level dedup gate: inserts within the same cooldown bucket
// collide and are suppressed with ON CONFLICT DO NOTHING, so concurrent
// engine invocations for the same pair create exactly one row.
type ProximityNotificationModel struct {
	ID                uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID        uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_proximity_dedup;index"`
	TravelerID        uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_proximity_dedup"`
	CooldownBucket    int64                       `gorm:"not null;uniqueIndex:idx_proximity_dedup"`
	MatchType         string                      `gorm:"type:varchar(50);not null"`
	MatchedInterests  datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	MatchedActivities datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	DistanceLabel     string                      `gorm:"type:varchar(50);not null"`
	Priority          string                      `gorm:"type:varchar(10);not null"`
	IsRead            bool                        `gorm:"not null;default:false"`
	IsProcessed       bool                        `gorm:"not null;default:false"`
	CreatedAt         time.Time                   `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProximityNotificationModel) TableName() string {
	return "proximity_notifications"
}

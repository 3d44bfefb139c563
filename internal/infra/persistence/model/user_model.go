package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`

	TravelerProfile *TravelerProfileModel `gorm:"foreignKey:UserID"`
	BusinessProfile *BusinessProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// TravelerProfileModel mirrors the 'traveler_profiles' table. UserID references users.id (UUID).
// Tag fields are stored as JSONB arrays.
type TravelerProfileModel struct {
	UserID       uuid.UUID                     `gorm:"primaryKey"`
	Bio          string                        `gorm:"type:text"`
	HomeCity     string                        `gorm:"type:varchar(100)"`
	Interests    datatypes.JSONSlice[string]   `gorm:"type:jsonb"`
	Activities   datatypes.JSONSlice[string]   `gorm:"type:jsonb"`
	TravelStyles datatypes.JSONSlice[string]   `gorm:"type:jsonb"`
	TripTypes    datatypes.JSONSlice[string]   `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (TravelerProfileModel) TableName() string {
	return "traveler_profiles"
}

// BusinessProfileModel mirrors the 'business_profiles' table. UserID references users.id (UUID).
type BusinessProfileModel struct {
	UserID                 uuid.UUID `gorm:"primaryKey"`
	BusinessName           string    `gorm:"type:varchar(100);not null"`
	Description            string    `gorm:"type:text"`
	Category               string    `gorm:"type:varchar(50);index"`
	Latitude               *float64  `gorm:"type:decimal(10,8)"`
	Longitude              *float64  `gorm:"type:decimal(11,8)"`
	LocationSharingEnabled bool      `gorm:"not null;default:false;index"`
	Interests              datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Activities             datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	LocationUpdatedAt      *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessProfileModel) TableName() string {
	return "business_profiles"
}

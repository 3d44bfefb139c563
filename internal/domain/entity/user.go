// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It contains only the most fundamental identity information shared across all roles.
type User struct {
	ID              uuid.UUID        // The Global Unique Identifier (GUID) for the user.
	Email           string           // The user's primary contact email, often used as a login identifier.
	Name            string           // The user's display name or real name.
	TravelerProfile *TravelerProfile // A pointer to the traveler-specific profile. Nil if this person does not have a 'traveler' role.
	BusinessProfile *BusinessProfile // A pointer to the business-specific profile. Nil if this person does not have a 'business' role.
	CreatedAt       time.Time        // Timestamp of when this user account was created.
	UpdatedAt       time.Time        // Timestamp of the last modification to this user's data.
}

// TravelerProfile holds data specific to the "traveler" role.
//
// Interests and Activities are the tags the traveler declared explicitly.
// TravelStyles and TripTypes are broader travel-preference fields from which
// interest and activity tags are derived; the matching engine unions all four
// into the traveler's effective tag sets.
type TravelerProfile struct {
	UserID       uuid.UUID // Foreign Key that links this profile to a core User entity.
	Bio          string    // A short free-form description shown on the traveler's profile page.
	HomeCity     string    // The traveler's declared home city.
	Interests    []string  // Explicitly declared interest tags (e.g. "hiking", "coffee").
	Activities   []string  // Explicitly declared activity tags (e.g. "kayaking").
	TravelStyles []string  // Travel-preference tags treated as derived interests.
	TripTypes    []string  // Trip-preference tags treated as derived activities.
	UpdatedAt    time.Time // Timestamp of the last modification to this profile.
}

// BusinessProfile holds data specific to the "business" role.
//
// Latitude/Longitude are nullable: a business without pushed coordinates is
// never considered a proximity candidate. Coordinates only change through an
// explicit location update, which also stamps LocationUpdatedAt.
type BusinessProfile struct {
	UserID                 uuid.UUID  // Foreign Key that links this profile to a core User entity.
	BusinessName           string     // The official listing name of the business.
	Description            string     // A description of the business shown on its listing page.
	Category               string     // Listing category (e.g. "cafe", "outfitter").
	Latitude               *float64   // Last pushed latitude, nil until the business shares a location.
	Longitude              *float64   // Last pushed longitude, nil until the business shares a location.
	LocationSharingEnabled bool       // Opt-in flag for proximity discovery.
	Interests              []string   // Interest tags the business declares for matching.
	Activities             []string   // Activity tags the business declares for matching.
	LocationUpdatedAt      *time.Time // Timestamp of the last explicit location update, nil if never pushed.
	UpdatedAt              time.Time  // Timestamp of the last modification to this profile.
}

// HasCoordinates reports whether the business has a usable location.
func (p *BusinessProfile) HasCoordinates() bool {
	return p != nil && p.Latitude != nil && p.Longitude != nil
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	"wayfare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a user together with whichever profiles exist for it.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("TravelerProfile").
		Preload("BusinessProfile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindBusinessesWithLocationSharing retrieves every business profile that has
// opted into location sharing and has coordinates on record. Profiles without
// coordinates cannot be matched against, so they are filtered at the query.
func (repo *userRepository) FindBusinessesWithLocationSharing(ctx context.Context) ([]*entity.BusinessProfile, error) {
	var profileModels []*model.BusinessProfileModel

	if err := repo.db.WithContext(ctx).
		Where("location_sharing_enabled = ?", true).
		Where("latitude IS NOT NULL").
		Where("longitude IS NOT NULL").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find businesses with location sharing")
	}

	profiles := make([]*entity.BusinessProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toBusinessProfileDomain(profileM))
	}

	return profiles, nil
}

// UpdateBusinessLocation sets the stored coordinates for a business profile.
func (repo *userRepository) UpdateBusinessLocation(ctx context.Context, businessID uuid.UUID, lat, lon float64, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessProfileModel{}).
		Where("user_id = ?", businessID).
		Updates(map[string]interface{}{
			"latitude":            lat,
			"longitude":           lon,
			"location_updated_at": at,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessProfileNotFound
	}

	return nil
}

// SetLocationSharing toggles whether a business participates in proximity matching.
func (repo *userRepository) SetLocationSharing(ctx context.Context, businessID uuid.UUID, enabled bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessProfileModel{}).
		Where("user_id = ?", businessID).
		Update("location_sharing_enabled", enabled)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update location sharing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		Email:           data.Email,
		Name:            data.Name,
		TravelerProfile: toTravelerProfileDomain(data.TravelerProfile),
		BusinessProfile: toBusinessProfileDomain(data.BusinessProfile),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toTravelerProfileDomain converts a GORM TravelerProfileModel to a domain TravelerProfile entity.
func toTravelerProfileDomain(data *model.TravelerProfileModel) *entity.TravelerProfile {
	if data == nil {
		return nil
	}

	return &entity.TravelerProfile{
		UserID:       data.UserID,
		Bio:          data.Bio,
		HomeCity:     data.HomeCity,
		Interests:    []string(data.Interests),
		Activities:   []string(data.Activities),
		TravelStyles: []string(data.TravelStyles),
		TripTypes:    []string(data.TripTypes),
		UpdatedAt:    data.UpdatedAt,
	}
}

// toBusinessProfileDomain converts a GORM BusinessProfileModel to a domain BusinessProfile entity.
func toBusinessProfileDomain(data *model.BusinessProfileModel) *entity.BusinessProfile {
	if data == nil {
		return nil
	}

	return &entity.BusinessProfile{
		UserID:                 data.UserID,
		BusinessName:           data.BusinessName,
		Description:            data.Description,
		Category:               data.Category,
		Latitude:               data.Latitude,
		Longitude:              data.Longitude,
		LocationSharingEnabled: data.LocationSharingEnabled,
		Interests:              []string(data.Interests),
		Activities:             []string(data.Activities),
		LocationUpdatedAt:      data.LocationUpdatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

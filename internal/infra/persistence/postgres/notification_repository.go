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
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// proximityNotificationRepository implements the repository.ProximityNotificationRepository interface.
type proximityNotificationRepository struct {
	db *gorm.DB
}

// NewProximityNotificationRepository is the constructor for proximityNotificationRepository.
func NewProximityNotificationRepository(db *gorm.DB) repository.ProximityNotificationRepository {
	return &proximityNotificationRepository{
		db: db,
	}
}

// CreateIfAbsent persists a notification unless one already exists for the
// same (business, traveler) pair within the current cooldown bucket. The
// uniqueness check and the insert are a single statement, so two concurrent
// callers cannot both succeed. Returns true when the row was created.
func (repo *proximityNotificationRepository) CreateIfAbsent(ctx context.Context, notification *entity.ProximityNotification, cooldown time.Duration) (bool, error) {
	notificationM := fromProximityNotificationDomain(notification)
	if notificationM.CreatedAt.IsZero() {
		notificationM.CreatedAt = time.Now().UTC()
	}
	notificationM.CooldownBucket = cooldownBucket(notificationM.CreatedAt, cooldown)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "business_id"},
				{Name: "traveler_id"},
				{Name: "cooldown_bucket"},
			},
			DoNothing: true,
		}).
		Create(notificationM)

	if result.Error != nil {
		// A driver that does not surface ON CONFLICT support reports the
		// collision as a constraint violation instead of zero rows.
		if isUniqueConstraintViolation(result.Error) {
			return false, nil
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrNotificationQueryFailed.WrapMessage("invalid business or traveler reference")
		}
		if isNotNullConstraintViolation(result.Error) {
			return false, domainerrors.ErrNotificationQueryFailed.WrapMessage("missing required notification information")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create proximity notification")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return true, nil
}

// HasRecentNotification reports whether the pair was already notified after
// the given instant.
func (repo *proximityNotificationRepository) HasRecentNotification(ctx context.Context, businessID, travelerID uuid.UUID, after time.Time) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProximityNotificationModel{}).
		Where("business_id = ?", businessID).
		Where("traveler_id = ?", travelerID).
		Where("created_at > ?", after).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check recent notification")
	}

	return count > 0, nil
}

// FindNotificationsByBusiness retrieves notifications for a business, newest first, with pagination.
func (repo *proximityNotificationRepository) FindNotificationsByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.ProximityNotification, error) {
	var notificationModels []*model.ProximityNotificationModel

	query := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by business")
	}

	notifications := make([]*entity.ProximityNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toProximityNotificationDomain(notificationM))
	}

	return notifications, nil
}

// cooldownBucket maps an instant onto the cooldown grid. A non-positive
// cooldown disables bucket collisions entirely.
func cooldownBucket(at time.Time, cooldown time.Duration) int64 {
	if cooldown <= 0 {
		return at.UnixNano()
	}

	return at.UnixNano() / int64(cooldown)
}

// --- Mapper Functions ---

// toProximityNotificationDomain converts a GORM ProximityNotificationModel to a domain ProximityNotification entity.
func toProximityNotificationDomain(data *model.ProximityNotificationModel) *entity.ProximityNotification {
	if data == nil {
		return nil
	}

	return &entity.ProximityNotification{
		ID:                data.ID,
		BusinessID:        data.BusinessID,
		TravelerID:        data.TravelerID,
		MatchType:         data.MatchType,
		MatchedInterests:  []string(data.MatchedInterests),
		MatchedActivities: []string(data.MatchedActivities),
		DistanceLabel:     data.DistanceLabel,
		Priority:          entity.Priority(data.Priority),
		IsRead:            data.IsRead,
		IsProcessed:       data.IsProcessed,
		CreatedAt:         data.CreatedAt,
	}
}

// fromProximityNotificationDomain converts a domain ProximityNotification entity to a GORM ProximityNotificationModel.
func fromProximityNotificationDomain(data *entity.ProximityNotification) *model.ProximityNotificationModel {
	if data == nil {
		return nil
	}

	return &model.ProximityNotificationModel{
		ID:                data.ID,
		BusinessID:        data.BusinessID,
		TravelerID:        data.TravelerID,
		MatchType:         data.MatchType,
		MatchedInterests:  datatypes.JSONSlice[string](data.MatchedInterests),
		MatchedActivities: datatypes.JSONSlice[string](data.MatchedActivities),
		DistanceLabel:     data.DistanceLabel,
		Priority:          string(data.Priority),
		IsRead:            data.IsRead,
		IsProcessed:       data.IsProcessed,
		CreatedAt:         data.CreatedAt,
	}
}

package impl

import (
	"context"
	"log/slog"
	"time"

	reqctx "wayfare/internal/delivery/context"
	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	"wayfare/internal/domain/service"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type businessService struct {
	userRepo         repository.UserRepository
	notificationRepo repository.ProximityNotificationRepository
	qrcodeService    service.QRCodeService
	logger           *slog.Logger
}

// NewBusinessService creates a new business service instance
func NewBusinessService(
	userRepo repository.UserRepository,
	notificationRepo repository.ProximityNotificationRepository,
	qrcodeService service.QRCodeService,
	logger *slog.Logger,
) usecase.BusinessUsecase {
	return &businessService{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		qrcodeService:    qrcodeService,
		logger:           logger,
	}
}

// UpdateLocation overwrites the business's stored coordinates unconditionally
// and stamps the update time. Coordinates are written as received; out-of-range
// values simply never match any traveler, because the engine discards
// candidates with invalid locations at evaluation time.
func (s *businessService) UpdateLocation(ctx context.Context, businessID uuid.UUID, input *usecase.UpdateBusinessLocationInput) error {
	if err := s.userRepo.UpdateBusinessLocation(ctx, businessID, input.Latitude, input.Longitude, time.Now().UTC()); err != nil {
		if errors.Is(err, repository.ErrBusinessProfileNotFound) {
			return domainerrors.ErrBusinessProfileNotFound
		}

		return err
	}

	logger := reqctx.GetLoggerOrDefault(ctx, s.logger)
	logger.Info("business location updated",
		slog.String("business_id", businessID.String()),
	)

	return nil
}

// SetLocationSharing toggles participation in proximity matching.
func (s *businessService) SetLocationSharing(ctx context.Context, businessID uuid.UUID, enabled bool) error {
	if err := s.userRepo.SetLocationSharing(ctx, businessID, enabled); err != nil {
		if errors.Is(err, repository.ErrBusinessProfileNotFound) {
			return domainerrors.ErrBusinessProfileNotFound
		}

		return err
	}

	logger := reqctx.GetLoggerOrDefault(ctx, s.logger)
	logger.Info("business location sharing updated",
		slog.String("business_id", businessID.String()),
		slog.Bool("enabled", enabled),
	)

	return nil
}

// NotificationHistory returns the business's notifications, newest first.
func (s *businessService) NotificationHistory(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.ProximityNotification, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := s.notificationRepo.FindNotificationsByBusiness(ctx, businessID, limit, offset)
	if err != nil {
		return nil, domainerrors.ErrNotificationQueryFailed.WrapMessage(err.Error())
	}

	return notifications, nil
}

// ListingQR renders a PNG QR code that links to the business listing. The
// business must exist and carry a business profile.
func (s *businessService) ListingQR(ctx context.Context, businessID uuid.UUID) ([]byte, error) {
	user, err := s.userRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}
	if user.BusinessProfile == nil {
		return nil, domainerrors.ErrBusinessProfileNotFound
	}

	return s.qrcodeService.GenerateListingQR(businessID)
}

// ResolveListingQR decodes scanned QR data back into the business listing it
// points at. Malformed payloads and codes pointing at accounts without a
// business profile both surface as client errors.
func (s *businessService) ResolveListingQR(ctx context.Context, qrData string) (*entity.BusinessProfile, error) {
	businessID, err := s.qrcodeService.ParseListingQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	user, err := s.userRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}
	if user.BusinessProfile == nil {
		return nil, domainerrors.ErrBusinessProfileNotFound
	}

	return user.BusinessProfile, nil
}

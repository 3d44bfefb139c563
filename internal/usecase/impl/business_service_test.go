package impl

import (
	"context"
	"testing"
	"time"

	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	mockRepo "wayfare/internal/mocks/repository"
	mockSvc "wayfare/internal/mocks/service"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBusinessService(t *testing.T) (
	usecase.BusinessUsecase,
	*mockRepo.MockUserRepository,
	*mockRepo.MockProximityNotificationRepository,
	*mockSvc.MockQRCodeService,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	notificationRepo := mockRepo.NewMockProximityNotificationRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	service := NewBusinessService(userRepo, notificationRepo, qrcodeService, newDiscardLogger())

	return service, userRepo, notificationRepo, qrcodeService
}

func TestBusinessService_UpdateLocation_Success(t *testing.T) {
	service, userRepo, _, _ := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()

	userRepo.EXPECT().
		UpdateBusinessLocation(ctx, businessID, 25.033, 121.565, mock.AnythingOfType("time.Time")).
		Return(nil)

	err := service.UpdateLocation(ctx, businessID, &usecase.UpdateBusinessLocationInput{
		Latitude:  25.033,
		Longitude: 121.565,
	})

	require.NoError(t, err)
}

func TestBusinessService_UpdateLocation_OutOfRangeCoordinatesAreStored(t *testing.T) {
	service, userRepo, _, _ := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()

	// The write is an unconditional overwrite; the engine skips unusable
	// candidate locations instead of this mutation rejecting them.
	userRepo.EXPECT().
		UpdateBusinessLocation(ctx, businessID, 95.0, 200.0, mock.AnythingOfType("time.Time")).
		Return(nil)

	err := service.UpdateLocation(ctx, businessID, &usecase.UpdateBusinessLocationInput{
		Latitude:  95.0,
		Longitude: 200.0,
	})

	require.NoError(t, err)
}

func TestBusinessService_UpdateLocation_ProfileNotFound(t *testing.T) {
	service, userRepo, _, _ := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()

	userRepo.EXPECT().
		UpdateBusinessLocation(ctx, businessID, 25.033, 121.565, mock.Anything).
		Return(repository.ErrBusinessProfileNotFound)

	err := service.UpdateLocation(ctx, businessID, &usecase.UpdateBusinessLocationInput{
		Latitude:  25.033,
		Longitude: 121.565,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessProfileNotFound)
}

func TestBusinessService_SetLocationSharing(t *testing.T) {
	service, userRepo, _, _ := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()

	userRepo.EXPECT().SetLocationSharing(ctx, businessID, true).Return(nil)

	require.NoError(t, service.SetLocationSharing(ctx, businessID, true))
}

func TestBusinessService_NotificationHistory_DefaultsPagination(t *testing.T) {
	service, _, notificationRepo, _ := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	stored := []*entity.ProximityNotification{
		{ID: uuid.New(), BusinessID: businessID, Priority: entity.PriorityHigh, CreatedAt: time.Now()},
	}

	notificationRepo.EXPECT().
		FindNotificationsByBusiness(ctx, businessID, defaultHistoryLimit, 0).
		Return(stored, nil)

	notifications, err := service.NotificationHistory(ctx, businessID, 0, -5)

	require.NoError(t, err)
	assert.Equal(t, stored, notifications)
}

func TestBusinessService_NotificationHistory_CapsLimit(t *testing.T) {
	service, _, notificationRepo, _ := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()

	notificationRepo.EXPECT().
		FindNotificationsByBusiness(ctx, businessID, maxHistoryLimit, 10).
		Return([]*entity.ProximityNotification{}, nil)

	_, err := service.NotificationHistory(ctx, businessID, 1000, 10)

	require.NoError(t, err)
}

func TestBusinessService_ListingQR_Success(t *testing.T) {
	service, userRepo, _, qrcodeService := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	userRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.User{
		ID:              businessID,
		BusinessProfile: &entity.BusinessProfile{UserID: businessID, BusinessName: "Cafe"},
	}, nil)
	qrcodeService.EXPECT().GenerateListingQR(businessID).Return(png, nil)

	result, err := service.ListingQR(ctx, businessID)

	require.NoError(t, err)
	assert.Equal(t, png, result)
}

func TestBusinessService_ListingQR_NoBusinessProfile(t *testing.T) {
	service, userRepo, _, _ := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.User{ID: businessID}, nil)

	_, err := service.ListingQR(ctx, businessID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessProfileNotFound)
}

func TestBusinessService_ResolveListingQR_Success(t *testing.T) {
	service, userRepo, _, qrcodeService := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	qrData := "https://wayfare.example.com/b/" + businessID.String()
	profile := &entity.BusinessProfile{UserID: businessID, BusinessName: "Cafe", Category: "cafe"}

	qrcodeService.EXPECT().ParseListingQR(qrData).Return(businessID, nil)
	userRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.User{
		ID:              businessID,
		BusinessProfile: profile,
	}, nil)

	resolved, err := service.ResolveListingQR(ctx, qrData)

	require.NoError(t, err)
	assert.Equal(t, profile, resolved)
}

func TestBusinessService_ResolveListingQR_MalformedData(t *testing.T) {
	service, _, _, qrcodeService := createTestBusinessService(t)

	ctx := context.Background()

	qrcodeService.EXPECT().
		ParseListingQR("not-a-listing-link").
		Return(uuid.Nil, assert.AnError)

	_, err := service.ResolveListingQR(ctx, "not-a-listing-link")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBusinessService_ResolveListingQR_UserNotFound(t *testing.T) {
	service, userRepo, _, qrcodeService := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()

	qrcodeService.EXPECT().ParseListingQR(mock.Anything).Return(businessID, nil)
	userRepo.EXPECT().FindByID(ctx, businessID).Return(nil, repository.ErrUserNotFound)

	_, err := service.ResolveListingQR(ctx, "https://wayfare.example.com/b/"+businessID.String())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestBusinessService_ResolveListingQR_NoBusinessProfile(t *testing.T) {
	service, userRepo, _, qrcodeService := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()

	qrcodeService.EXPECT().ParseListingQR(mock.Anything).Return(businessID, nil)
	userRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.User{ID: businessID}, nil)

	_, err := service.ResolveListingQR(ctx, "https://wayfare.example.com/b/"+businessID.String())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessProfileNotFound)
}

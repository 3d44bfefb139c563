package impl

import (
	"context"
	"testing"
	"time"

	"wayfare/config"
	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	"wayfare/internal/infra/geo"
	mockRepo "wayfare/internal/mocks/repository"
	mockSvc "wayfare/internal/mocks/service"
	mockUC "wayfare/internal/mocks/usecase"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProximityService(t *testing.T, cfg *config.Config) (
	usecase.ProximityUsecase,
	*mockRepo.MockUserRepository,
	*mockRepo.MockProximityNotificationRepository,
	*mockUC.MockCandidateSource,
	*mockSvc.MockEventPublisher,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	notificationRepo := mockRepo.NewMockProximityNotificationRepository(t)
	candidates := mockUC.NewMockCandidateSource(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	if cfg == nil {
		cfg = &config.Config{}
	}

	service := NewProximityService(
		userRepo,
		notificationRepo,
		candidates,
		publisher,
		newDiscardLogger(),
		cfg,
	)

	return service, userRepo, notificationRepo, candidates, publisher
}

func testTraveler(id uuid.UUID) *entity.User {
	return &entity.User{
		ID: id,
		TravelerProfile: &entity.TravelerProfile{
			UserID:     id,
			Interests:  []string{"food", "art", "history"},
			Activities: []string{"hiking"},
		},
	}
}

func testBusiness(name string, lat, lon float64, interests, activities []string) *entity.BusinessProfile {
	return &entity.BusinessProfile{
		UserID:                 uuid.New(),
		BusinessName:           name,
		Latitude:               &lat,
		Longitude:              &lon,
		LocationSharingEnabled: true,
		Interests:              interests,
		Activities:             activities,
	}
}

func TestProximityService_CheckProximity_Notified(t *testing.T) {
	service, userRepo, notificationRepo, candidates, publisher := createTestProximityService(t, nil)

	ctx := context.Background()
	travelerID := uuid.New()
	business := testBusiness("Nearby Cafe", 40.001, -74.001, []string{"food", "art"}, []string{"hiking"})

	userRepo.EXPECT().FindByID(ctx, travelerID).Return(testTraveler(travelerID), nil)
	candidates.EXPECT().Candidates(ctx, 40.0, -74.0, 11.265).Return([]*entity.BusinessProfile{business}, nil)
	notificationRepo.EXPECT().
		HasRecentNotification(ctx, business.UserID, travelerID, mock.Anything).
		Return(false, nil)
	notificationRepo.EXPECT().
		CreateIfAbsent(ctx, mock.Anything, 7*24*time.Hour).
		Return(true, nil)
	publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(nil)

	outcomes, err := service.CheckProximityForTraveler(ctx, travelerID, 40.0, -74.0)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, entity.CandidateNotified, outcomes[0].Status)
	require.NotNil(t, outcomes[0].Match)
	// 2 interests + 1 activity = high priority
	assert.Equal(t, 3, outcomes[0].Match.MatchCount)
	assert.Equal(t, entity.PriorityHigh, outcomes[0].Match.Priority)
	assert.Equal(t, []string{"food", "art"}, outcomes[0].Match.MatchedInterests)
	assert.Equal(t, []string{"hiking"}, outcomes[0].Match.MatchedActivities)
}

func TestProximityService_CheckProximity_MediumPriority(t *testing.T) {
	service, userRepo, notificationRepo, candidates, publisher := createTestProximityService(t, nil)

	ctx := context.Background()
	travelerID := uuid.New()
	business := testBusiness("Gallery", 40.001, -74.001, []string{"art", "history"}, nil)

	userRepo.EXPECT().FindByID(ctx, travelerID).Return(testTraveler(travelerID), nil)
	candidates.EXPECT().Candidates(ctx, 40.0, -74.0, 11.265).Return([]*entity.BusinessProfile{business}, nil)
	notificationRepo.EXPECT().
		HasRecentNotification(ctx, business.UserID, travelerID, mock.Anything).
		Return(false, nil)
	notificationRepo.EXPECT().
		CreateIfAbsent(ctx, mock.MatchedBy(func(n *entity.ProximityNotification) bool {
			return n.Priority == entity.PriorityMedium
		}), mock.Anything).
		Return(true, nil)
	publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(nil)

	outcomes, err := service.CheckProximityForTraveler(ctx, travelerID, 40.0, -74.0)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, entity.CandidateNotified, outcomes[0].Status)
	assert.Equal(t, entity.PriorityMedium, outcomes[0].Match.Priority)
}

func TestProximityService_CheckProximity_OutOfRange(t *testing.T) {
	service, userRepo, _, candidates, _ := createTestProximityService(t, nil)

	ctx := context.Background()
	travelerID := uuid.New()
	// Roughly 111 km north, well outside the 11.265 km radius.
	business := testBusiness("Far Away", 41.0, -74.0, []string{"food"}, nil)

	userRepo.EXPECT().FindByID(ctx, travelerID).Return(testTraveler(travelerID), nil)
	candidates.EXPECT().Candidates(ctx, 40.0, -74.0, 11.265).Return([]*entity.BusinessProfile{business}, nil)

	outcomes, err := service.CheckProximityForTraveler(ctx, travelerID, 40.0, -74.0)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, entity.CandidateOutOfRange, outcomes[0].Status)
	assert.Nil(t, outcomes[0].Match)
}

func TestProximityService_CheckProximity_ExactRadiusBoundaryIsIncluded(t *testing.T) {
	// A business sitting exactly on the radius still counts as nearby.
	business := testBusiness("On The Edge", 40.1, -74.0, []string{"food"}, nil)
	distance := geo.DistanceKm(40.0, -74.0, 40.1, -74.0)

	cfg := &config.Config{Proximity: &config.ProximityConfig{RadiusKm: distance}}
	service, userRepo, notificationRepo, candidates, publisher := createTestProximityService(t, cfg)

	ctx := context.Background()
	travelerID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, travelerID).Return(testTraveler(travelerID), nil)
	candidates.EXPECT().Candidates(ctx, 40.0, -74.0, distance).Return([]*entity.BusinessProfile{business}, nil)
	notificationRepo.EXPECT().
		HasRecentNotification(ctx, business.UserID, travelerID, mock.Anything).
		Return(false, nil)
	notificationRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything, mock.Anything).Return(true, nil)
	publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(nil)

	outcomes, err := service.CheckProximityForTraveler(ctx, travelerID, 40.0, -74.0)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, entity.CandidateNotified, outcomes[0].Status)
}

func TestProximityService_CheckProximity_NoMatch(t *testing.T) {
	service, userRepo, _, candidates, _ := createTestProximityService(t, nil)

	ctx := context.Background()
	travelerID := uuid.New()
	business := testBusiness("Hardware Store", 40.001, -74.001, []string{"tools"}, []string{"repairs"})

	userRepo.EXPECT().FindByID(ctx, travelerID).Return(testTraveler(travelerID), nil)
	candidates.EXPECT().Candidates(ctx, 40.0, -74.0, 11.265).Return([]*entity.BusinessProfile{business}, nil)

	outcomes, err := service.CheckProximityForTraveler(ctx, travelerID, 40.0, -74.0)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, entity.CandidateNoMatch, outcomes[0].Status)
}

func TestProximityService_CheckProximity_CaseMismatchDoesNotMatchByDefault(t *testing.T) {
	service, userRepo, _, candidates, _ := createTestProximityService(t, nil)

	ctx := context.Background()
	travelerID := uuid.New()
	business := testBusiness("Shouty Cafe", 40.001, -74.001, []string{"Food", "ART"}, nil)

	userRepo.EXPECT().FindByID(ctx, travelerID).Return(testTraveler(travelerID), nil)
	candidates.EXPECT().Candidates(ctx, 40.0, -74.0, 11.265).Return([]*entity.BusinessProfile{business}, nil)

	outcomes, err := service.CheckProximityForTraveler(ctx, travelerID, 40.0, -74.0)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, entity.CandidateNoMatch, outcomes[0].Status)
}

func TestProximityService_CheckProximity_NormalizedMatching(t *testing.T) {
	cfg := &config.Config{Proximity: &config.ProximityConfig{NormalizeTags: true}}
	service, userRepo, notificationRepo, candidates, publisher := createTestProximityService(t, cfg)

	ctx := context.Background()
	travelerID := uuid.New()
	business := testBusiness("Shouty Cafe", 40.001, -74.001, []string{"Food", " ART "}, nil)

	userRepo.EXPECT().FindByID(ctx, travelerID).Return(testTraveler(travelerID), nil)
	candidates.EXPECT().Candidates(ctx, 40.0, -74.0, 11.265).Return([]*entity.BusinessProfile{business}, nil)
	notificationRepo.EXPECT().
		HasRecentNotification(ctx, business.UserID, travelerID, mock.Anything).
		Return(false, nil)
	notificationRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything, mock.Anything).Return(true, nil)
	publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(nil)

	outcomes, err := service.CheckProximityForTraveler(ctx, travelerID, 40.0, -74.0)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, entity.CandidateNotified, outcomes[0].Status)
	// Matched tags keep the traveler's spelling, not the business's.
	assert.Equal(t, []string{"food", "art"}, outcomes[0].Match.MatchedInterests)
}

func TestProximityService_CheckProximity_Cooldown(t *testing.T) {
	service, userRepo, notificationRepo, candidates, _ := createTestProximityService(t, nil)

	ctx := context.Background()
	travelerID := uuid.New()
	business := testBusiness("Repeat Cafe", 40.001, -74.001, []string{"food"}, nil)

	userRepo.EXPECT().FindByID(ctx, travelerID).Return(testTraveler(travelerID), nil)
	candidates.EXPECT().Candidates(ctx, 40.0, -74.0, 11.265).Return([]*entity.BusinessProfile{business}, nil)
	notificationRepo.EXPECT().
		HasRecentNotification(ctx, business.UserID, travelerID, mock.MatchedBy(func(after time.Time) bool {
			// The window is a rolling 7 days back from now.
			return time.Since(after) > 7*24*time.Hour-time.Minute && time.Since(after) < 7*24*time.Hour+time.Minute
		})).
		Return(true, nil)

	outcomes, err := service.CheckProximityForTraveler(ctx, travelerID, 40.0, -74.0)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, entity.CandidateCooldown, outcomes[0].Status)
}

func TestProximityService_CheckProximity_LostInsertRaceIsCooldown(t *testing.T) {
	service, userRepo, notificationRepo, candidates, _ := createTestProximityService(t, nil)

	ctx := context.Background()
	travelerID := uuid.New()
	business := testBusiness("Racy Cafe", 40.001, -74.001, []string{"food"}, nil)

	userRepo.EXPECT().FindByID(ctx, travelerID).Return(testTraveler(travelerID), nil)
	candidates.EXPECT().Candidates(ctx, 40.0, -74.0, 11.265).Return([]*entity.BusinessProfile{business}, nil)
	notificationRepo.EXPECT().
		HasRecentNotification(ctx, business.UserID, travelerID, mock.Anything).
		Return(false, nil)
	// A concurrent invocation won the insert; ours is suppressed.
	notificationRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything, mock.Anything).Return(false, nil)

	outcomes, err := service.CheckProximityForTraveler(ctx, travelerID, 40.0, -74.0)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, entity.CandidateCooldown, outcomes[0].Status)
}

func TestProximityService_CheckProximity_UnknownTravelerIsNoOp(t *testing.T) {
	service, userRepo, _, _, _ := createTestProximityService(t, nil)

	ctx := context.Background()
	travelerID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, travelerID).Return(nil, repository.ErrUserNotFound)

	outcomes, err := service.CheckProximityForTraveler(ctx, travelerID, 40.0, -74.0)

	require.NoError(t, err)
	assert.Nil(t, outcomes)
}

func TestProximityService_CheckProximity_UserWithoutTravelerProfileIsNoOp(t *testing.T) {
	service, userRepo, _, _, _ := createTestProximityService(t, nil)

	ctx := context.Background()
	travelerID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, travelerID).Return(&entity.User{ID: travelerID}, nil)

	outcomes, err := service.CheckProximityForTraveler(ctx, travelerID, 40.0, -74.0)

	require.NoError(t, err)
	assert.Nil(t, outcomes)
}

func TestProximityService_CheckProximity_CandidateFetchFailureIsFatal(t *testing.T) {
	service, userRepo, _, candidates, _ := createTestProximityService(t, nil)

	ctx := context.Background()
	travelerID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, travelerID).Return(testTraveler(travelerID), nil)
	candidates.EXPECT().Candidates(ctx, 40.0, -74.0, 11.265).Return(nil, errors.New("store unavailable"))

	outcomes, err := service.CheckProximityForTraveler(ctx, travelerID, 40.0, -74.0)

	require.Error(t, err)
	assert.Nil(t, outcomes)
}

func TestProximityService_CheckProximity_PersistFailureOnlyAffectsThatCandidate(t *testing.T) {
	service, userRepo, notificationRepo, candidates, publisher := createTestProximityService(t, nil)

	ctx := context.Background()
	travelerID := uuid.New()
	failing := testBusiness("Failing Cafe", 40.001, -74.001, []string{"food"}, nil)
	healthy := testBusiness("Healthy Cafe", 40.002, -74.002, []string{"art"}, nil)

	userRepo.EXPECT().FindByID(ctx, travelerID).Return(testTraveler(travelerID), nil)
	candidates.EXPECT().Candidates(ctx, 40.0, -74.0, 11.265).
		Return([]*entity.BusinessProfile{failing, healthy}, nil)

	notificationRepo.EXPECT().
		HasRecentNotification(ctx, failing.UserID, travelerID, mock.Anything).
		Return(false, nil)
	notificationRepo.EXPECT().
		CreateIfAbsent(ctx, mock.MatchedBy(func(n *entity.ProximityNotification) bool {
			return n.BusinessID == failing.UserID
		}), mock.Anything).
		Return(false, errors.New("insert failed"))

	notificationRepo.EXPECT().
		HasRecentNotification(ctx, healthy.UserID, travelerID, mock.Anything).
		Return(false, nil)
	notificationRepo.EXPECT().
		CreateIfAbsent(ctx, mock.MatchedBy(func(n *entity.ProximityNotification) bool {
			return n.BusinessID == healthy.UserID
		}), mock.Anything).
		Return(true, nil)
	publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(nil)

	outcomes, err := service.CheckProximityForTraveler(ctx, travelerID, 40.0, -74.0)

	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, entity.CandidateFailed, outcomes[0].Status)
	assert.Error(t, outcomes[0].Err)
	assert.Equal(t, entity.CandidateNotified, outcomes[1].Status)
}

func TestProximityService_CheckProximity_PublishFailureIsNonFatal(t *testing.T) {
	service, userRepo, notificationRepo, candidates, publisher := createTestProximityService(t, nil)

	ctx := context.Background()
	travelerID := uuid.New()
	business := testBusiness("Quiet Cafe", 40.001, -74.001, []string{"food"}, nil)

	userRepo.EXPECT().FindByID(ctx, travelerID).Return(testTraveler(travelerID), nil)
	candidates.EXPECT().Candidates(ctx, 40.0, -74.0, 11.265).Return([]*entity.BusinessProfile{business}, nil)
	notificationRepo.EXPECT().
		HasRecentNotification(ctx, business.UserID, travelerID, mock.Anything).
		Return(false, nil)
	notificationRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything, mock.Anything).Return(true, nil)
	publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	outcomes, err := service.CheckProximityForTraveler(ctx, travelerID, 40.0, -74.0)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, entity.CandidateNotified, outcomes[0].Status)
}

func TestProximityService_CheckProximity_CandidateWithoutCoordinates(t *testing.T) {
	service, userRepo, _, candidates, _ := createTestProximityService(t, nil)

	ctx := context.Background()
	travelerID := uuid.New()
	business := &entity.BusinessProfile{
		UserID:       uuid.New(),
		BusinessName: "Nowhere Cafe",
		Interests:    []string{"food"},
	}

	userRepo.EXPECT().FindByID(ctx, travelerID).Return(testTraveler(travelerID), nil)
	candidates.EXPECT().Candidates(ctx, 40.0, -74.0, 11.265).Return([]*entity.BusinessProfile{business}, nil)

	outcomes, err := service.CheckProximityForTraveler(ctx, travelerID, 40.0, -74.0)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, entity.CandidateInvalidLocation, outcomes[0].Status)
}

func TestProximityService_CheckProximity_StaleLocation(t *testing.T) {
	cfg := &config.Config{Proximity: &config.ProximityConfig{MaxLocationAge: time.Hour}}
	service, userRepo, _, candidates, _ := createTestProximityService(t, cfg)

	ctx := context.Background()
	travelerID := uuid.New()
	business := testBusiness("Stale Cafe", 40.001, -74.001, []string{"food"}, nil)
	business.LocationUpdatedAt = ptr(time.Now().Add(-2 * time.Hour))

	userRepo.EXPECT().FindByID(ctx, travelerID).Return(testTraveler(travelerID), nil)
	candidates.EXPECT().Candidates(ctx, 40.0, -74.0, 11.265).Return([]*entity.BusinessProfile{business}, nil)

	outcomes, err := service.CheckProximityForTraveler(ctx, travelerID, 40.0, -74.0)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, entity.CandidateStaleLocation, outcomes[0].Status)
}

func TestProximityService_CheckProximity_InvalidTravelerCoordinates(t *testing.T) {
	service, _, _, _, _ := createTestProximityService(t, nil)

	_, err := service.CheckProximityForTraveler(context.Background(), uuid.New(), 91.0, 0.0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

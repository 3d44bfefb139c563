package impl

import (
	"context"
	"testing"

	"wayfare/internal/domain/entity"
	mockRepo "wayfare/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sharingBusiness(lat, lon float64) *entity.BusinessProfile {
	return &entity.BusinessProfile{
		UserID:                 uuid.New(),
		BusinessName:           "Candidate",
		Latitude:               &lat,
		Longitude:              &lon,
		LocationSharingEnabled: true,
	}
}

func TestStoreScanSource_ReturnsEverySharingBusiness(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	source := &storeScanSource{userRepo: userRepo}

	ctx := context.Background()
	businesses := []*entity.BusinessProfile{
		sharingBusiness(40.0, -74.0),
		sharingBusiness(41.0, -74.0),
	}

	userRepo.EXPECT().FindBusinessesWithLocationSharing(ctx).Return(businesses, nil)

	candidates, err := source.Candidates(ctx, 40.0, -74.0, 11.265)

	require.NoError(t, err)
	assert.Equal(t, businesses, candidates)
}

func TestIndexedCandidateSource_QueryAfterRefresh(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	source := &indexedCandidateSource{
		userRepo:   userRepo,
		logger:     newDiscardLogger(),
		cellSizeKm: 5,
	}

	ctx := context.Background()
	near := sharingBusiness(40.01, -74.01)
	far := sharingBusiness(50.0, 10.0)
	noCoords := &entity.BusinessProfile{UserID: uuid.New(), BusinessName: "No Coords"}

	userRepo.EXPECT().FindBusinessesWithLocationSharing(ctx).
		Return([]*entity.BusinessProfile{near, far, noCoords}, nil)

	require.NoError(t, source.refresh(ctx))

	candidates, err := source.Candidates(ctx, 40.0, -74.0, 11.265)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, near.UserID, candidates[0].UserID)
}

func TestIndexedCandidateSource_LazyInitialRefresh(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	source := &indexedCandidateSource{
		userRepo:   userRepo,
		logger:     newDiscardLogger(),
		cellSizeKm: 5,
	}

	ctx := context.Background()
	near := sharingBusiness(40.01, -74.01)

	userRepo.EXPECT().FindBusinessesWithLocationSharing(ctx).
		Return([]*entity.BusinessProfile{near}, nil)

	// No explicit refresh; the first query builds the snapshot.
	candidates, err := source.Candidates(ctx, 40.0, -74.0, 11.265)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
}

func TestIndexedCandidateSource_RefreshFailurePropagatesWhenNoSnapshot(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	source := &indexedCandidateSource{
		userRepo:   userRepo,
		logger:     newDiscardLogger(),
		cellSizeKm: 5,
	}

	ctx := context.Background()

	userRepo.EXPECT().FindBusinessesWithLocationSharing(ctx).
		Return(nil, errors.New("store unavailable"))

	_, err := source.Candidates(ctx, 40.0, -74.0, 11.265)

	require.Error(t, err)
}

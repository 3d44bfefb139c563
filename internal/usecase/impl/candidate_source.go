package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wayfare/config"
	"wayfare/internal/domain/entity"
	"wayfare/internal/domain/repository"
	"wayfare/internal/infra/geo"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultIndexRefreshInterval = 5 * time.Minute

// storeScanSource returns every sharing business straight from the store.
// Fine for moderate business counts; the engine filters by distance anyway.
type storeScanSource struct {
	userRepo repository.UserRepository
}

func (s *storeScanSource) Candidates(ctx context.Context, _, _, _ float64) ([]*entity.BusinessProfile, error) {
	return s.userRepo.FindBusinessesWithLocationSharing(ctx)
}

// indexedCandidateSource keeps a periodically rebuilt grid-index snapshot of
// sharing businesses and answers candidate queries from it. Queries return a
// superset of the in-radius businesses; exact distances are re-checked by the
// engine. Snapshots are swapped atomically under the lock, so readers never
// see a half-built index.
type indexedCandidateSource struct {
	userRepo   repository.UserRepository
	logger     *slog.Logger
	cellSizeKm float64

	mu       sync.RWMutex
	index    *geo.GridIndex
	profiles map[uuid.UUID]*entity.BusinessProfile
}

func (s *indexedCandidateSource) Candidates(ctx context.Context, lat, lon, radiusKm float64) ([]*entity.BusinessProfile, error) {
	s.mu.RLock()
	index := s.index
	profiles := s.profiles
	s.mu.RUnlock()

	// Before the first successful refresh there is no snapshot to serve from.
	if index == nil {
		if err := s.refresh(ctx); err != nil {
			return nil, err
		}
		s.mu.RLock()
		index = s.index
		profiles = s.profiles
		s.mu.RUnlock()
	}

	ids := index.Query(lat, lon, radiusKm)
	candidates := make([]*entity.BusinessProfile, 0, len(ids))
	for _, id := range ids {
		if profile, ok := profiles[id]; ok {
			candidates = append(candidates, profile)
		}
	}

	return candidates, nil
}

// refresh rebuilds the snapshot from the store.
func (s *indexedCandidateSource) refresh(ctx context.Context) error {
	businesses, err := s.userRepo.FindBusinessesWithLocationSharing(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to refresh candidate index")
	}

	index := geo.NewGridIndex(s.cellSizeKm)
	profiles := make(map[uuid.UUID]*entity.BusinessProfile, len(businesses))
	for _, business := range businesses {
		if !business.HasCoordinates() {
			continue
		}
		index.Insert(business.UserID, *business.Latitude, *business.Longitude)
		profiles[business.UserID] = business
	}

	s.mu.Lock()
	s.index = index
	s.profiles = profiles
	s.mu.Unlock()

	s.logger.Debug("candidate index refreshed",
		slog.Int("businesses", index.Size()),
	)

	return nil
}

func (s *indexedCandidateSource) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.refresh(ctx); err != nil {
				s.logger.Error("candidate index refresh failed",
					slog.Any("error", err),
				)
			}
		}
	}
}

// CandidateSourceParams holds dependencies for the candidate source, injected by Fx
type CandidateSourceParams struct {
	fx.In
	fx.Lifecycle

	UserRepo repository.UserRepository
	Logger   *slog.Logger
	Config   *config.Config
}

// NewCandidateSource creates a CandidateSource based on configuration. The
// grid-index prefilter is opt-in; the default scans the store per invocation.
func NewCandidateSource(params CandidateSourceParams) usecase.CandidateSource {
	indexCfg := params.Config.ProximityOrDefault().CandidateIndex
	if indexCfg == nil || !indexCfg.Enabled {
		return &storeScanSource{userRepo: params.UserRepo}
	}

	source := &indexedCandidateSource{
		userRepo:   params.UserRepo,
		logger:     params.Logger,
		cellSizeKm: indexCfg.CellSizeKm,
	}

	interval := indexCfg.RefreshInterval
	if interval <= 0 {
		interval = defaultIndexRefreshInterval
	}

	runCtx, cancel := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			// A failed initial build is not fatal; Candidates retries lazily.
			if err := source.refresh(startCtx); err != nil {
				params.Logger.Warn("initial candidate index build failed",
					slog.Any("error", err),
				)
			}
			go source.run(runCtx, interval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()

			return nil
		},
	})

	return source
}

// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"wayfare/config"
	reqctx "wayfare/internal/delivery/context"
	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/matching"
	"wayfare/internal/domain/repository"
	"wayfare/internal/domain/service"
	"wayfare/internal/infra/geo"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type proximityService struct {
	userRepo         repository.UserRepository
	notificationRepo repository.ProximityNotificationRepository
	candidates       usecase.CandidateSource
	publisher        service.EventPublisher
	logger           *slog.Logger

	radiusKm       float64
	cooldown       time.Duration
	maxLocationAge time.Duration
	normalization  matching.Normalization
}

// NewProximityService creates the proximity notification engine.
func NewProximityService(
	userRepo repository.UserRepository,
	notificationRepo repository.ProximityNotificationRepository,
	candidates usecase.CandidateSource,
	publisher service.EventPublisher,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.ProximityUsecase {
	proximityCfg := cfg.ProximityOrDefault()

	normalization := matching.NormalizationExact
	if proximityCfg.NormalizeTags {
		normalization = matching.NormalizationFold
	}

	return &proximityService{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		candidates:       candidates,
		publisher:        publisher,
		logger:           logger,
		radiusKm:         proximityCfg.RadiusKm,
		cooldown:         proximityCfg.Cooldown,
		maxLocationAge:   proximityCfg.MaxLocationAge,
		normalization:    normalization,
	}
}

// CheckProximityForTraveler evaluates every candidate business against one
// traveler location update and returns one outcome per candidate.
//
// Failures are scoped deliberately: a missing traveler profile is a silent
// no-op, a candidate fetch failure aborts the whole batch, and any failure
// for a single candidate affects only that candidate. Outcomes already
// produced stay produced; there is no rollback across candidates.
func (s *proximityService) CheckProximityForTraveler(ctx context.Context, travelerID uuid.UUID, lat, lon float64) ([]entity.CandidateOutcome, error) {
	logger := reqctx.GetLoggerOrDefault(ctx, s.logger)

	if !geo.ValidCoordinate(lat, lon) {
		return nil, domainerrors.ErrInvalidCoordinates.WrapMessage(
			fmt.Sprintf("traveler coordinates (%f, %f)", lat, lon),
		)
	}

	traveler, err := s.userRepo.FindByID(ctx, travelerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logger.Warn("proximity check for unknown traveler, skipping",
				slog.String("traveler_id", travelerID.String()),
			)

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load traveler")
	}
	if traveler.TravelerProfile == nil {
		logger.Warn("proximity check for user without traveler profile, skipping",
			slog.String("traveler_id", travelerID.String()),
		)

		return nil, nil
	}

	travelerTags := matching.TravelerTags(traveler.TravelerProfile)

	candidates, err := s.candidates.Candidates(ctx, lat, lon, s.radiusKm)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch candidate businesses")
	}

	outcomes := make([]entity.CandidateOutcome, 0, len(candidates))
	for _, candidate := range candidates {
		outcomes = append(outcomes, s.evaluateCandidate(ctx, logger, traveler, travelerTags, candidate, lat, lon))
	}

	logger.Info("proximity check completed",
		slog.String("traveler_id", travelerID.String()),
		slog.Int("candidates", len(outcomes)),
		slog.Int("notified", countStatus(outcomes, entity.CandidateNotified)),
	)

	return outcomes, nil
}

func (s *proximityService) evaluateCandidate(
	ctx context.Context,
	logger *slog.Logger,
	traveler *entity.User,
	travelerTags matching.TagProfile,
	candidate *entity.BusinessProfile,
	lat, lon float64,
) entity.CandidateOutcome {
	outcome := entity.CandidateOutcome{
		BusinessID:   candidate.UserID,
		BusinessName: candidate.BusinessName,
	}

	if !candidate.HasCoordinates() || !geo.ValidCoordinate(*candidate.Latitude, *candidate.Longitude) {
		outcome.Status = entity.CandidateInvalidLocation

		return outcome
	}

	if s.maxLocationAge > 0 {
		if candidate.LocationUpdatedAt == nil || time.Since(*candidate.LocationUpdatedAt) > s.maxLocationAge {
			outcome.Status = entity.CandidateStaleLocation

			return outcome
		}
	}

	distance := geo.DistanceKm(lat, lon, *candidate.Latitude, *candidate.Longitude)
	outcome.DistanceKm = distance

	// Exactly on the radius still counts as nearby.
	if distance > s.radiusKm {
		outcome.Status = entity.CandidateOutOfRange

		return outcome
	}

	match, ok := matching.Score(travelerTags, matching.BusinessTags(candidate), s.normalization)
	if !ok {
		outcome.Status = entity.CandidateNoMatch

		return outcome
	}
	outcome.Match = &match

	// Cheap read-side cooldown check first. The authoritative gate is the
	// uniqueness constraint inside CreateIfAbsent; this only avoids building
	// rows that would be discarded anyway.
	recently, err := s.notificationRepo.HasRecentNotification(ctx, candidate.UserID, traveler.ID, time.Now().Add(-s.cooldown))
	if err != nil {
		outcome.Status = entity.CandidateFailed
		outcome.Err = err
		logger.Error("cooldown check failed",
			slog.String("business_id", candidate.UserID.String()),
			slog.Any("error", err),
		)

		return outcome
	}
	if recently {
		outcome.Status = entity.CandidateCooldown

		return outcome
	}

	notification := &entity.ProximityNotification{
		BusinessID:        candidate.UserID,
		TravelerID:        traveler.ID,
		MatchType:         entity.MatchTypeTravelerInterest,
		MatchedInterests:  match.MatchedInterests,
		MatchedActivities: match.MatchedActivities,
		DistanceLabel:     fmt.Sprintf("%.1fkm away", distance),
		Priority:          match.Priority,
	}

	created, err := s.notificationRepo.CreateIfAbsent(ctx, notification, s.cooldown)
	if err != nil {
		outcome.Status = entity.CandidateFailed
		outcome.Err = err
		logger.Error("failed to persist notification",
			slog.String("business_id", candidate.UserID.String()),
			slog.Any("error", err),
		)

		return outcome
	}
	if !created {
		// Lost the race against a concurrent invocation for the same pair.
		outcome.Status = entity.CandidateCooldown

		return outcome
	}

	outcome.Status = entity.CandidateNotified
	s.publishMatchEvent(ctx, logger, notification)

	return outcome
}

// publishMatchEvent announces a created notification downstream. Publishing is
// best effort: the notification row is already committed and a delivery
// failure must not fail the candidate.
func (s *proximityService) publishMatchEvent(ctx context.Context, logger *slog.Logger, notification *entity.ProximityNotification) {
	event := &service.ProximityMatchEvent{
		RequestID:         reqctx.GetRequestIDFromContext(ctx),
		NotificationID:    notification.ID.String(),
		BusinessID:        notification.BusinessID.String(),
		TravelerID:        notification.TravelerID.String(),
		Priority:          string(notification.Priority),
		MatchedInterests:  notification.MatchedInterests,
		MatchedActivities: notification.MatchedActivities,
		DistanceLabel:     notification.DistanceLabel,
	}

	if err := s.publisher.PublishMatchEvent(ctx, event); err != nil {
		logger.Warn("failed to publish match event",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
		)
	}
}

func countStatus(outcomes []entity.CandidateOutcome, status entity.CandidateStatus) int {
	var n int
	for _, outcome := range outcomes {
		if outcome.Status == status {
			n++
		}
	}

	return n
}

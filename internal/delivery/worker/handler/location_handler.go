// Package handler contains the Pub/Sub push handlers for the geo worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"wayfare/config"
	deliverycontext "wayfare/internal/delivery/context"
	"wayfare/internal/domain/constants"
	"wayfare/internal/domain/entity"
	"wayfare/internal/domain/service"
	"wayfare/internal/infra/geo"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// LocationHandler handles Pub/Sub push messages carrying traveler location updates
type LocationHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	proximityUC    usecase.ProximityUsecase
}

// LocationHandlerParams holds dependencies for the LocationHandler
type LocationHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	ProximityUC usecase.ProximityUsecase
}

// NewLocationHandler creates a new Pub/Sub push handler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	// Only Google-delivered pushes outside development carry a verifiable token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &LocationHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		proximityUC:    params.ProximityUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *LocationHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse location event
	var event service.TravelerLocationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse location event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing traveler location event",
		slog.String("traveler_id", event.TravelerID),
		slog.Float64("latitude", event.Latitude),
		slog.Float64("longitude", event.Longitude),
	)

	if err := h.processLocation(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process location event",
			slog.String("traveler_id", event.TravelerID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *LocationHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.TravelerLocationEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processLocation runs the proximity engine for one traveler location update
func (h *LocationHandler) processLocation(ctx context.Context, event *service.TravelerLocationEvent) error {
	travelerID, err := uuid.Parse(event.TravelerID)
	if err != nil {
		return errors.Wrap(err, "invalid traveler id")
	}

	if !geo.ValidCoordinate(event.Latitude, event.Longitude) {
		return errors.Errorf("invalid coordinates: lat=%f lon=%f", event.Latitude, event.Longitude)
	}

	outcomes, err := h.proximityUC.CheckProximityForTraveler(ctx, travelerID, event.Latitude, event.Longitude)
	if err != nil {
		// Candidate lookup failures are transient; redeliver the message
		return newRetryableError(errors.WithStack(err))
	}

	notified := 0
	for _, outcome := range outcomes {
		if outcome.Status == entity.CandidateNotified {
			notified++
		}
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Proximity check completed",
		slog.String("traveler_id", event.TravelerID),
		slog.Int("evaluated", len(outcomes)),
		slog.Int("notified", notified),
	)

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this push endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"wayfare/internal/delivery/http/response"
	"wayfare/internal/domain/entity"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProximityHandlerParams holds dependencies for ProximityHandler, injected by Fx.
type ProximityHandlerParams struct {
	fx.In

	ProximityUC usecase.ProximityUsecase
	Logger      *slog.Logger
}

// ProximityHandler handles traveler location reports and the proximity checks they trigger.
type ProximityHandler struct {
	proximityUC usecase.ProximityUsecase
	logger      *slog.Logger
}

// NewProximityHandler is the constructor for ProximityHandler
func NewProximityHandler(params ProximityHandlerParams) *ProximityHandler {
	return &ProximityHandler{
		proximityUC: params.ProximityUC,
		logger:      params.Logger,
	}
}

// ReportLocationRequest represents the request body for a traveler location report
type ReportLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// CandidateOutcomeResponse is the per-business result of a proximity check
type CandidateOutcomeResponse struct {
	BusinessID        string   `json:"business_id"`
	BusinessName      string   `json:"business_name,omitempty"`
	Status            string   `json:"status"`
	DistanceKm        float64  `json:"distance_km"`
	Priority          string   `json:"priority,omitempty"`
	MatchedInterests  []string `json:"matched_interests,omitempty"`
	MatchedActivities []string `json:"matched_activities,omitempty"`
}

// ReportLocationResponse summarizes a proximity check for the reporting traveler
type ReportLocationResponse struct {
	Evaluated int                        `json:"evaluated"`
	Notified  int                        `json:"notified"`
	Outcomes  []CandidateOutcomeResponse `json:"outcomes"`
}

// ReportLocation handles a traveler location report and runs the proximity check
func (h *ProximityHandler) ReportLocation(c echo.Context) error {
	travelerID, err := h.getTravelerID(c)
	if err != nil {
		return err
	}

	var req ReportLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	outcomes, err := h.proximityUC.CheckProximityForTraveler(c.Request().Context(), travelerID, req.Latitude, req.Longitude)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReportLocationResponse(outcomes), "Location processed successfully")
}

// getTravelerID extracts the traveler ID from the context
func (h *ProximityHandler) getTravelerID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	travelerID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return travelerID, nil
}

func toReportLocationResponse(outcomes []entity.CandidateOutcome) ReportLocationResponse {
	resp := ReportLocationResponse{
		Evaluated: len(outcomes),
		Outcomes:  make([]CandidateOutcomeResponse, 0, len(outcomes)),
	}

	for _, outcome := range outcomes {
		item := CandidateOutcomeResponse{
			BusinessID:   outcome.BusinessID.String(),
			BusinessName: outcome.BusinessName,
			Status:       string(outcome.Status),
			DistanceKm:   outcome.DistanceKm,
		}

		if outcome.Match != nil {
			item.Priority = string(outcome.Match.Priority)
			item.MatchedInterests = outcome.Match.MatchedInterests
			item.MatchedActivities = outcome.Match.MatchedActivities
		}

		if outcome.Status == entity.CandidateNotified {
			resp.Notified++
		}

		resp.Outcomes = append(resp.Outcomes, item)
	}

	return resp
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

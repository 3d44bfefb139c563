package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wayfare/internal/delivery/http/validator"
	"wayfare/internal/domain/entity"
	mockUsecase "wayfare/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProximityHandler_ReportLocation_Success(t *testing.T) {
	e := newTestEcho()
	proximityUC := mockUsecase.NewMockProximityUsecase(t)
	handler := &ProximityHandler{proximityUC: proximityUC, logger: newTestLogger()}

	travelerID := uuid.New()
	businessID := uuid.New()

	proximityUC.EXPECT().
		CheckProximityForTraveler(mock.Anything, travelerID, 40.0, -74.0).
		Return([]entity.CandidateOutcome{
			{
				BusinessID:   businessID,
				BusinessName: "Harbor Cafe",
				Status:       entity.CandidateNotified,
				DistanceKm:   1.2,
				Match: &entity.MatchResult{
					MatchedInterests:  []string{"food"},
					MatchedActivities: []string{"hiking"},
					MatchCount:        2,
					Priority:          entity.PriorityMedium,
				},
			},
			{
				BusinessID: uuid.New(),
				Status:     entity.CandidateOutOfRange,
				DistanceKm: 42.0,
			},
		}, nil)

	body := `{"latitude": 40.0, "longitude": -74.0}`
	req := httptest.NewRequest(http.MethodPost, "/traveler/location", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", travelerID)

	require.NoError(t, handler.ReportLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                   `json:"success"`
		Data    ReportLocationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, 2, envelope.Data.Evaluated)
	assert.Equal(t, 1, envelope.Data.Notified)
	require.Len(t, envelope.Data.Outcomes, 2)
	assert.Equal(t, businessID.String(), envelope.Data.Outcomes[0].BusinessID)
	assert.Equal(t, "notified", envelope.Data.Outcomes[0].Status)
	assert.Equal(t, "medium", envelope.Data.Outcomes[0].Priority)
	assert.Equal(t, []string{"food"}, envelope.Data.Outcomes[0].MatchedInterests)
	assert.Equal(t, "out_of_range", envelope.Data.Outcomes[1].Status)
	assert.Empty(t, envelope.Data.Outcomes[1].Priority)
}

func TestProximityHandler_ReportLocation_ValidationError(t *testing.T) {
	e := newTestEcho()
	proximityUC := mockUsecase.NewMockProximityUsecase(t)
	handler := &ProximityHandler{proximityUC: proximityUC, logger: newTestLogger()}

	body := `{"latitude": 95.0, "longitude": -74.0}`
	req := httptest.NewRequest(http.MethodPost, "/traveler/location", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())

	require.NoError(t, handler.ReportLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProximityHandler_ReportLocation_MissingUserID(t *testing.T) {
	e := newTestEcho()
	proximityUC := mockUsecase.NewMockProximityUsecase(t)
	handler := &ProximityHandler{proximityUC: proximityUC, logger: newTestLogger()}

	body := `{"latitude": 40.0, "longitude": -74.0}`
	req := httptest.NewRequest(http.MethodPost, "/traveler/location", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ReportLocation(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

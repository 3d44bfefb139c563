package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wayfare/internal/domain/entity"
	"wayfare/internal/domain/service"
	mockUsecase "wayfare/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPushRequest(t *testing.T, event *service.TravelerLocationEvent, attributes map[string]string) *http.Request {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	pushMsg := PubSubMessage{Subscription: "projects/local/subscriptions/proximity-match-sub"}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.Attributes = attributes
	pushMsg.Message.MessageID = "1"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestLocationHandler_HandlePush_Success(t *testing.T) {
	proximityUC := mockUsecase.NewMockProximityUsecase(t)
	handler := &LocationHandler{logger: newTestLogger(), proximityUC: proximityUC}

	travelerID := uuid.New()

	proximityUC.EXPECT().
		CheckProximityForTraveler(mock.Anything, travelerID, 40.0, -74.0).
		Return([]entity.CandidateOutcome{
			{BusinessID: uuid.New(), Status: entity.CandidateNotified, DistanceKm: 1.0},
		}, nil)

	e := echo.New()
	req := newPushRequest(t, &service.TravelerLocationEvent{
		TravelerID: travelerID.String(),
		Latitude:   40.0,
		Longitude:  -74.0,
	}, map[string]string{"request_id": "req-123"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLocationHandler_HandlePush_UsecaseFailureIsRetried(t *testing.T) {
	proximityUC := mockUsecase.NewMockProximityUsecase(t)
	handler := &LocationHandler{logger: newTestLogger(), proximityUC: proximityUC}

	travelerID := uuid.New()

	proximityUC.EXPECT().
		CheckProximityForTraveler(mock.Anything, travelerID, 40.0, -74.0).
		Return(nil, errors.New("store unavailable"))

	e := echo.New()
	req := newPushRequest(t, &service.TravelerLocationEvent{
		TravelerID: travelerID.String(),
		Latitude:   40.0,
		Longitude:  -74.0,
	}, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLocationHandler_HandlePush_InvalidTravelerIDIsNotRetried(t *testing.T) {
	proximityUC := mockUsecase.NewMockProximityUsecase(t)
	handler := &LocationHandler{logger: newTestLogger(), proximityUC: proximityUC}

	e := echo.New()
	req := newPushRequest(t, &service.TravelerLocationEvent{
		TravelerID: "not-a-uuid",
		Latitude:   40.0,
		Longitude:  -74.0,
	}, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLocationHandler_HandlePush_BadBase64(t *testing.T) {
	proximityUC := mockUsecase.NewMockProximityUsecase(t)
	handler := &LocationHandler{logger: newTestLogger(), proximityUC: proximityUC}

	e := echo.New()
	body := `{"message": {"data": "%%% not base64 %%%", "messageId": "1"}, "subscription": "s"}`
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocationHandler_HandlePush_InvalidCoordinatesIsNotRetried(t *testing.T) {
	proximityUC := mockUsecase.NewMockProximityUsecase(t)
	handler := &LocationHandler{logger: newTestLogger(), proximityUC: proximityUC}

	e := echo.New()
	req := newPushRequest(t, &service.TravelerLocationEvent{
		TravelerID: uuid.New().String(),
		Latitude:   95.0,
		Longitude:  -74.0,
	}, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"wayfare/internal/delivery/http/response"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	Logger     *slog.Logger
}

// BusinessHandler holds dependencies for business-related handlers
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		logger:     params.Logger,
	}
}

// UpdateLocationRequest represents the request body for updating a business
// location. The write is unconditional, so there is no range validation here.
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationSharingRequest represents the request body for toggling location sharing
type LocationSharingRequest struct {
	Enabled bool `json:"enabled"`
}

// UpdateLocation handles updating the business's fixed location
func (h *BusinessHandler) UpdateLocation(c echo.Context) error {
	businessID, err := h.getBusinessID(c)
	if err != nil {
		return err
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	input := &usecase.UpdateBusinessLocationInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	if err := h.businessUC.UpdateLocation(c.Request().Context(), businessID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Location updated"}, "Business location updated successfully")
}

// SetLocationSharing handles enabling or disabling discovery for the business
func (h *BusinessHandler) SetLocationSharing(c echo.Context) error {
	businessID, err := h.getBusinessID(c)
	if err != nil {
		return err
	}

	var req LocationSharingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location sharing input")
	}

	if err := h.businessUC.SetLocationSharing(c.Request().Context(), businessID, req.Enabled); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"enabled": req.Enabled}, "Location sharing updated successfully")
}

// GetNotifications handles retrieving the business's proximity notification history
func (h *BusinessHandler) GetNotifications(c echo.Context) error {
	businessID, err := h.getBusinessID(c)
	if err != nil {
		return err
	}

	limit := parseIntQuery(c, "limit", 0)
	offset := parseIntQuery(c, "offset", 0)

	notifications, err := h.businessUC.NotificationHistory(c.Request().Context(), businessID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// GetShareQR handles generating the QR code that links to the business listing
func (h *BusinessHandler) GetShareQR(c echo.Context) error {
	businessID, err := h.getBusinessID(c)
	if err != nil {
		return err
	}

	png, err := h.businessUC.ListingQR(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveListingQRRequest represents the request body for resolving scanned QR data
type ResolveListingQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// BusinessListingResponse is the listing summary returned for a scanned QR code
type BusinessListingResponse struct {
	BusinessID   string `json:"business_id"`
	BusinessName string `json:"business_name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
}

// ResolveListingQR handles a traveler scanning a business share code
func (h *BusinessHandler) ResolveListingQR(c echo.Context) error {
	var req ResolveListingQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR scan input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "QR data is required")
	}

	profile, err := h.businessUC.ResolveListingQR(c.Request().Context(), req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	listing := BusinessListingResponse{
		BusinessID:   profile.UserID.String(),
		BusinessName: profile.BusinessName,
		Description:  profile.Description,
		Category:     profile.Category,
	}

	return response.Success(c, http.StatusOK, listing, "Business listing resolved successfully")
}

// getBusinessID extracts the business ID from the context.
// For business operations, the userID from the token is the businessID.
func (h *BusinessHandler) getBusinessID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	businessID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return businessID, nil
}

// parseIntQuery parses an integer query parameter, falling back on bad input
func parseIntQuery(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateListingQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://wayfare.example.com/b")
	businessID := uuid.New()

	pngBytes, err := svc.GenerateListingQR(businessID)
	require.NoError(t, err)
	assert.NotEmpty(t, pngBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])
}

func TestParseListingQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")
	businessID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		BusinessID: businessID.String(),
		Type:       "listing",
	})
	require.NoError(t, err)

	parsed, err := svc.ParseListingQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, businessID, parsed)
}

func TestParseListingQR_WrongType(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	payload, err := json.Marshal(QRCodeData{
		BusinessID: uuid.New().String(),
		Type:       "subscription",
	})
	require.NoError(t, err)

	_, err = svc.ParseListingQR(string(payload))
	assert.Error(t, err)
}

func TestParseListingQR_InvalidJSON(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	_, err := svc.ParseListingQR("not json")
	assert.Error(t, err)
}

func TestParseListingQR_InvalidUUID(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	payload, err := json.Marshal(QRCodeData{
		BusinessID: "not-a-uuid",
		Type:       "listing",
	})
	require.NoError(t, err)

	_, err = svc.ParseListingQR(string(payload))
	assert.Error(t, err)
}

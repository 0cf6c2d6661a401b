package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Lowercase level", 256, "h"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateLinkQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateLinkQR("shop://product/" + uuid.NewString())
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateLinkQR_Sizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M")

		qrBytes, err := service.GenerateLinkQR("shop://product/" + uuid.NewString())
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
		assert.Equal(t, size, img.Bounds().Dy())
	}
}

func TestQRCodeService_GenerateLinkQR_DifferentLinksDiffer(t *testing.T) {
	service := NewQRCodeService(256, "M")

	first, err := service.GenerateLinkQR("shop://product/" + uuid.NewString())
	require.NoError(t, err)
	second, err := service.GenerateLinkQR("shop://product/" + uuid.NewString())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestQRCodeService_GenerateLinkQR_EmptyLink(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateLinkQR("  ")

	assert.Error(t, err)
}

package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.input))
		})
	}
}

func TestQRCodeService_RenderCardCode(t *testing.T) {
	service := NewQRCodeService(256, "medium")

	pngBytes, err := service.RenderCardCode("K7Q2MZ-9XRT4B")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_RenderCardCode_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"Tiny QR clamps", 10, minImageSize},
		{"Medium QR", 256, 256},
		{"Large QR", 512, 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pngBytes, err := NewQRCodeService(tt.size, "M").RenderCardCode("AAAAAA-BBBBBB")
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(pngBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.want, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_RenderCardCode_Empty(t *testing.T) {
	_, err := NewQRCodeService(256, "M").RenderCardCode("")
	assert.Error(t, err)
}

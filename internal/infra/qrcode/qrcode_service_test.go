package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_Generate(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	data, err := svc.Generate("order:3f6c1c2e")
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// The output must be a decodable PNG of the configured size.
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestQRCodeService_UnknownLevelFallsBack(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	data, err := svc.Generate("order:3f6c1c2e")
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestQRCodeService_EmptyContent(t *testing.T) {
	svc := NewQRCodeService(128, "M")

	_, err := svc.Generate("")
	assert.Error(t, err)
}

package images_test

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"empleaworks-backend/pkg/images"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func decode(t *testing.T, data []byte) (image.Image, string) {
	t.Helper()
	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img, format
}

func TestNormalize(t *testing.T) {
	t.Run("Should downscale a landscape image to the bound", func(t *testing.T) {
		out, err := images.Normalize(encodePNG(t, 2400, 1200), 1200, 80)
		require.NoError(t, err)

		img, format := decode(t, out)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, 1200, img.Bounds().Dx())
		assert.Equal(t, 600, img.Bounds().Dy())
	})

	t.Run("Should downscale a portrait image to the bound", func(t *testing.T) {
		out, err := images.Normalize(encodePNG(t, 600, 2400), 1200, 80)
		require.NoError(t, err)

		img, _ := decode(t, out)
		assert.Equal(t, 300, img.Bounds().Dx())
		assert.Equal(t, 1200, img.Bounds().Dy())
	})

	t.Run("Should keep dimensions of an image inside the bound", func(t *testing.T) {
		out, err := images.Normalize(encodePNG(t, 64, 48), 1200, 80)
		require.NoError(t, err)

		img, format := decode(t, out)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, 64, img.Bounds().Dx())
		assert.Equal(t, 48, img.Bounds().Dy())
	})

	t.Run("Should fail on undecodable bytes", func(t *testing.T) {
		_, err := images.Normalize([]byte{0x89, 0x50, 0x4E, 0x47, 0x00, 0x01, 0x02}, 1200, 80)
		assert.Error(t, err)
	})
}

func TestAsJPEG(t *testing.T) {
	assert.Equal(t, "avatar.jpg", images.AsJPEG("avatar.png"))
	assert.Equal(t, "logo.jpg", images.AsJPEG("logo.webp"))
	assert.Equal(t, "photo.jpg", images.AsJPEG("photo.jpg"))
	assert.Equal(t, "noext.jpg", images.AsJPEG("noext"))
}

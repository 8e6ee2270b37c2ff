package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	// MaxDimension bounds the longer side of stored avatars and logos.
	MaxDimension = 1200
	// JPEGQuality is the re-encode quality for normalized images.
	JPEGQuality = 80
)

// Normalize decodes an uploaded image, downscales it so its longer side
// does not exceed maxDim (aspect ratio preserved), and re-encodes it as
// JPEG at the given quality. Accepts JPEG, PNG, GIF and WebP input.
func Normalize(data []byte, maxDim, quality int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	newWidth, newHeight := fit(width, height, maxDim)

	out := img
	if newWidth != width || newHeight != height {
		resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)
		out = resized
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// fit scales (width, height) down so the longer side equals maxDim.
// Dimensions already inside the bound are returned unchanged.
func fit(width, height, maxDim int) (int, int) {
	if width <= maxDim && height <= maxDim {
		return width, height
	}
	if width > height {
		return maxDim, int(float64(height) * float64(maxDim) / float64(width))
	}
	return int(float64(width) * float64(maxDim) / float64(height)), maxDim
}

// AsJPEG swaps the filename's extension for .jpg, matching the format
// Normalize emits.
func AsJPEG(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ".jpg"
}

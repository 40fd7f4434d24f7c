package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestImage(t *testing.T, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, encode(&buf, img))
	return buf.Bytes()
}

func TestValidateImageAcceptsJPEGAndPNG(t *testing.T) {
	p := NewImageProcessor()

	jpegData := encodeTestImage(t, func(b *bytes.Buffer, img image.Image) error {
		return jpeg.Encode(b, img, nil)
	})
	assert.NoError(t, p.ValidateImage(jpegData))

	pngData := encodeTestImage(t, func(b *bytes.Buffer, img image.Image) error {
		return png.Encode(b, img)
	})
	assert.NoError(t, p.ValidateImage(pngData))
}

func TestValidateImageRejectsGIF(t *testing.T) {
	p := NewImageProcessor()

	gifData := encodeTestImage(t, func(b *bytes.Buffer, img image.Image) error {
		return gif.Encode(b, img, nil)
	})
	assert.Error(t, p.ValidateImage(gifData))
}

func TestValidateImageRejectsNonImage(t *testing.T) {
	p := NewImageProcessor()
	assert.Error(t, p.ValidateImage([]byte("definitely not an image")))
}

func TestValidateImageRejectsOversized(t *testing.T) {
	p := &ImageProcessor{MaxSize: 10}
	assert.Error(t, p.ValidateImage(make([]byte, 11)))
}

func TestProcessImageProducesAllVariants(t *testing.T) {
	p := NewImageProcessor()

	pngData := encodeTestImage(t, func(b *bytes.Buffer, img image.Image) error {
		return png.Encode(b, img)
	})

	variants, err := p.ProcessImage(pngData)
	require.NoError(t, err)

	for _, name := range []string{"large", "medium", "thumbnail"} {
		data, ok := variants[name]
		require.True(t, ok, "missing variant %s", name)

		cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.LessOrEqual(t, cfg.Width, 1200)
	}
}

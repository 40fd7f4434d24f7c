package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// variantSizes are the bounding-box edges of the resized post images the
// worker stores next to each uploaded original.
var variantSizes = map[string]int{
	"large":     1200,
	"medium":    600,
	"thumbnail": 300,
}

const jpegQuality = 90

// ImageProcessor validates post-image uploads and renders the resized
// variants. MaxSize bounds the accepted payload in bytes.
type ImageProcessor struct {
	MaxSize int64
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{MaxSize: 5 << 20}
}

// ValidateImage accepts JPEG or PNG payloads up to MaxSize bytes. GIF is
// recognized but rejected, so the caller gets a format error rather than
// a decode error.
func (p *ImageProcessor) ValidateImage(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %d bytes", p.MaxSize)
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	if format != "jpeg" && format != "png" {
		return fmt.Errorf("image format %s not allowed, use jpeg or png", format)
	}
	return nil
}

// ProcessImage decodes the original once and returns every variant as a
// JPEG keyed by variant name. Images smaller than a variant's edge are
// never upscaled.
func (p *ImageProcessor) ProcessImage(data []byte) (map[string][]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	variants := make(map[string][]byte, len(variantSizes))
	for name, edge := range variantSizes {
		resized := imaging.Fit(img, edge, edge, imaging.Lanczos)
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("encode %s variant: %w", name, err)
		}
		variants[name] = buf.Bytes()
	}
	return variants, nil
}

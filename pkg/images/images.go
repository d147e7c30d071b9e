// Package images normalizes uploaded product photos: downscale oversized
// originals and re-encode as WebP, falling back to JPEG when the encoder
// refuses the input.
package images

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	maxWidth = 2000
	quality  = 85
)

// Process decodes, resizes, and re-encodes an uploaded image. Returns the
// encoded bytes and their content type.
func Process(r io.Reader) ([]byte, string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}

	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: quality}); err != nil {
		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/jpeg", nil
	}
	return buf.Bytes(), "image/webp", nil
}

// IsSupported reports whether an upload content type is accepted.
func IsSupported(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/webp", "image/gif":
		return true
	}
	return false
}

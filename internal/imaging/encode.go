package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// PNGResult contains a rendered image encoded as base64 PNG.
type PNGResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes img as base64 PNG, optionally scaling it first.
//
// A scale of 1 (or any value <= 0) keeps the original size. Scaling uses a box
// filter, which keeps thin scope traces visible when shrinking.
func EncodePNG(img image.Image, scale float64) (*PNGResult, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image")
	}

	out := img
	if scale != 1.0 && scale > 0 {
		b := img.Bounds()
		newWidth := int(float64(b.Dx()) * scale)
		newHeight := int(float64(b.Dy()) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %v reduces %dx%d image to nothing", scale, b.Dx(), b.Dy())
		}
		out = imaging.Resize(img, newWidth, newHeight, imaging.Box)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &PNGResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

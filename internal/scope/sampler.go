package scope

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Sample is one channel reading of one source pixel, already mapped to its
// output column. Value is in [0, 1].
type Sample struct {
	Column  int
	Channel Channel
	Value   float64
}

// Sampler reads channel values from a source image for one scope type.
//
// The source is copied once into an 8-bit NRGBA buffer, so rows can be read
// concurrently without locking. Values are straight (not premultiplied);
// alpha is ignored.
type Sampler struct {
	pix      *image.NRGBA
	width    int
	height   int
	columns  int
	channels []Channel
	luma     LumaWeighting
}

// NewSampler prepares src for sampling into the given number of output columns.
func NewSampler(src image.Image, t ScopeType, columns int, luma LumaWeighting) (*Sampler, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source image", ErrInvalidInput)
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: source image is %dx%d", ErrInvalidInput, b.Dx(), b.Dy())
	}
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMode, int(t))
	}
	if columns <= 0 {
		return nil, fmt.Errorf("%w: %d output columns", ErrInvalidInput, columns)
	}
	if luma < Rec601 || luma > Perceptual {
		return nil, fmt.Errorf("%w: luma weighting %d", ErrInvalidInput, int(luma))
	}

	return &Sampler{
		pix:      imaging.Clone(src),
		width:    b.Dx(),
		height:   b.Dy(),
		columns:  columns,
		channels: ChannelsFor(t),
		luma:     luma,
	}, nil
}

// Width returns the source width in pixels.
func (s *Sampler) Width() int { return s.width }

// Height returns the source height in pixels.
func (s *Sampler) Height() int { return s.height }

// Columns returns the number of output columns.
func (s *Sampler) Columns() int { return s.columns }

// Channels returns the tracked channels in pane order.
func (s *Sampler) Channels() []Channel { return s.channels }

// Column maps a source x (0-based) to its output column.
func (s *Sampler) Column(x int) int {
	if s.columns == s.width {
		return x
	}
	return x * s.columns / s.width
}

// SampleRow calls fn for every sample in source row y (0-based): one Luma
// sample per pixel for luminance scopes, R, G and B samples otherwise.
func (s *Sampler) SampleRow(y int, fn func(Sample)) {
	row := s.pix.Pix[y*s.pix.Stride : y*s.pix.Stride+s.width*4]
	luminance := len(s.channels) == 1

	for x := 0; x < s.width; x++ {
		i := x * 4
		r := float64(row[i]) / 255
		g := float64(row[i+1]) / 255
		b := float64(row[i+2]) / 255
		col := s.Column(x)

		if luminance {
			fn(Sample{Column: col, Channel: Luma, Value: lumaOf(s.luma, r, g, b)})
			continue
		}
		fn(Sample{Column: col, Channel: Red, Value: r})
		fn(Sample{Column: col, Channel: Green, Value: g})
		fn(Sample{Column: col, Channel: Blue, Value: b})
	}
}

// lumaOf combines normalized R, G, B into a luma value in [0, 1].
func lumaOf(w LumaWeighting, r, g, b float64) float64 {
	var y float64
	switch w {
	case Rec709:
		y = 0.2126*r + 0.7152*g + 0.0722*b
	case Perceptual:
		y, _, _ = colorful.Color{R: r, G: g, B: b}.Lab()
	default:
		y = 0.299*r + 0.587*g + 0.114*b
	}
	return clamp01(y)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package scope

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// paneHue is the hue (degrees) each channel is drawn with in a Parade pane.
var paneHue = map[Channel]float64{
	Red:   0,
	Green: 120,
	Blue:  240,
}

// Composite draws normalized planes into the final scope image.
//
// Luminance expects one plane, Blend and Parade expect R, G and B planes in
// that order. The background is opaque black.
func Composite(planes []*Plane, cfg Config) (*image.NRGBA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	want := len(ChannelsFor(cfg.Type))
	if len(planes) != want {
		return nil, fmt.Errorf("%w: %s scope needs %d planes, got %d", ErrInvalidInput, cfg.Type, want, len(planes))
	}
	for _, p := range planes {
		if p == nil || p.Columns != cfg.Width || p.Bins != cfg.Bins {
			return nil, fmt.Errorf("%w: plane shape does not match %d columns x %d bins", ErrInvalidInput, cfg.Width, cfg.Bins)
		}
	}

	w, h := cfg.OutputSize()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	rows := newRowMap(cfg.Height, cfg.Bins, cfg.Orientation)

	switch cfg.Type {
	case Luminance:
		drawPane(out, 0, planes[0], rows, func(v float64) color.NRGBA {
			g := to8(v)
			return color.NRGBA{R: g, G: g, B: g, A: 255}
		})
	case Blend:
		for row := 0; row < cfg.Height; row++ {
			for col := 0; col < cfg.Width; col++ {
				r := rows.value(planes[0], col, row)
				g := rows.value(planes[1], col, row)
				b := rows.value(planes[2], col, row)
				out.SetNRGBA(col, row, color.NRGBA{R: to8(r), G: to8(g), B: to8(b), A: 255})
			}
		}
	case Parade:
		for i, p := range planes {
			hue := paneHue[p.Channel]
			drawPane(out, i*cfg.Width, p, rows, func(v float64) color.NRGBA {
				r, g, b := colorful.Hsv(hue, 1, v).RGB255()
				return color.NRGBA{R: r, G: g, B: b, A: 255}
			})
		}
	}

	if cfg.Graticule {
		if err := drawGraticule(out, cfg); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// drawPane renders one plane into out starting at column x0.
func drawPane(out *image.NRGBA, x0 int, p *Plane, rows rowMap, shade func(float64) color.NRGBA) {
	for row := 0; row < rows.height; row++ {
		for col := 0; col < p.Columns; col++ {
			out.SetNRGBA(x0+col, row, shade(rows.value(p, col, row)))
		}
	}
}

// rowMap maps display rows to spans of bins.
type rowMap struct {
	height int
	lo, hi []int // bin span [lo, hi) per display row
}

func newRowMap(height, bins int, o Orientation) rowMap {
	m := rowMap{height: height, lo: make([]int, height), hi: make([]int, height)}
	for row := 0; row < height; row++ {
		level := row // counted from the dark end
		if o == BrightTop {
			level = height - 1 - row
		}
		lo := level * bins / height
		hi := (level + 1) * bins / height
		if hi <= lo {
			hi = lo + 1
		}
		m.lo[row], m.hi[row] = lo, hi
	}
	return m
}

// value returns the largest plane value among the bins shown at row, so that
// traces survive when there are more bins than rows.
func (m rowMap) value(p *Plane, col, row int) float64 {
	var v float32
	for bin := m.lo[row]; bin < m.hi[row]; bin++ {
		if pv := p.At(col, bin); pv > v {
			v = pv
		}
	}
	return float64(v)
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

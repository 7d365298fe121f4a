package scope

import (
	"math"
)

// Plane holds display values in [0, 1] with the same shape as a Histogram.
type Plane struct {
	Channel Channel
	Columns int
	Bins    int
	Values  []float32 // row-major: Values[col*Bins+bin]
}

// At returns the value at (col, bin).
func (p *Plane) At(col, bin int) float32 {
	return p.Values[col*p.Bins+bin]
}

// Normalizer compresses raw hit counts into display values.
//
// The curve maps 0 to 0 and FullScale (or more) to 1 and is monotonic in
// between, so empty regions stay black and dense regions do not flatten into
// a plateau before FullScale.
type Normalizer struct {
	Curve     Curve
	Gamma     float64
	FullScale uint32
}

// NewNormalizer builds the normalizer for cfg. pixelsPerColumn is used when
// cfg.FullScale is zero.
func NewNormalizer(cfg Config, pixelsPerColumn uint32) Normalizer {
	full := cfg.FullScale
	if full == 0 {
		full = pixelsPerColumn
	}
	return Normalizer{Curve: cfg.Curve, Gamma: cfg.Gamma, FullScale: full}
}

// Value returns the display value for count.
func (n Normalizer) Value(count uint32) float64 {
	if count == 0 {
		return 0
	}
	full := n.FullScale
	if full < 1 {
		full = 1
	}
	if count >= full {
		return 1
	}

	var v float64
	switch n.Curve {
	case GammaCurve:
		v = math.Pow(float64(count)/float64(full), n.Gamma)
	default:
		v = math.Log1p(float64(count)) / math.Log1p(float64(full))
	}
	return clamp01(v)
}

// Normalize derives a Plane from h. The result depends only on h and n.
func (n Normalizer) Normalize(h *Histogram) *Plane {
	p := &Plane{
		Channel: h.Channel,
		Columns: h.Columns,
		Bins:    h.Bins,
		Values:  make([]float32, len(h.Counts)),
	}

	// Counts repeat heavily; memoize the curve for small values.
	var lut [256]float32
	for i := range lut {
		lut[i] = float32(n.Value(uint32(i)))
	}
	for i, c := range h.Counts {
		if c < uint32(len(lut)) {
			p.Values[i] = lut[c]
			continue
		}
		p.Values[i] = float32(n.Value(c))
	}
	return p
}

// pixelsPerColumn returns the largest number of source pixels any single
// output column receives.
func pixelsPerColumn(srcWidth, srcHeight, columns int) uint32 {
	perCol := (srcWidth + columns - 1) / columns
	if perCol < 1 {
		perCol = 1
	}
	n := uint64(perCol) * uint64(srcHeight)
	if n > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}

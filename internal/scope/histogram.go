package scope

import (
	"math"
)

// Histogram counts hits per (output column, signal level bin) for one channel.
//
// Counts saturate at math.MaxUint32 rather than wrapping; the scope only needs
// relative magnitude.
type Histogram struct {
	Channel Channel
	Columns int
	Bins    int
	Counts  []uint32 // row-major: Counts[col*Bins+bin]
}

// NewHistogram allocates an empty histogram.
func NewHistogram(ch Channel, columns, bins int) *Histogram {
	return &Histogram{
		Channel: ch,
		Columns: columns,
		Bins:    bins,
		Counts:  make([]uint32, columns*bins),
	}
}

// At returns the count at (col, bin).
func (h *Histogram) At(col, bin int) uint32 {
	return h.Counts[col*h.Bins+bin]
}

// Add increments (col, bin) by one, saturating.
func (h *Histogram) Add(col, bin int) {
	i := col*h.Bins + bin
	if h.Counts[i] != math.MaxUint32 {
		h.Counts[i]++
	}
}

// Total returns the sum of all counts.
func (h *Histogram) Total() uint64 {
	var sum uint64
	for _, c := range h.Counts {
		sum += uint64(c)
	}
	return sum
}

// ColumnTotal returns the sum of counts in one column.
func (h *Histogram) ColumnTotal(col int) uint64 {
	var sum uint64
	for _, c := range h.Counts[col*h.Bins : (col+1)*h.Bins] {
		sum += uint64(c)
	}
	return sum
}

// LevelCounts sums the histogram over all columns, one count per bin.
func (h *Histogram) LevelCounts() []uint64 {
	levels := make([]uint64, h.Bins)
	for col := 0; col < h.Columns; col++ {
		for bin, c := range h.Counts[col*h.Bins : (col+1)*h.Bins] {
			levels[bin] += uint64(c)
		}
	}
	return levels
}

// Merge adds src into dst elementwise, saturating. The histograms must have
// the same shape.
func Merge(dst, src *Histogram) {
	for i, c := range src.Counts {
		dst.Counts[i] = satAdd(dst.Counts[i], c)
	}
}

func satAdd(a, b uint32) uint32 {
	if s := a + b; s >= a {
		return s
	}
	return math.MaxUint32
}

// Bin maps a signal value in [0, 1] to one of bins discrete levels.
// Out-of-range values clamp to the first or last bin; NaN maps to bin 0.
func Bin(value float64, bins int) int {
	if !(value > 0) {
		return 0
	}
	if value >= 1 {
		return bins - 1
	}
	b := int(value * float64(bins))
	if b >= bins {
		return bins - 1
	}
	return b
}

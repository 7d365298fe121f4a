package scope

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ChannelStats summarizes the signal distribution of one channel. Levels are
// in [0, 1], measured at bin centers.
type ChannelStats struct {
	Channel     string  `json:"channel"`
	Samples     uint64  `json:"samples"`
	Mean        float64 `json:"mean"`
	StdDev      float64 `json:"std_dev"`
	Median      float64 `json:"median"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	ClippedLow  float64 `json:"clipped_low"`  // fraction of samples in the lowest bin
	ClippedHigh float64 `json:"clipped_high"` // fraction of samples in the highest bin
}

// Stats computes distribution statistics over all columns of h.
// An empty histogram yields zero statistics.
func Stats(h *Histogram) ChannelStats {
	st := ChannelStats{Channel: h.Channel.String()}

	counts := h.LevelCounts()
	levels := make([]float64, h.Bins)
	weights := make([]float64, h.Bins)
	first, last := -1, -1
	for bin, c := range counts {
		levels[bin] = (float64(bin) + 0.5) / float64(h.Bins)
		weights[bin] = float64(c)
		st.Samples += c
		if c > 0 {
			if first < 0 {
				first = bin
			}
			last = bin
		}
	}
	if st.Samples == 0 {
		return st
	}

	st.Mean, st.StdDev = stat.MeanStdDev(levels, weights)
	if st.Samples < 2 || math.IsNaN(st.StdDev) {
		st.StdDev = 0
	}
	st.Median = stat.Quantile(0.5, stat.Empirical, levels, weights)
	st.Min = levels[first]
	st.Max = levels[last]
	st.ClippedLow = float64(counts[0]) / float64(st.Samples)
	st.ClippedHigh = float64(counts[h.Bins-1]) / float64(st.Samples)
	return st
}

// Stats returns the statistics of every channel in pane order.
func (a *Analysis) Stats() []ChannelStats {
	out := make([]ChannelStats, len(a.Histograms))
	for i, h := range a.Histograms {
		out[i] = Stats(h)
	}
	return out
}

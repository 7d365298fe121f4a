package scope

import (
	"sync"

	"github.com/anthonynsimon/bild/parallel"
)

// Accumulate builds one histogram per tracked channel, in the sampler's
// channel order.
//
// Rows are split across goroutines. Each work unit counts into private
// histograms and merges them into the result once, under a lock, so no bin is
// ever incremented concurrently. Merging is commutative, so the result does
// not depend on scheduling.
func Accumulate(s *Sampler, bins int) []*Histogram {
	result := newHistograms(s, bins)

	var mu sync.Mutex
	parallel.Line(s.Height(), func(start, end int) {
		local := accumulateRows(s, bins, start, end)

		mu.Lock()
		defer mu.Unlock()
		for i := range result {
			Merge(result[i], local[i])
		}
	})

	return result
}

// accumulateRows counts source rows [y0, y1) into fresh histograms.
func accumulateRows(s *Sampler, bins, y0, y1 int) []*Histogram {
	hs := newHistograms(s, bins)
	single := len(hs) == 1

	for y := y0; y < y1; y++ {
		s.SampleRow(y, func(smp Sample) {
			h := hs[0]
			if !single {
				h = hs[smp.Channel]
			}
			h.Add(smp.Column, Bin(smp.Value, bins))
		})
	}
	return hs
}

func newHistograms(s *Sampler, bins int) []*Histogram {
	channels := s.Channels()
	hs := make([]*Histogram, len(channels))
	for i, ch := range channels {
		hs[i] = NewHistogram(ch, s.Columns(), bins)
	}
	return hs
}

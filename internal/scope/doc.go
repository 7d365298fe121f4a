// Package scope renders waveform monitor images from decoded frames.
//
// A waveform scope shows, for every horizontal position of a frame, how the
// signal levels of that column are distributed. Three scope types are
// supported:
//
//   - Blend (0): R, G and B traces overlaid additively, so overlapping traces
//     mix (red and green give yellow, all three give white).
//   - Parade (1): R, G and B traces in three side-by-side panes, each drawn in
//     its channel's hue. The output is three times the configured width.
//   - Luminance (2): a single grayscale trace of luma.
//
// # Pipeline
//
// A render runs four stages in one synchronous call:
//
//  1. Sampler: reads every source pixel and emits (column, channel, value)
//     samples. Source columns are bucketed with floor(x * Width / srcWidth).
//  2. Accumulator: counts samples into a [column][bin] histogram per channel.
//     Rows are processed in parallel; every worker counts into private
//     histograms that are merged afterwards.
//  3. Normalizer: compresses counts into [0, 1] with a logarithmic (default)
//     or gamma curve. A count of zero always maps to zero.
//  4. Compositor: draws the planes according to the scope type.
//
// # Luma
//
// The Luma channel uses Rec. 601 weights (0.299 R + 0.587 G + 0.114 B) on the
// encoded values by default. Rec. 709 weights and CIE L* are available through
// Config.Luma. The choice is a policy decision, not a colorimetric claim.
//
// # Full scale
//
// With Config.FullScale left at zero, the count drawn at full intensity is the
// largest count any single bin can receive: the number of source pixels that
// fall into one output column. A flat field therefore renders at full
// intensity and everything else is scaled relative to it.
//
// # Errors
//
// Every returned error wraps ErrInvalidInput or ErrUnsupportedMode; test for
// them with errors.Is.
package scope

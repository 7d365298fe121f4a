package scope

import (
	"image"
)

// Analysis holds the intermediate results of one render: the raw channel
// histograms and their normalized planes, in pane order.
type Analysis struct {
	Config     Config
	Histograms []*Histogram
	Planes     []*Plane
	Normalizer Normalizer

	SourceWidth  int
	SourceHeight int
}

// Analyze samples, accumulates and normalizes src for cfg.
func Analyze(src image.Image, cfg Config) (*Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s, err := NewSampler(src, cfg.Type, cfg.Width, cfg.Luma)
	if err != nil {
		return nil, err
	}

	hists := Accumulate(s, cfg.Bins)

	norm := NewNormalizer(cfg, pixelsPerColumn(s.Width(), s.Height(), cfg.Width))
	planes := make([]*Plane, len(hists))
	for i, h := range hists {
		planes[i] = norm.Normalize(h)
	}

	return &Analysis{
		Config:       cfg,
		Histograms:   hists,
		Planes:       planes,
		Normalizer:   norm,
		SourceWidth:  s.Width(),
		SourceHeight: s.Height(),
	}, nil
}

// Render produces the waveform scope image of src.
//
// The output is cfg.Width x cfg.Height, or 3*cfg.Width x cfg.Height for a
// Parade. Errors wrap ErrInvalidInput or ErrUnsupportedMode; no partial image
// is returned. Render does not modify src and is safe to call concurrently.
func Render(src image.Image, cfg Config) (*image.NRGBA, error) {
	a, err := Analyze(src, cfg)
	if err != nil {
		return nil, err
	}
	return Composite(a.Planes, cfg)
}

package scope

import (
	"math"
	"testing"
)

func TestNormalizer_ZeroAndFullScale(t *testing.T) {
	for _, curve := range []Curve{LogCurve, GammaCurve} {
		t.Run(curve.String(), func(t *testing.T) {
			n := Normalizer{Curve: curve, Gamma: 0.5, FullScale: 100}
			if got := n.Value(0); got != 0 {
				t.Errorf("Value(0): got %v, want 0", got)
			}
			if got := n.Value(100); got != 1 {
				t.Errorf("Value(full): got %v, want 1", got)
			}
			if got := n.Value(5000); got != 1 {
				t.Errorf("Value(above full): got %v, want 1", got)
			}
			if got := n.Value(math.MaxUint32); got != 1 {
				t.Errorf("Value(max): got %v, want 1", got)
			}
		})
	}
}

func TestNormalizer_Monotonic(t *testing.T) {
	normalizers := []Normalizer{
		{Curve: LogCurve, FullScale: 1000},
		{Curve: LogCurve, FullScale: 1},
		{Curve: GammaCurve, Gamma: 0.5, FullScale: 1000},
		{Curve: GammaCurve, Gamma: 1, FullScale: 37},
		{Curve: LogCurve, FullScale: 0},
	}

	for _, n := range normalizers {
		prev := n.Value(0)
		for c := uint32(1); c <= 2000; c++ {
			v := n.Value(c)
			if v < prev {
				t.Fatalf("%+v not monotonic: Value(%d)=%v < Value(%d)=%v", n, c, v, c-1, prev)
			}
			if v < 0 || v > 1 {
				t.Fatalf("%+v: Value(%d)=%v outside [0, 1]", n, c, v)
			}
			prev = v
		}
	}
}

func TestNormalizer_LowCountsVisible(t *testing.T) {
	n := Normalizer{Curve: LogCurve, FullScale: 10000}
	// A single hit must stay visible against a dense column.
	if v := n.Value(1); v < 0.05 {
		t.Errorf("Value(1): got %v, want a visible trace", v)
	}
	// Half the full scale is not yet saturated.
	if v := n.Value(5000); v >= 1 {
		t.Errorf("Value(5000): got %v, want < 1", v)
	}
}

func TestNormalizer_Normalize(t *testing.T) {
	h := NewHistogram(Green, 3, 4)
	for i := range h.Counts {
		h.Counts[i] = uint32(i * 40)
	}
	h.Counts[5] = 0

	n := Normalizer{Curve: LogCurve, FullScale: 300}
	p := n.Normalize(h)

	if p.Channel != Green || p.Columns != 3 || p.Bins != 4 {
		t.Fatalf("plane shape: got %s %dx%d", p.Channel, p.Columns, p.Bins)
	}
	for col := 0; col < 3; col++ {
		for bin := 0; bin < 4; bin++ {
			want := float32(n.Value(h.At(col, bin)))
			if got := p.At(col, bin); got != want {
				t.Errorf("plane(%d,%d): got %v, want %v", col, bin, got, want)
			}
		}
	}
	if p.At(1, 1) != 0 {
		t.Errorf("empty bin: got %v, want 0", p.At(1, 1))
	}

	again := n.Normalize(h)
	for i := range p.Values {
		if p.Values[i] != again.Values[i] {
			t.Fatalf("Normalize not deterministic at %d: %v vs %v", i, p.Values[i], again.Values[i])
		}
	}
}

func TestNewNormalizer_FullScale(t *testing.T) {
	cfg := DefaultConfig(Luminance, 4, 4)
	if n := NewNormalizer(cfg, 77); n.FullScale != 77 {
		t.Errorf("auto full scale: got %d, want 77", n.FullScale)
	}
	cfg.FullScale = 12
	if n := NewNormalizer(cfg, 77); n.FullScale != 12 {
		t.Errorf("configured full scale: got %d, want 12", n.FullScale)
	}
}

func TestPixelsPerColumn(t *testing.T) {
	tests := []struct {
		w, h, cols int
		want       uint32
	}{
		{4, 4, 4, 4},
		{10, 6, 4, 18},
		{10, 6, 20, 6},
		{1920, 1080, 960, 2160},
	}
	for _, tt := range tests {
		if got := pixelsPerColumn(tt.w, tt.h, tt.cols); got != tt.want {
			t.Errorf("pixelsPerColumn(%d, %d, %d): got %d, want %d", tt.w, tt.h, tt.cols, got, tt.want)
		}
	}
}

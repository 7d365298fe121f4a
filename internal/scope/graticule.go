package scope

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
)

// graticuleLevels are the reference signal levels, in percent.
var graticuleLevels = []int{0, 25, 50, 75, 100}

// drawGraticule blends horizontal reference lines over the traces. Every
// column carries trace data, so Parade panes get no separator lines.
func drawGraticule(img *image.NRGBA, cfg Config) error {
	hex := cfg.GraticuleColor
	if hex == "" {
		hex = DefaultGraticuleColor
	}
	c, err := parseHexColor(hex)
	if err != nil {
		return fmt.Errorf("%w: graticule color: %v", ErrInvalidInput, err)
	}

	bounds := img.Bounds()
	for _, pct := range graticuleLevels {
		y := levelRow(pct, cfg.Height, cfg.Orientation)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			blendOver(img, x, y, c)
		}
	}
	return nil
}

// levelRow returns the display row of a signal level given in percent.
func levelRow(pct, height int, o Orientation) int {
	row := pct * (height - 1) / 100
	if o == BrightTop {
		row = height - 1 - row
	}
	return row
}

// blendOver composites c (straight alpha) over the opaque pixel at (x, y).
func blendOver(img *image.NRGBA, x, y int, c color.NRGBA) {
	dst := img.NRGBAAt(x, y)
	a := uint32(c.A)
	mix := func(d, s uint8) uint8 {
		return uint8((uint32(d)*(255-a) + uint32(s)*a + 127) / 255)
	}
	img.SetNRGBA(x, y, color.NRGBA{
		R: mix(dst.R, c.R),
		G: mix(dst.G, c.G),
		B: mix(dst.B, c.B),
		A: 255,
	})
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080".
func parseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, err
	}

	switch len(hex) {
	case 6:
		return color.NRGBA{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val), A: 255}, nil
	case 8:
		return color.NRGBA{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8), A: uint8(val)}, nil
	}
	return color.NRGBA{}, fmt.Errorf("invalid hex color length")
}

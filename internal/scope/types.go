package scope

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParamScopeType is the parameter key host applications show for the scope
// type selector. Its value is one of the ScopeType identifiers.
const ParamScopeType = "Scope Type"

var (
	// ErrInvalidInput is returned for nil or zero-sized sources and for
	// configurations with non-positive dimensions or unknown option values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedMode is returned when a scope type is not one of the three
	// declared modes. The renderer never falls back to a default mode.
	ErrUnsupportedMode = errors.New("unsupported scope type")
)

// ScopeType selects how channel traces are combined into the output image.
//
// The integer values are stable identifiers shared with host applications.
type ScopeType int

const (
	Blend     ScopeType = 0 // R, G, B traces overlaid additively
	Parade    ScopeType = 1 // R, G, B traces side by side
	Luminance ScopeType = 2 // single grayscale luma trace
)

// Valid reports whether t is one of the declared scope types.
func (t ScopeType) Valid() bool {
	return t == Blend || t == Parade || t == Luminance
}

func (t ScopeType) String() string {
	switch t {
	case Blend:
		return "blend"
	case Parade:
		return "parade"
	case Luminance:
		return "luminance"
	}
	return "ScopeType(" + strconv.Itoa(int(t)) + ")"
}

// ParseScopeType resolves a scope type from its name or integer identifier.
//
// Accepted names are "blend", "parade", "luminance" and "luma" (case-insensitive).
// Accepted identifiers are "0", "1" and "2".
func ParseScopeType(s string) (ScopeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blend", "0":
		return Blend, nil
	case "parade", "1":
		return Parade, nil
	case "luminance", "luma", "2":
		return Luminance, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}

// Channel identifies a tracked signal.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
	Luma
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Luma:
		return "luma"
	}
	return "Channel(" + strconv.Itoa(int(c)) + ")"
}

// ChannelsFor returns the channels tracked by a scope type, in pane order.
// It returns nil for an invalid type.
func ChannelsFor(t ScopeType) []Channel {
	switch t {
	case Luminance:
		return []Channel{Luma}
	case Blend, Parade:
		return []Channel{Red, Green, Blue}
	}
	return nil
}

// LumaWeighting fixes how the Luma channel is derived from R, G and B.
// The shape of a luminance scope depends on it, so it is chosen once per render.
type LumaWeighting int

const (
	// Rec601 weights the encoded values 0.299 R + 0.587 G + 0.114 B.
	Rec601 LumaWeighting = iota
	// Rec709 weights the encoded values 0.2126 R + 0.7152 G + 0.0722 B.
	Rec709
	// Perceptual uses CIE L* of the pixel interpreted as sRGB.
	Perceptual
)

func (w LumaWeighting) String() string {
	switch w {
	case Rec601:
		return "rec601"
	case Rec709:
		return "rec709"
	case Perceptual:
		return "perceptual"
	}
	return "LumaWeighting(" + strconv.Itoa(int(w)) + ")"
}

// ParseLumaWeighting resolves a luma weighting by name. Empty selects Rec601.
func ParseLumaWeighting(s string) (LumaWeighting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rec601", "601", "bt601":
		return Rec601, nil
	case "rec709", "709", "bt709":
		return Rec709, nil
	case "perceptual", "lab", "lstar":
		return Perceptual, nil
	}
	return 0, fmt.Errorf("%w: unknown luma weighting %q", ErrInvalidInput, s)
}

// Curve selects the count compression applied by the Normalizer.
type Curve int

const (
	LogCurve Curve = iota
	GammaCurve
)

func (c Curve) String() string {
	switch c {
	case LogCurve:
		return "log"
	case GammaCurve:
		return "gamma"
	}
	return "Curve(" + strconv.Itoa(int(c)) + ")"
}

// ParseCurve resolves a normalization curve by name. Empty selects LogCurve.
func ParseCurve(s string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "log":
		return LogCurve, nil
	case "gamma":
		return GammaCurve, nil
	}
	return 0, fmt.Errorf("%w: unknown curve %q", ErrInvalidInput, s)
}

// Orientation selects where the highest signal level is drawn.
type Orientation int

const (
	BrightTop Orientation = iota
	BrightBottom
)

// ParseOrientation resolves an orientation by name. Empty selects BrightTop.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "top", "bright-top":
		return BrightTop, nil
	case "bottom", "bright-bottom":
		return BrightBottom, nil
	}
	return 0, fmt.Errorf("%w: unknown orientation %q", ErrInvalidInput, s)
}

const (
	DefaultBins           = 256
	DefaultGamma          = 0.5
	DefaultGraticuleColor = "#FFFFFF40"

	minBins = 2
	maxBins = 4096

	maxWidth  = 8192
	maxHeight = 4096
)

// Config describes one render. Width, Height and Bins have no usable zero
// value; start from DefaultConfig.
type Config struct {
	// Type selects the scope mode.
	Type ScopeType

	// Width is the number of scope columns. Parade output is three times wider.
	// When Width differs from the source width, source columns are bucketed
	// with floor(x * Width / sourceWidth).
	Width int

	// Height is the output height in pixels.
	Height int

	// Bins is the number of discrete signal levels per column.
	Bins int

	Luma  LumaWeighting
	Curve Curve

	// Gamma is the exponent used by GammaCurve, in (0, 1].
	Gamma float64

	// FullScale is the hit count drawn at full intensity. Zero derives it from
	// the source: the largest count a single bin can receive.
	FullScale uint32

	Orientation Orientation

	// Graticule draws reference lines at 0, 25, 50, 75 and 100 % signal level.
	Graticule      bool
	GraticuleColor string
}

// DefaultConfig returns a configuration with 256 bins, Rec.601 luma, a
// logarithmic curve and the bright end at the top.
func DefaultConfig(t ScopeType, width, height int) Config {
	return Config{
		Type:           t,
		Width:          width,
		Height:         height,
		Bins:           DefaultBins,
		Luma:           Rec601,
		Curve:          LogCurve,
		Gamma:          DefaultGamma,
		Orientation:    BrightTop,
		GraticuleColor: DefaultGraticuleColor,
	}
}

// Validate checks every field. Errors wrap ErrInvalidInput or ErrUnsupportedMode.
func (c Config) Validate() error {
	if !c.Type.Valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedMode, int(c.Type))
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: output size %dx%d must be positive", ErrInvalidInput, c.Width, c.Height)
	}
	if c.Width > maxWidth || c.Height > maxHeight {
		return fmt.Errorf("%w: output size %dx%d exceeds %dx%d", ErrInvalidInput, c.Width, c.Height, maxWidth, maxHeight)
	}
	if c.Bins < minBins || c.Bins > maxBins {
		return fmt.Errorf("%w: bins %d outside [%d, %d]", ErrInvalidInput, c.Bins, minBins, maxBins)
	}
	if c.Luma < Rec601 || c.Luma > Perceptual {
		return fmt.Errorf("%w: luma weighting %d", ErrInvalidInput, int(c.Luma))
	}
	switch c.Curve {
	case LogCurve:
	case GammaCurve:
		if !(c.Gamma > 0 && c.Gamma <= 1) {
			return fmt.Errorf("%w: gamma %v outside (0, 1]", ErrInvalidInput, c.Gamma)
		}
	default:
		return fmt.Errorf("%w: curve %d", ErrInvalidInput, int(c.Curve))
	}
	if c.Orientation != BrightTop && c.Orientation != BrightBottom {
		return fmt.Errorf("%w: orientation %d", ErrInvalidInput, int(c.Orientation))
	}
	if c.Graticule && c.GraticuleColor != "" {
		if _, err := parseHexColor(c.GraticuleColor); err != nil {
			return fmt.Errorf("%w: graticule color: %v", ErrInvalidInput, err)
		}
	}
	return nil
}

// OutputSize returns the dimensions of the image Render produces for c.
func (c Config) OutputSize() (width, height int) {
	if c.Type == Parade {
		return 3 * c.Width, c.Height
	}
	return c.Width, c.Height
}

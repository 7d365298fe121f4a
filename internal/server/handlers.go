package server

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/ironsheep/waveform-scope-mcp/internal/imaging"
	"github.com/ironsheep/waveform-scope-mcp/internal/scope"
)

const (
	defaultScopeHeight = 256
	maxDefaultColumns  = 1024
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_waveform").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if s.debug {
		log.Printf("tool %s finished in %v (err=%v)", params.Name, time.Since(start), err)
	}
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_waveform":
		return s.handleImageWaveform(args)
	case "image_waveform_stats":
		return s.handleImageWaveformStats(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Waveform Handlers ===

// scopeTypeArg accepts the scope type as a name ("parade") or as its stable
// integer identifier (1).
type scopeTypeArg struct {
	set   bool
	value scope.ScopeType
	err   error
}

func (a *scopeTypeArg) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	a.set = true
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		a.value, a.err = scope.ParseScopeType(strconv.Itoa(n))
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("scope_type must be a string or an integer")
	}
	a.value, a.err = scope.ParseScopeType(str)
	return nil
}

func (a scopeTypeArg) resolve() (scope.ScopeType, error) {
	if !a.set {
		return 0, fmt.Errorf("%w: scope_type is required", scope.ErrUnsupportedMode)
	}
	return a.value, a.err
}

type imageWaveformArgs struct {
	Path           string       `json:"path"`
	ScopeType      scopeTypeArg `json:"scope_type"`
	Width          int          `json:"width"`
	Height         int          `json:"height"`
	Bins           int          `json:"bins"`
	Luma           string       `json:"luma"`
	Curve          string       `json:"curve"`
	Gamma          float64      `json:"gamma"`
	FullScale      uint32       `json:"full_scale"`
	Orientation    string       `json:"orientation"`
	Graticule      bool         `json:"graticule"`
	GraticuleColor string       `json:"graticule_color"`
	Scale          float64      `json:"scale"`
}

// config resolves the arguments into a render configuration. Omitted numeric
// fields take their defaults; srcWidth sizes the default column count.
func (a *imageWaveformArgs) config(srcWidth int) (scope.Config, error) {
	st, err := a.ScopeType.resolve()
	if err != nil {
		return scope.Config{}, err
	}

	width := a.Width
	if width == 0 {
		width = srcWidth
		if width > maxDefaultColumns {
			width = maxDefaultColumns
		}
	}
	height := a.Height
	if height == 0 {
		height = defaultScopeHeight
	}

	cfg := scope.DefaultConfig(st, width, height)
	if a.Bins != 0 {
		cfg.Bins = a.Bins
	}
	if a.Gamma != 0 {
		cfg.Gamma = a.Gamma
	}
	cfg.FullScale = a.FullScale
	cfg.Graticule = a.Graticule
	if a.GraticuleColor != "" {
		cfg.GraticuleColor = a.GraticuleColor
	}
	if cfg.Luma, err = scope.ParseLumaWeighting(a.Luma); err != nil {
		return scope.Config{}, err
	}
	if cfg.Curve, err = scope.ParseCurve(a.Curve); err != nil {
		return scope.Config{}, err
	}
	if cfg.Orientation, err = scope.ParseOrientation(a.Orientation); err != nil {
		return scope.Config{}, err
	}
	return cfg, cfg.Validate()
}

// WaveformResult contains a rendered scope and the configuration it was
// rendered with.
type WaveformResult struct {
	imaging.PNGResult
	ScopeType   string `json:"scope_type"`
	ScopeTypeID int    `json:"scope_type_id"`
	Columns     int    `json:"columns"`
	Bins        int    `json:"bins"`
	Luma        string `json:"luma"`
	Curve       string `json:"curve"`
	FullScale   uint32 `json:"full_scale"`
}

func (s *Server) handleImageWaveform(args json.RawMessage) (interface{}, error) {
	var a imageWaveformArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	cfg, err := a.config(img.Bounds().Dx())
	if err != nil {
		return nil, err
	}

	analysis, err := scope.Analyze(img, cfg)
	if err != nil {
		return nil, err
	}
	out, err := scope.Composite(analysis.Planes, cfg)
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodePNG(out, a.Scale)
	if err != nil {
		return nil, err
	}

	return &WaveformResult{
		PNGResult:   *encoded,
		ScopeType:   cfg.Type.String(),
		ScopeTypeID: int(cfg.Type),
		Columns:     cfg.Width,
		Bins:        cfg.Bins,
		Luma:        cfg.Luma.String(),
		Curve:       cfg.Curve.String(),
		FullScale:   analysis.Normalizer.FullScale,
	}, nil
}

type imageWaveformStatsArgs struct {
	Path      string       `json:"path"`
	ScopeType scopeTypeArg `json:"scope_type"`
	Luma      string       `json:"luma"`
	Bins      int          `json:"bins"`
}

// WaveformStatsResult contains per-channel signal statistics.
type WaveformStatsResult struct {
	ScopeType string               `json:"scope_type"`
	Pixels    int                  `json:"pixels"`
	Channels  []scope.ChannelStats `json:"channels"`
}

func (s *Server) handleImageWaveformStats(args json.RawMessage) (interface{}, error) {
	var a imageWaveformStatsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	// Statistics are taken over the whole frame; a single column is enough.
	wa := imageWaveformArgs{ScopeType: a.ScopeType, Width: 1, Bins: a.Bins, Luma: a.Luma}
	cfg, err := wa.config(img.Bounds().Dx())
	if err != nil {
		return nil, err
	}

	analysis, err := scope.Analyze(img, cfg)
	if err != nil {
		return nil, err
	}
	return &WaveformStatsResult{
		ScopeType: cfg.Type.String(),
		Pixels:    analysis.SourceWidth * analysis.SourceHeight,
		Channels:  analysis.Stats(),
	}, nil
}

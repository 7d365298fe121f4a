package server

import (
	"github.com/ironsheep/waveform-scope-mcp/internal/scope"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

var scopeTypeProperty = map[string]interface{}{
	"type":        []string{"string", "integer"},
	"description": "The \"" + scope.ParamScopeType + "\" parameter: blend (0), parade (1) or luminance (2)",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and bit depth.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "image_waveform",
			Description: "Render a waveform monitor of an image and return it as base64-encoded PNG. " +
				"Blend overlays R, G and B traces, parade shows them side by side, luminance shows a single luma trace. " +
				"Each output column shows the distribution of signal levels in the matching part of the frame.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":       pathProperty,
					"scope_type": scopeTypeProperty,
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Scope columns (parade output is 3x wider). At most 8192. Default: image width, at most 1024",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Output height in pixels, at most 4096. Default 256",
						"default":     256,
					},
					"bins": map[string]interface{}{
						"type":        "integer",
						"description": "Signal levels per column (2-4096). Default 256",
						"default":     256,
					},
					"luma": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"rec601", "rec709", "perceptual"},
						"description": "Luma weighting for luminance scopes. Default rec601",
					},
					"curve": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"log", "gamma"},
						"description": "Intensity compression curve. Default log",
					},
					"gamma": map[string]interface{}{
						"type":        "number",
						"description": "Exponent for the gamma curve, in (0, 1]. Default 0.5",
					},
					"full_scale": map[string]interface{}{
						"type":        "integer",
						"description": "Hit count drawn at full brightness. Default: pixels per scope column",
					},
					"orientation": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"top", "bottom"},
						"description": "Where the brightest level is drawn. Default top",
					},
					"graticule": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw reference lines at 0, 25, 50, 75 and 100 percent",
					},
					"graticule_color": map[string]interface{}{
						"type":        "string",
						"description": "Graticule color as #RRGGBB or #RRGGBBAA. Default " + scope.DefaultGraticuleColor,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional display scale factor for the returned PNG. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "scope_type"},
			},
		},
		{
			Name:        "image_waveform_stats",
			Description: "Summarize the signal levels a waveform scope would show: mean, median, spread, range and clipping per channel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":       pathProperty,
					"scope_type": scopeTypeProperty,
					"luma": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"rec601", "rec709", "perceptual"},
						"description": "Luma weighting for luminance scopes. Default rec601",
					},
					"bins": map[string]interface{}{
						"type":        "integer",
						"description": "Signal levels (2-4096). Default 256",
						"default":     256,
					},
				},
				"required": []string{"path", "scope_type"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}

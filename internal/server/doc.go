// Package server implements the MCP (Model Context Protocol) server for
// waveform scope rendering.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load an image and report its metadata
//   - image_waveform: Render a blend, parade or luminance scope as PNG
//   - image_waveform_stats: Per-channel level statistics of the same signal
//
// The scope type is the "Scope Type" parameter. It is accepted by name or by
// its stable integer identifier: blend (0), parade (1), luminance (2). Any
// other value fails with an unsupported scope type error.
//
// # Image Caching
//
// Images are decoded once and cached by path for the lifetime of the server
// process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with code
// -32000 and the Go error string as data. Malformed tools/call params yield
// -32602 and unknown methods -32601.
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server

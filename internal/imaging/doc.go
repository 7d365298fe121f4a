// Package imaging loads source frames for the scope server and encodes
// rendered scopes for transport.
//
// # Loading
//
// ImageCache decodes frames from disk once and keeps them in memory keyed by
// path. PNG, JPEG, GIF, TIFF, BMP and WebP are supported; EXIF orientation is
// applied on decode. Decoded frames are never modified, so the same cached
// image can feed concurrent scope renders.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward.
//
// # Encoding
//
// EncodePNG returns a rendered image as base64 PNG, optionally scaled with a
// box filter for display.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. EncodePNG is stateless.
package imaging

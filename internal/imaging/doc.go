// Package imaging bridges the seam-carving engine to the tool surface: it
// loads and caches source images, runs carve operations, and renders their
// results and diagnostics as base64-encoded PNG payloads.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. Rectangular regions are
// inclusive at (x1,y1) and exclusive at (x2,y2).
//
// # Formats
//
// Images load through image.Decode: PNG, JPEG, GIF, plus PNM (PPM P3/P6)
// registered by this package. All rendered results are PNG regardless of the
// input format; EncodePNM is available for callers that want the engine's
// historical output format.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining operations are pure
// functions of their image argument and can run concurrently on different
// images.
package imaging

// Package server implements the MCP (Model Context Protocol) server for the
// seam-carving tools.
//
// This package provides a JSON-RPC 2.0 server that exposes content-aware
// width reduction through the MCP protocol, so MCP-compatible clients can
// carve images, inspect energy maps, and preview seams before committing to
// a removal.
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
// Basic Image Information:
//   - image_load: Load image and get metadata, including carving headroom
//   - image_dimensions: Get width and height
//
// Carving:
//   - image_carve: Remove N minimum-energy vertical seams
//   - image_resize_compare: Carve vs. Lanczos resample at the same width
//
// Diagnostics:
//   - image_energy_map: Render the per-pixel energy as grayscale
//   - image_seam_preview: Draw the next N seams without removing them
//   - image_detect_text_regions: Find text-like regions worth protecting
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images keyed by path, so
// iterating on seam counts against one source file decodes it once. The cache
// persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
package server

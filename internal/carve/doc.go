// Package carve implements content-aware width reduction by seam carving.
//
// A seam is a connected top-to-bottom path of one pixel per row, adjacent
// columns differing by at most one, chosen to minimize the total gradient
// energy it traverses. Removing the minimum-energy seam narrows the image by
// one column while preserving its visually important content.
//
// # Pipeline
//
// The engine is built from small, independently testable stages:
//
//  1. Energy: per-pixel gradient magnitude summed over the R, G, B channels.
//  2. Build: a dynamic-programming cost table of minimum cumulative energy
//     for any seam prefix ending at each cell.
//  3. FindSeam: backtracking from the cheapest bottom-row cell.
//  4. RemoveSeam: per-row deletion of the seam's pixels from the grid.
//  5. UpdateAfterRemoval: incremental repair of the cost table, limited to the
//     triangular cone of cells a removal can actually perturb, so repeated
//     removals avoid a full O(width*height) rebuild each iteration.
//
// ReduceWidth orchestrates the pipeline: the cost table is built once, then
// each iteration finds, removes, and repairs.
//
// # Coordinate System
//
// All coordinates are 0-based with (0,0) at the top-left corner; rows increase
// downward and columns increase rightward, matching the rest of this module.
//
// # Error Handling
//
// Every stage validates its own inputs and fails fast with one of the
// package's sentinel errors (ErrInvalidImage, ErrOutOfRange, ErrInvalidSeam,
// ErrInvalidTable, ErrEmptyImage, ErrSeamCount). No stage substitutes a
// default for invalid input, and ReduceWidth never returns a partially carved
// image: any mid-loop failure aborts the whole call.
//
// # Concurrency
//
// Operations are pure computations over structures owned exclusively by the
// caller. Nothing in this package is shared across calls; synchronize access
// to a single PixelGrid externally if it is used from multiple goroutines.
package carve

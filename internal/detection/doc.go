// Package detection finds image regions that seam carving should leave
// intact.
//
// Carving judges pixels purely by local gradient, which rates the strokes of
// rendered text highly but the whitespace between them at zero; seams happily
// thread through that whitespace and shear lines of text apart. The heuristic
// here locates likely text regions (medium edge density with predominantly
// horizontal structure) so callers can protect them before carving.
//
// Detection is approximate by design: a false positive merely shields a patch
// of the image from seams, while a false negative leaves text at the energy
// function's mercy. Thresholds accordingly lean toward over-protection.
package detection

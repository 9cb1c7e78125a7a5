package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/seam-carve-mcp/internal/carve"
)

// SeamPreviewResult contains the source image with upcoming seams painted
// over it.
type SeamPreviewResult struct {
	// Width of the preview in pixels (same as input; nothing is removed).
	Width int `json:"width"`

	// Height of the preview in pixels (same as input).
	Height int `json:"height"`

	// SeamCount is the number of seams drawn.
	SeamCount int `json:"seam_count"`

	// SeamCosts lists the total energy of each drawn seam in removal order.
	SeamCosts []float64 `json:"seam_costs"`

	// ImageBase64 is the annotated image encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png" for previews.
	MimeType string `json:"mime_type"`
}

// SeamPreview draws the first n seams a carve would remove, without removing
// anything from the returned image.
//
// Seams are computed exactly as CarveWidth would: each one is found, taken
// out of a working copy, and the cost table repaired, so seam i reflects the
// image state after seams 0..i-1 are gone. Their pixels are then mapped back
// to source coordinates for drawing. Colors run along an HSV ramp from red
// (first seam to go) to yellow (last), so removal order stays readable when
// seams crowd together.
func SeamPreview(img image.Image, n int, protect []image.Rectangle) (*SeamPreviewResult, error) {
	grid, err := carve.FromImage(img)
	if err != nil {
		return nil, err
	}
	for _, r := range protect {
		if err := grid.Protect(r); err != nil {
			return nil, err
		}
	}

	w := grid.Width()
	h := grid.Height()
	if n < 1 || n >= w {
		return nil, fmt.Errorf("%w: n=%d, width=%d", carve.ErrSeamCount, n, w)
	}

	// sourceCols[r][c] is the source column of the pixel currently at
	// column c of row r in the shrinking working grid.
	sourceCols := make([][]int, h)
	for r := range sourceCols {
		sourceCols[r] = make([]int, w)
		for c := range sourceCols[r] {
			sourceCols[r][c] = c
		}
	}

	overlay := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(overlay, overlay.Bounds(), img, img.Bounds().Min, draw.Src)

	table, err := carve.Build(grid)
	if err != nil {
		return nil, err
	}

	costs := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		seam, err := carve.FindSeam(table)
		if err != nil {
			return nil, fmt.Errorf("seam %d: %w", i, err)
		}
		costs = append(costs, seam.Cost)

		tint := seamColor(i, n)
		for r, c := range seam.Cols {
			overlay.SetNRGBA(sourceCols[r][c], r, tint)
			sourceCols[r] = append(sourceCols[r][:c], sourceCols[r][c+1:]...)
		}

		if err := carve.RemoveSeam(grid, seam); err != nil {
			return nil, fmt.Errorf("seam %d: %w", i, err)
		}
		if err := carve.UpdateAfterRemoval(grid, table, seam); err != nil {
			return nil, fmt.Errorf("seam %d: %w", i, err)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, overlay); err != nil {
		return nil, fmt.Errorf("failed to encode seam preview: %w", err)
	}

	return &SeamPreviewResult{
		Width:       w,
		Height:      h,
		SeamCount:   n,
		SeamCosts:   costs,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// seamColor picks the color for the i-th of n seams: hue 0 (red) through 60
// (yellow), full saturation and value.
func seamColor(i, n int) color.NRGBA {
	hue := 0.0
	if n > 1 {
		hue = 60 * float64(i) / float64(n-1)
	}
	r, g, b := colorful.Hsv(hue, 1, 1).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

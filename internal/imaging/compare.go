package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/seam-carve-mcp/internal/carve"
)

// ResizeCompareResult pairs a carved image with a conventionally resampled
// one at the same target width, for judging whether content-aware reduction
// is worth it on a given picture.
type ResizeCompareResult struct {
	// TargetWidth both output images share.
	TargetWidth int `json:"target_width"`

	// Height of both outputs. Carving keeps the source height; the Lanczos
	// variant is rendered at the same height rather than scaled
	// proportionally, so the two images align pixel row for pixel row.
	Height int `json:"height"`

	// SeamsRemoved is source width minus TargetWidth.
	SeamsRemoved int `json:"seams_removed"`

	// CarvedBase64 is the seam-carved image as base64 PNG.
	CarvedBase64 string `json:"carved_base64"`

	// ResizedBase64 is the Lanczos-resampled image as base64 PNG.
	ResizedBase64 string `json:"resized_base64"`

	// MimeType is always "image/png" for both payloads.
	MimeType string `json:"mime_type"`
}

// ResizeCompare reduces an image to targetWidth twice: once by seam carving
// and once by Lanczos resampling, returning both.
//
// targetWidth must satisfy 1 <= targetWidth <= source width; a target equal
// to the source width is allowed and compares two copies.
func ResizeCompare(img image.Image, targetWidth int) (*ResizeCompareResult, error) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if targetWidth < 1 || targetWidth > w {
		return nil, fmt.Errorf("%w: target width %d for %d-wide image",
			carve.ErrSeamCount, targetWidth, w)
	}
	seams := w - targetWidth

	grid, err := carve.FromImage(img)
	if err != nil {
		return nil, err
	}
	carved, err := carve.ReduceWidth(grid, seams)
	if err != nil {
		return nil, err
	}
	carvedImg, err := carved.Image()
	if err != nil {
		return nil, err
	}

	resized := imaging.Resize(img, targetWidth, h, imaging.Lanczos)

	var carvedBuf bytes.Buffer
	if err := png.Encode(&carvedBuf, carvedImg); err != nil {
		return nil, fmt.Errorf("failed to encode carved image: %w", err)
	}
	var resizedBuf bytes.Buffer
	if err := png.Encode(&resizedBuf, resized); err != nil {
		return nil, fmt.Errorf("failed to encode resized image: %w", err)
	}

	return &ResizeCompareResult{
		TargetWidth:   targetWidth,
		Height:        h,
		SeamsRemoved:  seams,
		CarvedBase64:  base64.StdEncoding.EncodeToString(carvedBuf.Bytes()),
		ResizedBase64: base64.StdEncoding.EncodeToString(resizedBuf.Bytes()),
		MimeType:      "image/png",
	}, nil
}

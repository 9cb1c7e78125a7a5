package detection

import (
	"image"
	"math"
	"sort"
)

// Region is a rectangle worth protecting from seam removal, with the
// confidence the heuristic assigned to it.
type Region struct {
	// X1,Y1 are the inclusive top-left corner; X2,Y2 the exclusive
	// bottom-right corner, in source pixel coordinates.
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`

	// Confidence in [0,1]; higher means the window looked more like text.
	Confidence float64 `json:"confidence"`
}

// Rect converts the region to the stdlib rectangle the carver's protection
// API consumes.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// TextRegionsResult lists detected protect-worthy regions, most confident
// first.
type TextRegionsResult struct {
	Regions []Region `json:"regions"`
	Count   int      `json:"count"`
}

// windowSizes are the sliding windows scanned for text-like structure, sized
// for small through large rendered text.
var windowSizes = []struct{ w, h int }{
	{80, 25},
	{100, 30},
	{150, 40},
	{200, 50},
}

// TextRegions scans an image for areas likely to contain text.
//
// Each window is scored by edge density (text sits in a medium band: sparse
// windows are background, saturated ones are texture) combined with how
// horizontal the edge runs are, since text lines out horizontally. Windows
// scoring at or above minConfidence are kept, and overlapping survivors merge
// into their union so one line of text yields one region.
func TextRegions(img image.Image, minConfidence float64) (*TextRegionsResult, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	edges := edgeMask(img)

	var candidates []Region
	for _, ws := range windowSizes {
		stepX := ws.w / 2
		stepY := ws.h / 2

		for y := 0; y+ws.h <= height; y += stepY {
			for x := 0; x+ws.w <= width; x += stepX {
				edgeCount := 0
				for wy := 0; wy < ws.h; wy++ {
					for wx := 0; wx < ws.w; wx++ {
						if edges[y+wy][x+wx] {
							edgeCount++
						}
					}
				}

				density := float64(edgeCount) / float64(ws.w*ws.h)
				if density < 0.05 || density > 0.4 {
					continue
				}

				confidence := horizontalScore(edges, x, y, ws.w, ws.h) *
					(1 - math.Abs(density-0.2)/0.2)
				if confidence < minConfidence {
					continue
				}

				candidates = append(candidates, Region{
					X1:         x + bounds.Min.X,
					Y1:         y + bounds.Min.Y,
					X2:         x + ws.w + bounds.Min.X,
					Y2:         y + ws.h + bounds.Min.Y,
					Confidence: math.Round(confidence*1000) / 1000,
				})
			}
		}
	}

	merged := mergeOverlapping(candidates)
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Confidence > merged[j].Confidence
	})

	return &TextRegionsResult{Regions: merged, Count: len(merged)}, nil
}

// edgeMask marks pixels whose grayscale gradient to the right or downward
// neighbor exceeds a fixed threshold. Border pixels are never edges.
func edgeMask(img image.Image) [][]bool {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	const threshold = 30.0

	edges := make([][]bool, height)
	for y := 0; y < height; y++ {
		edges[y] = make([]bool, width)
		if y == 0 || y == height-1 {
			continue
		}
		for x := 1; x < width-1; x++ {
			c := grayValue(img, x+bounds.Min.X, y+bounds.Min.Y)
			cx := grayValue(img, x+1+bounds.Min.X, y+bounds.Min.Y)
			cy := grayValue(img, x+bounds.Min.X, y+1+bounds.Min.Y)
			if math.Abs(c-cx) > threshold || math.Abs(c-cy) > threshold {
				edges[y][x] = true
			}
		}
	}
	return edges
}

// grayValue is the BT.601 luminance of the pixel, in [0,255].
func grayValue(img image.Image, x, y int) float64 {
	r, g, b, _ := img.At(x, y).RGBA()
	return 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
}

// horizontalScore is the fraction of edge runs inside the window that are
// horizontal. Text-bearing windows score well above 0.5.
func horizontalScore(edges [][]bool, x, y, w, h int) float64 {
	horizontalRuns := 0
	verticalRuns := 0

	for row := y; row < y+h; row++ {
		inRun := false
		for col := x; col < x+w; col++ {
			if edges[row][col] {
				if !inRun {
					horizontalRuns++
					inRun = true
				}
			} else {
				inRun = false
			}
		}
	}

	for col := x; col < x+w; col++ {
		inRun := false
		for row := y; row < y+h; row++ {
			if edges[row][col] {
				if !inRun {
					verticalRuns++
					inRun = true
				}
			} else {
				inRun = false
			}
		}
	}

	if horizontalRuns+verticalRuns == 0 {
		return 0
	}
	return float64(horizontalRuns) / float64(horizontalRuns+verticalRuns)
}

// mergeOverlapping unions regions that intersect, keeping the higher
// confidence of each merged pair.
func mergeOverlapping(regions []Region) []Region {
	merged := make([]Region, 0, len(regions))

	for _, r := range regions {
		absorbed := false
		for i := range merged {
			if r.Rect().Overlaps(merged[i].Rect()) {
				u := r.Rect().Union(merged[i].Rect())
				merged[i].X1, merged[i].Y1 = u.Min.X, u.Min.Y
				merged[i].X2, merged[i].Y2 = u.Max.X, u.Max.Y
				merged[i].Confidence = math.Max(r.Confidence, merged[i].Confidence)
				absorbed = true
				break
			}
		}
		if !absorbed {
			merged = append(merged, r)
		}
	}
	return merged
}

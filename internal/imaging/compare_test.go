package imaging

import (
	"errors"
	"testing"

	"github.com/ironsheep/seam-carve-mcp/internal/carve"
)

func TestResizeCompare_ProducesBothVariants(t *testing.T) {
	result, err := ResizeCompare(gradientImage(8, 5), 5)
	if err != nil {
		t.Fatalf("ResizeCompare failed: %v", err)
	}

	if result.TargetWidth != 5 || result.Height != 5 {
		t.Errorf("target dimensions: got %dx%d, want 5x5", result.TargetWidth, result.Height)
	}
	if result.SeamsRemoved != 3 {
		t.Errorf("SeamsRemoved: got %d, want 3", result.SeamsRemoved)
	}

	carved := decodeBase64PNG(t, result.CarvedBase64)
	if carved.Bounds().Dx() != 5 || carved.Bounds().Dy() != 5 {
		t.Errorf("carved: got %dx%d, want 5x5", carved.Bounds().Dx(), carved.Bounds().Dy())
	}
	resized := decodeBase64PNG(t, result.ResizedBase64)
	if resized.Bounds().Dx() != 5 || resized.Bounds().Dy() != 5 {
		t.Errorf("resized: got %dx%d, want 5x5", resized.Bounds().Dx(), resized.Bounds().Dy())
	}
}

func TestResizeCompare_FullWidthIsIdentity(t *testing.T) {
	src := gradientImage(6, 4)
	result, err := ResizeCompare(src, 6)
	if err != nil {
		t.Fatalf("ResizeCompare failed: %v", err)
	}
	if result.SeamsRemoved != 0 {
		t.Errorf("SeamsRemoved: got %d, want 0", result.SeamsRemoved)
	}

	carved := decodeBase64PNG(t, result.CarvedBase64)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			gr, _, _, _ := carved.At(x, y).RGBA()
			wr, _, _, _ := src.At(x, y).RGBA()
			if gr != wr {
				t.Errorf("carved pixel (%d,%d) differs from source", x, y)
			}
		}
	}
}

func TestResizeCompare_TargetWidthErrors(t *testing.T) {
	img := gradientImage(6, 4)

	for _, target := range []int{0, -2, 7} {
		if _, err := ResizeCompare(img, target); !errors.Is(err, carve.ErrSeamCount) {
			t.Errorf("target=%d: got %v, want ErrSeamCount", target, err)
		}
	}
}

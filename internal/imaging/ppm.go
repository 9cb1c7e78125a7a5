package imaging

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// PNM (portable pixmap) support for the P3 and P6 variants, the seam carver's
// historical input format. Both decoders are registered with the standard
// image package, so ImageCache loads .ppm files through the same image.Decode
// path as PNG and JPEG.
//
// Only 8-bit-per-channel files (maxval <= 255) are accepted; 16-bit pixmaps
// are rare and the engine treats channels as 8-bit-range values anyway.

func init() {
	image.RegisterFormat("ppm", "P6", decodePNM, decodePNMConfig)
	image.RegisterFormat("ppm", "P3", decodePNM, decodePNMConfig)
}

// pnmHeader reads the magic, dimensions, and maxval, consuming exactly one
// whitespace byte after maxval so a P6 raster starts cleanly.
func pnmHeader(r *bufio.Reader) (magic string, width, height, maxval int, err error) {
	m := make([]byte, 2)
	if _, err = io.ReadFull(r, m); err != nil {
		return "", 0, 0, 0, fmt.Errorf("pnm: reading magic: %w", err)
	}
	magic = string(m)
	if magic != "P3" && magic != "P6" {
		return "", 0, 0, 0, fmt.Errorf("pnm: unsupported magic %q", magic)
	}

	fields := [3]int{}
	for i := range fields {
		fields[i], err = pnmInt(r)
		if err != nil {
			return "", 0, 0, 0, err
		}
	}
	width, height, maxval = fields[0], fields[1], fields[2]

	if width <= 0 || height <= 0 {
		return "", 0, 0, 0, fmt.Errorf("pnm: invalid dimensions %dx%d", width, height)
	}
	if maxval <= 0 || maxval > 255 {
		return "", 0, 0, 0, fmt.Errorf("pnm: unsupported maxval %d", maxval)
	}
	return magic, width, height, maxval, nil
}

// pnmInt reads one ASCII integer, skipping whitespace and # comments.
func pnmInt(r *bufio.Reader) (int, error) {
	n := 0
	seen := false
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && seen {
				return n, nil
			}
			return 0, fmt.Errorf("pnm: reading header: %w", err)
		}
		switch {
		case b == '#' && !seen:
			if _, err := r.ReadString('\n'); err != nil && err != io.EOF {
				return 0, fmt.Errorf("pnm: reading comment: %w", err)
			}
		case b >= '0' && b <= '9':
			n = n*10 + int(b-'0')
			seen = true
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if seen {
				return n, nil
			}
		default:
			return 0, fmt.Errorf("pnm: unexpected byte %q in header", b)
		}
	}
}

func decodePNM(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	magic, w, h, maxval, err := pnmHeader(br)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	// Rescale a sample to the 0..255 range with round-half-up, in integers so
	// e.g. 50 at maxval 100 lands on 128, not 127.999... truncated.
	rescale := func(v int) uint8 {
		return uint8((v*255 + maxval/2) / maxval)
	}

	readSample := func() (uint8, error) {
		if magic == "P6" {
			b, err := br.ReadByte()
			if err != nil {
				return 0, fmt.Errorf("pnm: reading raster: %w", err)
			}
			return rescale(int(b)), nil
		}
		v, err := pnmInt(br)
		if err != nil {
			return 0, err
		}
		if v > maxval {
			return 0, fmt.Errorf("pnm: sample %d exceeds maxval %d", v, maxval)
		}
		return rescale(v), nil
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var rgb [3]uint8
			for i := range rgb {
				s, err := readSample()
				if err != nil {
					return nil, err
				}
				rgb[i] = s
			}
			img.SetNRGBA(x, y, color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255})
		}
	}
	return img, nil
}

func decodePNMConfig(r io.Reader) (image.Config, error) {
	_, w, h, _, err := pnmHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.NRGBAModel, Width: w, Height: h}, nil
}

// EncodePNM writes img as a binary (P6) portable pixmap. Alpha is dropped.
func EncodePNM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return fmt.Errorf("pnm: writing header: %w", err)
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if err := bw.WriteByte(uint8(r >> 8)); err != nil {
				return fmt.Errorf("pnm: writing raster: %w", err)
			}
			if err := bw.WriteByte(uint8(g >> 8)); err != nil {
				return fmt.Errorf("pnm: writing raster: %w", err)
			}
			if err := bw.WriteByte(uint8(b >> 8)); err != nil {
				return fmt.Errorf("pnm: writing raster: %w", err)
			}
		}
	}
	return bw.Flush()
}

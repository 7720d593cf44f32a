package mapio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG maps
	"io"
	"os"

	_ "github.com/jbuchbinder/gopnm" // PBM, PGM and PPM maps

	"github.com/katalvlaran/gridnav/grid"
)

// DefaultThreshold splits 8-bit gray levels in half.
const DefaultThreshold uint8 = 128

// ErrEmptyImage indicates an image with no pixels.
var ErrEmptyImage = errors.New("mapio: image has no pixels")

// FromImage thresholds img into an unpadded grid: gray ≥ threshold is Free.
// Complexity: O(W×H).
func FromImage(img image.Image, threshold uint8) (*grid.Grid, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	values := make([][]uint8, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		values[y] = make([]uint8, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			if g.Y >= threshold {
				values[y][x] = grid.Free
			} else {
				values[y][x] = grid.Blocked
			}
		}
	}

	return grid.New(values)
}

// Decode reads an image from r and returns the thresholded, padded grid
// together with the detected format name.
func Decode(r io.Reader, threshold uint8) (*grid.Grid, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("mapio: decode: %w", err)
	}
	g, err := FromImage(img, threshold)
	if err != nil {
		return nil, format, err
	}

	return g.Pad(), format, nil
}

// Load opens path and decodes it with Decode.
func Load(path string, threshold uint8) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapio: %w", err)
	}
	defer f.Close()

	g, _, err := Decode(f, threshold)
	return g, err
}

// Package canvas contains a floating point framebuffer that renderers write
// into pixel by pixel and that serializes to the plain text PPM format.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/BeatGlow/canvas/pixel"
)

// MaxPixels is the largest number of pixels New will allocate.
const MaxPixels = 1 << 28

// Errors
var (
	ErrInvalidDimension = errors.New("canvas: invalid dimension")
	ErrTooLarge         = errors.New("canvas: dimensions too large")
	ErrOutOfBounds      = errors.New("canvas: out of canvas bounds")
	ErrSerialization    = errors.New("canvas: serialization failed")
)

// Canvas is a fixed size grid of [pixel.Color] values, stored row by row.
//
// A Canvas is not safe for concurrent use. There is no internal locking:
// keep a single writer, or guard the canvas externally, and serialize it
// once all writes are done.
type Canvas struct {
	width  int
	height int
	pix    []pixel.Color
}

// New allocates a width by height canvas with every pixel black.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w %dx%d", ErrInvalidDimension, width, height)
	}
	if width > MaxPixels/height {
		return nil, fmt.Errorf("%w %dx%d, limit is %d pixels", ErrTooLarge, width, height, MaxPixels)
	}

	Logger().Debug("canvas: new", "width", width, "height", height)
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]pixel.Color, width*height),
	}, nil
}

// Width of the canvas in pixels.
func (c *Canvas) Width() int { return c.width }

// Height of the canvas in pixels.
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) in(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// PixelAt returns the color at (x, y). Coordinates outside the canvas
// return ErrOutOfBounds.
func (c *Canvas) PixelAt(x, y int) (pixel.Color, error) {
	if !c.in(x, y) {
		return pixel.Color{}, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, c.width, c.height)
	}
	return c.pix[x+y*c.width], nil
}

// WritePixel stores p at (x, y). Writes outside the canvas are ignored, so
// callers may emit clipped geometry without checking bounds.
func (c *Canvas) WritePixel(x, y int, p pixel.Color) {
	if !c.in(x, y) {
		return
	}
	c.pix[x+y*c.width] = p
}

// Clear the canvas to black.
func (c *Canvas) Clear() {
	clear(c.pix)
}

// Fill the canvas with a single color.
func (c *Canvas) Fill(p pixel.Color) {
	for i := range c.pix {
		c.pix[i] = p
	}
}

// Bounds implements [image.Image].
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements [image.Image].
func (c *Canvas) ColorModel() color.Model {
	return pixel.Model
}

// At implements [image.Image]. Out of bounds pixels are transparent.
func (c *Canvas) At(x, y int) color.Color {
	if !c.in(x, y) {
		return color.Transparent
	}
	return c.pix[x+y*c.width]
}

// Set implements [image/draw.Image] with the same out of bounds policy as
// WritePixel.
func (c *Canvas) Set(x, y int, v color.Color) {
	c.WritePixel(x, y, pixel.Model.Convert(v).(pixel.Color))
}

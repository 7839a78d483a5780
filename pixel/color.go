package pixel

import (
	"fmt"
	"image/color"
	"math"
)

// Epsilon is the per channel tolerance used by [Color.Equal].
const Epsilon = 0.00001

// Model converts any [color.Color] to a [Color].
var Model color.Model = color.ModelFunc(model)

// Common colors.
var (
	Black = Color{}
	White = Color{1, 1, 1}
)

// Color is a linear RGB color with unbounded float channels.
type Color struct {
	R, G, B float64
}

// RGB returns the color with the given channels.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns c + o.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns c - o.
func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mul returns the channel wise product, as used for attenuation.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Lerp blends linearly from c (t = 0) to o (t = 1).
func (c Color) Lerp(o Color, t float64) Color {
	return c.Scale(1 - t).Add(o.Scale(t))
}

// Equal reports whether every channel of c and o differs by less than Epsilon.
func (c Color) Equal(o Color) bool {
	return equal(c.R, o.R) && equal(c.G, o.G) && equal(c.B, o.B)
}

func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Bytes returns the channels clamped to 8 bits.
func (c Color) Bytes() (r, g, b uint8) {
	return Clamp(c.R), Clamp(c.G), Clamp(c.B)
}

// RGBA implements [color.Color]. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return clamp16(c.R), clamp16(c.G), clamp16(c.B), 0xffff
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}

// Clamp maps a channel value to [0, 255]: the value is scaled by 255, rounded
// to the nearest integer (halves away from zero) and then clamped. NaN maps
// to 0.
func Clamp(v float64) uint8 {
	v = math.Round(v * 0xff)
	switch {
	case v > 0xff:
		return 0xff
	case v > 0:
		return uint8(v)
	default:
		// Also catches NaN.
		return 0
	}
}

func clamp16(v float64) uint32 {
	v = math.Round(v * 0xffff)
	switch {
	case v > 0xffff:
		return 0xffff
	case v > 0:
		return uint32(v)
	default:
		return 0
	}
}

func model(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
	}
}

// Package label draws text onto images, such as a rendered canvas.
package label

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Face returns a font face for the given size in points (at 72 DPI, so
// points equal pixels). A size of zero or less selects the 7x13 bitmap face,
// anything else a scaled Go Regular face.
func Face(size float64) (font.Face, error) {
	if size <= 0 {
		return basicfont.Face7x13, nil
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Draw s onto dst in color c, with the left end of the baseline at pt.
// Glyphs are clipped to the bounds of dst.
func Draw(dst draw.Image, pt image.Point, s string, c color.Color, face font.Face) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(pt.X, pt.Y),
	}
	d.DrawString(s)
}

// Width is the advance of s in whole pixels, rounded up.
func Width(s string, face font.Face) int {
	return font.MeasureString(face, s).Ceil()
}

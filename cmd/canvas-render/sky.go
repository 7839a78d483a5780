package main

import (
	"math"

	"github.com/BeatGlow/canvas"
	"github.com/BeatGlow/canvas/pixel"
)

const (
	focalLength    = 1.0
	viewportHeight = 2.0
)

var skyBlue = pixel.RGB(0.5, 0.7, 1.0)

type vec struct {
	x, y, z float64
}

func (a vec) add(b vec) vec       { return vec{a.x + b.x, a.y + b.y, a.z + b.z} }
func (a vec) sub(b vec) vec       { return vec{a.x - b.x, a.y - b.y, a.z - b.z} }
func (a vec) scale(s float64) vec { return vec{a.x * s, a.y * s, a.z * s} }
func (a vec) length() float64     { return math.Sqrt(a.x*a.x + a.y*a.y + a.z*a.z) }
func (a vec) unit() vec           { return a.scale(1 / a.length()) }

// imageHeight derives the height from the width and aspect ratio, at least 1.
func imageHeight(width int, aspect float64) int {
	h := int(math.Round(float64(width) / aspect))
	if h < 1 {
		return 1
	}
	return h
}

// skyColor blends white at the bottom to blue at the top, depending on the
// vertical component of the normalized ray direction.
func skyColor(dir vec) pixel.Color {
	a := 0.5 * (dir.unit().y + 1)
	return pixel.White.Lerp(skyBlue, a)
}

// renderSky casts one ray per pixel center from a camera at the origin
// looking down -z.
func renderSky(c *canvas.Canvas) {
	var (
		w, h          = c.Width(), c.Height()
		viewportWidth = viewportHeight * float64(w) / float64(h)
		center        = vec{}
		viewportU     = vec{x: viewportWidth}
		viewportV     = vec{y: -viewportHeight}
		deltaU        = viewportU.scale(1 / float64(w))
		deltaV        = viewportV.scale(1 / float64(h))
		upperLeft     = center.sub(vec{z: focalLength}).sub(viewportU.scale(0.5)).sub(viewportV.scale(0.5))
		pixel00       = upperLeft.add(deltaU.add(deltaV).scale(0.5))
	)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := pixel00.add(deltaU.scale(float64(x))).add(deltaV.scale(float64(y)))
			c.WritePixel(x, y, skyColor(p.sub(center)))
		}
	}
}

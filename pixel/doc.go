// Package pixel implements the floating point color used by the canvas.
//
// Channels are linear and unbounded while a renderer accumulates light; they
// are only clamped to 8 bits when written out. [Color] is compatible with Go's
// native [color.Color] interface through [Model].
package pixel

package canvas

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WritePPM writes the canvas to w as a plain (P3) PPM image: a header with
// the dimensions and a maximum value of 255, followed by one "r g b" line per
// pixel, top row first. Channels are converted with [pixel.Clamp].
//
// Write errors match both ErrSerialization and the cause. Output already
// written is not rolled back.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	line := make([]byte, 0, len("255 255 255\n"))
	for _, p := range c.pix {
		r, g, b := p.Bytes()
		line = strconv.AppendUint(line[:0], uint64(r), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(g), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(b), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("%w: %w", ErrSerialization, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	Logger().Debug("canvas: wrote ppm", "width", c.width, "height", c.height, "pixels", len(c.pix))
	return nil
}

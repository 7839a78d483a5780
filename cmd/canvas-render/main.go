package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"math"
	"os"

	"github.com/BeatGlow/canvas"
	"github.com/BeatGlow/canvas/label"
	"github.com/BeatGlow/canvas/pixel"
)

func main() {
	widthFlag := flag.Int("width", 400, "Image width")
	aspectFlag := flag.Float64("aspect", 16.0/9.0, "Aspect ratio (width / height)")
	outputFlag := flag.String("o", "", "Output PPM file (default: standard output)")
	labelFlag := flag.String("label", "", "Text to draw in the lower left corner")
	fontSizeFlag := flag.Float64("font-size", 0, "Label font size in points (0: 7x13 bitmap font)")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log := canvas.Logger()

	if *aspectFlag <= 0 || math.IsNaN(*aspectFlag) || math.IsInf(*aspectFlag, 0) {
		fatal(fmt.Errorf("invalid aspect ratio %g", *aspectFlag))
	}

	c, err := canvas.New(*widthFlag, imageHeight(*widthFlag, *aspectFlag))
	if err != nil {
		fatal(err)
	}
	log.Info("rendering", "width", c.Width(), "height", c.Height())
	renderSky(c)

	if *labelFlag != "" {
		face, err := label.Face(*fontSizeFlag)
		if err != nil {
			fatal(err)
		}
		margin := face.Metrics().Descent.Ceil() + 2
		label.Draw(c, image.Pt(margin, c.Height()-margin), *labelFlag, pixel.Black, face)
		if w := label.Width(*labelFlag, face) + margin; w > c.Width() {
			log.Warn("label clipped", "label", *labelFlag, "width", w)
		}
	}

	if *outputFlag == "" {
		if err = c.WritePPM(os.Stdout); err != nil {
			fatal(err)
		}
		return
	}

	f, err := os.Create(*outputFlag)
	if err != nil {
		fatal(err)
	}
	if err = c.WritePPM(f); err != nil {
		_ = f.Close()
		fatal(err)
	}
	if err = f.Close(); err != nil {
		fatal(err)
	}
	log.Info("wrote image", "file", *outputFlag)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}

package geometry

import (
	"fmt"
	"io"
	"math"
)

const (
	svgHeader = "<svg width=\"%dpx\" height=\"%dpx\" version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\">\n"
	svgPath   = "  <path d=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%g\" />\n"
	svgFooter = "</svg>\n"
)

// SVGOptions configures the SVG writer.
type SVGOptions struct {
	// StrokeWidth of every path, in output units.
	StrokeWidth float64
	// Stroke color for all outlines.
	Stroke string
	// Fill color for closed outlines; open spurs are never filled.
	Fill string
	// Margin adds blank space around the drawing, in output units.
	Margin float64
}

// DefaultSVGOptions returns the writer defaults: 1-unit black strokes,
// wheat fill, a 10-unit margin.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		StrokeWidth: 1,
		Stroke:      "#000000",
		Fill:        "#f5deb3",
		Margin:      10,
	}
}

// WriteSVG renders emitted paths as a standalone SVG document. The
// canvas is sized to the paths' bounding box plus the margin; closed
// outlines are filled and stroked, open ones stroked only.
func WriteSVG(w io.Writer, paths []Path, opts SVGOptions) error {
	if len(paths) == 0 {
		return ErrNoPaths
	}

	maxX, maxY := 0.0, 0.0
	for _, p := range paths {
		for _, pr := range p.Primitives {
			maxX = math.Max(maxX, pr.To.X)
			maxY = math.Max(maxY, pr.To.Y)
		}
	}
	width := int(math.Ceil(maxX + 2*opts.Margin))
	height := int(math.Ceil(maxY + 2*opts.Margin))

	if _, err := fmt.Fprintf(w, svgHeader, width, height); err != nil {
		return err
	}
	for _, p := range paths {
		d := ""
		for _, pr := range p.Primitives {
			cmd := "L"
			if pr.Op == MoveTo {
				cmd = "M"
			}
			d += fmt.Sprintf("%s %g %g ", cmd, pr.To.X+opts.Margin, pr.To.Y+opts.Margin)
		}
		fill := "none"
		if p.Closed {
			d += "Z"
			fill = opts.Fill
		}
		if _, err := fmt.Fprintf(w, svgPath, d, fill, opts.Stroke, opts.StrokeWidth); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, svgFooter)

	return err
}

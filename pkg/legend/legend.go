// Package legend renders a color map as an SVG legend bar, the vector
// equivalent of the pixmap legends shown next to each map in the browser.
package legend

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/titusjan/cmlib/pkg/cmap"
)

const (
	DefaultWidth  = 512
	DefaultHeight = 32
)

// Options control the appearance of a legend bar.
type Options struct {
	Width      int
	Height     int
	DrawBorder bool
	Title      string // rendered inside the bar; empty means no title
}

// Bar generates the SVG legend for one color map.
type Bar struct {
	colorMap *cmap.ColorMap
	opts     Options
}

// New creates a legend bar for the given color map. Zero or negative
// dimensions fall back to the defaults.
func New(colorMap *cmap.ColorMap, opts Options) *Bar {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	return &Bar{colorMap: colorMap, opts: opts}
}

type svgCell struct {
	X, Width int
	Fill     string
}

type svgData struct {
	Width, Height int
	Cells         []svgCell
	DrawBorder    bool
	// Border rect dimensions, inset so the 1px stroke stays inside the canvas.
	BorderWidth, BorderHeight int
	Title                     string
	TitleX                    int
	TitleY                    int
	TitleColor                string
}

// Generate returns the SVG document as a string. One rect is emitted per
// color row, spread evenly over the requested width.
func (b *Bar) Generate() (string, error) {
	argb, err := b.colorMap.ARGBBytes()
	if err != nil {
		return "", fmt.Errorf("failed to load color data for %s: %w", b.colorMap.Key(), err)
	}

	rows, _ := argb.Dims()
	data := svgData{
		Width:        b.opts.Width,
		Height:       b.opts.Height,
		DrawBorder:   b.opts.DrawBorder,
		BorderWidth:  b.opts.Width - 1,
		BorderHeight: b.opts.Height - 1,
	}

	var lightnessSum float64
	for i := 0; i < rows; i++ {
		x0 := i * b.opts.Width / rows
		x1 := (i + 1) * b.opts.Width / rows
		if x1 <= x0 {
			x1 = x0 + 1
		}

		c := cellColor(argb.Row(i))
		l, _, _ := c.Lab()
		lightnessSum += l

		data.Cells = append(data.Cells, svgCell{
			X:     x0,
			Width: x1 - x0,
			Fill:  c.Hex(),
		})
	}

	if b.opts.Title != "" {
		data.Title = b.opts.Title
		data.TitleX = b.opts.Width / 2
		data.TitleY = b.opts.Height / 2
		data.TitleColor = contrastColor(lightnessSum / float64(rows))
	}

	tmpl, err := template.New("legend").Parse(legendTemplateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse legend template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute legend template: %w", err)
	}
	return buf.String(), nil
}

// cellColor converts one ARGB byte row to a colorful.Color.
func cellColor(row []uint8) colorful.Color {
	return colorful.Color{
		R: float64(row[0]) / 255,
		G: float64(row[1]) / 255,
		B: float64(row[2]) / 255,
	}
}

// contrastColor picks a readable text color for the given mean CIE
// lightness (0..1) of the bar.
func contrastColor(lightness float64) string {
	if lightness < 0.5 {
		return "white"
	}
	return "black"
}

//go:embed templates/legend.svg.tmpl
var legendTemplateStr string

package render

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ukaji3/linechart-go/pkg/linechart"
)

// pixel is one CSS pixel at the 96 dpi gonum uses for PNG output.
const pixel = vg.Inch / 96

// PNG writes a raster image of c.
func PNG(w io.Writer, c *linechart.Chart) error {
	o := c.Options()

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006"}
	p.Y.Min, p.Y.Max = c.Y().Domain()

	pts := make(plotter.XYs, c.Len())
	for i := range pts {
		s := c.Sample(i)
		pts[i].X = float64(s.Year.Unix())
		pts[i].Y = s.Value
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build line: %w", err)
	}
	line.Color = parseColor(o.Stroke)
	line.Width = vg.Length(o.StrokeWidth) * pixel
	p.Add(line)

	l := c.Layout()
	wt, err := p.WriterTo(vg.Length(l.Width)*pixel, vg.Length(l.Height)*pixel, "png")
	if err != nil {
		return fmt.Errorf("create png writer: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

var namedColors = map[string]color.RGBA{
	"black":     {A: 255},
	"grey":      {R: 128, G: 128, B: 128, A: 255},
	"gray":      {R: 128, G: 128, B: 128, A: 255},
	"red":       {R: 255, A: 255},
	"green":     {G: 128, A: 255},
	"blue":      {B: 255, A: 255},
	"orange":    {R: 255, G: 165, A: 255},
	"steelblue": {R: 70, G: 130, B: 180, A: 255},
}

// parseColor understands the named colors above and #rgb / #rrggbb. Anything else is grey.
func parseColor(s string) color.Color {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return namedColors["grey"]
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return namedColors["grey"]
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

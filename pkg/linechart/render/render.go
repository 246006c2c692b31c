// Package render draws a Chart as SVG, HTML, ECharts or PNG.
package render

import (
	"fmt"
	"io"

	"github.com/ukaji3/linechart-go/pkg/linechart"
	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

// Render writes c in the given format.
func Render(w io.Writer, c *linechart.Chart, format linechart.Format) error {
	switch format {
	case linechart.FormatSVG, "":
		return SVG(w, c, models.Focus{})
	case linechart.FormatHTML:
		return HTML(w, c, PageOptions{})
	case linechart.FormatECharts:
		return ECharts(w, c)
	case linechart.FormatPNG:
		return PNG(w, c)
	default:
		return fmt.Errorf("%w: %q", linechart.ErrUnsupportedFormat, format)
	}
}

// ContentType returns the MIME type of format.
func ContentType(format linechart.Format) string {
	switch format {
	case linechart.FormatHTML, linechart.FormatECharts:
		return "text/html; charset=utf-8"
	case linechart.FormatPNG:
		return "image/png"
	default:
		return "image/svg+xml"
	}
}

// Package linechart renders a time-series line chart of yearly monetary values and
// tracks the sample nearest to a pointer.
package linechart

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

// Format represents the output format of a rendered chart.
type Format string

const (
	// FormatSVG renders a standalone SVG document.
	FormatSVG Format = "svg"
	// FormatHTML renders an HTML page embedding the SVG with a pointer script.
	FormatHTML Format = "html"
	// FormatECharts renders an HTML page driven by ECharts.
	FormatECharts Format = "echarts"
	// FormatPNG renders a raster image.
	FormatPNG Format = "png"
)

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSVG, FormatHTML, FormatECharts, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (must be svg, html, echarts or png)", ErrUnsupportedFormat, s)
	}
}

// Options configures chart layout and rendering.
type Options struct {
	// Format is the output format.
	Format Format `yaml:"format" validate:"omitempty,oneof=svg html echarts png"`
	// Layout is the outer size and margins; the plot is the inner rectangle.
	Layout models.Layout `yaml:"layout"`
	// Padding widens the value domain to [min/Padding, max*Padding].
	Padding float64 `yaml:"padding" validate:"gte=1"`
	// Title is shown above the plot when non-empty.
	Title string `yaml:"title"`
	// XLabel is the x axis caption.
	XLabel string `yaml:"x_label"`
	// YLabel is the y axis caption.
	YLabel string `yaml:"y_label"`
	// Stroke is the line color.
	Stroke string `yaml:"stroke" validate:"required"`
	// StrokeWidth is the line width in pixels.
	StrokeWidth float64 `yaml:"stroke_width" validate:"gt=0"`
	// TickCount is the number of ticks axes aim for.
	TickCount int `yaml:"tick_count" validate:"gt=0"`
	// MarkerRadius is the focus circle radius.
	MarkerRadius float64 `yaml:"marker_radius" validate:"gte=0"`
	// ShowGuides draws the guide lines from the focus marker to the axes.
	// If nil, defaults to true.
	ShowGuides *bool `yaml:"show_guides"`
	// Interactive embeds the pointer script in HTML output.
	// If nil, defaults to true for html, false otherwise.
	Interactive *bool `yaml:"interactive"`
}

// DefaultOptions returns default chart options: an 800x500 canvas with a 640x350 plot.
func DefaultOptions() Options {
	return Options{
		Format: FormatSVG,
		Layout: models.Layout{
			Width:  800,
			Height: 500,
			Margin: models.Margin{Top: 50, Right: 100, Bottom: 100, Left: 60},
		},
		Padding:      1.005,
		XLabel:       "Years",
		YLabel:       "Value (R$)",
		Stroke:       "grey",
		StrokeWidth:  3,
		TickCount:    10,
		MarkerRadius: 7,
	}
}

// ShouldShowGuides returns whether to draw the focus guide lines.
func (o Options) ShouldShowGuides() bool {
	if o.ShowGuides != nil {
		return *o.ShowGuides
	}
	return true
}

// ShouldEmbedScript returns whether HTML output carries the pointer script.
func (o Options) ShouldEmbedScript() bool {
	if o.Interactive != nil {
		return *o.Interactive
	}
	return o.Format == FormatHTML
}

var validate = validator.New()

// Validate checks field constraints and that the plot area is not empty.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	if o.Layout.InnerWidth() <= 0 || o.Layout.InnerHeight() <= 0 {
		return fmt.Errorf("invalid options: margins leave no plot area (%dx%d)",
			o.Layout.InnerWidth(), o.Layout.InnerHeight())
	}
	return nil
}

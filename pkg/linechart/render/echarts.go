package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ukaji3/linechart-go/pkg/linechart"
)

// ECharts writes an ECharts page of c. The tooltip of ECharts replaces the
// server-side focus marker.
func ECharts(w io.Writer, c *linechart.Chart) error {
	o := c.Options()
	l := c.Layout()
	v0, v1 := c.Y().Domain()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: c.Name(),
			Width:     fmt.Sprintf("%dpx", l.Width),
			Height:    fmt.Sprintf("%dpx", l.Height),
		}),
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: o.XLabel, Type: "time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: o.YLabel, Min: v0, Max: v1}),
	)

	items := make([]opts.LineData, c.Len())
	for i := range items {
		s := c.Sample(i)
		items[i] = opts.LineData{Value: []interface{}{s.Year.UnixMilli(), s.Value}}
	}
	line.AddSeries(c.Name(), items)
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: o.Stroke, Width: float32(o.StrokeWidth)}),
	)

	return line.Render(w)
}

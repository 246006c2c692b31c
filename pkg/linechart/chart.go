package linechart

import (
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
	"github.com/ukaji3/linechart-go/pkg/linechart/scale"
)

// Chart owns one dataset, its scales and its layout. It is immutable after New
// and safe for concurrent use.
type Chart struct {
	name    string
	samples []models.Sample
	opts    Options
	x       *scale.Time
	y       *scale.Linear
}

// New validates ds and opts and builds the scales of a chart.
func New(ds models.Dataset, opts Options) (*Chart, error) {
	if err := Validate(ds.Samples); err != nil {
		return nil, NewLoadError(ds.Name, "validate", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	samples := slices.Clone(ds.Samples)
	width := float64(opts.Layout.InnerWidth())
	height := float64(opts.Layout.InnerHeight())

	minV, maxV := samples[0].Value, samples[0].Value
	for _, s := range samples[1:] {
		minV = min(minV, s.Value)
		maxV = max(maxV, s.Value)
	}

	return &Chart{
		name:    ds.Name,
		samples: samples,
		opts:    opts,
		// samples are sorted, so the year extent is first..last
		x: scale.NewTime(samples[0].Year, samples[len(samples)-1].Year, 0, width),
		y: scale.NewLinear(minV/opts.Padding, maxV*opts.Padding, height, 0),
	}, nil
}

// Name returns the dataset name.
func (c *Chart) Name() string { return c.name }

// Options returns the options the chart was built with.
func (c *Chart) Options() Options { return c.opts }

// Layout returns the canvas layout.
func (c *Chart) Layout() models.Layout { return c.opts.Layout }

// X returns the time scale.
func (c *Chart) X() *scale.Time { return c.x }

// Y returns the value scale.
func (c *Chart) Y() *scale.Linear { return c.y }

// Len returns the number of samples.
func (c *Chart) Len() int { return len(c.samples) }

// Sample returns the i-th sample.
func (c *Chart) Sample(i int) models.Sample { return c.samples[i] }

// Samples returns a copy of the samples.
func (c *Chart) Samples() []models.Sample { return slices.Clone(c.samples) }

// Point returns the plot coordinates of the i-th sample.
func (c *Chart) Point(i int) (x, y float64) {
	s := c.samples[i]
	return c.x.Forward(s.Year), c.y.Forward(s.Value)
}

// XTicks returns the ticks of the bottom axis.
func (c *Chart) XTicks() []models.Tick { return c.x.Ticks(c.opts.TickCount) }

// YTicks returns the ticks of the left axis.
func (c *Chart) YTicks() []models.Tick { return c.y.Ticks(c.opts.TickCount) }

// Nearest returns the index of the sample whose year is closest to the date under
// pixel px. On an exact midpoint the later sample wins. Positions before the first
// or after the last sample clamp to that sample, and NaN counts as the plot start.
func (c *Chart) Nearest(px float64) int {
	return nearest(c.samples, c.x.Invert(c.clampX(px)))
}

// clampX limits px to the x range; inverting far-out pixels would overflow the date.
func (c *Chart) clampX(px float64) float64 {
	r0, r1 := c.x.Range()
	if math.IsNaN(px) {
		return r0
	}
	return max(min(r0, r1), min(px, max(r0, r1)))
}

func nearest(samples []models.Sample, x0 time.Time) int {
	n := len(samples)
	if n == 1 {
		return 0
	}
	i := scale.BisectLeft(samples, x0, 1, sampleYear)
	if i >= n {
		return n - 1
	}
	before, after := samples[i-1], samples[i]
	if secondsBetween(before.Year, x0) >= secondsBetween(x0, after.Year) {
		return i
	}
	return i - 1
}

// FocusAt returns the visible focus marker for the sample nearest to pixel px.
func (c *Chart) FocusAt(px float64) models.Focus {
	return c.Focus(c.Nearest(px))
}

// Focus returns the visible focus marker for the i-th sample. Guide lines are
// relative to the marker: one down to the x axis, one left to the y axis.
func (c *Chart) Focus(i int) models.Focus {
	s := c.samples[i]
	x, y := c.Point(i)
	return models.Focus{
		Visible: true,
		Index:   i,
		Sample:  s,
		X:       x,
		Y:       y,
		Label:   FormatValue(s.Value),
		XLine:   models.Segment{Y2: float64(c.opts.Layout.InnerHeight()) - y},
		YLine:   models.Segment{X2: -x},
	}
}

// FormatValue formats a sample value with the shortest exact representation.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func sampleYear(s models.Sample) time.Time { return s.Year }

// secondsBetween returns b-a in seconds without the ±292 year limit of time.Duration.
func secondsBetween(a, b time.Time) float64 {
	return float64(b.Unix()-a.Unix()) + float64(b.Nanosecond()-a.Nanosecond())/1e9
}

package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/linechart-go/pkg/linechart"
	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

func year(y int) time.Time {
	return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func newChart(t *testing.T, edit func(*linechart.Options)) *linechart.Chart {
	t.Helper()
	opts := linechart.DefaultOptions()
	if edit != nil {
		edit(&opts)
	}
	c, err := linechart.New(models.Dataset{
		Name: "revenue",
		Samples: []models.Sample{
			{Year: year(1990), Value: 100},
			{Year: year(1995), Value: 150},
			{Year: year(2000), Value: 200},
		},
	}, opts)
	require.NoError(t, err)
	return c
}

func TestPath(t *testing.T) {
	c := newChart(t, nil)
	p := Path(c)

	assert.True(t, strings.HasPrefix(p, "M0,"), p)
	assert.Equal(t, 1, strings.Count(p, "M"))
	assert.Equal(t, c.Len()-1, strings.Count(p, "L"))
	assert.Contains(t, p, "L640,")
}

func TestPathIdempotent(t *testing.T) {
	c := newChart(t, nil)
	assert.Equal(t, Path(c), Path(c))
}

func TestNum(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{0, "0"},
		{-0.001, "0"},
		{12.5, "12.5"},
		{174.58706467661692, "174.59"},
		{-640, "-640"},
	}

	for _, tt := range tests {
		if got := num(tt.in); got != tt.expected {
			t.Errorf("num(%v) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestSVG(t *testing.T) {
	c := newChart(t, func(o *linechart.Options) { o.Title = "Revenue & costs" })

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, c, models.Focus{}))
	out := buf.String()

	assert.Contains(t, out, `width="800" height="500"`)
	assert.Contains(t, out, `translate(60,50)`)
	assert.Contains(t, out, `d="`+Path(c)+`"`)
	assert.Contains(t, out, `stroke="grey" stroke-width="3px"`)
	assert.Contains(t, out, `class="focus" transform="translate(0,0)" display="none"`)
	assert.Contains(t, out, `<circle r="7"`)
	assert.Contains(t, out, `<rect class="overlay" width="640" height="350"`)
	assert.Contains(t, out, ">Years<")
	assert.Contains(t, out, ">Value (R$)<")
	assert.Contains(t, out, "Revenue &amp; costs")
	assert.Contains(t, out, ">1990<")
}

func TestSVGWithFocus(t *testing.T) {
	c := newChart(t, nil)
	f := c.Focus(1)

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, c, f))
	out := buf.String()

	assert.Contains(t, out, `class="focus" transform="translate(`+num(f.X)+","+num(f.Y)+`")>`)
	assert.Contains(t, out, `<text x="15" dy=".31em">150</text>`)
	assert.Contains(t, out, `y2="`+num(f.XLine.Y2)+`"`)
	assert.Contains(t, out, `x2="`+num(f.YLine.X2)+`"`)
}

func TestSVGWithoutGuides(t *testing.T) {
	hide := false
	c := newChart(t, func(o *linechart.Options) { o.ShowGuides = &hide })

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, c, c.Focus(0)))
	assert.NotContains(t, buf.String(), "hover-line")
}

func TestHTML(t *testing.T) {
	c := newChart(t, func(o *linechart.Options) { o.Format = linechart.FormatHTML })

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, c, PageOptions{}))
	out := buf.String()

	assert.Contains(t, out, "<title>revenue</title>")
	assert.Contains(t, out, `<svg xmlns="http://www.w3.org/2000/svg" class="linechart"`)
	assert.Contains(t, out, "<script>")
	assert.Contains(t, out, `"innerWidth":640`)
	assert.Contains(t, out, `"label":"150"`)
}

func TestHTMLStaticWithoutScript(t *testing.T) {
	off := false
	c := newChart(t, func(o *linechart.Options) { o.Interactive = &off })

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, c, PageOptions{}))
	assert.NotContains(t, buf.String(), "<script>")

	buf.Reset()
	require.NoError(t, HTML(&buf, c, PageOptions{Endpoint: "/charts/revenue"}))
	assert.Contains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), `"endpoint":"/charts/revenue"`)
}

func TestECharts(t *testing.T) {
	c := newChart(t, nil)

	var buf bytes.Buffer
	require.NoError(t, ECharts(&buf, c))
	out := buf.String()

	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "Years")
}

func TestPNG(t *testing.T) {
	c := newChart(t, nil)

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, c))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.InDelta(t, 800, img.Bounds().Dx(), 1)
	assert.InDelta(t, 500, img.Bounds().Dy(), 1)
}

func TestRenderDispatch(t *testing.T) {
	c := newChart(t, nil)

	for _, f := range []linechart.Format{linechart.FormatSVG, linechart.FormatHTML, linechart.FormatECharts, linechart.FormatPNG} {
		var buf bytes.Buffer
		assert.NoError(t, Render(&buf, c, f), "format %s", f)
		assert.NotZero(t, buf.Len(), "format %s", f)
	}

	err := Render(&bytes.Buffer{}, c, "gif")
	assert.True(t, errors.Is(err, linechart.ErrUnsupportedFormat))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected color.RGBA
	}{
		{"grey", color.RGBA{R: 128, G: 128, B: 128, A: 255}},
		{"SteelBlue", color.RGBA{R: 70, G: 130, B: 180, A: 255}},
		{"#ff0000", color.RGBA{R: 255, A: 255}},
		{"#0f0", color.RGBA{G: 255, A: 255}},
		{"nonsense", color.RGBA{R: 128, G: 128, B: 128, A: 255}},
	}

	for _, tt := range tests {
		if got := parseColor(tt.in); got != tt.expected {
			t.Errorf("parseColor(%q) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestHTMLQueuesEnterAndLeave(t *testing.T) {
	c := newChart(t, nil)

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, c, PageOptions{Endpoint: "/charts/revenue"}))
	out := buf.String()

	// only consecutive moves collapse; enter and leave keep their own slots
	assert.Contains(t, out, `if (ev.type === "move" && last && last.type === "move")`)
	assert.Contains(t, out, "queue.push(ev);")
	assert.Contains(t, out, "var ev = queue.shift();")
	assert.NotContains(t, out, "pending")
}

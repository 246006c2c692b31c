package render

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/linechart-go/pkg/linechart"
	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

// Path returns the SVG path data joining every sample in order with straight
// segments: "M x0,y0 L x1,y1 ...". The same chart always yields the same string.
func Path(c *linechart.Chart) string {
	var b strings.Builder
	for i := 0; i < c.Len(); i++ {
		x, y := c.Point(i)
		if i == 0 {
			b.WriteByte('M')
		} else {
			b.WriteByte('L')
		}
		b.WriteString(num(x))
		b.WriteByte(',')
		b.WriteString(num(y))
	}
	return b.String()
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// SVG writes a standalone SVG document of c. The focus group is drawn at focus
// and hidden unless focus.Visible.
func SVG(w io.Writer, c *linechart.Chart, focus models.Focus) error {
	bw := bufio.NewWriter(w)
	writeSVG(bw, c, focus)
	return bw.Flush()
}

func writeSVG(w *bufio.Writer, c *linechart.Chart, focus models.Focus) {
	opts := c.Options()
	l := c.Layout()
	iw, ih := l.InnerWidth(), l.InnerHeight()

	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" class="linechart" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">`+"\n",
		l.Width, l.Height, l.Width, l.Height)
	if opts.Title != "" {
		fmt.Fprintf(w, `<text class="title" x="%d" y="%d" font-size="20px" text-anchor="middle">%s</text>`+"\n",
			l.Width/2, l.Margin.Top/2, escape(opts.Title))
	}
	fmt.Fprintf(w, `<g transform="translate(%d,%d)">`+"\n", l.Margin.Left, l.Margin.Top)

	// axis captions
	fmt.Fprintf(w, `<text class="x-label" x="%s" y="%d" font-size="20px" text-anchor="middle">%s</text>`+"\n",
		num(float64(iw)/2), ih+50, escape(opts.XLabel))
	fmt.Fprintf(w, `<text class="y-label" transform="rotate(-90)" x="%s" y="-40" font-size="20px" text-anchor="middle">%s</text>`+"\n",
		num(-float64(ih)/2), escape(opts.YLabel))

	fmt.Fprintf(w, `<g class="x axis" transform="translate(0,%d)" font-size="10" text-anchor="middle">`+"\n", ih)
	fmt.Fprintf(w, `<path class="domain" stroke="currentColor" d="M0,6V0H%dV6"/>`+"\n", iw)
	for _, t := range c.XTicks() {
		fmt.Fprintf(w, `<g class="tick" transform="translate(%s,0)"><line stroke="currentColor" y2="6"/><text fill="currentColor" y="9" dy="0.71em">%s</text></g>`+"\n",
			num(t.Pos), escape(t.Label))
	}
	w.WriteString("</g>\n")

	fmt.Fprintf(w, `<g class="y axis" font-size="10" text-anchor="end">`+"\n")
	fmt.Fprintf(w, `<path class="domain" stroke="currentColor" d="M-6,%dH0V0H-6"/>`+"\n", ih)
	for _, t := range c.YTicks() {
		fmt.Fprintf(w, `<g class="tick" transform="translate(0,%s)"><line stroke="currentColor" x2="-6"/><text fill="currentColor" x="-9" dy="0.32em">%s</text></g>`+"\n",
			num(t.Pos), escape(t.Label))
	}
	w.WriteString("</g>\n")

	fmt.Fprintf(w, `<path class="line" fill="none" stroke="%s" stroke-width="%spx" d="%s"/>`+"\n",
		escape(opts.Stroke), num(opts.StrokeWidth), Path(c))

	display := ` display="none"`
	if focus.Visible {
		display = ""
	}
	fmt.Fprintf(w, `<g class="focus" transform="translate(%s,%s)"%s>`+"\n", num(focus.X), num(focus.Y), display)
	if opts.ShouldShowGuides() {
		fmt.Fprintf(w, `<line class="x-hover-line hover-line" stroke="#333" stroke-dasharray="3,3" x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
			num(focus.XLine.X1), num(focus.XLine.Y1), num(focus.XLine.X2), num(focus.XLine.Y2))
		fmt.Fprintf(w, `<line class="y-hover-line hover-line" stroke="#333" stroke-dasharray="3,3" x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
			num(focus.YLine.X1), num(focus.YLine.Y1), num(focus.YLine.X2), num(focus.YLine.Y2))
	}
	fmt.Fprintf(w, `<circle r="%s" fill="none" stroke="%s"/>`+"\n", num(opts.MarkerRadius), escape(opts.Stroke))
	fmt.Fprintf(w, `<text x="15" dy=".31em">%s</text>`+"\n", escape(focus.Label))
	w.WriteString("</g>\n")

	fmt.Fprintf(w, `<rect class="overlay" width="%d" height="%d" fill="none" pointer-events="all"/>`+"\n", iw, ih)
	w.WriteString("</g>\n</svg>\n")
}

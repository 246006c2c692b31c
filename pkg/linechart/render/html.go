package render

import (
	"bytes"
	"html/template"
	"io"

	"github.com/ukaji3/linechart-go/pkg/linechart"
	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

// PageOptions configures the HTML page.
type PageOptions struct {
	// Endpoint is the chart URL on a linechart server, e.g. /charts/revenue.
	// When set, pointer events are sent to its session API and the page shows
	// the focus the server returns. When empty, the focus is computed in the page.
	Endpoint string
}

type pagePoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

type pageConfig struct {
	Endpoint    string      `json:"endpoint"`
	InnerWidth  int         `json:"innerWidth"`
	InnerHeight int         `json:"innerHeight"`
	Points      []pagePoint `json:"points"`
}

type pageData struct {
	Title  string
	SVG    template.HTML
	Script bool
	Config pageConfig
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
.overlay { cursor: crosshair; }
</style>
</head>
<body>
<div id="chart-area">
{{.SVG}}
</div>
{{- if .Script}}
<script>
(function () {
  var cfg = {{.Config}};
  var svg = document.querySelector("#chart-area svg.linechart");
  var overlay = svg.querySelector(".overlay");
  var focus = svg.querySelector(".focus");
  var label = focus.querySelector("text");
  var xLine = focus.querySelector(".x-hover-line");
  var yLine = focus.querySelector(".y-hover-line");

  function setLine(el, s) {
    if (!el) return;
    el.setAttribute("x1", s.x1); el.setAttribute("y1", s.y1);
    el.setAttribute("x2", s.x2); el.setAttribute("y2", s.y2);
  }

  function apply(f) {
    focus.style.display = f.visible ? null : "none";
    focus.setAttribute("transform", "translate(" + f.x + "," + f.y + ")");
    label.textContent = f.label;
    setLine(xLine, f.x_line);
    setLine(yLine, f.y_line);
  }

  function pointerX(ev) {
    var r = overlay.getBoundingClientRect();
    return (ev.clientX - r.left) * cfg.innerWidth / r.width;
  }

  // local mode: the time scale is linear, so nearest by pixel equals nearest by date
  var visible = false;
  function local(type, px) {
    if (type === "enter") visible = true;
    if (type === "leave") visible = false;
    var pts = cfg.points, best = 0;
    for (var i = 1; i < pts.length; i++) {
      if (Math.abs(pts[i].x - px) <= Math.abs(pts[best].x - px)) best = i;
    }
    var p = pts[best];
    apply({visible: visible, x: p.x, y: p.y, label: p.label,
      x_line: {x1: 0, y1: 0, x2: 0, y2: cfg.innerHeight - p.y},
      y_line: {x1: 0, y1: 0, x2: -p.x, y2: 0}});
  }

  // enter and leave are always delivered in order; consecutive moves collapse to the latest
  var session = null, busy = false, queue = [];
  function enqueue(ev) {
    var last = queue[queue.length - 1];
    if (ev.type === "move" && last && last.type === "move") {
      queue[queue.length - 1] = ev;
    } else {
      queue.push(ev);
    }
  }

  function flush() {
    if (!session || busy || queue.length === 0) return;
    busy = true;
    var ev = queue.shift();
    fetch(cfg.endpoint + "/sessions/" + session + "/events", {
      method: "POST",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify(ev)
    }).then(function (r) { return r.json(); }).then(function (f) {
      if (f && f.label !== undefined) apply(f);
    }).finally(function () {
      busy = false;
      flush();
    });
  }

  function remote(type, px) {
    enqueue({type: type, x: px, y: 0});
    flush();
  }

  var handle = local;
  if (cfg.endpoint) {
    handle = remote;
    fetch(cfg.endpoint + "/sessions", {method: "POST"})
      .then(function (r) { return r.json(); })
      .then(function (s) {
        session = s.session;
        flush();
      });
  }

  overlay.addEventListener("mouseover", function (ev) { handle("enter", pointerX(ev)); });
  overlay.addEventListener("mouseout", function () { handle("leave", 0); });
  overlay.addEventListener("mousemove", function (ev) { handle("move", pointerX(ev)); });
})();
</script>
{{- end}}
</body>
</html>
`))

// HTML writes a page embedding the SVG of c. The pointer script is included when
// the chart options ask for it.
func HTML(w io.Writer, c *linechart.Chart, page PageOptions) error {
	var svg bytes.Buffer
	if err := SVG(&svg, c, models.Focus{}); err != nil {
		return err
	}

	title := c.Options().Title
	if title == "" {
		title = c.Name()
	}

	cfg := pageConfig{
		Endpoint:    page.Endpoint,
		InnerWidth:  c.Layout().InnerWidth(),
		InnerHeight: c.Layout().InnerHeight(),
		Points:      make([]pagePoint, c.Len()),
	}
	for i := range cfg.Points {
		x, y := c.Point(i)
		cfg.Points[i] = pagePoint{X: x, Y: y, Label: linechart.FormatValue(c.Sample(i).Value)}
	}

	return pageTemplate.Execute(w, pageData{
		Title:  title,
		SVG:    template.HTML(svg.String()),
		Script: c.Options().ShouldEmbedScript() || page.Endpoint != "",
		Config: cfg,
	})
}

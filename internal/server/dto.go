package server

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ukaji3/linechart-go/pkg/linechart"
	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

var validate = validator.New()

type eventRequest struct {
	Type string  `json:"type" validate:"required,oneof=enter leave move"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

func (r eventRequest) event() linechart.Event {
	return linechart.Event{Type: linechart.EventType(r.Type), X: r.X, Y: r.Y}
}

type sessionResponse struct {
	Session string `json:"session"`
}

type chartSummary struct {
	Name    string `json:"name"`
	Samples int    `json:"samples"`
	First   string `json:"first"`
	Last    string `json:"last"`
	URL     string `json:"url"`
}

type indexResponse struct {
	Charts []chartSummary `json:"charts"`
}

type sampleResponse struct {
	Year  string  `json:"year"`
	Value float64 `json:"value"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type focusResponse struct {
	Visible bool           `json:"visible"`
	Index   int            `json:"index"`
	Year    string         `json:"year"`
	Value   float64        `json:"value"`
	X       float64        `json:"x"`
	Y       float64        `json:"y"`
	Label   string         `json:"label"`
	XLine   models.Segment `json:"x_line"`
	YLine   models.Segment `json:"y_line"`
}

func newFocusResponse(f models.Focus) focusResponse {
	return focusResponse{
		Visible: f.Visible,
		Index:   f.Index,
		Year:    yearLabel(f.Sample.Year),
		Value:   f.Sample.Value,
		X:       f.X,
		Y:       f.Y,
		Label:   f.Label,
		XLine:   f.XLine,
		YLine:   f.YLine,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func yearLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006")
}

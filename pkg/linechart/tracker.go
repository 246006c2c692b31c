package linechart

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

// State is the visibility of the focus marker.
type State int

const (
	// Hidden means the pointer is outside the plot.
	Hidden State = iota
	// Visible means the marker follows the pointer.
	Visible
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// EventType is the kind of pointer event delivered to a Tracker.
type EventType string

const (
	EventEnter EventType = "enter"
	EventLeave EventType = "leave"
	EventMove  EventType = "move"
)

// Event is a pointer event in plot coordinates.
type Event struct {
	Type EventType `json:"type"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
}

// Tracker turns pointer events over one chart into focus marker updates.
// It is safe for concurrent use.
type Tracker struct {
	mu    sync.Mutex
	chart *Chart
	state State
	focus models.Focus
	log   *zap.Logger
}

// NewTracker returns a hidden tracker over c. A nil logger discards output.
func NewTracker(c *Chart, log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{chart: c, log: log.With(zap.String("chart", c.Name()))}
}

// Chart returns the tracked chart.
func (t *Tracker) Chart() *Chart { return t.chart }

// Enter shows the marker at the sample nearest to px. While already visible it
// changes nothing and returns the current focus.
func (t *Tracker) Enter(px float64) models.Focus {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == Visible {
		return t.focus
	}
	t.log.Debug("pointer entered", zap.Float64("x", px))
	t.state = Visible
	return t.update(px)
}

// Leave hides the marker. The last focused sample is kept.
func (t *Tracker) Leave() models.Focus {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == Visible {
		t.log.Debug("pointer left")
	}
	t.state = Hidden
	t.focus.Visible = false
	return t.focus
}

// Move updates the marker to the sample nearest to px. While hidden the focus is
// recorded but reported as not visible.
func (t *Tracker) Move(px float64) models.Focus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.update(px)
}

// Handle dispatches ev to Enter, Leave or Move.
func (t *Tracker) Handle(ev Event) (models.Focus, error) {
	switch ev.Type {
	case EventEnter:
		return t.Enter(ev.X), nil
	case EventLeave:
		return t.Leave(), nil
	case EventMove:
		return t.Move(ev.X), nil
	default:
		return models.Focus{}, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
}

// State returns the current marker visibility.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Focus returns the last computed focus.
func (t *Tracker) Focus() models.Focus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.focus
}

func (t *Tracker) update(px float64) models.Focus {
	f := t.chart.FocusAt(px)
	f.Visible = t.state == Visible
	if f.Index != t.focus.Index || !t.focus.Visible {
		t.log.Debug("focus changed",
			zap.Int("index", f.Index),
			zap.Int("year", f.Sample.Year.Year()),
			zap.Float64("value", f.Sample.Value))
	}
	t.focus = f
	return f
}

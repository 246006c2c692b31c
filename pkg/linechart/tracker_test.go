package linechart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerStartsHidden(t *testing.T) {
	tr := NewTracker(newTestChart(t), nil)
	assert.Equal(t, Hidden, tr.State())
	assert.False(t, tr.Focus().Visible)
}

func TestTrackerEnterMoveLeave(t *testing.T) {
	c := newTestChart(t)
	tr := NewTracker(c, nil)

	f := tr.Enter(c.X().Forward(year(1992)))
	assert.Equal(t, Visible, tr.State())
	assert.True(t, f.Visible)
	assert.Equal(t, 0, f.Index)

	f = tr.Move(c.X().Forward(year(1993)))
	assert.True(t, f.Visible)
	assert.Equal(t, 1, f.Index)
	assert.Equal(t, "150", f.Label)

	f = tr.Leave()
	assert.Equal(t, Hidden, tr.State())
	assert.False(t, f.Visible)
	assert.Equal(t, 1, f.Index)
}

func TestTrackerMoveWhileHidden(t *testing.T) {
	c := newTestChart(t)
	tr := NewTracker(c, nil)

	f := tr.Move(640)
	assert.False(t, f.Visible)
	assert.Equal(t, 2, f.Index)
	assert.Equal(t, Hidden, tr.State())
}

func TestTrackerEnterTwice(t *testing.T) {
	c := newTestChart(t)
	tr := NewTracker(c, nil)

	first := tr.Enter(0)
	f := tr.Enter(640)
	assert.Equal(t, Visible, tr.State())
	assert.Equal(t, first, f)
	assert.Equal(t, 0, tr.Focus().Index)
}

func TestTrackerHandle(t *testing.T) {
	c := newTestChart(t)
	tr := NewTracker(c, nil)

	tests := []struct {
		ev      Event
		visible bool
		index   int
	}{
		{Event{Type: EventEnter, X: 0}, true, 0},
		{Event{Type: EventMove, X: 640}, true, 2},
		{Event{Type: EventLeave}, false, 2},
		{Event{Type: EventMove, X: 0}, false, 0},
	}

	for _, tt := range tests {
		f, err := tr.Handle(tt.ev)
		require.NoError(t, err)
		assert.Equal(t, tt.visible, f.Visible, "event %v", tt.ev)
		assert.Equal(t, tt.index, f.Index, "event %v", tt.ev)
	}

	_, err := tr.Handle(Event{Type: "click"})
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestTrackerConcurrentMoves(t *testing.T) {
	c := newTestChart(t)
	tr := NewTracker(c, nil)
	tr.Enter(0)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(px float64) {
			defer wg.Done()
			tr.Move(px)
		}(float64(i * 40))
	}
	wg.Wait()

	f := tr.Focus()
	assert.True(t, f.Visible)
	assert.GreaterOrEqual(t, f.Index, 0)
	assert.Less(t, f.Index, c.Len())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "hidden", Hidden.String())
	assert.Equal(t, "visible", Visible.String())
	assert.Equal(t, "State(7)", State(7).String())
}

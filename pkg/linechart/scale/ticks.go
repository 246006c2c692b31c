package scale

import (
	"math"
	"strconv"
	"time"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

// DefaultTickCount is the number of ticks axes aim for.
const DefaultTickCount = 10

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickStep returns a 1, 2 or 5 times a power of ten step covering [start, stop]
// in roughly count intervals.
func tickStep(start, stop float64, count int) float64 {
	if count <= 0 || stop <= start {
		return 0
	}
	raw := (stop - start) / float64(count)
	power := math.Floor(math.Log10(raw))
	rel := raw / math.Pow(10, power)
	factor := 1.0
	switch {
	case rel >= e10:
		factor = 10
	case rel >= e5:
		factor = 5
	case rel >= e2:
		factor = 2
	}
	return factor * math.Pow(10, power)
}

// Ticks returns labelled ticks for the scale domain.
func (s *Linear) Ticks(count int) []models.Tick {
	lo, hi := s.d0, s.d1
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return []models.Tick{{Pos: s.Forward(lo), Label: formatValue(lo, 0)}}
	}
	step := tickStep(lo, hi, count)
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil
	}
	precision := 0
	if step < 1 {
		precision = int(math.Ceil(-math.Log10(step)))
	}

	var ticks []models.Tick
	if step >= 1 {
		for i := math.Ceil(lo / step); i <= math.Floor(hi/step); i++ {
			v := i * step
			ticks = append(ticks, models.Tick{Pos: s.Forward(v), Label: formatValue(v, precision)})
		}
		return ticks
	}
	inv := math.Round(1 / step)
	for i := math.Ceil(lo * inv); i <= math.Floor(hi*inv); i++ {
		v := i / inv
		ticks = append(ticks, models.Tick{Pos: s.Forward(v), Label: formatValue(v, precision)})
	}
	return ticks
}

func formatValue(v float64, precision int) string {
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

var yearSteps = []int{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000}

// Ticks returns yearly ticks for the scale domain.
func (s *Time) Ticks(count int) []models.Tick {
	lo, hi := s.d0, s.d1
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	if count <= 0 {
		count = DefaultTickCount
	}
	first := lo.Year()
	if !yearStart(first, lo.Location()).Equal(lo) {
		first++
	}
	last := hi.Year()
	if last < first {
		return nil
	}

	step := yearSteps[len(yearSteps)-1]
	for _, st := range yearSteps {
		if (last-first)/st < count {
			step = st
			break
		}
	}

	var ticks []models.Tick
	for y := first; y <= last; y++ {
		if y%step != 0 {
			continue
		}
		t := yearStart(y, lo.Location())
		ticks = append(ticks, models.Tick{Pos: s.Forward(t), Label: t.Format("2006")})
	}
	return ticks
}

func yearStart(y int, loc *time.Location) time.Time {
	return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
}

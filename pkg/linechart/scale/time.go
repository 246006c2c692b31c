package scale

import (
	"math"
	"time"
)

// Time maps a date domain onto a pixel range.
type Time struct {
	d0, d1 time.Time
	r0, r1 float64
}

// NewTime returns a scale mapping [d0, d1] onto [r0, r1].
func NewTime(d0, d1 time.Time, r0, r1 float64) *Time {
	return &Time{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Domain returns the domain bounds.
func (s *Time) Domain() (time.Time, time.Time) { return s.d0, s.d1 }

// Range returns the range bounds.
func (s *Time) Range() (float64, float64) { return s.r0, s.r1 }

// Forward maps t to a pixel coordinate.
func (s *Time) Forward(t time.Time) float64 {
	return interpolate(s.r0, s.r1, normalize(seconds(s.d0), seconds(s.d1), seconds(t)))
}

// Invert maps a pixel coordinate back to a date.
func (s *Time) Invert(px float64) time.Time {
	if s.r0 == s.r1 {
		return s.d0
	}
	v := interpolate(seconds(s.d0), seconds(s.d1), (px-s.r0)/(s.r1-s.r0))
	return fromSeconds(v).In(s.d0.Location())
}

// Resolution returns the span of time covered by one pixel.
func (s *Time) Resolution() time.Duration {
	width := math.Abs(s.r1 - s.r0)
	if width == 0 {
		return 0
	}
	return time.Duration(math.Abs(seconds(s.d1)-seconds(s.d0)) / width * float64(time.Second))
}

// seconds converts t to fractional Unix seconds; UnixNano overflows outside 1678-2262.
func seconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

func fromSeconds(v float64) time.Time {
	sec := math.Floor(v)
	nsec := math.Round((v - sec) * 1e9)
	return time.Unix(int64(sec), int64(nsec)).UTC()
}

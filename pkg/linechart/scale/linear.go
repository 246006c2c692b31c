package scale

// Linear maps a numeric domain onto a pixel range.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear returns a scale mapping [d0, d1] onto [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) *Linear {
	return &Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Domain returns the domain bounds.
func (s *Linear) Domain() (float64, float64) { return s.d0, s.d1 }

// Range returns the range bounds.
func (s *Linear) Range() (float64, float64) { return s.r0, s.r1 }

// Forward maps v to a pixel coordinate.
func (s *Linear) Forward(v float64) float64 {
	return interpolate(s.r0, s.r1, normalize(s.d0, s.d1, v))
}

// Invert maps a pixel coordinate back to the domain.
func (s *Linear) Invert(px float64) float64 {
	if s.r0 == s.r1 {
		return s.d0
	}
	return interpolate(s.d0, s.d1, (px-s.r0)/(s.r1-s.r0))
}

// normalize returns the position of v within [a, b] as a fraction.
func normalize(a, b, v float64) float64 {
	if b == a {
		return 0.5
	}
	return (v - a) / (b - a)
}

func interpolate(a, b, t float64) float64 {
	return a + t*(b-a)
}

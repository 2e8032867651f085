package ring

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Gradient is a three-stop color ramp over the ring band.
type Gradient struct {
	Inner colorful.Color
	Mid   colorful.Color
	Outer colorful.Color
}

// At returns the ramp color at t in [0,1]. The lower half blends Inner->Mid,
// the upper half Mid->Outer, channel by channel in RGB. The end stops are
// returned exactly.
func (g Gradient) At(t float64) colorful.Color {
	switch {
	case t <= 0:
		return g.Inner
	case t >= 1:
		return g.Outer
	case t < 0.5:
		return g.Inner.BlendRgb(g.Mid, 2*t)
	default:
		return g.Mid.BlendRgb(g.Outer, 2*(t-0.5))
	}
}

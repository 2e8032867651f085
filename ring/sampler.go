package ring

import (
	"errors"
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	ErrInvalidCount = errors.New("ring: particle count must be positive")
	ErrInvalidBand  = errors.New("ring: invalid radius band")
	ErrInvalidSpeed = errors.New("ring: speed constant must be positive and finite")
)

// Config describes the particle distribution of one ring.
type Config struct {
	Count         int
	InnerRadius   float64
	OuterRadius   float64
	SpeedConstant float64
	Palette       Gradient
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Validate rejects configurations that would produce degenerate geometry or
// non-finite speeds. Nothing is clamped to a default.
func (c Config) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, c.Count)
	}
	if !finite(c.InnerRadius) || !finite(c.OuterRadius) {
		return fmt.Errorf("%w: radii must be finite (inner=%v outer=%v)", ErrInvalidBand, c.InnerRadius, c.OuterRadius)
	}
	if c.InnerRadius <= 0 {
		return fmt.Errorf("%w: inner radius %v must be positive", ErrInvalidBand, c.InnerRadius)
	}
	if c.InnerRadius >= c.OuterRadius {
		return fmt.Errorf("%w: inner radius %v must be below outer radius %v", ErrInvalidBand, c.InnerRadius, c.OuterRadius)
	}
	if !finite(c.SpeedConstant) || c.SpeedConstant <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidSpeed, c.SpeedConstant)
	}
	// Speed peaks at the inner edge.
	if math.IsInf(c.SpeedConstant/c.InnerRadius, 0) {
		return fmt.Errorf("%w: %v / inner radius %v overflows", ErrInvalidSpeed, c.SpeedConstant, c.InnerRadius)
	}
	return nil
}

// Mean is the band midpoint, the center of the radius distribution.
func (c Config) Mean() float64 { return (c.InnerRadius + c.OuterRadius) / 2 }

// StdDev places the band edges two standard deviations from the mean.
func (c Config) StdDev() float64 { return (c.OuterRadius - c.InnerRadius) / 4 }

// ColorFor maps a radius onto the palette.
func (c Config) ColorFor(radius float64) colorful.Color {
	t := (radius - c.InnerRadius) / (c.OuterRadius - c.InnerRadius)
	return c.Palette.At(t)
}

// openUnit draws from src until the value is strictly positive.
func openUnit(src RandomSource) float64 {
	u := src.Float64()
	for u == 0 {
		u = src.Float64()
	}
	return u
}

// NormalSample draws one normal variate with the given mean and standard
// deviation using the Box-Muller transform.
func NormalSample(src RandomSource, mean, stdDev float64) float64 {
	u1 := openUnit(src)
	u2 := openUnit(src)
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + z*stdDev
}

// SampleRadius draws a normally distributed radius and clamps it into the
// band. Out-of-band draws land on the nearest edge.
func (c Config) SampleRadius(src RandomSource) float64 {
	r := NormalSample(src, c.Mean(), c.StdDev())
	return math.Min(math.Max(r, c.InnerRadius), c.OuterRadius)
}

// SampleParticle draws radius, then angle, and derives the orbital speed.
func (c Config) SampleParticle(src RandomSource) Particle {
	radius := c.SampleRadius(src)
	angle := src.Float64() * 2 * math.Pi
	return Particle{
		Radius: radius,
		Angle:  angle,
		Speed:  c.SpeedConstant / radius,
	}
}

package ring

// Particle is the per-particle orbital state. Radius and Speed are fixed at
// creation; Angle accumulates Speed once per tick and is never wrapped.
type Particle struct {
	Radius float64 // within [InnerRadius, OuterRadius]
	Angle  float64 // radians
	Speed  float64 // radians per tick, > 0
}

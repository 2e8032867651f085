package ring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidConfig(t *testing.T) {
	cfg := testConfig(0)
	r, err := New(cfg, NewRandomSource(1))
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrInvalidCount)

	cfg = testConfig(4)
	cfg.InnerRadius, cfg.OuterRadius = 5, 3
	_, err = New(cfg, NewRandomSource(1))
	assert.ErrorIs(t, err, ErrInvalidBand)
}

func TestNew_RejectsOverflowingSpeed(t *testing.T) {
	cfg := Config{Count: 8, InnerRadius: 1e-300, OuterRadius: 2e-300, SpeedConstant: 1e10}
	r, err := New(cfg, NewRandomSource(1))
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrInvalidSpeed)
}

func TestNew_ShapeAndInvariants(t *testing.T) {
	cfg := testConfig(500)
	r, err := New(cfg, NewRandomSource(99))
	require.NoError(t, err)

	require.Equal(t, 500, r.Len())
	require.Len(t, r.Positions(), 1500)
	require.Len(t, r.Colors(), 1500)

	for i, p := range r.Particles() {
		assert.GreaterOrEqual(t, p.Radius, cfg.InnerRadius)
		assert.LessOrEqual(t, p.Radius, cfg.OuterRadius)
		assert.Greater(t, p.Speed, 0.0)
		assert.InDelta(t, cfg.SpeedConstant/p.Radius, p.Speed, 1e-15)
		assert.GreaterOrEqual(t, p.Angle, 0.0)
		assert.Less(t, p.Angle, 2*math.Pi)

		c := cfg.ColorFor(p.Radius)
		assert.Equal(t, float32(c.R), r.Colors()[3*i])
		assert.Equal(t, float32(c.G), r.Colors()[3*i+1])
		assert.Equal(t, float32(c.B), r.Colors()[3*i+2])
		assert.Equal(t, float32(0), r.Positions()[3*i+2])
	}
}

func TestNew_InnerColorOnInnerEdge(t *testing.T) {
	cfg := testConfig(2)
	// Particle 0 clamps to inner, particle 1 clamps to outer.
	src := NewSequenceSource(1e-12, 0.5, 0.1, 1e-12, 1e-9, 0.2)
	r, err := New(cfg, src)
	require.NoError(t, err)

	ps := r.Particles()
	require.Equal(t, cfg.InnerRadius, ps[0].Radius)
	require.Equal(t, cfg.OuterRadius, ps[1].Radius)

	assert.Equal(t, []float32{1, 0, 0}, r.Colors()[0:3])
	assert.Equal(t, []float32{0, 0, 1}, r.Colors()[3:6])
}

func TestRing_EndToEnd(t *testing.T) {
	cfg := testConfig(4)
	r, err := New(cfg, NewRandomSource(2024))
	require.NoError(t, err)

	before := append([]Particle(nil), r.Particles()...)
	for _, p := range before {
		assert.GreaterOrEqual(t, p.Radius, 3.0)
		assert.LessOrEqual(t, p.Radius, 5.0)
		assert.InDelta(t, 0.4/p.Radius, p.Speed, 1e-15)
	}

	r.Tick()

	pos := r.Positions()
	for i, p := range before {
		a := p.Angle + p.Speed
		assert.InDelta(t, math.Cos(a)*p.Radius, float64(pos[3*i]), 1e-5)
		assert.InDelta(t, math.Sin(a)*p.Radius, float64(pos[3*i+1]), 1e-5)
		assert.Equal(t, float32(0), pos[3*i+2])
	}
	assert.Equal(t, uint64(1), r.Ticks())
}

func TestRing_TickAccumulatesAngle(t *testing.T) {
	r, err := New(testConfig(64), NewRandomSource(5))
	require.NoError(t, err)

	initial := append([]Particle(nil), r.Particles()...)
	const n = 1000
	for i := 0; i < n; i++ {
		r.Tick()
	}

	for i, p := range r.Particles() {
		assert.Equal(t, initial[i].Radius, p.Radius)
		assert.Equal(t, initial[i].Speed, p.Speed)
		assert.InDelta(t, initial[i].Angle+n*initial[i].Speed, p.Angle, 1e-9)
	}
}

func TestRing_RederiveIsDeterministic(t *testing.T) {
	r, err := New(testConfig(128), NewRandomSource(11))
	require.NoError(t, err)
	r.Tick()

	first := append([]float32(nil), r.Positions()...)
	r.Rederive()
	assert.Equal(t, first, r.Positions())

	other, err := New(testConfig(128), NewRandomSource(11))
	require.NoError(t, err)
	other.Tick()
	assert.Equal(t, first, other.Positions())
}

func TestRing_BindSharesRenderBuffer(t *testing.T) {
	r, err := New(testConfig(16), NewRandomSource(3))
	require.NoError(t, err)

	assert.ErrorIs(t, r.Bind(NewBufferFor(15)), ErrBufferSize)

	buf := NewBufferFor(16)
	require.NoError(t, r.Bind(buf))
	assert.Equal(t, r.Colors(), buf.Colors())
	assert.Equal(t, r.Positions(), buf.Positions())
	v := buf.Version()

	uploaded := buf.Upload(func([]float32) {})
	assert.True(t, uploaded)
	assert.False(t, buf.Dirty())

	r.Tick()
	assert.True(t, buf.Dirty())
	assert.Equal(t, v+1, buf.Version())

	p := r.Particles()[0]
	x, y, z, _, _, _ := buf.Point(0)
	assert.InDelta(t, math.Cos(p.Angle)*p.Radius, float64(x), 1e-5)
	assert.InDelta(t, math.Sin(p.Angle)*p.Radius, float64(y), 1e-5)
	assert.Equal(t, float32(0), z)
}

func TestRing_TickDoesNotAllocate(t *testing.T) {
	r, err := New(testConfig(20000), NewRandomSource(8))
	require.NoError(t, err)
	require.NoError(t, r.Bind(NewBufferFor(20000)))

	allocs := testing.AllocsPerRun(20, r.Tick)
	assert.Zero(t, allocs)
}

func BenchmarkRing_Tick(b *testing.B) {
	r, err := New(testConfig(20000), NewRandomSource(8))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Tick()
	}
}

package ringscene

import (
	"testing"

	"github.com/gekko3d/ringscene/ring"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCubeEdges(t *testing.T) {
	edges := CubeEdges(2)
	assert.Len(t, edges, 12)
	for _, e := range edges {
		assert.InDelta(t, 2, e.B.Sub(e.A).Len(), 1e-6)
		for i := 0; i < 3; i++ {
			assert.InDelta(t, 1, abs32(e.A[i]), 1e-6)
		}
	}
}

func TestGridLines(t *testing.T) {
	assert.Nil(t, GridLines(10, 0))
	assert.Nil(t, GridLines(0, 4))

	lines := GridLines(10, 4)
	assert.Len(t, lines, 10)
	for _, l := range lines {
		assert.Equal(t, float32(0), l.A.Y())
		assert.Equal(t, float32(0), l.B.Y())
		assert.InDelta(t, 10, l.B.Sub(l.A).Len(), 1e-5)
	}
	assert.Equal(t, mgl32.Vec3{-5, 0, -5}, lines[0].A)
	assert.Equal(t, mgl32.Vec3{5, 0, 5}, lines[len(lines)-1].B)
}

func TestSampleStarfield(t *testing.T) {
	assert.Nil(t, SampleStarfield(0, 10, ring.NewRandomSource(1)))

	stars := SampleStarfield(500, 100, ring.NewRandomSource(1))
	assert.Len(t, stars, 500)
	for _, s := range stars {
		for i := 0; i < 3; i++ {
			assert.GreaterOrEqual(t, s[i], float32(-50))
			assert.LessOrEqual(t, s[i], float32(50))
		}
	}
}

func TestSpinner_Tick(t *testing.T) {
	s := &Spinner{Rate: mgl32.Vec3{0.01, 0.02, 0}}
	for i := 0; i < 100; i++ {
		s.Tick()
	}
	assert.InDelta(t, 1, s.Euler.X(), 1e-4)
	assert.InDelta(t, 2, s.Euler.Y(), 1e-4)
	assert.InDelta(t, 1, s.Rotation().Len(), 1e-5)

	still := &Spinner{Position: mgl32.Vec3{1, 2, 3}}
	still.Tick()
	assert.True(t, still.Rotation().ApproxEqual(mgl32.QuatIdent()))
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, still.Transform().Position)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

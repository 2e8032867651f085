package ringscene

import (
	"github.com/gekko3d/ringscene/ring"
	"github.com/go-gl/mathgl/mgl32"
)

// Segment is a line from A to B in object space.
type Segment struct {
	A, B mgl32.Vec3
}

// Spinner rotates an object by fixed Euler increments every tick.
type Spinner struct {
	Position mgl32.Vec3
	Euler    mgl32.Vec3 // radians
	Rate     mgl32.Vec3 // radians per tick
}

func (s *Spinner) Tick() {
	s.Euler = s.Euler.Add(s.Rate)
}

func (s *Spinner) Rotation() mgl32.Quat {
	return mgl32.AnglesToQuat(s.Euler[0], s.Euler[1], s.Euler[2], mgl32.XYZ)
}

func (s *Spinner) Transform() Transform {
	t := NewTransform()
	t.Position = s.Position
	t.Rotation = s.Rotation()
	return t
}

// CubeEdges returns the 12 edges of an axis-aligned cube centered on the
// origin.
func CubeEdges(size float32) []Segment {
	h := size / 2
	c := [8]mgl32.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	out := make([]Segment, 0, len(edges))
	for _, e := range edges {
		out = append(out, Segment{A: c[e[0]], B: c[e[1]]})
	}
	return out
}

// GridLines lays out a size x size grid on the XZ plane with divisions cells
// per side: divisions+1 lines along each axis.
func GridLines(size float32, divisions int) []Segment {
	if divisions <= 0 || size <= 0 {
		return nil
	}
	h := size / 2
	step := size / float32(divisions)
	out := make([]Segment, 0, 2*(divisions+1))
	for i := 0; i <= divisions; i++ {
		k := -h + float32(i)*step
		out = append(out,
			Segment{A: mgl32.Vec3{-h, 0, k}, B: mgl32.Vec3{h, 0, k}},
			Segment{A: mgl32.Vec3{k, 0, -h}, B: mgl32.Vec3{k, 0, h}},
		)
	}
	return out
}

// SampleStarfield scatters count points uniformly in a cube of side spread
// centered on the origin.
func SampleStarfield(count int, spread float32, src ring.RandomSource) []mgl32.Vec3 {
	if count <= 0 {
		return nil
	}
	stars := make([]mgl32.Vec3, count)
	for i := range stars {
		for axis := 0; axis < 3; axis++ {
			stars[i][axis] = (float32(src.Float64()) - 0.5) * spread
		}
	}
	return stars
}

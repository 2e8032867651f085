package ringscene

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Plotter is a drawing surface addressed in whole pixels or cells.
type Plotter interface {
	Size() (w, h int)
	Plot(x, y int, c color.RGBA)
}

// PixelAspecter is implemented by surfaces whose cells are not square, such
// as terminals. The value is cell width over cell height.
type PixelAspecter interface {
	PixelAspect() float32
}

type screenPoint struct {
	x, y int32
	ok   bool
}

type DrawStats struct {
	Stars       int
	Lines       int
	RingPoints  int
	Reprojected bool
}

// Renderer draws a Scene onto any Plotter. Projected ring positions are cached
// and only recomputed when the ring buffer is dirty or the surface changes
// size, which mirrors a GPU buffer re-upload.
type Renderer struct {
	scene *Scene

	ring    []screenPoint
	w, h    int
	aspect  float32
	ringMVP mgl32.Mat4
	project func([]float32)
}

func NewRenderer(scene *Scene) *Renderer {
	r := &Renderer{
		scene: scene,
		ring:  make([]screenPoint, scene.Ring.Len()),
	}
	r.project = r.projectRing
	return r
}

func (r *Renderer) Draw(p Plotter) DrawStats {
	var stats DrawStats
	w, h := p.Size()
	if w <= 0 || h <= 0 {
		return stats
	}
	aspect := float32(w) / float32(h)
	if pa, ok := p.(PixelAspecter); ok {
		aspect *= pa.PixelAspect()
	}
	if w != r.w || h != r.h || aspect != r.aspect {
		r.w, r.h, r.aspect = w, h, aspect
		r.scene.RingCloud.MarkDirty()
	}

	s := r.scene
	vp := s.Camera.ViewProjection(aspect)

	for _, star := range s.Stars {
		if x, y, ok := Project(star, vp, w, h); ok {
			p.Plot(int(x), int(y), s.StarColor)
			stats.Stars++
		}
	}

	stats.Lines += drawSegments(p, vp, s.Grid, s.GridColor)
	stats.Lines += drawSegments(p, vp.Mul4(s.Cube.Transform().ObjectToWorld()), s.CubeEdges, s.CubeColor)

	r.ringMVP = vp.Mul4(s.RingTransform.ObjectToWorld())
	stats.Reprojected = s.RingCloud.Upload(r.project)

	colors := s.RingCloud.Colors()
	for i, sp := range r.ring {
		if !sp.ok {
			continue
		}
		c := color.RGBA{
			R: unitToByte(colors[3*i]),
			G: unitToByte(colors[3*i+1]),
			B: unitToByte(colors[3*i+2]),
			A: 0xff,
		}
		p.Plot(int(sp.x), int(sp.y), c)
		stats.RingPoints++
	}
	return stats
}

func (r *Renderer) projectRing(positions []float32) {
	for i := range r.ring {
		pos := mgl32.Vec3{positions[3*i], positions[3*i+1], positions[3*i+2]}
		x, y, ok := Project(pos, r.ringMVP, r.w, r.h)
		ok = ok && x >= 0 && y >= 0 && x < float32(r.w) && y < float32(r.h)
		r.ring[i] = screenPoint{x: int32(x), y: int32(y), ok: ok}
	}
}

func drawSegments(p Plotter, mvp mgl32.Mat4, segs []Segment, c color.RGBA) int {
	w, h := p.Size()
	drawn := 0
	for _, seg := range segs {
		x0, y0, ok0 := Project(seg.A, mvp, w, h)
		x1, y1, ok1 := Project(seg.B, mvp, w, h)
		if !ok0 || !ok1 {
			continue
		}
		if drawLine(p, x0, y0, x1, y1, w, h, c) {
			drawn++
		}
	}
	return drawn
}

// drawLine plots a DDA line. Lines reaching far outside the surface are
// skipped rather than clipped.
func drawLine(p Plotter, x0, y0, x1, y1 float32, w, h int, c color.RGBA) bool {
	limit := float32(4 * (w + h))
	for _, v := range [4]float32{x0, y0, x1, y1} {
		if v < -limit || v > limit {
			return false
		}
	}
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(float64(dx)), math.Abs(float64(dy)))))
	if steps == 0 {
		p.Plot(int(x0), int(y0), c)
		return true
	}
	sx, sy := dx/float32(steps), dy/float32(steps)
	x, y := x0, y0
	for i := 0; i <= steps; i++ {
		p.Plot(int(x), int(y), c)
		x += sx
		y += sy
	}
	return true
}

func unitToByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*255 + 0.5)
}

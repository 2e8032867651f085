package ringscene

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	Position    mgl32.Vec3
	Target      mgl32.Vec3
	Up          mgl32.Vec3
	FovYDegrees float32
	Near        float32
	Far         float32
}

func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovYDegrees), aspect, c.Near, c.Far)
}

func (c Camera) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.Projection(aspect).Mul4(c.View())
}

// Project maps an object-space point through mvp onto a w x h viewport with
// the origin at the top-left. ok is false for points behind the camera or
// outside the depth range.
func Project(p mgl32.Vec3, mvp mgl32.Mat4, w, h int) (x, y float32, ok bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, false
	}
	x = (ndc.X() + 1) * 0.5 * float32(w)
	y = (1 - ndc.Y()) * 0.5 * float32(h)
	return x, y, true
}

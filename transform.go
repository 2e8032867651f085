package ringscene

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// EulerTransform places an object at position, rotated by XYZ Euler angles
// given in degrees.
func EulerTransform(position mgl32.Vec3, degrees [3]float32) Transform {
	t := NewTransform()
	t.Position = position
	t.Rotation = mgl32.AnglesToQuat(
		mgl32.DegToRad(degrees[0]),
		mgl32.DegToRad(degrees[1]),
		mgl32.DegToRad(degrees[2]),
		mgl32.XYZ,
	)
	return t
}

func (t Transform) ObjectToWorld() mgl32.Mat4 {
	// M = T * R * S
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := t.Rotation.Mat4()
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(rotate).Mul4(scale)
}

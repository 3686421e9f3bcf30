package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Vec3 struct {
	X, Y, Z float64
}

// Vec3 methods.
func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Mul(o Vec3) Vec3      { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

func (v Vec3) mgl() mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

func fromMgl(v mgl64.Vec3) Vec3 { return Vec3{v[0], v[1], v[2]} }

// Euler builds a rotation from angles in degrees, applied Z, X, then Y.
func Euler(x, y, z float64) mgl64.Quat {
	qx := mgl64.QuatRotate(mgl64.DegToRad(x), mgl64.Vec3{1, 0, 0})
	qy := mgl64.QuatRotate(mgl64.DegToRad(y), mgl64.Vec3{0, 1, 0})
	qz := mgl64.QuatRotate(mgl64.DegToRad(z), mgl64.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz).Normalize()
}

// Rotate applies q to v.
func Rotate(q mgl64.Quat, v Vec3) Vec3 {
	return fromMgl(q.Rotate(v.mgl()))
}

package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var up = mgl64.Vec3{0, 1, 0}

// Transform is a position plus an orientation. Characters only ever rotate
// about the vertical axis, so the orientation is a yaw quaternion.
type Transform struct {
	Pos mgl64.Vec3
	Rot mgl64.Quat
}

// NewTransform creates a transform at pos facing +Z.
func NewTransform(pos mgl64.Vec3) Transform {
	return Transform{Pos: pos, Rot: mgl64.QuatIdent()}
}

// Forward returns the world-space forward vector.
func (t *Transform) Forward() mgl64.Vec3 {
	return t.Rot.Rotate(mgl64.Vec3{0, 0, 1})
}

// RotateY rotates about the vertical axis by rad.
func (t *Transform) RotateY(rad float64) {
	t.Rot = mgl64.QuatRotate(rad, up).Mul(t.Rot)
}

// SetForward orients the transform so Forward points along dir. Vertical
// components of dir are ignored; a degenerate dir leaves the orientation
// unchanged.
func (t *Transform) SetForward(dir mgl64.Vec3) {
	x, z := dir.X(), dir.Z()
	if x*x+z*z < 1e-12 {
		return
	}
	t.Rot = mgl64.QuatRotate(math.Atan2(x, z), up)
}

// LookAt yaws the transform toward target, keeping it upright.
func (t *Transform) LookAt(target mgl64.Vec3) {
	t.SetForward(target.Sub(t.Pos))
}

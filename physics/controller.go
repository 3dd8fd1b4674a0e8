// Package physics provides the character-controller boundary of the
// locomotion core: submit a per-tick motion, get back where the character
// ended up and what it touched.
package physics

import "github.com/go-gl/mathgl/mgl64"

// CollisionFlags reports what the character controller touched while
// resolving a move.
type CollisionFlags struct {
	Below bool
	Above bool
	Sides bool
}

// Controller resolves character moves against the collision world. Move is
// pure with respect to the caller's transform: it takes the current position
// and returns the resolved one, so the motion integrator stays the only
// writer of the character transform.
type Controller interface {
	Move(from mgl64.Vec3, motion mgl64.Vec3) (mgl64.Vec3, CollisionFlags)
}

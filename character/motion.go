package character

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FixedUpdate runs one simulation tick. Order matters: the activation gate
// comes first and an inactive character does no motion work at all, which is
// the whole point of the distance hysteresis — distant characters are
// visually frozen and cost nothing.
func (c *Character) FixedUpdate(dt float64, observer mgl64.Vec3) {
	if c == nil || dt <= 0 {
		return
	}

	c.activation.Update(c.transform.Pos, observer)
	if !c.activation.Active() {
		return
	}

	c.followRoute()

	if c.turnPolicy() {
		c.applyTurning(dt)
	}

	c.updateFallingAndFlying(dt)

	rootMotion := mgl64.Vec3{}
	if !c.visual.IsPlayingIdle() {
		// The visual reports actual displacement since the last query, so
		// no dt scaling here. Authored motion is inverted relative to
		// world forward.
		rootMotion = c.transform.Rot.Rotate(c.visual.ConsumeRootMotion()).Mul(-1)
	}

	if !c.needsPhysicsUpdate(rootMotion) {
		return
	}

	velocity := rootMotion
	if c.inAir {
		velocity[1] += c.fallVelocity * dt
	} else {
		// The controller doesn't stick to the ground on its own; a
		// constant downward bias keeps it glued to slopes.
		velocity[1] += c.tuning.StickVelocity * dt
	}

	pos, flags := c.controller.Move(c.transform.Pos, velocity)
	c.transform.Pos = pos

	// TODO: treat dynamic objects under the character as non-solid ground.
	c.onSolidGround = flags.Below
	c.inAir = !flags.Below
}

// applyTurning consumes the turn intent for this tick.
//
// TurnSpeedWeaponMult is intentionally not applied here: the shipped
// behavior turns at the flat base rate regardless of weapon mode, and the
// multiplier only exists as a constant. Wiring it in would change observable
// behavior; see the tuning docs.
func (c *Character) applyTurning(dt float64) {
	var frameTurn float64
	switch c.turn {
	case TurnLeft:
		frameTurn = -c.tuning.TurnSpeed * dt
	case TurnRight:
		frameTurn = c.tuning.TurnSpeed * dt
	}
	if math.Abs(frameTurn) > 1e-4 {
		c.transform.RotateY(frameTurn)
	}
}

// updateFallingAndFlying advances the vertical dynamics. While a flight
// clip is authoritative the animation system owns vertical motion, so the
// character counts as airborne with no accumulated fall velocity.
func (c *Character) updateFallingAndFlying(dt float64) {
	switch {
	case c.visual.IsPlayingFlight():
		c.inAir = true
		c.fallVelocity = 0
	case !c.inAir:
		c.fallVelocity = 0
	default:
		c.fallVelocity += c.tuning.Gravity * dt
	}
}

// needsPhysicsUpdate short-circuits the physics query for a character that
// is grounded on solid ground, idle and motionless. That is the common case
// for most of a crowd most of the time.
func (c *Character) needsPhysicsUpdate(rootMotion mgl64.Vec3) bool {
	if c.inAir {
		return true
	}
	if !c.onSolidGround {
		return true
	}
	return rootMotion.Dot(rootMotion) > 0
}

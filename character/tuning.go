package character

import "fmt"

// Defaults match the classic engine constants: turn rate of 0.05 rad per
// 60 Hz tick, physics cutover at 40/45 meters from the observer.
const (
	defaultTurnSpeed       = 3.0
	defaultTurnWeaponMult  = 2.0
	defaultActivateRange   = 40.0
	defaultDeactivateRange = 45.0
	defaultGravity         = -9.81
	defaultStickVelocity   = -10.0

	// arriveTolerance is how close counts as "at" a position.
	arriveTolerance = 0.5
)

// Tuning holds the numeric knobs of a character's locomotion.
type Tuning struct {
	// TurnSpeed is the yaw rate in radians per second.
	TurnSpeed float64

	// TurnSpeedWeaponMult is the intended turn-rate multiplier while a
	// weapon is drawn. It is carried here but deliberately not applied by
	// the motion integrator; see the note in applyTurning.
	TurnSpeedWeaponMult float64

	// ActivateRange and DeactivateRange bound the physics hysteresis band
	// in meters from the observer. DeactivateRange must be the larger one.
	ActivateRange   float64
	DeactivateRange float64

	// Gravity is the vertical acceleration while airborne, in m/s^2.
	Gravity float64

	// StickVelocity is the constant downward velocity applied while
	// grounded so the controller hugs sloped ground, in m/s.
	StickVelocity float64
}

// DefaultTuning returns the stock tuning values.
func DefaultTuning() Tuning {
	return Tuning{
		TurnSpeed:           defaultTurnSpeed,
		TurnSpeedWeaponMult: defaultTurnWeaponMult,
		ActivateRange:       defaultActivateRange,
		DeactivateRange:     defaultDeactivateRange,
		Gravity:             defaultGravity,
		StickVelocity:       defaultStickVelocity,
	}
}

// Validate rejects tunings that would misbehave at runtime. The hysteresis
// band invariant in particular: with DeactivateRange <= ActivateRange the
// character would flicker in and out of simulation at a single boundary.
func (t Tuning) Validate() error {
	if t.TurnSpeed <= 0 {
		return fmt.Errorf("tuning: turn speed must be positive, got %v", t.TurnSpeed)
	}
	if t.ActivateRange <= 0 {
		return fmt.Errorf("tuning: activate range must be positive, got %v", t.ActivateRange)
	}
	if t.DeactivateRange <= t.ActivateRange {
		return fmt.Errorf("tuning: deactivate range (%v) must exceed activate range (%v)",
			t.DeactivateRange, t.ActivateRange)
	}
	if t.Gravity >= 0 {
		return fmt.Errorf("tuning: gravity must be negative, got %v", t.Gravity)
	}
	return nil
}

// Package character is the locomotion core: it turns discrete movement
// intents into animation-state transitions, integrates root motion and
// falling each simulation tick, and gates all of it behind distance-based
// physics activation.
package character

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/aramvel/stride/anim"
	"github.com/aramvel/stride/physics"
	"github.com/aramvel/stride/world"
)

// TurnDirection is the current turn intent. It is consumed every tick and
// overwritten by the next intent; there is no transition legality to check.
type TurnDirection int

const (
	TurnNone TurnDirection = iota
	TurnLeft
	TurnRight
)

// Lookup resolves named scene objects for teleports and route endpoints.
type Lookup interface {
	FindObjectByName(name string) (*world.Object, bool)
}

// Router computes a route of positions from a start position to a named
// destination. An empty route means the destination could not be resolved.
type Router interface {
	RouteTo(from mgl64.Vec3, to string) []mgl64.Vec3
}

// Character drives one animated, physics-simulated character. All state is
// single-writer: intents mutate the locomotion state synchronously, the
// motion integrator owns the transform and airborne state, and both run on
// the one simulation goroutine that ticks the character.
type Character struct {
	log        *slog.Logger
	name       string
	visual     anim.Visual
	controller physics.Controller
	transform  *world.Transform
	tuning     Tuning
	activation *Activation

	gait   anim.Gait
	weapon anim.WeaponMode
	turn   TurnDirection

	// turnPolicy is the extension point for "is turning allowed right
	// now"; the default policy always permits it.
	turnPolicy func() bool

	inAir         bool
	onSolidGround bool
	fallVelocity  float64

	lookup Lookup
	router Router
	route  []mgl64.Vec3
}

// New wires a character from its companion components. A missing visual or
// controller is a construction fault: the character cannot operate without
// either, so this fails immediately instead of limping along.
func New(name string, transform *world.Transform, visual anim.Visual, controller physics.Controller, tuning Tuning, log *slog.Logger) (*Character, error) {
	if transform == nil {
		return nil, fmt.Errorf("character %s: no transform", name)
	}
	if visual == nil {
		return nil, fmt.Errorf("character %s: no visual component", name)
	}
	if controller == nil {
		return nil, fmt.Errorf("character %s: no character controller", name)
	}
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("character %s: %w", name, err)
	}
	if log == nil {
		log = slog.Default()
	}
	activation, err := NewActivation(name, tuning.ActivateRange, tuning.DeactivateRange, log)
	if err != nil {
		return nil, fmt.Errorf("character %s: %w", name, err)
	}
	c := &Character{
		log:           log.With("subsystem", "character", "character", name),
		name:          name,
		visual:        visual,
		controller:    controller,
		transform:     transform,
		tuning:        tuning,
		activation:    activation,
		onSolidGround: true,
	}
	c.turnPolicy = func() bool { return true }
	return c, nil
}

// SetNavigation wires the optional scene lookup and route service. Without
// them teleports log a miss and path following is rejected.
func (c *Character) SetNavigation(lookup Lookup, router Router) {
	if c == nil {
		return
	}
	c.lookup = lookup
	c.router = router
}

// SetTurnPolicy replaces the turning permission policy.
func (c *Character) SetTurnPolicy(policy func() bool) {
	if c == nil || policy == nil {
		return
	}
	c.turnPolicy = policy
}

// Name returns the character's scene name.
func (c *Character) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Transform returns the character's transform. Written only by the motion
// integrator and by teleports, never both within one tick.
func (c *Character) Transform() *world.Transform {
	if c == nil {
		return nil
	}
	return c.transform
}

// Gait returns the committed locomotion mode.
func (c *Character) Gait() anim.Gait {
	if c == nil {
		return anim.GaitRun
	}
	return c.gait
}

// WeaponMode returns the committed weapon mode.
func (c *Character) WeaponMode() anim.WeaponMode {
	if c == nil {
		return anim.WeaponNone
	}
	return c.weapon
}

// IsPhysicsActive reports whether the activation gate currently lets this
// character simulate.
func (c *Character) IsPhysicsActive() bool {
	return c != nil && c.activation.Active()
}

// IsAirborne reports whether the last physics move left the character
// without ground contact.
func (c *Character) IsAirborne() bool {
	return c != nil && c.inAir
}

// FallVelocity returns the current vertical velocity in m/s.
func (c *Character) FallVelocity() float64 {
	if c == nil {
		return 0
	}
	return c.fallVelocity
}

// IsAtPosition reports whether the character is within the arrival
// tolerance of a point.
func (c *Character) IsAtPosition(p mgl64.Vec3) bool {
	if c == nil {
		return false
	}
	return c.transform.Pos.Sub(p).Len() < arriveTolerance
}

// Retune swaps the numeric tuning at runtime (live spec reload). The
// activation band is rebuilt with the new thresholds; the current activation
// state carries over so a reload never teleports a character into or out of
// simulation.
func (c *Character) Retune(t Tuning) error {
	if c == nil {
		return nil
	}
	if err := t.Validate(); err != nil {
		return err
	}
	activation, err := NewActivation(c.name, t.ActivateRange, t.DeactivateRange, c.log)
	if err != nil {
		return err
	}
	activation.active = c.activation.Active()
	c.tuning = t
	c.activation = activation
	return nil
}

// FastMove scales animation playback for debugging.
func (c *Character) FastMove(factor float64) {
	if c == nil {
		return
	}
	c.visual.SetSpeedFactor(factor)
}

package character

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

// Activation decides whether a character participates in physics simulation,
// based on its distance to the observer. Two thresholds form a hysteresis
// band: simulation turns off beyond the deactivate range and back on inside
// the activate range, so a character loitering near one boundary never
// flickers. Characters start active.
type Activation struct {
	log          *slog.Logger
	name         string
	active       bool
	activateSq   float64
	deactivateSq float64
}

// NewActivation creates the hysteresis controller. The band invariant
// (deactivate > activate) is enforced here, at construction.
func NewActivation(name string, activateRange, deactivateRange float64, log *slog.Logger) (*Activation, error) {
	if deactivateRange <= activateRange {
		return nil, fmt.Errorf("activation: deactivate range (%v) must exceed activate range (%v)",
			deactivateRange, activateRange)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Activation{
		log:          log.With("subsystem", "character"),
		name:         name,
		active:       true,
		activateSq:   activateRange * activateRange,
		deactivateSq: deactivateRange * deactivateRange,
	}, nil
}

// Active reports whether physics simulation is on for this character.
func (a *Activation) Active() bool {
	return a != nil && a.active
}

// Update evaluates the hysteresis once for this tick's observer snapshot.
// Transitions are logged; they matter for performance triage on crowded
// scenes.
func (a *Activation) Update(position, observer mgl64.Vec3) {
	if a == nil {
		return
	}
	d := observer.Sub(position)
	distSq := d.Dot(d)

	if a.active {
		if distSq > a.deactivateSq {
			a.active = false
			a.log.Info("deactivating physics", "character", a.name)
		}
		return
	}
	if distSq < a.activateSq {
		a.active = true
		a.log.Info("activating physics", "character", a.name)
	}
}

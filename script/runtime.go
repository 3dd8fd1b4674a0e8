// Package script runs tengo behavior scripts against a character. Scripts
// define onEnter/update/onExit hooks per behavior state and drive the
// character through an engine table of intent functions; they run between
// simulation ticks, so intents land with last-write-wins semantics.
package script

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/aramvel/stride/anim"
	"github.com/aramvel/stride/character"
)

// lifecycleDispatch is appended to every behavior script; the host selects
// the phase through the __phase global instead of recompiling per hook.
const lifecycleDispatch = `
if __phase == "enter" {
	onEnter(__engine, __state, __current_state)
} else if __phase == "update" {
	update(__engine, __state, __current_state)
} else if __phase == "exit" {
	onExit(__engine, __state, __current_state)
}
`

// Behavior is one compiled behavior script bound to one character.
type Behavior struct {
	log       *slog.Logger
	compiled  *tengo.Compiled
	stateData *tengo.Map

	current     string
	pending     string
	initialized bool
}

// NewBehavior compiles a behavior script. The script may set a global
// `initial_state`; it defaults to "idle".
func NewBehavior(src []byte, log *slog.Logger) (*Behavior, error) {
	if log == nil {
		log = slog.Default()
	}

	full := string(src) + "\n" + lifecycleDispatch
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__current_state", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile behavior: %w", err)
	}

	b := &Behavior{
		log:       log.With("subsystem", "script"),
		compiled:  compiled,
		stateData: &tengo.Map{Value: map[string]tengo.Object{}},
		current:   "idle",
	}

	noop := &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	if err := b.runPhase("noop", b.current, noop); err != nil {
		return nil, fmt.Errorf("script: probe behavior globals: %w", err)
	}
	if compiled.IsDefined("initial_state") {
		if s := strings.TrimSpace(compiled.Get("initial_state").String()); s != "" {
			b.current = s
		}
	}
	return b, nil
}

// CurrentState returns the behavior state the script is in.
func (b *Behavior) CurrentState() string {
	if b == nil {
		return ""
	}
	return b.current
}

// Tick runs the script for one simulation step. Script errors are logged
// and the tick is skipped; a broken behavior never takes the game down.
func (b *Behavior) Tick(ch *character.Character) {
	if b == nil || ch == nil {
		return
	}
	engine := b.buildEngine(ch)

	if !b.initialized {
		if err := b.runPhase("enter", b.current, engine); err != nil {
			b.log.Error("behavior onEnter failed", "state", b.current, "err", err)
			return
		}
		b.initialized = true
	}

	if err := b.runPhase("update", b.current, engine); err != nil {
		b.log.Error("behavior update failed", "state", b.current, "err", err)
		return
	}

	if b.pending == "" || b.pending == b.current {
		b.pending = ""
		return
	}

	prev := b.current
	if err := b.runPhase("exit", prev, engine); err != nil {
		b.log.Error("behavior onExit failed", "state", prev, "err", err)
		return
	}
	b.current = b.pending
	b.pending = ""
	if err := b.runPhase("enter", b.current, engine); err != nil {
		b.log.Error("behavior onEnter failed", "state", b.current, "err", err)
	}
}

func (b *Behavior) runPhase(phase, current string, engine *tengo.ImmutableMap) error {
	if b == nil || b.compiled == nil {
		return fmt.Errorf("nil behavior runtime")
	}
	if engine == nil {
		engine = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if err := b.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := b.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := b.compiled.Set("__state", b.stateData); err != nil {
		return err
	}
	if err := b.compiled.Set("__current_state", current); err != nil {
		return err
	}
	return b.compiled.Run()
}

// buildEngine exposes the character's intent surface to the script.
func (b *Behavior) buildEngine(ch *character.Character) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["transition"] = userFunc("transition", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if name == "" {
			return tengo.FalseValue, nil
		}
		b.pending = name
		return tengo.TrueValue, nil
	})

	boolOp := func(name string, op func() bool) {
		values[name] = userFunc(name, func(...tengo.Object) (tengo.Object, error) {
			if op() {
				return tengo.TrueValue, nil
			}
			return tengo.FalseValue, nil
		})
	}
	boolOp("go_forward", ch.GoForward)
	boolOp("go_backward", ch.GoBackward)
	boolOp("strafe_left", ch.StrafeLeft)
	boolOp("strafe_right", ch.StrafeRight)
	boolOp("turn_left", ch.TurnLeft)
	boolOp("turn_right", ch.TurnRight)
	boolOp("stop_turning", ch.StopTurning)
	boolOp("stop", ch.Stop)
	boolOp("jump", ch.Jump)
	boolOp("physics_active", ch.IsPhysicsActive)
	boolOp("airborne", ch.IsAirborne)
	boolOp("has_route", ch.HasRoute)

	values["toggle_walk"] = userFunc("toggle_walk", func(...tengo.Object) (tengo.Object, error) {
		ch.ToggleWalk()
		return tengo.UndefinedValue, nil
	})
	values["toggle_sneak"] = userFunc("toggle_sneak", func(...tengo.Object) (tengo.Object, error) {
		ch.ToggleSneak()
		return tengo.UndefinedValue, nil
	})
	values["toggle_melee"] = userFunc("toggle_melee", func(...tengo.Object) (tengo.Object, error) {
		ch.ToggleMeleeWeapon()
		return tengo.UndefinedValue, nil
	})

	values["change_gait"] = userFunc("change_gait", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		gait, ok := anim.ParseGait(objectAsString(args[0]))
		if !ok {
			return tengo.FalseValue, nil
		}
		if ch.ChangeGait(gait) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	})

	values["change_weapon"] = userFunc("change_weapon", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		mode, ok := anim.ParseWeaponMode(objectAsString(args[0]))
		if !ok {
			return tengo.FalseValue, nil
		}
		if ch.ChangeWeaponMode(mode) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	})

	values["at_position"] = userFunc("at_position", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 3 {
			return tengo.FalseValue, nil
		}
		var p mgl64.Vec3
		for i := 0; i < 3; i++ {
			f, ok := tengo.ToFloat64(args[i])
			if !ok {
				return tengo.FalseValue, nil
			}
			p[i] = f
		}
		if ch.IsAtPosition(p) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	})

	values["teleport"] = userFunc("teleport", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.UndefinedValue, nil
		}
		ch.Teleport(objectAsString(args[0]))
		return tengo.UndefinedValue, nil
	})

	values["goto_waypoint"] = userFunc("goto_waypoint", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		if ch.GotoWaypoint(objectAsString(args[0])) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	})

	return &tengo.ImmutableMap{Value: values}
}

func userFunc(name string, fn tengo.CallableFunc) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: fn}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	if s, ok := tengo.ToString(obj); ok {
		return s
	}
	return ""
}

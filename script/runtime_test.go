package script

import (
	"log/slog"
	"testing"

	"github.com/d5/tengo/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/aramvel/stride/anim"
	"github.com/aramvel/stride/character"
	"github.com/aramvel/stride/physics"
	"github.com/aramvel/stride/world"
)

type flatController struct{}

func (flatController) Move(from, motion mgl64.Vec3) (mgl64.Vec3, physics.CollisionFlags) {
	return from.Add(motion), physics.CollisionFlags{Below: true}
}

func scriptedCharacter(t *testing.T) (*character.Character, *anim.Puppet) {
	t.Helper()
	lib := anim.NewLibrary()
	lib.Register(anim.Clip{Name: "S_RUN", Looping: true, Interruptible: true})
	lib.Register(anim.Clip{Name: "S_RUNL", Looping: true, Interruptible: true, RootMotion: mgl64.Vec3{0, 0, -2.7}})
	lib.Register(anim.Clip{Name: "S_WALK", Looping: true, Interruptible: true})
	lib.Register(anim.Clip{Name: "S_STAND", Looping: true, Interruptible: true})

	puppet := anim.NewPuppet(lib)
	puppet.AssignSkeleton("HUMAN")
	transform := world.NewTransform(mgl64.Vec3{})
	ch, err := character.New("scripted", &transform, puppet, flatController{}, character.DefaultTuning(), slog.Default())
	if err != nil {
		t.Fatal(err)
	}
	return ch, puppet
}

func TestBehaviorInitialState(t *testing.T) {
	src := []byte(`
initial_state := "watch"
onEnter := func(engine, state, current) {}
update := func(engine, state, current) {}
onExit := func(engine, state, current) {}
`)
	b, err := NewBehavior(src, slog.Default())
	if err != nil {
		t.Fatal(err)
	}
	if got := b.CurrentState(); got != "watch" {
		t.Fatalf("CurrentState = %q, want watch", got)
	}
}

func TestBehaviorDefaultsToIdle(t *testing.T) {
	src := []byte(`
onEnter := func(engine, state, current) {}
update := func(engine, state, current) {}
onExit := func(engine, state, current) {}
`)
	b, err := NewBehavior(src, slog.Default())
	if err != nil {
		t.Fatal(err)
	}
	if got := b.CurrentState(); got != "idle" {
		t.Fatalf("CurrentState = %q, want idle", got)
	}
}

func TestBehaviorRejectsBrokenScript(t *testing.T) {
	if _, err := NewBehavior([]byte(`onEnter := func(`), slog.Default()); err == nil {
		t.Fatalf("syntax error compiled")
	}
}

func TestBehaviorLifecycleOrder(t *testing.T) {
	src := []byte(`
mark := func(state, ev) {
	if is_undefined(state.trace) {
		state.trace = ""
	}
	state.trace += ev + ";"
}
onEnter := func(engine, state, current) { mark(state, "enter:" + current) }
update := func(engine, state, current) {
	mark(state, "update:" + current)
	if current == "idle" {
		engine.transition("patrol")
	}
}
onExit := func(engine, state, current) { mark(state, "exit:" + current) }
`)
	b, err := NewBehavior(src, slog.Default())
	if err != nil {
		t.Fatal(err)
	}
	ch, _ := scriptedCharacter(t)

	b.Tick(ch)
	if got := b.CurrentState(); got != "patrol" {
		t.Fatalf("state after first tick = %q, want patrol", got)
	}
	b.Tick(ch)
	if got := b.CurrentState(); got != "patrol" {
		t.Fatalf("state drifted without a transition: %q", got)
	}

	trace, _ := tengo.ToString(b.stateData.Value["trace"])
	want := "enter:idle;update:idle;exit:idle;enter:patrol;update:patrol;"
	if trace != want {
		t.Fatalf("lifecycle trace %q, want %q", trace, want)
	}
}

func TestBehaviorDrivesCharacter(t *testing.T) {
	src := []byte(`
onEnter := func(engine, state, current) {
	if current == "idle" {
		engine.stop()
	} else if current == "sneaking" {
		engine.change_gait("sneak")
	}
}
update := func(engine, state, current) {
	if current == "idle" {
		engine.transition("sneaking")
	}
}
onExit := func(engine, state, current) {}
`)
	b, err := NewBehavior(src, slog.Default())
	if err != nil {
		t.Fatal(err)
	}
	ch, puppet := scriptedCharacter(t)

	b.Tick(ch)

	if got := b.CurrentState(); got != "sneaking" {
		t.Fatalf("state = %q, want sneaking", got)
	}
	// No sneak idle clip exists, so the gait commits through the stand
	// fallback.
	if ch.Gait() != anim.GaitSneak {
		t.Fatalf("gait = %v, want sneak", ch.Gait())
	}
	if got := puppet.PlayingClipName(); got != "S_STAND" {
		t.Fatalf("playing %q, want the stand fallback", got)
	}
}

func TestBehaviorStateDataPersists(t *testing.T) {
	src := []byte(`
onEnter := func(engine, state, current) {
	state.ticks = 0
}
update := func(engine, state, current) {
	state.ticks += 1
	if state.ticks == 3 {
		engine.go_forward()
	}
}
onExit := func(engine, state, current) {}
`)
	b, err := NewBehavior(src, slog.Default())
	if err != nil {
		t.Fatal(err)
	}
	ch, puppet := scriptedCharacter(t)

	for i := 0; i < 3; i++ {
		b.Tick(ch)
	}

	if got := puppet.PlayingClipName(); got != "S_RUNL" {
		t.Fatalf("playing %q after three ticks, want S_RUNL", got)
	}
}

func TestBehaviorRuntimeErrorIsNotFatal(t *testing.T) {
	src := []byte(`
onEnter := func(engine, state, current) {}
update := func(engine, state, current) {
	boom := [1]
	v := boom[5]
	v = v
}
onExit := func(engine, state, current) {}
`)
	b, err := NewBehavior(src, slog.Default())
	if err != nil {
		t.Fatal(err)
	}
	ch, _ := scriptedCharacter(t)

	// Must log and carry on, not panic.
	b.Tick(ch)
	b.Tick(ch)
	if got := b.CurrentState(); got != "idle" {
		t.Fatalf("state changed through a failing update: %q", got)
	}
}

func TestBehaviorNavigationFunctions(t *testing.T) {
	src := []byte(`
onEnter := func(engine, state, current) {
	if !engine.at_position(0, 0, 0) {
		engine.transition("lost")
	}
	if !engine.goto_waypoint("WP_FAR") {
		engine.transition("stuck")
	}
}
update := func(engine, state, current) {}
onExit := func(engine, state, current) {}
`)
	b, err := NewBehavior(src, slog.Default())
	if err != nil {
		t.Fatal(err)
	}

	ch, _ := scriptedCharacter(t)
	w := world.NewWorld(slog.Default())
	net := world.NewWaynet(slog.Default())
	net.AddWaypoint(world.Waypoint{Name: "WP_FAR", Position: mgl64.Vec3{0, 0, 10}})
	ch.SetNavigation(w, net)

	b.Tick(ch)

	if got := b.CurrentState(); got != "idle" {
		t.Fatalf("goto rejected with a reachable destination: state %q", got)
	}
	if !ch.HasRoute() {
		t.Fatalf("no route after goto_waypoint")
	}
}

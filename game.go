package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/aramvel/stride/anim"
	"github.com/aramvel/stride/character"
	"github.com/aramvel/stride/content"
	"github.com/aramvel/stride/physics"
	"github.com/aramvel/stride/script"
	"github.com/aramvel/stride/world"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	tickDelta      = 1.0 / 60.0
	observerSpeed  = 12.0
	pixelsPerMeter = 14.0
)

// Game is the debug harness: a top-down view of one character in the arena,
// keyboard intents, and a movable observer to poke at the activation
// hysteresis.
type Game struct {
	log   *slog.Logger
	input *Input

	spec    content.WorldSpec
	world   *world.World
	waynet  *world.Waynet
	tuning  character.Tuning
	puppet  *anim.Puppet
	char    *character.Character
	charObj *world.Object

	behavior   *script.Behavior
	scriptName string

	observer mgl64.Vec3
	watcher  *content.Watcher
}

// NewGame wires the whole stack from embedded content.
func NewGame(worldName, scriptName string, watch bool, log *slog.Logger) (*Game, error) {
	spec, err := content.LoadSpec[content.WorldSpec](worldName)
	if err != nil {
		return nil, err
	}
	w, waynet := spec.Build(log)

	tuning, err := content.LoadTuning("tuning.yaml")
	if err != nil {
		return nil, err
	}

	manifest, err := content.LoadSpec[content.ClipManifest]("human.yaml")
	if err != nil {
		return nil, err
	}
	puppet := anim.NewPuppet(manifest.Library())
	puppet.AssignSkeleton(manifest.Skeleton)

	controller := physics.NewSpaceController(0.35, nil)
	for _, wall := range spec.Walls {
		if len(wall) == 4 {
			controller.AddWall(wall[0], wall[1], wall[2], wall[3])
		}
	}

	start := world.NewTransform(mgl64.Vec3{})
	if obj, ok := w.FindObjectByName("START"); ok {
		start = obj.Transform
	}
	charObj := w.Insert("HERO", start)

	char, err := character.New("HERO", &charObj.Transform, puppet, controller, tuning, log)
	if err != nil {
		return nil, err
	}
	char.SetNavigation(w, waynet)
	char.Stop()

	g := &Game{
		log:        log.With("subsystem", "harness"),
		input:      NewInput(),
		spec:       spec,
		world:      w,
		waynet:     waynet,
		tuning:     tuning,
		puppet:     puppet,
		char:       char,
		charObj:    charObj,
		scriptName: scriptName,
		observer:   start.Pos.Add(mgl64.Vec3{0, 0, -10}),
	}

	if scriptName != "" {
		src, err := content.LoadScript(scriptName)
		if err != nil {
			return nil, err
		}
		g.behavior, err = script.NewBehavior(src, log)
		if err != nil {
			return nil, err
		}
	}

	if watch {
		watcher, err := content.NewWatcher("content/specs", "content/scripts")
		if err != nil {
			g.log.Warn("content watcher unavailable", "err", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

// Close releases the content watcher.
func (g *Game) Close() {
	if g != nil && g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.input.Update()
	g.applyInput()

	if g.behavior != nil {
		g.behavior.Tick(g.char)
	}

	g.puppet.Advance(tickDelta)
	g.char.FixedUpdate(tickDelta, g.observer)
	g.world.Clock().Advance(tickDelta)

	g.drainWatcher()
	return nil
}

// applyInput turns this frame's keys into intents. Keyboard intents land
// after the behavior script's from the previous frame; both sides get
// last-write-wins, which is exactly the contract.
func (g *Game) applyInput() {
	in := g.input

	g.observer[0] += in.ObserverX * observerSpeed * tickDelta
	g.observer[2] += in.ObserverZ * observerSpeed * tickDelta

	switch {
	case in.Forward:
		g.char.GoForward()
	case in.Backward:
		g.char.GoBackward()
	case in.StrafeL:
		g.char.StrafeLeft()
	case in.StrafeR:
		g.char.StrafeRight()
	case in.MoveReleased:
		g.char.Stop()
	}

	switch {
	case in.TurnL:
		g.char.TurnLeft()
	case in.TurnR:
		g.char.TurnRight()
	case in.TurnReleased:
		g.char.StopTurning()
	}

	if in.Jump {
		g.char.Jump()
	}
	if in.ToggleWalk {
		g.char.ToggleWalk()
	}
	if in.ToggleSnk {
		g.char.ToggleSneak()
	}
	if in.ToggleFist {
		g.char.ToggleMeleeWeapon()
	}
	if in.Teleport {
		g.char.Teleport("START")
	}
	if in.Patrol {
		g.char.GotoWaypoint("WP_GATE")
	}
}

// drainWatcher applies any pending content changes: yaml edits reload the
// tuning, script edits recompile the behavior (its state restarts).
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn("content watcher error", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		tuning, err := content.LoadTuning("tuning.yaml")
		if err != nil {
			g.log.Warn("tuning reload failed", "err", err)
			return
		}
		if err := g.char.Retune(tuning); err != nil {
			g.log.Warn("tuning reload rejected", "err", err)
			return
		}
		g.tuning = tuning
		g.log.Info("tuning reloaded", "file", name)
		return
	}
	if g.scriptName == "" {
		return
	}
	src, err := content.LoadScript(g.scriptName)
	if err != nil {
		g.log.Warn("behavior reload failed", "err", err)
		return
	}
	behavior, err := script.NewBehavior(src, g.log)
	if err != nil {
		g.log.Warn("behavior recompile failed", "err", err)
		return
	}
	g.behavior = behavior
	g.log.Info("behavior reloaded", "file", name)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	for _, wall := range g.spec.Walls {
		if len(wall) != 4 {
			continue
		}
		x0, y0 := g.toScreen(wall[0], wall[1])
		x1, y1 := g.toScreen(wall[2], wall[3])
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, colornames.Lightgray, true)
	}

	g.waynet.Edges(func(a, b *world.Waypoint) {
		x0, y0 := g.toScreen(a.Position.X(), a.Position.Z())
		x1, y1 := g.toScreen(b.Position.X(), b.Position.Z())
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, colornames.Steelblue, true)
	})
	for _, wp := range g.waynet.Waypoints() {
		x, y := g.toScreen(wp.Position.X(), wp.Position.Z())
		vector.DrawFilledCircle(screen, x, y, 3, colornames.Skyblue, true)
		ebitenutil.DebugPrintAt(screen, wp.Name, int(x)+5, int(y)-6)
	}

	// observer + activation band
	ox, oy := g.toScreen(g.observer.X(), g.observer.Z())
	vector.DrawFilledCircle(screen, ox, oy, 4, colornames.Gold, true)
	vector.StrokeCircle(screen, ox, oy, float32(g.tuning.ActivateRange*pixelsPerMeter), 1, colornames.Green, true)
	vector.StrokeCircle(screen, ox, oy, float32(g.tuning.DeactivateRange*pixelsPerMeter), 1, colornames.Indianred, true)

	// character + facing
	pos := g.char.Transform().Pos
	fwd := g.char.Transform().Forward()
	cx, cy := g.toScreen(pos.X(), pos.Z())
	body := colornames.White
	if !g.char.IsPhysicsActive() {
		body = colornames.Gray
	}
	vector.DrawFilledCircle(screen, cx, cy, 5, body, true)
	fx, fy := g.toScreen(pos.X()+fwd.X()*1.2, pos.Z()+fwd.Z()*1.2)
	vector.StrokeLine(screen, cx, cy, fx, fy, 2, colornames.Orange, true)

	state := "manual"
	if g.behavior != nil {
		state = g.behavior.CurrentState()
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"clip: %s\ngait: %s  weapon: %s  behavior: %s\nphysics: %v  airborne: %v  fall: %.2f m/s\nday: %.3f  fps: %.1f\nWASD move/turn  Q/E strafe  Space jump  Shift/C/F modes  T teleport  G patrol  arrows observer",
		g.puppet.PlayingClipName(),
		g.char.Gait(), g.char.WeaponMode(), state,
		g.char.IsPhysicsActive(), g.char.IsAirborne(), g.char.FallVelocity(),
		g.world.Clock().DayRatio(), ebiten.ActualFPS(),
	))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) toScreen(x, z float64) (float32, float32) {
	return float32(baseWidth/2 + x*pixelsPerMeter), float32(baseHeight/2 - z*pixelsPerMeter)
}

package content

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/aramvel/stride/character"
)

func TestLoadTuningEmbedded(t *testing.T) {
	tuning, err := LoadTuning("tuning.yaml")
	if err != nil {
		t.Fatal(err)
	}
	want := character.DefaultTuning()
	if tuning != want {
		t.Fatalf("embedded tuning = %+v, want stock %+v", tuning, want)
	}
}

func TestTuningSpecFillsDefaults(t *testing.T) {
	spec := TuningSpec{ActivateRange: 20, DeactivateRange: 25}
	tuning := spec.Tuning()

	if tuning.ActivateRange != 20 || tuning.DeactivateRange != 25 {
		t.Fatalf("overrides not applied: %+v", tuning)
	}
	def := character.DefaultTuning()
	if tuning.TurnSpeed != def.TurnSpeed || tuning.Gravity != def.Gravity {
		t.Fatalf("unset fields not defaulted: %+v", tuning)
	}
}

func TestLoadTuningRejectsInvertedBand(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := filepath.Join("content", "specs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	bad := []byte("activate_range: 50\ndeactivate_range: 45\n")
	if err := os.WriteFile(filepath.Join(dir, "tuning.yaml"), bad, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadTuning("tuning.yaml"); err == nil {
		t.Fatalf("inverted hysteresis band loaded without error")
	}
}

func TestDiskCopyShadowsEmbedded(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := filepath.Join("content", "specs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	override := []byte("turn_speed: 9\n")
	if err := os.WriteFile(filepath.Join(dir, "tuning.yaml"), override, 0o644); err != nil {
		t.Fatal(err)
	}

	tuning, err := LoadTuning("content/specs/tuning.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if tuning.TurnSpeed != 9 {
		t.Fatalf("disk override ignored: turn_speed = %v", tuning.TurnSpeed)
	}
}

func TestLoadMissingSpec(t *testing.T) {
	if _, err := LoadTuning("no_such.yaml"); err == nil {
		t.Fatalf("missing spec loaded without error")
	}
}

func TestClipManifestLibrary(t *testing.T) {
	manifest, err := LoadSpec[ClipManifest]("human.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if manifest.Skeleton != "HUMAN" {
		t.Fatalf("skeleton = %q, want HUMAN", manifest.Skeleton)
	}

	lib := manifest.Library()
	run, ok := lib.Find("S_RUNL")
	if !ok {
		t.Fatalf("S_RUNL missing from the human clip set")
	}
	if run.RootMotion != (mgl64.Vec3{0, 0, -2.7}) {
		t.Fatalf("S_RUNL root motion = %v", run.RootMotion)
	}
	if !run.Looping || !run.Interruptible {
		t.Fatalf("S_RUNL flags wrong: %+v", run)
	}

	jump, ok := lib.Find("S_JUMP")
	if !ok {
		t.Fatalf("S_JUMP missing")
	}
	if !jump.Flight || jump.Next != "S_RUN" || jump.Duration != 0.7 {
		t.Fatalf("S_JUMP spec wrong: %+v", jump)
	}

	// The legacy gaps must stay gaps: the fallbacks depend on them.
	if _, ok := lib.Find("S_RUNBL"); ok {
		t.Fatalf("backward run state authored, fallback path untestable")
	}
}

func TestWorldSpecBuild(t *testing.T) {
	spec, err := LoadSpec[WorldSpec]("arena.yaml")
	if err != nil {
		t.Fatal(err)
	}

	w, net := spec.Build(slog.Default())

	start, ok := w.FindObjectByName("START")
	if !ok {
		t.Fatalf("START missing from the scene")
	}
	if start.Transform.Pos != (mgl64.Vec3{0, 0, 0}) {
		t.Fatalf("START at %v", start.Transform.Pos)
	}

	// Waypoints double as teleport targets.
	if _, ok := w.FindObjectByName("WP_GATE"); !ok {
		t.Fatalf("waypoint not registered as a scene object")
	}

	route := net.RouteTo(mgl64.Vec3{0, 0, 0}, "WP_TOWER")
	if len(route) == 0 {
		t.Fatalf("no route across the arena loop")
	}

	// Off-waynet endpoints resolve through the scene index.
	if way := net.FindWayByName("WP_GATE", "FP_CAMPFIRE"); len(way) == 0 {
		t.Fatalf("freepoint destination not resolvable through the object lookup")
	}

	if len(spec.Walls) != 4 {
		t.Fatalf("arena walls = %d, want the four yard walls", len(spec.Walls))
	}
}

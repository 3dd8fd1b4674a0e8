package content

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/aramvel/stride/anim"
	"github.com/aramvel/stride/character"
	"github.com/aramvel/stride/world"
)

// LoadSpec reads and unmarshals a typed YAML spec.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("content: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("content: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// TuningSpec is the YAML form of character.Tuning. Zero fields fall back to
// the stock values, so a spec only needs to name what it changes.
type TuningSpec struct {
	TurnSpeed           float64 `yaml:"turn_speed"`
	TurnSpeedWeaponMult float64 `yaml:"turn_speed_weapon_mult"`
	ActivateRange       float64 `yaml:"activate_range"`
	DeactivateRange     float64 `yaml:"deactivate_range"`
	Gravity             float64 `yaml:"gravity"`
	StickVelocity       float64 `yaml:"stick_velocity"`
}

// Tuning converts the spec to runtime tuning, filling defaults.
func (s TuningSpec) Tuning() character.Tuning {
	t := character.DefaultTuning()
	if s.TurnSpeed != 0 {
		t.TurnSpeed = s.TurnSpeed
	}
	if s.TurnSpeedWeaponMult != 0 {
		t.TurnSpeedWeaponMult = s.TurnSpeedWeaponMult
	}
	if s.ActivateRange != 0 {
		t.ActivateRange = s.ActivateRange
	}
	if s.DeactivateRange != 0 {
		t.DeactivateRange = s.DeactivateRange
	}
	if s.Gravity != 0 {
		t.Gravity = s.Gravity
	}
	if s.StickVelocity != 0 {
		t.StickVelocity = s.StickVelocity
	}
	return t
}

// LoadTuning reads a tuning spec and converts it.
func LoadTuning(filename string) (character.Tuning, error) {
	spec, err := LoadSpec[TuningSpec](filename)
	if err != nil {
		return character.Tuning{}, err
	}
	tuning := spec.Tuning()
	if err := tuning.Validate(); err != nil {
		return character.Tuning{}, fmt.Errorf("content: %s: %w", filename, err)
	}
	return tuning, nil
}

// ClipSpec describes one animation clip of a clip set.
type ClipSpec struct {
	Name          string    `yaml:"name"`
	Looping       bool      `yaml:"looping"`
	Interruptible bool      `yaml:"interruptible"`
	Flight        bool      `yaml:"flight"`
	Next          string    `yaml:"next"`
	Duration      float64   `yaml:"duration"`
	RootMotion    []float64 `yaml:"root_motion"`
}

// ClipManifest is a skeleton's clip set.
type ClipManifest struct {
	Skeleton string     `yaml:"skeleton"`
	Clips    []ClipSpec `yaml:"clips"`
}

// Library builds the clip library from the manifest.
func (m ClipManifest) Library() *anim.Library {
	lib := anim.NewLibrary()
	for _, c := range m.Clips {
		lib.Register(anim.Clip{
			Name:          c.Name,
			Looping:       c.Looping,
			Interruptible: c.Interruptible,
			Flight:        c.Flight,
			Next:          c.Next,
			Duration:      c.Duration,
			RootMotion:    vec3(c.RootMotion),
		})
	}
	return lib
}

// ObjectSpec is a named scene point (spawn point, freepoint).
type ObjectSpec struct {
	Name     string    `yaml:"name"`
	Position []float64 `yaml:"position"`
	Forward  []float64 `yaml:"forward"`
}

// WaypointSpec is a waynet node.
type WaypointSpec struct {
	Name     string    `yaml:"name"`
	Position []float64 `yaml:"position"`
	Forward  []float64 `yaml:"forward"`
}

// WorldSpec describes a playable area: named objects, the waynet, and wall
// segments for the character controller.
type WorldSpec struct {
	Objects   []ObjectSpec   `yaml:"objects"`
	Waypoints []WaypointSpec `yaml:"waypoints"`
	Edges     [][]string     `yaml:"edges"`
	Walls     [][]float64    `yaml:"walls"`
}

// Build constructs the world and waynet. Waypoints double as named scene
// objects so teleports can target them. Malformed edges are logged and
// skipped by the waynet itself.
func (s WorldSpec) Build(log *slog.Logger) (*world.World, *world.Waynet) {
	w := world.NewWorld(log)
	net := world.NewWaynet(log)

	for _, o := range s.Objects {
		t := world.NewTransform(vec3(o.Position))
		t.SetForward(vec3(o.Forward))
		w.Insert(o.Name, t)
	}
	for _, wp := range s.Waypoints {
		pos := vec3(wp.Position)
		fwd := vec3(wp.Forward)
		net.AddWaypoint(world.Waypoint{Name: wp.Name, Position: pos, Forward: fwd})

		t := world.NewTransform(pos)
		t.SetForward(fwd)
		w.Insert(wp.Name, t)
	}
	for _, e := range s.Edges {
		if len(e) != 2 {
			continue
		}
		net.Connect(e[0], e[1])
	}
	net.SetObjectLookup(func(name string) (mgl64.Vec3, bool) {
		obj, ok := w.FindObjectByName(name)
		if !ok {
			return mgl64.Vec3{}, false
		}
		return obj.Transform.Pos, true
	})
	return w, net
}

func vec3(v []float64) mgl64.Vec3 {
	var out mgl64.Vec3
	for i := 0; i < len(v) && i < 3; i++ {
		out[i] = v[i]
	}
	return out
}

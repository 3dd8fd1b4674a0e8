package world

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

// Object is a named scene entry: a spawn point, a freepoint, a character
// anchor. Its transform is read by navigation and written by whoever owns the
// object.
type Object struct {
	Name      string
	Transform Transform
	removed   bool
}

// World is the scene-object index. Name lookups are served from a
// fill-on-demand cache; entries for removed objects are ignored rather than
// eagerly evicted, matching the behavior higher layers rely on when legacy
// content respawns objects under reused names.
type World struct {
	log     *slog.Logger
	objects []*Object
	byName  map[string]*Object
	clock   *Clock
}

// NewWorld creates an empty world.
func NewWorld(log *slog.Logger) *World {
	if log == nil {
		log = slog.Default()
	}
	return &World{
		log:    log.With("subsystem", "world"),
		byName: make(map[string]*Object),
		clock:  NewClock(defaultSecondsPerDay),
	}
}

// Clock returns the world's day clock.
func (w *World) Clock() *Clock {
	if w == nil {
		return nil
	}
	return w.clock
}

// Insert adds a named object and returns it. Unnamed objects are valid but
// unreachable through the index.
func (w *World) Insert(name string, transform Transform) *Object {
	if w == nil {
		return nil
	}
	obj := &Object{Name: name, Transform: transform}
	w.objects = append(w.objects, obj)
	return obj
}

// Remove marks an object as gone. Cached lookups stop returning it.
func (w *World) Remove(obj *Object) {
	if w == nil || obj == nil {
		return
	}
	obj.removed = true
	for i, o := range w.objects {
		if o == obj {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			break
		}
	}
}

// FindObjectByName looks up an object by name. The cache is consulted first;
// a stale entry for a removed object falls through to a fresh scan, since the
// name may have been reused by a new object.
func (w *World) FindObjectByName(name string) (*Object, bool) {
	if w == nil || name == "" {
		return nil, false
	}
	if obj, ok := w.byName[name]; ok && !obj.removed {
		return obj, true
	}
	for _, obj := range w.objects {
		if obj.Name == name && !obj.removed {
			w.byName[name] = obj
			return obj, true
		}
	}
	return nil, false
}

// ObjectsInRange returns all objects within rangeMeters of around, compared
// by squared distance.
func (w *World) ObjectsInRange(around mgl64.Vec3, rangeMeters float64) []*Object {
	if w == nil {
		return nil
	}
	rangeSq := rangeMeters * rangeMeters
	var result []*Object
	for _, obj := range w.objects {
		if obj.removed {
			continue
		}
		d := obj.Transform.Pos.Sub(around)
		if d.Dot(d) < rangeSq {
			result = append(result, obj)
		}
	}
	return result
}

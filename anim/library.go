package anim

import "github.com/go-gl/mathgl/mgl64"

// Clip describes a single animation clip. RootMotion is the displacement the
// clip authors per second of playback, in character-local space.
type Clip struct {
	Name          string
	Looping       bool
	Interruptible bool
	Flight        bool
	Idle          bool
	Next          string
	Duration      float64
	RootMotion    mgl64.Vec3
}

// Library stores animation clips by name. A lookup miss is a normal outcome:
// clip sets for legacy content are known to be incomplete.
type Library struct {
	clips map[string]Clip
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{clips: make(map[string]Clip)}
}

// Register adds a clip to the library. The idle flag is derived from the
// naming scheme rather than trusted from content.
func (l *Library) Register(clip Clip) {
	if l == nil || clip.Name == "" {
		return
	}
	clip.Idle = IsIdleClipName(clip.Name)
	l.clips[clip.Name] = clip
}

// Find returns a clip by name.
func (l *Library) Find(name string) (Clip, bool) {
	if l == nil || name == "" {
		return Clip{}, false
	}
	clip, ok := l.clips[name]
	return clip, ok
}

// Len returns the number of registered clips.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.clips)
}

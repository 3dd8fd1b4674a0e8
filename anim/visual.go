package anim

import "github.com/go-gl/mathgl/mgl64"

// Visual is the port to the animation playback side of a character. The
// locomotion core never touches skeletons or blending directly; it only asks
// what is playing, whether it may interrupt, and what root motion accrued.
type Visual interface {
	// HasVisual reports whether a skeleton/model has been assigned yet.
	// Characters can receive AI commands before their model is set up.
	HasVisual() bool

	// PlayingClipName returns the name of the currently playing clip, or ""
	// when nothing plays.
	PlayingClipName() string

	// IsClipPlaying reports whether the named clip is the one playing.
	IsClipPlaying(name string) bool

	// IsPlayingInterruptible reports whether the current clip may be
	// replaced mid-playback. True when nothing plays.
	IsPlayingInterruptible() bool

	// FindClip resolves a clip name against the assigned clip set.
	FindClip(name string) (Clip, bool)

	// FindTransitionClip resolves the clip to play in order to reach the
	// named target state. Absence means the transition is not meant to be
	// possible.
	FindTransitionClip(target string) (Clip, bool)

	// Play switches playback to the given clip.
	Play(clip Clip)

	// ConsumeRootMotion returns the displacement accrued since the last
	// call, in character-local space, and resets the accumulator.
	ConsumeRootMotion() mgl64.Vec3

	// IsPlayingIdle reports whether a steady idle clip is playing.
	IsPlayingIdle() bool

	// IsPlayingFlight reports whether a flight clip is playing; while one
	// is, the animation system owns vertical motion.
	IsPlayingFlight() bool

	// SetSpeedFactor scales playback speed (debug fast-move).
	SetSpeedFactor(factor float64)
}

package anim

import "github.com/go-gl/mathgl/mgl64"

// Puppet is a clip-clock implementation of Visual. It advances the playing
// clip on a fixed tick, accrues authored root motion, and chains non-looping
// clips into their follow-up clip when they run out.
type Puppet struct {
	lib      *Library
	skeleton string

	current Clip
	playing bool
	clock   float64
	speed   float64

	pendingRoot mgl64.Vec3
}

var _ Visual = (*Puppet)(nil)

// NewPuppet creates a puppet over a clip library. The puppet has no visual
// until a skeleton is assigned.
func NewPuppet(lib *Library) *Puppet {
	return &Puppet{lib: lib, speed: 1}
}

// AssignSkeleton attaches a model to the puppet. Until this happens the
// puppet rejects playback and reports HasVisual false.
func (p *Puppet) AssignSkeleton(name string) {
	if p == nil || name == "" {
		return
	}
	p.skeleton = name
}

func (p *Puppet) HasVisual() bool {
	return p != nil && p.skeleton != ""
}

func (p *Puppet) PlayingClipName() string {
	if p == nil || !p.playing {
		return ""
	}
	return p.current.Name
}

func (p *Puppet) IsClipPlaying(name string) bool {
	return p != nil && p.playing && name != "" && p.current.Name == name
}

func (p *Puppet) IsPlayingInterruptible() bool {
	if p == nil || !p.playing {
		return true
	}
	return p.current.Interruptible
}

func (p *Puppet) FindClip(name string) (Clip, bool) {
	if p == nil {
		return Clip{}, false
	}
	return p.lib.Find(name)
}

// FindTransitionClip resolves the target state name directly against the
// clip set. Blend trees and animation aliases live behind the content
// pipeline; by the time clips reach the library the target name is the clip
// name.
func (p *Puppet) FindTransitionClip(target string) (Clip, bool) {
	return p.FindClip(target)
}

func (p *Puppet) Play(clip Clip) {
	if p == nil || !p.HasVisual() || clip.Name == "" {
		return
	}
	p.current = clip
	p.playing = true
	p.clock = 0
}

// Advance moves the clip clock forward. Root motion accrues until the next
// ConsumeRootMotion call, so callers get actual displacement regardless of
// how many ticks passed in between. A non-looping clip only credits motion
// up to its duration; the clip stops authoring displacement when it ends,
// even if the step runs past it.
func (p *Puppet) Advance(dt float64) {
	if p == nil || !p.playing || dt <= 0 {
		return
	}
	step := dt * p.speed

	if p.current.Looping || p.current.Duration <= 0 {
		p.pendingRoot = p.pendingRoot.Add(p.current.RootMotion.Mul(step))
		p.clock += step
		return
	}

	remaining := p.current.Duration - p.clock
	if step < remaining {
		p.pendingRoot = p.pendingRoot.Add(p.current.RootMotion.Mul(step))
		p.clock += step
		return
	}
	p.pendingRoot = p.pendingRoot.Add(p.current.RootMotion.Mul(remaining))

	if next, ok := p.lib.Find(p.current.Next); ok {
		p.current = next
		p.clock = 0
		return
	}
	p.playing = false
}

func (p *Puppet) ConsumeRootMotion() mgl64.Vec3 {
	if p == nil {
		return mgl64.Vec3{}
	}
	motion := p.pendingRoot
	p.pendingRoot = mgl64.Vec3{}
	return motion
}

func (p *Puppet) IsPlayingIdle() bool {
	return p != nil && p.playing && p.current.Idle
}

func (p *Puppet) IsPlayingFlight() bool {
	return p != nil && p.playing && p.current.Flight
}

func (p *Puppet) SetSpeedFactor(factor float64) {
	if p == nil || factor <= 0 {
		return
	}
	p.speed = factor
}

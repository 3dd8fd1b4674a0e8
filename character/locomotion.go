package character

import "github.com/aramvel/stride/anim"

// Locomotion intents. Every operation returns whether the request was
// accepted; a false return means "rejected, state unchanged", never an
// error. Rejection policy (retry, give up) belongs to the calling behavior
// layer.

// GoForward requests sustained forward movement in the current mode.
func (c *Character) GoForward() bool {
	if c == nil {
		return false
	}
	return c.tryTransitionToState("L")
}

// GoBackward requests backward movement. Only some movement modes have a
// dedicated backward state; the default running set does not, so this falls
// back to the one-shot backward hop.
func (c *Character) GoBackward() bool {
	if c == nil {
		return false
	}
	if c.stateExists("BL") {
		return c.tryTransitionToState("BL")
	}
	if !c.isStateSwitchAllowed() {
		return false
	}
	return c.tryPlayTransitionTo("T_JUMPB")
}

// StrafeLeft requests a one-shot sidestep to the left.
func (c *Character) StrafeLeft() bool {
	return c.strafe("T_RUNSTRAFEL", "T_WALKSTRAFEL", "T_SNEAKSTRAFEL")
}

// StrafeRight requests a one-shot sidestep to the right.
func (c *Character) StrafeRight() bool {
	return c.strafe("T_RUNSTRAFER", "T_WALKSTRAFER", "T_SNEAKSTRAFER")
}

func (c *Character) strafe(run, walk, sneak string) bool {
	if c == nil || !c.isStateSwitchAllowed() {
		return false
	}
	switch c.gait {
	case anim.GaitRun:
		return c.tryPlayTransitionTo(run)
	case anim.GaitWalk:
		return c.tryPlayTransitionTo(walk)
	case anim.GaitSneak:
		return c.tryPlayTransitionTo(sneak)
	default:
		return false
	}
}

// TurnLeft sets the turn intent to the left. The intent is consumed every
// simulation tick until cleared.
func (c *Character) TurnLeft() bool {
	if c == nil || !c.turnPolicy() {
		return false
	}
	c.turn = TurnLeft
	return true
}

// TurnRight sets the turn intent to the right.
func (c *Character) TurnRight() bool {
	if c == nil || !c.turnPolicy() {
		return false
	}
	c.turn = TurnRight
	return true
}

// StopTurning clears the turn intent.
func (c *Character) StopTurning() bool {
	if c == nil {
		return false
	}
	c.turn = TurnNone
	return true
}

// Stop requests a return to the idle state of the current mode. Some clip
// sets lack the idle transition and instead reference the generic stand
// root (e.g. via T_JUMP_2_STAND), so that is the fallback. The legality
// gate applies before either attempt: the fallback covers a missing idle
// clip, not a clip that must finish.
func (c *Character) Stop() bool {
	if c == nil || !c.isStateSwitchAllowed() {
		return false
	}
	if c.tryTransitionToState("") {
		return true
	}
	return c.tryPlayTransitionTo("S_STAND")
}

// Jump plays the one-shot jump clip. Rejected while airborne or while the
// current clip must finish.
func (c *Character) Jump() bool {
	if c == nil || !c.isStateSwitchAllowed() {
		return false
	}
	if c.inAir {
		return false
	}
	return c.tryPlayTransitionTo("S_JUMP")
}

// ChangeGait switches the locomotion mode. The idle clip of the target
// combination is played first; only if that succeeds is the mode committed.
// Without an assigned visual the mode is adopted unconditionally and
// legality is deferred until a model exists.
func (c *Character) ChangeGait(gait anim.Gait) bool {
	if c == nil {
		return false
	}
	if !c.visual.HasVisual() {
		c.gait = gait
		return true
	}
	target := anim.StateClipName(c.weapon, gait, "")
	if !c.tryPlayTransitionTo(target) {
		return false
	}
	c.gait = gait
	return true
}

// ChangeWeaponMode switches the weapon mode, with the same deferred-legality
// rule as ChangeGait for characters without a visual. When no transition
// clip exists, a last-resort direct lookup of the raw target-state clip is
// attempted; if found it is played and the mode change still commits. Some
// clip sets only author one direction of a mode bridge, and the reversed
// alias may be missing from imported content.
func (c *Character) ChangeWeaponMode(mode anim.WeaponMode) bool {
	if c == nil {
		return false
	}
	if !c.visual.HasVisual() {
		c.weapon = mode
		return true
	}
	target := anim.StateClipName(mode, c.gait, "")
	if c.tryPlayTransitionTo(target) {
		c.weapon = mode
		return true
	}
	if clip, ok := c.visual.FindClip(target); ok {
		c.visual.Play(clip)
		c.weapon = mode
		return true
	}
	return false
}

// ToggleWalk flips between running and walking; sneaking also returns to
// running.
func (c *Character) ToggleWalk() {
	if c == nil {
		return
	}
	switch c.gait {
	case anim.GaitRun:
		c.ChangeGait(anim.GaitWalk)
	case anim.GaitWalk, anim.GaitSneak:
		c.ChangeGait(anim.GaitRun)
	}
}

// ToggleSneak flips into sneaking from either upright mode, and back to
// running out of it.
func (c *Character) ToggleSneak() {
	if c == nil {
		return
	}
	switch c.gait {
	case anim.GaitRun, anim.GaitWalk:
		c.ChangeGait(anim.GaitSneak)
	case anim.GaitSneak:
		c.ChangeGait(anim.GaitRun)
	}
}

// ToggleMeleeWeapon draws fists when unarmed, otherwise puts the weapon
// away.
func (c *Character) ToggleMeleeWeapon() {
	if c == nil {
		return
	}
	if c.weapon == anim.WeaponNone {
		c.ChangeWeaponMode(anim.WeaponFist)
		return
	}
	c.ChangeWeaponMode(anim.WeaponNone)
}

// tryTransitionToState composes the state clip name for the current mode
// combination and attempts to play it.
func (c *Character) tryTransitionToState(substate string) bool {
	if !c.isStateSwitchAllowed() {
		return false
	}
	return c.tryPlayTransitionTo(anim.StateClipName(c.weapon, c.gait, substate))
}

// tryPlayTransitionTo resolves and plays the clip bridging to the target
// state. A missing clip means the transition is not meant to be possible,
// except that steady run/walk characters may bridge through the generic
// stand root when the literal clip is absent.
func (c *Character) tryPlayTransitionTo(target string) bool {
	if !c.visual.HasVisual() {
		return false
	}

	clip, ok := c.visual.FindTransitionClip(target)
	if ok && c.visual.IsClipPlaying(clip.Name) {
		return true
	}
	if !ok && c.isStanding() {
		clip, ok = c.visual.FindTransitionClip(anim.StandFallbackName(target))
	}
	if !ok {
		return false
	}
	if !c.visual.IsClipPlaying(clip.Name) {
		c.visual.Play(clip)
	}
	return true
}

func (c *Character) stateExists(substate string) bool {
	_, ok := c.visual.FindClip(anim.StateClipName(c.weapon, c.gait, substate))
	return ok
}

// isStanding reports whether the character is in a steady run or walk idle.
// Only then may the stand-root fallback kick in.
func (c *Character) isStanding() bool {
	state := anim.StateNameFromClip(c.visual.PlayingClipName())
	return state == "RUN" || state == "WALK"
}

// isStateSwitchAllowed is the transition legality gate. It re-reads the
// playing clip every call instead of trusting the cached mode enums: the
// visual and the locomotion state diverge whenever a one-shot or scripted
// clip is playing, and the clip is the authority.
func (c *Character) isStateSwitchAllowed() bool {
	playing := c.visual.PlayingClipName()
	if playing == "" {
		return true
	}
	if anim.StateNameFromClip(playing) == "" {
		// Some animation outside the naming scheme: let it finish.
		return false
	}
	return c.visual.IsPlayingInterruptible()
}

package anim

import "strings"

// State clips follow the scheme S_<WEAPON><GAIT><SUBSTATE>, e.g. S_RUNL for
// running forward unarmed, S_FISTWALK for the armed walking idle. One-shot
// transition clips use a T_ prefix and are addressed by their literal name.
const (
	statePrefix      = "S_"
	transitionPrefix = "T_"
	standRoot        = "STAND"
)

// weaponTags is ordered longest-first so that decoding never mistakes CBOW
// for BOW.
var weaponTags = []string{"CBOW", "FIST", "BOW", "1H", "2H"}

var gaitTags = []struct {
	tag  string
	gait Gait
}{
	{"SNEAK", GaitSneak},
	{"WALK", GaitWalk},
	{"RUN", GaitRun},
}

// StateClipName composes the canonical clip name for a movement state. It is
// deterministic and total: any input yields a name, which may simply not
// resolve to an existing clip.
func StateClipName(weapon WeaponMode, gait Gait, substate string) string {
	return statePrefix + weapon.Tag() + gait.Tag() + strings.ToUpper(strings.TrimSpace(substate))
}

// StateNameFromClip extracts the state token of a state clip name with any
// weapon tag removed, e.g. "S_FISTRUNL" -> "RUNL". Non-state clips (one-shot
// transitions, unknown schemes) yield "".
func StateNameFromClip(name string) string {
	if !strings.HasPrefix(name, statePrefix) {
		return ""
	}
	rest := name[len(statePrefix):]
	for _, tag := range weaponTags {
		if strings.HasPrefix(rest, tag) {
			return rest[len(tag):]
		}
	}
	return rest
}

// GaitFromClipName inverts the naming scheme: it recovers the gait a playing
// clip belongs to. Clips outside the scheme report ok=false, which callers
// treat as "special animation, do not interrupt".
func GaitFromClipName(name string) (Gait, bool) {
	state := StateNameFromClip(name)
	if state == "" {
		return GaitRun, false
	}
	for _, g := range gaitTags {
		if strings.HasPrefix(state, g.tag) {
			return g.gait, true
		}
	}
	return GaitRun, false
}

// StandFallbackName rewrites a state clip name onto the generic stand root
// while preserving the target substate, e.g. "S_FISTRUNL" -> "S_STANDL".
// The stand root is not a real state: some clip sets reference it as the
// bridge target when a mode lacks its own clip for a substate.
func StandFallbackName(target string) string {
	return statePrefix + standRoot + substateOf(target)
}

// substateOf strips prefix, weapon tag and gait tag from a state clip name.
func substateOf(name string) string {
	state := StateNameFromClip(name)
	if strings.HasPrefix(state, standRoot) {
		return state[len(standRoot):]
	}
	for _, g := range gaitTags {
		if strings.HasPrefix(state, g.tag) {
			return state[len(g.tag):]
		}
	}
	return ""
}

// IsIdleClipName reports whether a clip name denotes a steady idle state,
// i.e. a state clip with an empty substate such as S_RUN or S_FISTWALK.
func IsIdleClipName(name string) bool {
	state := StateNameFromClip(name)
	if state == standRoot {
		return true
	}
	for _, g := range gaitTags {
		if state == g.tag {
			return true
		}
	}
	return false
}

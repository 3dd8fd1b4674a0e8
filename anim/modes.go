package anim

import "strings"

// Gait is the sustained movement classification of a character. It only
// changes through a successful state transition on the locomotion machine.
type Gait int

const (
	GaitRun Gait = iota
	GaitWalk
	GaitSneak
)

// Tag returns the token used for this gait inside state clip names.
func (g Gait) Tag() string {
	switch g {
	case GaitRun:
		return "RUN"
	case GaitWalk:
		return "WALK"
	case GaitSneak:
		return "SNEAK"
	default:
		return ""
	}
}

func (g Gait) String() string {
	switch g {
	case GaitRun:
		return "run"
	case GaitWalk:
		return "walk"
	case GaitSneak:
		return "sneak"
	default:
		return "unknown"
	}
}

// ParseGait maps a lowercase gait name to its enum value.
func ParseGait(s string) (Gait, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "run":
		return GaitRun, true
	case "walk":
		return GaitWalk, true
	case "sneak":
		return GaitSneak, true
	default:
		return GaitRun, false
	}
}

// WeaponMode is the sustained combat-readiness classification. It selects
// which animation set state clips resolve into.
type WeaponMode int

const (
	WeaponNone WeaponMode = iota
	WeaponFist
	WeaponOneHanded
	WeaponTwoHanded
	WeaponBow
	WeaponCrossbow
)

// Tag returns the token used for this weapon mode inside state clip names.
// An unarmed character contributes no token at all.
func (w WeaponMode) Tag() string {
	switch w {
	case WeaponNone:
		return ""
	case WeaponFist:
		return "FIST"
	case WeaponOneHanded:
		return "1H"
	case WeaponTwoHanded:
		return "2H"
	case WeaponBow:
		return "BOW"
	case WeaponCrossbow:
		return "CBOW"
	default:
		return ""
	}
}

func (w WeaponMode) String() string {
	switch w {
	case WeaponNone:
		return "none"
	case WeaponFist:
		return "fist"
	case WeaponOneHanded:
		return "1h"
	case WeaponTwoHanded:
		return "2h"
	case WeaponBow:
		return "bow"
	case WeaponCrossbow:
		return "crossbow"
	default:
		return "unknown"
	}
}

// ParseWeaponMode maps a lowercase weapon mode name to its enum value.
func ParseWeaponMode(s string) (WeaponMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return WeaponNone, true
	case "fist":
		return WeaponFist, true
	case "1h":
		return WeaponOneHanded, true
	case "2h":
		return WeaponTwoHanded, true
	case "bow":
		return WeaponBow, true
	case "crossbow", "cbow":
		return WeaponCrossbow, true
	default:
		return WeaponNone, false
	}
}

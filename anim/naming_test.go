package anim

import "testing"

func TestStateClipName(t *testing.T) {
	cases := []struct {
		name     string
		weapon   WeaponMode
		gait     Gait
		substate string
		want     string
	}{
		{"run_idle", WeaponNone, GaitRun, "", "S_RUN"},
		{"run_forward", WeaponNone, GaitRun, "L", "S_RUNL"},
		{"walk_forward", WeaponNone, GaitWalk, "L", "S_WALKL"},
		{"sneak_idle", WeaponNone, GaitSneak, "", "S_SNEAK"},
		{"fist_run_forward", WeaponFist, GaitRun, "L", "S_FISTRUNL"},
		{"one_handed_walk", WeaponOneHanded, GaitWalk, "", "S_1HWALK"},
		{"crossbow_run", WeaponCrossbow, GaitRun, "", "S_CBOWRUN"},
		{"lowercase_substate", WeaponNone, GaitRun, "bl", "S_RUNBL"},
		{"padded_substate", WeaponNone, GaitRun, " L ", "S_RUNL"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := StateClipName(c.weapon, c.gait, c.substate); got != c.want {
				t.Fatalf("StateClipName = %q, want %q", got, c.want)
			}
		})
	}
}

func TestGaitFromClipName(t *testing.T) {
	cases := []struct {
		name   string
		clip   string
		want   Gait
		wantOK bool
	}{
		{"run_forward", "S_RUNL", GaitRun, true},
		{"walk_idle", "S_WALK", GaitWalk, true},
		{"sneak_forward", "S_SNEAKL", GaitSneak, true},
		{"fist_run", "S_FISTRUNL", GaitRun, true},
		{"crossbow_run", "S_CBOWRUN", GaitRun, true},
		{"transition_clip", "T_JUMPB", GaitRun, false},
		{"stand_root", "S_STAND", GaitRun, false},
		{"garbage", "whatever", GaitRun, false},
		{"empty", "", GaitRun, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := GaitFromClipName(c.clip)
			if ok != c.wantOK {
				t.Fatalf("GaitFromClipName(%q) ok = %v, want %v", c.clip, ok, c.wantOK)
			}
			if ok && got != c.want {
				t.Fatalf("GaitFromClipName(%q) = %v, want %v", c.clip, got, c.want)
			}
		})
	}
}

func TestGaitRoundTrip(t *testing.T) {
	weapons := []WeaponMode{WeaponNone, WeaponFist, WeaponOneHanded, WeaponTwoHanded, WeaponBow, WeaponCrossbow}
	gaits := []Gait{GaitRun, GaitWalk, GaitSneak}

	for _, w := range weapons {
		for _, g := range gaits {
			name := StateClipName(w, g, "L")
			got, ok := GaitFromClipName(name)
			if !ok || got != g {
				t.Fatalf("round trip %q: got (%v, %v), want (%v, true)", name, got, ok, g)
			}
		}
	}
}

func TestStateNameFromClip(t *testing.T) {
	cases := []struct {
		clip string
		want string
	}{
		{"S_RUN", "RUN"},
		{"S_RUNL", "RUNL"},
		{"S_FISTRUN", "RUN"},
		{"S_CBOWRUNL", "RUNL"},
		{"S_STAND", "STAND"},
		{"T_JUMPB", ""},
		{"", ""},
		{"nonsense", ""},
	}

	for _, c := range cases {
		if got := StateNameFromClip(c.clip); got != c.want {
			t.Fatalf("StateNameFromClip(%q) = %q, want %q", c.clip, got, c.want)
		}
	}
}

func TestStandFallbackName(t *testing.T) {
	cases := []struct {
		target string
		want   string
	}{
		{"S_RUNL", "S_STANDL"},
		{"S_FISTRUNL", "S_STANDL"},
		{"S_SNEAK", "S_STAND"},
		{"S_RUN", "S_STAND"},
		{"T_JUMPB", "S_STAND"},
	}

	for _, c := range cases {
		if got := StandFallbackName(c.target); got != c.want {
			t.Fatalf("StandFallbackName(%q) = %q, want %q", c.target, got, c.want)
		}
	}
}

func TestIsIdleClipName(t *testing.T) {
	idle := []string{"S_RUN", "S_WALK", "S_SNEAK", "S_FISTRUN", "S_STAND"}
	notIdle := []string{"S_RUNL", "S_WALKL", "T_JUMPB", "S_JUMP", "", "junk"}

	for _, name := range idle {
		if !IsIdleClipName(name) {
			t.Fatalf("IsIdleClipName(%q) = false, want true", name)
		}
	}
	for _, name := range notIdle {
		if IsIdleClipName(name) {
			t.Fatalf("IsIdleClipName(%q) = true, want false", name)
		}
	}
}

// Package smtdtypes holds the closed, enum-like data types shared between
// the core state machine and the host/classifier interfaces, kept in their
// own leaf package to avoid an import cycle between internal/smtd and
// internal/smtd/host.
package smtdtypes

import "fmt"

// KeyPos identifies a physical key by its position in the scan matrix.
// (0,0) is an ordinary position, never a sentinel.
type KeyPos struct {
	Row uint8
	Col uint8
}

// Keycode is the logical code the firmware associates with a key on the
// currently active layer.
type Keycode uint16

// Mods is a bitset of active modifier keys, mirroring QMK's mod register.
type Mods uint8

// Modifier bits.
const (
	ModShift Mods = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// KeyEvent is the only external input type: a physical key transitioning
// pressed or released.
type KeyEvent struct {
	Key     KeyPos
	Pressed bool
}

// Stage is the tagged state of a per-key automaton. Exactly six cases.
type Stage uint8

const (
	// StageNone: idle / unused pool slot.
	StageNone Stage = iota
	// StageTouch: key is physically held, classification undecided.
	StageTouch
	// StageSequence: key just released as a tap, waiting for another tap.
	StageSequence
	// StageHold: key confirmed as a hold; classifier invoked for Hold.
	StageHold
	// StageTouchRelease: released while a later key is pressed; fate
	// depends on whether the later key releases before the timer fires.
	StageTouchRelease
	// StageHoldRelease: released after being held; waiting to deliver
	// Release. Only the top-of-stack state may complete this immediately.
	StageHoldRelease
)

func (s Stage) String() string {
	switch s {
	case StageNone:
		return "None"
	case StageTouch:
		return "Touch"
	case StageSequence:
		return "Sequence"
	case StageHold:
		return "Hold"
	case StageTouchRelease:
		return "TouchRelease"
	case StageHoldRelease:
		return "HoldRelease"
	default:
		panic(fmt.Sprintf("smtd: unreachable stage %d", uint8(s)))
	}
}

// Action is the tagged variant delivered to a classifier. Exactly four cases.
type Action uint8

const (
	// ActionTouch is always the first action for a key, called with the
	// live tap count.
	ActionTouch Action = iota
	// ActionTap follows Touch when the press turned out to be a tap.
	ActionTap
	// ActionHold follows Touch when the press turned out to be a hold.
	ActionHold
	// ActionRelease is only delivered after a preceding Hold.
	ActionRelease
)

func (a Action) String() string {
	switch a {
	case ActionTouch:
		return "Touch"
	case ActionTap:
		return "Tap"
	case ActionHold:
		return "Hold"
	case ActionRelease:
		return "Release"
	default:
		panic(fmt.Sprintf("smtd: unreachable action %d", uint8(a)))
	}
}

// Resolution is an ordered enum: Uncertain < Unhandled < Determined.
// The state stores the maximum resolution seen so far for a given key.
type Resolution uint8

const (
	// ResolutionUncertain: classifier started handling but cannot commit
	// yet (e.g. Touch of a mod-tap that may still become a hold).
	ResolutionUncertain Resolution = iota
	// ResolutionUnhandled: classifier does not know this keycode; the
	// core must emit the raw key on its behalf.
	ResolutionUnhandled
	// ResolutionDetermined: fully handled, do not touch the host.
	ResolutionDetermined
)

func (r Resolution) String() string {
	switch r {
	case ResolutionUncertain:
		return "Uncertain"
	case ResolutionUnhandled:
		return "Unhandled"
	case ResolutionDetermined:
		return "Determined"
	default:
		panic(fmt.Sprintf("smtd: unreachable resolution %d", uint8(r)))
	}
}

// Timeout identifies which of the three timeout durations is being
// queried. The touch-release and hold-release timeouts both use
// TimeoutRelease.
type Timeout uint8

const (
	TimeoutTap Timeout = iota
	TimeoutSequence
	TimeoutRelease
)

func (t Timeout) String() string {
	switch t {
	case TimeoutTap:
		return "Tap"
	case TimeoutSequence:
		return "Sequence"
	case TimeoutRelease:
		return "Release"
	default:
		panic(fmt.Sprintf("smtd: unreachable timeout %d", uint8(t)))
	}
}

// Feature identifies an optional, per-keycode toggleable behavior.
type Feature uint8

const (
	FeatureAggregateTaps Feature = iota
)

func (f Feature) String() string {
	switch f {
	case FeatureAggregateTaps:
		return "AggregateTaps"
	default:
		panic(fmt.Sprintf("smtd: unreachable feature %d", uint8(f)))
	}
}

package smtd

import "github.com/dshills/smtd/internal/smtd/smtdtypes"

// These aliases let the core package, its tests, and its callers spell the
// shared closed types as smtd.X instead of smtdtypes.X, while keeping the
// type definitions themselves in the dependency-free leaf package.
type (
	KeyPos     = smtdtypes.KeyPos
	Keycode    = smtdtypes.Keycode
	Mods       = smtdtypes.Mods
	KeyEvent   = smtdtypes.KeyEvent
	Stage      = smtdtypes.Stage
	Action     = smtdtypes.Action
	Resolution = smtdtypes.Resolution
	Timeout    = smtdtypes.Timeout
	Feature    = smtdtypes.Feature
)

const (
	ModShift = smtdtypes.ModShift
	ModCtrl  = smtdtypes.ModCtrl
	ModAlt   = smtdtypes.ModAlt
	ModMeta  = smtdtypes.ModMeta

	StageNone         = smtdtypes.StageNone
	StageTouch        = smtdtypes.StageTouch
	StageSequence     = smtdtypes.StageSequence
	StageHold         = smtdtypes.StageHold
	StageTouchRelease = smtdtypes.StageTouchRelease
	StageHoldRelease  = smtdtypes.StageHoldRelease

	ActionTouch   = smtdtypes.ActionTouch
	ActionTap     = smtdtypes.ActionTap
	ActionHold    = smtdtypes.ActionHold
	ActionRelease = smtdtypes.ActionRelease

	ResolutionUncertain  = smtdtypes.ResolutionUncertain
	ResolutionUnhandled  = smtdtypes.ResolutionUnhandled
	ResolutionDetermined = smtdtypes.ResolutionDetermined

	TimeoutTap      = smtdtypes.TimeoutTap
	TimeoutSequence = smtdtypes.TimeoutSequence
	TimeoutRelease  = smtdtypes.TimeoutRelease

	FeatureAggregateTaps = smtdtypes.FeatureAggregateTaps
)

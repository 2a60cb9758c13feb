// Package host defines the external collaborators the core state machine
// calls through: the keyboard firmware's keymap lookup, modifier register,
// raw key re-injection, and the deferred-timer service. Production code
// wires a real implementation; tests wire internal/smtd/host/faketime.
package host

import "github.com/dshills/smtd/internal/smtd/smtdtypes"

// Host is the set of firmware operations the core needs to resolve a key
// and to dispatch classifier side effects.
type Host interface {
	// CurrentKeycode looks up the keycode bound to pos on the active layer.
	CurrentKeycode(pos smtdtypes.KeyPos) smtdtypes.Keycode

	// HighestActiveLayer returns the topmost layer currently active.
	HighestActiveLayer() uint8

	// MoveToLayer switches the active layer.
	MoveToLayer(layer uint8)

	// GetMods returns the currently held modifier bits.
	GetMods() smtdtypes.Mods
	// SetMods replaces the held modifier bits.
	SetMods(smtdtypes.Mods)
	// RegisterMods adds modifier bits to the held set.
	RegisterMods(smtdtypes.Mods)
	// UnregisterMods removes modifier bits from the held set.
	UnregisterMods(smtdtypes.Mods)
	// SendReport flushes a USB HID report immediately.
	SendReport()

	// TapCode16 emits a full press+release of a keycode.
	TapCode16(smtdtypes.Keycode)
	// RegisterCode16 presses and holds a keycode.
	RegisterCode16(smtdtypes.Keycode)
	// UnregisterCode16 releases a previously-registered keycode.
	UnregisterCode16(smtdtypes.Keycode)

	// EmitRaw re-injects a key event into the host's own input pipeline.
	// The core guarantees this is only called while its bypass flag is
	// set, so the host must not attempt to recurse back into the core.
	EmitRaw(smtdtypes.KeyEvent)
}

// Clock is a monotonic millisecond clock.
type Clock interface {
	NowMS() uint32
	ElapsedMS(since uint32) uint32
}

// Token identifies a scheduled deferred callback. The zero value is the
// sentinel for "no pending timer".
type Token uint32

// InvalidToken is the sentinel returned/accepted in place of a real token.
const InvalidToken Token = 0

// Timer schedules and cancels deferred callbacks, at most one of which is
// considered "pending" per caller at any time.
type Timer interface {
	// Defer schedules cb to run after delayMS milliseconds and returns a
	// token that can later be passed to Cancel.
	Defer(delayMS uint32, cb func()) Token
	// Cancel aborts a previously scheduled callback. Cancelling an
	// already-fired or already-cancelled token is a no-op.
	Cancel(Token)
}

// TimeoutOverrider is an optional capability a Host may implement to
// override a timeout duration for a specific keycode. Checked with a type
// assertion — the idiomatic substitute for a weakly-linked C function with
// a default fallback.
type TimeoutOverrider interface {
	TimeoutFor(kc smtdtypes.Keycode, which smtdtypes.Timeout) (ms uint32, ok bool)
}

// FeatureToggler is an optional capability a Host may implement to decide
// whether a feature is enabled for a specific keycode.
type FeatureToggler interface {
	FeatureEnabled(kc smtdtypes.Keycode, feature smtdtypes.Feature) (enabled bool, ok bool)
}

// SimultaneousDelayer is an optional capability a Host may implement to
// enforce spacing between back-to-back synthesized reports. Hosts that
// don't need it simply don't implement it, and the delay is skipped.
type SimultaneousDelayer interface {
	Wait(ms uint32)
}

package smtd

// Config carries the four driving timeouts and the two global behavior
// toggles described in spec section 6. A richer, layered configuration
// model (files, environment, per-profile merging) lives in
// internal/smtd/config; this struct is the minimal shape the core itself
// consumes.
type Config struct {
	// TapTermMS is T_TAP: how long a touch must be held before it commits
	// as a hold.
	TapTermMS uint32
	// SequenceTermMS is T_SEQUENCE: how long to wait for another tap of
	// the same key before finalizing a tap sequence.
	SequenceTermMS uint32
	// ReleaseTermMS is T_RELEASE: how long a touch-released or
	// hold-released state waits for a following key to resolve it.
	ReleaseTermMS uint32
	// SimultaneousPressesDelayMS is a small wait inserted between
	// side-effect groups so USB reports do not coalesce. Zero disables it.
	SimultaneousPressesDelayMS uint32
	// AggregateTaps, when true, collapses a same-key tap sequence into a
	// single Tap action carrying the final tap count, emitted when the
	// sequence timeout fires, instead of one Tap per completed tap.
	AggregateTaps bool
	// GlobalModsPropagation, when true, requests the legacy (pre-v0.5)
	// per-state saved-mods diffing. This implementation follows v0.5 and
	// does not act on this field; it is retained so a host can detect
	// that a user configuration still asks for the legacy behavior
	// (see SPEC_FULL.md Open Question 2).
	GlobalModsPropagation bool
}

// DefaultConfig returns the spec's documented defaults: T_TAP defaults to
// the host's own tapping term (callers should set TapTermMS to their
// keyboard's TAPPING_TERM), T_SEQUENCE to half of it, T_RELEASE to a
// quarter of it.
func DefaultConfig(tappingTermMS uint32) Config {
	return Config{
		TapTermMS:                  tappingTermMS,
		SequenceTermMS:             tappingTermMS / 2,
		ReleaseTermMS:              tappingTermMS / 4,
		SimultaneousPressesDelayMS: 0,
		AggregateTaps:              false,
		GlobalModsPropagation:      false,
	}
}

func (c Config) timeoutMS(which Timeout) uint32 {
	switch which {
	case TimeoutTap:
		return c.TapTermMS
	case TimeoutSequence:
		return c.SequenceTermMS
	case TimeoutRelease:
		return c.ReleaseTermMS
	default:
		return 0
	}
}

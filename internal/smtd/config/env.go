package config

import (
	"os"
	"strconv"
)

// ApplyEnv overlays SMTD_-prefixed environment variables onto m.Base,
// the last and highest-priority ambient layer before per-keycode
// overrides. Grounded on the teacher's loader.EnvLoader, specialized to
// this package's fixed field set instead of a generic dotted-path map.
func (m *Manager) ApplyEnv() {
	if v, ok := envUint32("SMTD_TAP_TERM_MS"); ok {
		m.Base.TapTermMS = v
	}
	if v, ok := envUint32("SMTD_SEQUENCE_TERM_MS"); ok {
		m.Base.SequenceTermMS = v
	}
	if v, ok := envUint32("SMTD_RELEASE_TERM_MS"); ok {
		m.Base.ReleaseTermMS = v
	}
	if v, ok := envUint32("SMTD_SIMULTANEOUS_PRESSES_DELAY_MS"); ok {
		m.Base.SimultaneousPressesDelayMS = v
	}
	if v, ok := envBool("SMTD_AGGREGATE_TAPS"); ok {
		m.Base.AggregateTaps = v
	}
	if v, ok := envBool("SMTD_GLOBAL_MODS_PROPAGATION"); ok {
		m.Base.GlobalModsPropagation = v
	}
}

func envUint32(key string) (uint32, bool) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

func envBool(key string) (bool, bool) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return false, false
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}
	return v, true
}

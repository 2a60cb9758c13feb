// Package config provides the layered configuration model SPEC_FULL.md
// adds over the core's minimal smtd.Config: defaults, a TOML file, SMTD_
// prefixed environment variables, and per-keycode overrides, merged in
// that priority order. Grounded on the teacher's internal/config/layer
// (layer priority/merge) and internal/config/loader (TOML/env loaders),
// specialized to this package's fixed, typed shape instead of keystorm's
// generic map[string]any settings tree.
package config

import (
	"github.com/dshills/smtd/internal/smtd"
	"github.com/dshills/smtd/internal/smtd/host"
	"github.com/dshills/smtd/internal/smtd/smtdtypes"
)

// Override holds the fields a per-keycode override may replace. A nil
// pointer leaves the base value untouched.
type Override struct {
	TapTermMS      *uint32
	SequenceTermMS *uint32
	ReleaseTermMS  *uint32
	AggregateTaps  *bool
}

// Manager merges a base smtd.Config with per-keycode Overrides and
// implements host.TimeoutOverrider and host.FeatureToggler, so a Core
// wired with a Manager-aware Host picks up overrides automatically without
// the core itself knowing about layering.
type Manager struct {
	Base      smtd.Config
	Overrides map[smtd.Keycode]Override
}

// NewManager creates a Manager with base as the fallback configuration and
// no overrides.
func NewManager(base smtd.Config) *Manager {
	return &Manager{Base: base, Overrides: make(map[smtd.Keycode]Override)}
}

// SetOverride installs or replaces the override for kc.
func (m *Manager) SetOverride(kc smtd.Keycode, o Override) {
	m.Overrides[kc] = o
}

// TimeoutFor implements host.TimeoutOverrider.
func (m *Manager) TimeoutFor(kc smtd.Keycode, which smtdtypes.Timeout) (uint32, bool) {
	o, ok := m.Overrides[kc]
	if !ok {
		return 0, false
	}
	switch which {
	case smtdtypes.TimeoutTap:
		if o.TapTermMS != nil {
			return *o.TapTermMS, true
		}
	case smtdtypes.TimeoutSequence:
		if o.SequenceTermMS != nil {
			return *o.SequenceTermMS, true
		}
	case smtdtypes.TimeoutRelease:
		if o.ReleaseTermMS != nil {
			return *o.ReleaseTermMS, true
		}
	}
	return 0, false
}

// FeatureEnabled implements host.FeatureToggler.
func (m *Manager) FeatureEnabled(kc smtd.Keycode, feature smtdtypes.Feature) (bool, bool) {
	o, ok := m.Overrides[kc]
	if !ok {
		return false, false
	}
	if feature == smtdtypes.FeatureAggregateTaps && o.AggregateTaps != nil {
		return *o.AggregateTaps, true
	}
	return false, false
}

var (
	_ host.TimeoutOverrider = (*Manager)(nil)
	_ host.FeatureToggler   = (*Manager)(nil)
)

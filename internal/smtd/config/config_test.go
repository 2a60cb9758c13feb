package config_test

import (
	"testing"

	"github.com/dshills/smtd/internal/smtd"
	"github.com/dshills/smtd/internal/smtd/config"
	"github.com/dshills/smtd/internal/smtd/smtdtypes"
)

func TestManagerTimeoutForFallsBackWhenNoOverride(t *testing.T) {
	m := config.NewManager(smtd.DefaultConfig(200))

	if _, ok := m.TimeoutFor(1, smtdtypes.TimeoutTap); ok {
		t.Fatalf("expected no override for an unbound keycode")
	}
}

func TestManagerTimeoutForUsesOverrideField(t *testing.T) {
	m := config.NewManager(smtd.DefaultConfig(200))
	tapTerm := uint32(500)
	m.SetOverride(7, config.Override{TapTermMS: &tapTerm})

	ms, ok := m.TimeoutFor(7, smtdtypes.TimeoutTap)
	if !ok || ms != 500 {
		t.Fatalf("TimeoutFor(7, Tap) = (%d, %v), want (500, true)", ms, ok)
	}

	if _, ok := m.TimeoutFor(7, smtdtypes.TimeoutSequence); ok {
		t.Fatalf("expected no sequence override when only TapTermMS was set")
	}
}

func TestManagerFeatureEnabledUsesOverride(t *testing.T) {
	m := config.NewManager(smtd.DefaultConfig(200))
	on := true
	m.SetOverride(3, config.Override{AggregateTaps: &on})

	enabled, ok := m.FeatureEnabled(3, smtdtypes.FeatureAggregateTaps)
	if !ok || !enabled {
		t.Fatalf("FeatureEnabled(3) = (%v, %v), want (true, true)", enabled, ok)
	}
}

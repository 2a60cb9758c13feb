package config_test

import (
	"testing"

	"github.com/dshills/smtd/internal/smtd"
	"github.com/dshills/smtd/internal/smtd/config"
)

func TestApplyEnvOverlaysOntoBase(t *testing.T) {
	t.Setenv("SMTD_TAP_TERM_MS", "321")
	t.Setenv("SMTD_AGGREGATE_TAPS", "true")

	m := config.NewManager(smtd.DefaultConfig(200))
	m.ApplyEnv()

	if m.Base.TapTermMS != 321 {
		t.Fatalf("TapTermMS = %d, want 321", m.Base.TapTermMS)
	}
	if !m.Base.AggregateTaps {
		t.Fatalf("AggregateTaps = false, want true")
	}
	if m.Base.SequenceTermMS != 100 {
		t.Fatalf("SequenceTermMS = %d, want unchanged base default 100", m.Base.SequenceTermMS)
	}
}

func TestApplyEnvIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("SMTD_TAP_TERM_MS", "not-a-number")

	base := smtd.DefaultConfig(200)
	m := config.NewManager(base)
	m.ApplyEnv()

	if m.Base.TapTermMS != base.TapTermMS {
		t.Fatalf("TapTermMS = %d, want unchanged %d", m.Base.TapTermMS, base.TapTermMS)
	}
}

package config_test

import (
	"testing"

	"github.com/dshills/smtd/internal/smtd"
	"github.com/dshills/smtd/internal/smtd/config"
	"github.com/dshills/smtd/internal/smtd/smtdtypes"
)

func TestParseFileMergesTimingAndBehavior(t *testing.T) {
	doc := []byte(`
[timing]
tap_term_ms = 250
sequence_term_ms = 80

[behavior]
aggregate_taps = true
`)
	m, err := config.ParseFile(doc, smtd.DefaultConfig(200))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	if m.Base.TapTermMS != 250 {
		t.Fatalf("TapTermMS = %d, want 250", m.Base.TapTermMS)
	}
	if m.Base.SequenceTermMS != 80 {
		t.Fatalf("SequenceTermMS = %d, want 80", m.Base.SequenceTermMS)
	}
	if m.Base.ReleaseTermMS != 50 {
		t.Fatalf("ReleaseTermMS = %d, want unchanged base default 50", m.Base.ReleaseTermMS)
	}
	if !m.Base.AggregateTaps {
		t.Fatalf("AggregateTaps = false, want true")
	}
}

func TestParseFileBuildsPerKeycodeOverrides(t *testing.T) {
	doc := []byte(`
[[overrides]]
keycode = 42
tap_term_ms = 999
`)
	m, err := config.ParseFile(doc, smtd.DefaultConfig(200))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	ms, ok := m.TimeoutFor(42, smtdtypes.TimeoutTap)
	if !ok || ms != 999 {
		t.Fatalf("TimeoutFor(42, Tap) = (%d, %v), want (999, true)", ms, ok)
	}
}

func TestLoadFileMissingPathReturnsBaseUnchanged(t *testing.T) {
	base := smtd.DefaultConfig(200)
	m, err := config.LoadFile("/nonexistent/smtd-config-does-not-exist.toml", base)
	if err != nil {
		t.Fatalf("LoadFile on missing path returned error: %v", err)
	}
	if m.Base != base {
		t.Fatalf("Base = %+v, want unchanged %+v", m.Base, base)
	}
}

package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/smtd/internal/smtd"
)

// fileDoc is the on-disk shape of a TOML config file, grounded on the
// teacher's loader.TOMLLoader.parse/toml.Unmarshal usage.
type fileDoc struct {
	Timing struct {
		TapTermMS                  uint32 `toml:"tap_term_ms"`
		SequenceTermMS             uint32 `toml:"sequence_term_ms"`
		ReleaseTermMS              uint32 `toml:"release_term_ms"`
		SimultaneousPressesDelayMS uint32 `toml:"simultaneous_presses_delay_ms"`
	} `toml:"timing"`

	Behavior struct {
		AggregateTaps         bool `toml:"aggregate_taps"`
		GlobalModsPropagation bool `toml:"global_mods_propagation"`
	} `toml:"behavior"`

	Overrides []struct {
		Keycode        uint16  `toml:"keycode"`
		TapTermMS      *uint32 `toml:"tap_term_ms"`
		SequenceTermMS *uint32 `toml:"sequence_term_ms"`
		ReleaseTermMS  *uint32 `toml:"release_term_ms"`
		AggregateTaps  *bool   `toml:"aggregate_taps"`
	} `toml:"overrides"`
}

// LoadFile parses a TOML file at path into base and applies it on top of
// base, returning the merged Manager. A missing file is not an error: it
// leaves base untouched, the same convention as TOMLLoader.Load.
func LoadFile(path string, base smtd.Config) (*Manager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewManager(base), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return ParseFile(data, base)
}

// ParseFile parses TOML bytes and merges them on top of base.
func ParseFile(data []byte, base smtd.Config) (*Manager, error) {
	var doc fileDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	merged := base
	if doc.Timing.TapTermMS != 0 {
		merged.TapTermMS = doc.Timing.TapTermMS
	}
	if doc.Timing.SequenceTermMS != 0 {
		merged.SequenceTermMS = doc.Timing.SequenceTermMS
	}
	if doc.Timing.ReleaseTermMS != 0 {
		merged.ReleaseTermMS = doc.Timing.ReleaseTermMS
	}
	if doc.Timing.SimultaneousPressesDelayMS != 0 {
		merged.SimultaneousPressesDelayMS = doc.Timing.SimultaneousPressesDelayMS
	}
	merged.AggregateTaps = doc.Behavior.AggregateTaps
	merged.GlobalModsPropagation = doc.Behavior.GlobalModsPropagation

	m := NewManager(merged)
	for _, o := range doc.Overrides {
		m.SetOverride(smtd.Keycode(o.Keycode), Override{
			TapTermMS:      o.TapTermMS,
			SequenceTermMS: o.SequenceTermMS,
			ReleaseTermMS:  o.ReleaseTermMS,
			AggregateTaps:  o.AggregateTaps,
		})
	}
	return m, nil
}

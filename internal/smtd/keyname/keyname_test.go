package keyname_test

import (
	"testing"

	"github.com/dshills/smtd/internal/smtd"
	"github.com/dshills/smtd/internal/smtd/keyname"
)

func newTestTable() *keyname.Table {
	return keyname.NewTable().Bind("a", 1).Bind("s", 2).Bind("f4", 3)
}

func TestParseBareKey(t *testing.T) {
	table := newTestTable()
	spec, err := keyname.Parse(table, "a")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if spec.Keycode != 1 || spec.Mods != 0 {
		t.Fatalf("spec = %+v, want {Keycode:1 Mods:0}", spec)
	}
}

func TestParsePlusStyleWithMultipleModifiers(t *testing.T) {
	table := newTestTable()
	spec, err := keyname.Parse(table, "Ctrl+Shift+F4")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if spec.Keycode != 3 {
		t.Fatalf("Keycode = %v, want 3", spec.Keycode)
	}
	if spec.Mods&smtd.ModCtrl == 0 || spec.Mods&smtd.ModShift == 0 {
		t.Fatalf("Mods = %v, want Ctrl|Shift", spec.Mods)
	}
}

func TestParseVimStyle(t *testing.T) {
	table := newTestTable()
	spec, err := keyname.Parse(table, "<C-a>")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if spec.Keycode != 1 || spec.Mods != smtd.ModCtrl {
		t.Fatalf("spec = %+v, want {Keycode:1 Mods:Ctrl}", spec)
	}
}

func TestParseUnknownModifierErrors(t *testing.T) {
	table := newTestTable()
	if _, err := keyname.Parse(table, "Hyper+a"); err == nil {
		t.Fatalf("expected an error for an unknown modifier")
	}
}

func TestParseUnknownKeyErrors(t *testing.T) {
	table := newTestTable()
	if _, err := keyname.Parse(table, "nosuchkey"); err == nil {
		t.Fatalf("expected an error for an unbound key name")
	}
}

func TestNameFallsBackToHexForUnboundKeycode(t *testing.T) {
	table := newTestTable()
	if got, want := table.Name(0x1234), "0x1234"; got != want {
		t.Fatalf("Name(0x1234) = %q, want %q", got, want)
	}
}

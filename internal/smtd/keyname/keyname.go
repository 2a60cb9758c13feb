// Package keyname parses human-written key specifications ("Ctrl+A",
// "<C-s>", "L1_KC3") into (modifiers, keycode) pairs a config file or demo
// host can bind a classifier to, adapted from the teacher's
// internal/input/key/parser.go modifier-and-vim-style grammar but
// retargeted at this domain's open-ended Keycode space: the teacher
// parses into a closed editor Key enum, we parse into a caller-supplied
// name Table since firmware keycodes have no fixed universe.
package keyname

import (
	"fmt"
	"strings"

	"github.com/dshills/smtd/internal/smtd"
)

// Spec is a parsed key specification.
type Spec struct {
	Mods    smtd.Mods
	Keycode smtd.Keycode
}

// Table maps between keycode names and values, the piece of the original
// teacher's closed KeyFromName/KeyToName pair that must be open here.
type Table struct {
	byName map[string]smtd.Keycode
	byCode map[smtd.Keycode]string
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{byName: make(map[string]smtd.Keycode), byCode: make(map[smtd.Keycode]string)}
}

// Bind registers name (case-insensitive) for keycode.
func (t *Table) Bind(name string, kc smtd.Keycode) *Table {
	t.byName[strings.ToLower(name)] = kc
	t.byCode[kc] = name
	return t
}

func (t *Table) lookup(name string) (smtd.Keycode, bool) {
	kc, ok := t.byName[strings.ToLower(name)]
	return kc, ok
}

// Name returns the bound name for kc, or its numeric form if unbound.
func (t *Table) Name(kc smtd.Keycode) string {
	if name, ok := t.byCode[kc]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", uint16(kc))
}

var modifierNames = map[string]smtd.Mods{
	"ctrl": smtd.ModCtrl, "control": smtd.ModCtrl, "c": smtd.ModCtrl,
	"shift": smtd.ModShift, "s": smtd.ModShift,
	"alt": smtd.ModAlt, "a": smtd.ModAlt, "opt": smtd.ModAlt, "option": smtd.ModAlt,
	"meta": smtd.ModMeta, "gui": smtd.ModMeta, "cmd": smtd.ModMeta, "super": smtd.ModMeta, "m": smtd.ModMeta, "d": smtd.ModMeta,
}

// Parse parses spec against table. Supports "Ctrl+A"/"Alt+Shift+F4" style
// and Vim-style "<C-a>"/"<C-S-p>", mirroring parser.go's two branches.
func Parse(table *Table, spec string) (Spec, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Spec{}, fmt.Errorf("keyname: empty key specification")
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(table, spec[1:len(spec)-1])
	}
	if strings.Contains(spec, "+") {
		return parsePlusStyle(table, spec)
	}
	return parseBare(table, spec)
}

func parseVimStyle(table *Table, inner string) (Spec, error) {
	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]

	var mods smtd.Mods
	for _, p := range parts[:len(parts)-1] {
		mod, ok := modifierNames[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			return Spec{}, fmt.Errorf("keyname: unknown modifier %q", p)
		}
		mods |= mod
	}
	return resolveKey(table, keyPart, mods)
}

func parsePlusStyle(table *Table, spec string) (Spec, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return Spec{}, fmt.Errorf("keyname: invalid key specification %q", spec)
	}

	var mods smtd.Mods
	for _, p := range parts[:len(parts)-1] {
		mod, ok := modifierNames[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			return Spec{}, fmt.Errorf("keyname: unknown modifier %q", p)
		}
		mods |= mod
	}
	return resolveKey(table, parts[len(parts)-1], mods)
}

func parseBare(table *Table, spec string) (Spec, error) {
	return resolveKey(table, spec, 0)
}

func resolveKey(table *Table, keyPart string, mods smtd.Mods) (Spec, error) {
	keyPart = strings.TrimSpace(keyPart)
	kc, ok := table.lookup(keyPart)
	if !ok {
		return Spec{}, fmt.Errorf("keyname: unknown key %q", keyPart)
	}
	return Spec{Mods: mods, Keycode: kc}, nil
}

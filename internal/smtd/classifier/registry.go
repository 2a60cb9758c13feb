package classifier

import "github.com/dshills/smtd/internal/smtd"

// Registry is a plain map-backed smtd.ClassifierLookup, replacing the
// original's single on_smtd_action switch statement (sm_td.h's
// CUSTOMIZATION MACROS usage in tests/test_mocks.c) with per-keycode
// registration, the way the teacher's input keymap registry binds handlers
// by key rather than switching on it inline.
type Registry struct {
	byKeycode map[smtd.Keycode]smtd.Classifier
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byKeycode: make(map[smtd.Keycode]smtd.Classifier)}
}

// Bind registers c as the classifier for kc, replacing any previous entry.
func (r *Registry) Bind(kc smtd.Keycode, c smtd.Classifier) *Registry {
	r.byKeycode[kc] = c
	return r
}

// Lookup implements smtd.ClassifierLookup.
func (r *Registry) Lookup(kc smtd.Keycode) smtd.Classifier {
	return r.byKeycode[kc]
}

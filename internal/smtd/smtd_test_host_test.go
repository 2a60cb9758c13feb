package smtd_test

import (
	"github.com/dshills/smtd/internal/smtd"
)

// fakeHost is a minimal recording smtd.Host for core tests: it tracks
// every host-facing call as a string so a test can assert on ordering
// without caring about incidental HID-register bookkeeping.
type fakeHost struct {
	keycodes map[smtd.KeyPos]smtd.Keycode
	layer    uint8
	mods     smtd.Mods
	calls    []string
}

func newFakeHost() *fakeHost {
	return &fakeHost{keycodes: make(map[smtd.KeyPos]smtd.Keycode)}
}

func (h *fakeHost) bind(pos smtd.KeyPos, kc smtd.Keycode) {
	h.keycodes[pos] = kc
}

func (h *fakeHost) CurrentKeycode(pos smtd.KeyPos) smtd.Keycode { return h.keycodes[pos] }

func (h *fakeHost) HighestActiveLayer() uint8 { return h.layer }

func (h *fakeHost) MoveToLayer(layer uint8) {
	h.layer = layer
	h.calls = append(h.calls, "layer")
}

func (h *fakeHost) GetMods() smtd.Mods { return h.mods }

func (h *fakeHost) SetMods(m smtd.Mods) { h.mods = m }

func (h *fakeHost) RegisterMods(m smtd.Mods) {
	h.mods |= m
	h.calls = append(h.calls, "mods+")
}

func (h *fakeHost) UnregisterMods(m smtd.Mods) {
	h.mods &^= m
	h.calls = append(h.calls, "mods-")
}

func (h *fakeHost) SendReport() {}

func (h *fakeHost) TapCode16(kc smtd.Keycode) { h.calls = append(h.calls, "tap") }

func (h *fakeHost) RegisterCode16(kc smtd.Keycode) { h.calls = append(h.calls, "down") }

func (h *fakeHost) UnregisterCode16(kc smtd.Keycode) { h.calls = append(h.calls, "up") }

func (h *fakeHost) EmitRaw(ev smtd.KeyEvent) {
	if ev.Pressed {
		h.calls = append(h.calls, "raw-press")
	} else {
		h.calls = append(h.calls, "raw-release")
	}
}

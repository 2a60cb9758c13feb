package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/smtd/internal/smtd"
	"github.com/dshills/smtd/internal/smtd/config"
	"github.com/dshills/smtd/internal/smtd/diag"
	"github.com/dshills/smtd/internal/smtd/host"
)

// releaseDebounceMS is how long terminalHost waits after the most recent
// repeat of a key before declaring it released. A terminal's OS key-repeat
// interval is comfortably under this, so a held key keeps extending its
// own debounce window; a genuinely released key falls silent and times out.
const releaseDebounceMS = 120

type keyTable struct {
	byName  map[string]smtd.Keycode
	names   map[smtd.Keycode]string
	posByKc map[smtd.Keycode]smtd.KeyPos
}

func newKeyTable() *keyTable {
	return &keyTable{
		byName:  make(map[string]smtd.Keycode),
		names:   make(map[smtd.Keycode]string),
		posByKc: make(map[smtd.Keycode]smtd.KeyPos),
	}
}

func (t *keyTable) bind(name string, kc smtd.Keycode, col uint8) {
	t.byName[name] = kc
	t.names[kc] = name
	t.posByKc[kc] = smtd.KeyPos{Row: 0, Col: col}
}

func (t *keyTable) mustLookup(name string) smtd.Keycode {
	kc, ok := t.byName[name]
	if !ok {
		panic("smtdemo: unbound demo key " + name)
	}
	return kc
}

func defaultKeyTable() *keyTable {
	t := newKeyTable()
	var col uint8
	for r := 'a'; r <= 'z'; r++ {
		t.bind(string(r), smtd.Keycode(r), col)
		col++
	}
	t.bind("escape", smtd.Keycode(0x1000), col)
	col++
	t.bind("enter", smtd.Keycode(0x1001), col)
	return t
}

func tcellEventKeycode(e *tcell.EventKey, t *keyTable) (smtd.Keycode, bool) {
	switch e.Key() {
	case tcell.KeyEscape:
		return t.byName["escape"], true
	case tcell.KeyEnter:
		return t.byName["enter"], true
	case tcell.KeyRune:
		r := e.Rune()
		if r >= 'A' && r <= 'Z' {
			r = r - 'A' + 'a'
		}
		kc, ok := t.byName[string(r)]
		return kc, ok
	default:
		return 0, false
	}
}

type pendingRelease struct {
	tok host.Token
}

// firing is one scheduled callback waiting to run on the main loop
// goroutine, carrying a cancellation flag set by Cancel so a timer that
// fires after being cancelled is a no-op instead of running stale.
type firing struct {
	tok       host.Token
	cb        func()
	cancelled *bool
}

// terminalHost implements smtd.Host, host.Clock and host.Timer together
// for the demo, the way a real keyboard firmware's single board support
// file wires all three at once. Grounded on
// internal/renderer/backend/terminal.go's tcell.Screen ownership.
//
// The core's design assumes every classifier call, stage transition, and
// timer callback runs on one cooperative thread (spec section 5). A
// terminal's repeated-keydown-only event stream and Go's time.AfterFunc
// both want to fire on their own goroutine, so instead of calling the
// core directly from those goroutines, every fire (key-repeat debounce or
// a core-scheduled timeout) is funneled through fireCh and replayed by
// run()'s single event loop — the same role a real firmware's scan loop
// plays when it drains its own deferred-exec queue between matrix scans.
type terminalHost struct {
	screen    tcell.Screen
	table     *keyTable
	core      *smtd.Core
	log       *diag.Logger
	fireCh    chan firing
	overrides *config.Manager

	mods  smtd.Mods
	layer uint8
	start time.Time

	releases map[smtd.KeyPos]*pendingRelease
	nextTok  host.Token
	live     map[host.Token]*bool
}

// newTerminalHost creates a terminalHost. mgr supplies the per-keycode
// timeout/feature overrides loaded from --config and SMTD_ env vars
// (config.Manager implements host.TimeoutOverrider/host.FeatureToggler);
// terminalHost delegates to it below so those overrides actually reach
// the core instead of being parsed and discarded.
func newTerminalHost(screen tcell.Screen, table *keyTable, log *diag.Logger, mgr *config.Manager) *terminalHost {
	return &terminalHost{
		screen:    screen,
		table:     table,
		log:       log,
		start:     time.Now(),
		fireCh:    make(chan firing, 16),
		overrides: mgr,
		releases:  make(map[smtd.KeyPos]*pendingRelease),
		live:      make(map[host.Token]*bool),
	}
}

// handleKeyEvent turns one tcell key event (press-or-repeat, no release)
// into a press followed by a debounced release, per the package doc.
// Always called from run()'s single event-loop goroutine.
func (h *terminalHost) handleKeyEvent(e *tcell.EventKey, table *keyTable) {
	kc, ok := tcellEventKeycode(e, table)
	if !ok {
		return
	}
	pos := table.posByKc[kc]

	if pending, down := h.releases[pos]; down {
		h.Cancel(pending.tok)
	} else {
		h.core.Process(kc, smtd.KeyEvent{Key: pos, Pressed: true})
	}

	tok := h.Defer(releaseDebounceMS, func() {
		delete(h.releases, pos)
		h.core.Process(kc, smtd.KeyEvent{Key: pos, Pressed: false})
	})
	h.releases[pos] = &pendingRelease{tok: tok}
}

// runFiring executes a firing received off fireCh, unless it was
// cancelled after being queued. Called only from run()'s event loop.
func runFiring(f firing) {
	if !*f.cancelled {
		f.cb()
	}
}

// --- smtd/host.Host ---

func (h *terminalHost) CurrentKeycode(pos smtd.KeyPos) smtd.Keycode {
	for kc, p := range h.table.posByKc {
		if p == pos {
			return kc
		}
	}
	return 0
}

func (h *terminalHost) HighestActiveLayer() uint8 { return h.layer }

func (h *terminalHost) MoveToLayer(layer uint8) {
	h.layer = layer
	h.logf("layer -> %d", layer)
}

func (h *terminalHost) GetMods() smtd.Mods { return h.mods }

func (h *terminalHost) SetMods(m smtd.Mods) { h.mods = m }

func (h *terminalHost) RegisterMods(m smtd.Mods) {
	h.mods |= m
	h.logf("mods +%v", m)
}

func (h *terminalHost) UnregisterMods(m smtd.Mods) {
	h.mods &^= m
	h.logf("mods -%v", m)
}

func (h *terminalHost) SendReport() {}

func (h *terminalHost) TapCode16(kc smtd.Keycode) {
	h.logf("tap %s", h.table.names[kc])
}

func (h *terminalHost) RegisterCode16(kc smtd.Keycode) {
	h.logf("down %s", h.table.names[kc])
}

func (h *terminalHost) UnregisterCode16(kc smtd.Keycode) {
	h.logf("up %s", h.table.names[kc])
}

func (h *terminalHost) EmitRaw(ev smtd.KeyEvent) {
	action := "release"
	if ev.Pressed {
		action = "press"
	}
	h.logf("raw %s row=%d col=%d", action, ev.Key.Row, ev.Key.Col)
}

func (h *terminalHost) logf(format string, args ...any) {
	h.log.Info(format, args...)
}

// --- host.TimeoutOverrider / host.FeatureToggler ---
//
// The core type-asserts the concrete Host it was given against these
// interfaces; terminalHost delegates to the Manager loaded from --config
// and SMTD_ env vars so those overrides actually reach the core instead of
// being parsed and then discarded.

func (h *terminalHost) TimeoutFor(kc smtd.Keycode, which smtd.Timeout) (uint32, bool) {
	if h.overrides == nil {
		return 0, false
	}
	return h.overrides.TimeoutFor(kc, which)
}

func (h *terminalHost) FeatureEnabled(kc smtd.Keycode, feature smtd.Feature) (bool, bool) {
	if h.overrides == nil {
		return false, false
	}
	return h.overrides.FeatureEnabled(kc, feature)
}

// --- host.Clock ---

func (h *terminalHost) NowMS() uint32 {
	return uint32(time.Since(h.start).Milliseconds())
}

func (h *terminalHost) ElapsedMS(since uint32) uint32 {
	return h.NowMS() - since
}

// --- host.Timer ---
//
// Defer/Cancel are always called from run()'s single goroutine (the core
// only schedules timers from inside Core.Process, which that goroutine
// drives). The time.AfterFunc callback itself runs on its own goroutine,
// but it does nothing besides post to fireCh; the actual callback body
// only ever executes inside runFiring, back on the single event-loop
// goroutine.
func (h *terminalHost) Defer(delayMS uint32, cb func()) host.Token {
	h.nextTok++
	tok := h.nextTok

	cancelled := new(bool)
	h.live[tok] = cancelled

	time.AfterFunc(time.Duration(delayMS)*time.Millisecond, func() {
		h.fireCh <- firing{tok: tok, cb: cb, cancelled: cancelled}
	})
	return tok
}

func (h *terminalHost) Cancel(tok host.Token) {
	if cancelled, ok := h.live[tok]; ok {
		*cancelled = true
		delete(h.live, tok)
	}
}

var (
	_ host.Host             = (*terminalHost)(nil)
	_ host.Clock            = (*terminalHost)(nil)
	_ host.Timer            = (*terminalHost)(nil)
	_ host.TimeoutOverrider = (*terminalHost)(nil)
	_ host.FeatureToggler   = (*terminalHost)(nil)
)

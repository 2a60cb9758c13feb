// Package faketime provides a deterministic, manually-driven Clock and
// Timer for tests, replacing the original's mock_qmk_deferred_exec.h /
// tests/test_mocks.c harness (timer_read32 pinned at 0, defer_exec/
// cancel_deferred_exec backed by a flat array, and TEST_execute_deferred
// firing a callback on demand) with an ordinary Go type a test can step by
// hand instead of sleeping.
package faketime

import (
	"sort"

	"github.com/dshills/smtd/internal/smtd/host"
)

// Clock is a manually-advanced millisecond clock.
type Clock struct {
	now uint32
}

// NewClock creates a Clock starting at t0.
func NewClock(t0 uint32) *Clock {
	return &Clock{now: t0}
}

// NowMS implements host.Clock.
func (c *Clock) NowMS() uint32 { return c.now }

// ElapsedMS implements host.Clock.
func (c *Clock) ElapsedMS(since uint32) uint32 { return c.now - since }

// Advance moves the clock forward by ms milliseconds. It does not fire any
// timers on its own; Timer.Advance advances the clock and fires due timers
// together, keeping both in lockstep.
func (c *Clock) Advance(ms uint32) { c.now += ms }

// Set pins the clock to an absolute time.
func (c *Clock) Set(t uint32) { c.now = t }

type scheduled struct {
	token  host.Token
	fireAt uint32
	cb     func()
	active bool
}

// Timer is a deterministic Timer: callbacks never fire on their own. A test
// drives them explicitly with Advance (fires everything due by the clock's
// new time) or Fire (fires one token regardless of its due time), mirroring
// TEST_execute_deferred's explicit-trigger model.
type Timer struct {
	clock   *Clock
	next    host.Token
	pending map[host.Token]*scheduled
}

// NewTimer creates a Timer driven by clock.
func NewTimer(clock *Clock) *Timer {
	return &Timer{clock: clock, pending: make(map[host.Token]*scheduled)}
}

// Defer implements host.Timer.
func (t *Timer) Defer(delayMS uint32, cb func()) host.Token {
	t.next++
	tok := t.next
	t.pending[tok] = &scheduled{token: tok, fireAt: t.clock.NowMS() + delayMS, cb: cb, active: true}
	return tok
}

// Cancel implements host.Timer.
func (t *Timer) Cancel(tok host.Token) {
	if tok == host.InvalidToken {
		return
	}
	if s, ok := t.pending[tok]; ok {
		s.active = false
	}
}

// Pending reports how many scheduled callbacks have not yet fired or been
// cancelled.
func (t *Timer) Pending() int {
	n := 0
	for _, s := range t.pending {
		if s.active {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by ms and fires, in fireAt order, every
// active callback now due. A callback that reschedules another timer during
// its own firing is picked up by a subsequent Advance/Fire call, never by
// this one, matching how a real deferred-exec service would behave.
func (t *Timer) Advance(ms uint32) {
	t.clock.Advance(ms)
	t.fireDueBy(t.clock.NowMS())
}

// Fire runs tok's callback immediately regardless of its due time, then
// deactivates it, mirroring TEST_execute_deferred.
func (t *Timer) Fire(tok host.Token) {
	s, ok := t.pending[tok]
	if !ok || !s.active {
		return
	}
	s.active = false
	s.cb()
}

func (t *Timer) fireDueBy(now uint32) {
	var due []*scheduled
	for _, s := range t.pending {
		if s.active && s.fireAt <= now {
			due = append(due, s)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].fireAt < due[j].fireAt })
	for _, s := range due {
		if !s.active {
			continue
		}
		s.active = false
		s.cb()
	}
}

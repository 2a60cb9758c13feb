package faketime_test

import (
	"testing"

	"github.com/dshills/smtd/internal/smtd/host"
	"github.com/dshills/smtd/internal/smtd/host/faketime"
)

func TestAdvanceFiresDueCallbacksInOrder(t *testing.T) {
	clock := faketime.NewClock(0)
	timer := faketime.NewTimer(clock)

	var order []string
	timer.Defer(50, func() { order = append(order, "fifty") })
	timer.Defer(20, func() { order = append(order, "twenty") })

	timer.Advance(30)
	if want := []string{"twenty"}; !equalStrings(order, want) {
		t.Fatalf("order after Advance(30) = %v, want %v", order, want)
	}

	timer.Advance(30)
	if want := []string{"twenty", "fifty"}; !equalStrings(order, want) {
		t.Fatalf("order after Advance(60) total = %v, want %v", order, want)
	}
}

func TestCancelPreventsCallback(t *testing.T) {
	clock := faketime.NewClock(0)
	timer := faketime.NewTimer(clock)

	fired := false
	tok := timer.Defer(10, func() { fired = true })
	timer.Cancel(tok)
	timer.Advance(20)

	if fired {
		t.Fatalf("cancelled callback fired")
	}
	if timer.Pending() != 0 {
		t.Fatalf("Pending() = %d, want 0 after cancel", timer.Pending())
	}
}

func TestCancelOfInvalidTokenIsNoOp(t *testing.T) {
	clock := faketime.NewClock(0)
	timer := faketime.NewTimer(clock)
	timer.Cancel(host.InvalidToken) // must not panic
}

func TestFireRunsRegardlessOfDueTime(t *testing.T) {
	clock := faketime.NewClock(0)
	timer := faketime.NewTimer(clock)

	fired := false
	tok := timer.Defer(10_000, func() { fired = true })
	timer.Fire(tok)

	if !fired {
		t.Fatalf("Fire did not run the callback")
	}
	if timer.Pending() != 0 {
		t.Fatalf("Pending() = %d, want 0 after Fire", timer.Pending())
	}
}

func TestElapsedMSReflectsManualAdvance(t *testing.T) {
	clock := faketime.NewClock(100)
	clock.Advance(30)
	if got := clock.ElapsedMS(100); got != 30 {
		t.Fatalf("ElapsedMS(100) = %d, want 30", got)
	}
}

func equalStrings(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

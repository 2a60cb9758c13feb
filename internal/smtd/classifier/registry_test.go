package classifier_test

import (
	"testing"

	"github.com/dshills/smtd/internal/smtd"
	"github.com/dshills/smtd/internal/smtd/classifier"
)

func TestRegistryLookupReturnsNilForUnbound(t *testing.T) {
	reg := classifier.NewRegistry()
	if got := reg.Lookup(42); got != nil {
		t.Fatalf("Lookup(unbound) = %v, want nil", got)
	}
}

func TestRegistryBindIsChainableAndOverwrites(t *testing.T) {
	reg := classifier.NewRegistry()
	first := smtd.ClassifierFunc(func(smtd.Keycode, smtd.Action, int) smtd.Resolution {
		return smtd.ResolutionDetermined
	})
	second := smtd.ClassifierFunc(func(smtd.Keycode, smtd.Action, int) smtd.Resolution {
		return smtd.ResolutionUnhandled
	})

	got := reg.Bind(5, first).Bind(5, second)
	if got != reg {
		t.Fatalf("Bind did not return the receiver for chaining")
	}

	res := reg.Lookup(5).OnAction(5, smtd.ActionTouch, 0)
	if res != smtd.ResolutionUnhandled {
		t.Fatalf("Lookup(5) resolved %v, want the second bound classifier's Unhandled", res)
	}
}

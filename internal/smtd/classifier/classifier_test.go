package classifier_test

import (
	"reflect"
	"testing"

	"github.com/dshills/smtd/internal/smtd"
	"github.com/dshills/smtd/internal/smtd/classifier"
)

type recordingHost struct {
	layer uint8
	mods  smtd.Mods
	calls []string
}

func (h *recordingHost) CurrentKeycode(smtd.KeyPos) smtd.Keycode { return 0 }
func (h *recordingHost) HighestActiveLayer() uint8               { return h.layer }
func (h *recordingHost) MoveToLayer(layer uint8) {
	h.layer = layer
	h.calls = append(h.calls, "layer")
}
func (h *recordingHost) GetMods() smtd.Mods   { return h.mods }
func (h *recordingHost) SetMods(m smtd.Mods)  { h.mods = m }
func (h *recordingHost) RegisterMods(m smtd.Mods) {
	h.mods |= m
	h.calls = append(h.calls, "mods+")
}
func (h *recordingHost) UnregisterMods(m smtd.Mods) {
	h.mods &^= m
	h.calls = append(h.calls, "mods-")
}
func (h *recordingHost) SendReport()                  { h.calls = append(h.calls, "report") }
func (h *recordingHost) TapCode16(smtd.Keycode)        { h.calls = append(h.calls, "tap") }
func (h *recordingHost) RegisterCode16(smtd.Keycode)   { h.calls = append(h.calls, "down") }
func (h *recordingHost) UnregisterCode16(smtd.Keycode) { h.calls = append(h.calls, "up") }
func (h *recordingHost) EmitRaw(smtd.KeyEvent)         {}

func TestModTapBelowThresholdUsesPlainModifier(t *testing.T) {
	h := &recordingHost{}
	c := classifier.ModTap(h, 1, smtd.ModShift, 2)

	c.OnAction(1, smtd.ActionTouch, 0)
	if res := c.OnAction(1, smtd.ActionHold, 0); res != smtd.ResolutionDetermined {
		t.Fatalf("Hold resolution = %v, want Determined", res)
	}
	c.OnAction(1, smtd.ActionRelease, 0)

	want := []string{"mods+", "report", "mods-", "report"}
	if !reflect.DeepEqual(h.calls, want) {
		t.Fatalf("calls = %v, want %v", h.calls, want)
	}
}

func TestModTapAtThresholdRepeatsTapKeycode(t *testing.T) {
	h := &recordingHost{}
	c := classifier.ModTap(h, 1, smtd.ModShift, 1)

	c.OnAction(1, smtd.ActionHold, 1)
	c.OnAction(1, smtd.ActionRelease, 1)

	want := []string{"down", "up", "report"}
	if !reflect.DeepEqual(h.calls, want) {
		t.Fatalf("calls = %v, want %v", h.calls, want)
	}
}

func TestEagerModTapRegistersOnTouchAndSwapsOnTap(t *testing.T) {
	h := &recordingHost{}
	c := classifier.EagerModTap(h, 1, smtd.ModCtrl, 1)

	c.OnAction(1, smtd.ActionTouch, 0)
	c.OnAction(1, smtd.ActionTap, 0)

	want := []string{"mods+", "report", "mods-", "tap"}
	if !reflect.DeepEqual(h.calls, want) {
		t.Fatalf("calls = %v, want %v", h.calls, want)
	}
	if h.mods != 0 {
		t.Fatalf("mods left set after tap: %v", h.mods)
	}
}

func TestLayerTapPushesAndRestoresOnlyOnceNested(t *testing.T) {
	h := &recordingHost{layer: 0}
	layers := classifier.NewLayerStack(h)
	outer := classifier.LayerTap(h, layers, 1, 1, 1)
	inner := classifier.LayerTap(h, layers, 2, 2, 1)

	outer.OnAction(1, smtd.ActionHold, 0)
	if h.layer != 1 {
		t.Fatalf("layer after outer hold = %d, want 1", h.layer)
	}
	inner.OnAction(2, smtd.ActionHold, 0)
	if h.layer != 2 {
		t.Fatalf("layer after inner hold = %d, want 2", h.layer)
	}

	inner.OnAction(2, smtd.ActionRelease, 0)
	if h.layer != 2 {
		t.Fatalf("layer restored too early after inner release: %d", h.layer)
	}
	outer.OnAction(1, smtd.ActionRelease, 0)
	if h.layer != 0 {
		t.Fatalf("layer after both released = %d, want 0 (original)", h.layer)
	}
}

func TestAllTemplatesReturnUncertainOnTouch(t *testing.T) {
	h := &recordingHost{}
	layers := classifier.NewLayerStack(h)

	templates := map[string]smtd.Classifier{
		"ModTap":          classifier.ModTap(h, 1, smtd.ModShift, 1),
		"EagerModTap":     classifier.EagerModTap(h, 1, smtd.ModCtrl, 1),
		"LayerTap":        classifier.LayerTap(h, layers, 1, 1, 1),
		"TapDance2":       classifier.TapDance2(h, 1, 2, 1),
		"MultiTapKey":     classifier.MultiTapKey(h, 9, 2),
		"MultiTapToLayer": classifier.MultiTapToLayer(h, 3, 2),
	}

	for name, c := range templates {
		h.calls = nil
		if res := c.OnAction(1, smtd.ActionTouch, 0); res != smtd.ResolutionUncertain {
			t.Fatalf("%s: Touch resolution = %v, want Uncertain", name, res)
		}
	}
}

func TestMultiTapToLayerOnlyFiresAtThreshold(t *testing.T) {
	h := &recordingHost{layer: 0}
	c := classifier.MultiTapToLayer(h, 3, 2)

	c.OnAction(9, smtd.ActionTouch, 0)
	c.OnAction(9, smtd.ActionTouch, 1)
	if h.layer != 0 {
		t.Fatalf("layer changed below threshold: %d", h.layer)
	}
	if res := c.OnAction(9, smtd.ActionTouch, 2); res != smtd.ResolutionUncertain {
		t.Fatalf("Touch resolution = %v, want Uncertain", res)
	}
	if h.layer != 3 {
		t.Fatalf("layer = %d, want 3 at threshold", h.layer)
	}
}

func TestMultiTapKeyOnlyFiresAtThreshold(t *testing.T) {
	h := &recordingHost{}
	c := classifier.MultiTapKey(h, 9, 2)

	c.OnAction(9, smtd.ActionTouch, 0)
	c.OnAction(9, smtd.ActionTouch, 1)
	if len(h.calls) != 0 {
		t.Fatalf("expected no calls below threshold, got %v", h.calls)
	}
	c.OnAction(9, smtd.ActionTouch, 2)
	if !reflect.DeepEqual(h.calls, []string{"tap"}) {
		t.Fatalf("calls = %v, want [tap]", h.calls)
	}
}

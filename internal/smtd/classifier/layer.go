// Package classifier provides the ready-made Classifier constructors the
// original offered as preprocessor macros (SMTD_MT/MTE/LT/TD/TK/TTO and the
// LAYER_PUSH/LAYER_RESTORE pair), ported to ordinary Go closures. Each
// constructor returns an smtd.Classifier built around the same touch/tap/
// hold/release case analysis the macros expanded to, grounded on
// sm_td.h:1061-1226.
package classifier

import (
	"github.com/dshills/smtd/internal/smtd/host"
)

const returnLayerNotSet = 13

// LayerStack replaces the original's return_layer/return_layer_cnt globals:
// nested layer-tap holds push onto it and restore the layer that was active
// before the first push, once the last one releases.
type LayerStack struct {
	h         host.Host
	returnTo  uint8
	set       bool
	pushCount int
}

// NewLayerStack creates a LayerStack bound to a host.
func NewLayerStack(h host.Host) *LayerStack {
	return &LayerStack{h: h, returnTo: returnLayerNotSet}
}

// Push moves to layer, remembering the previously active layer the first
// time Push is called without a matching Restore.
func (l *LayerStack) Push(layer uint8) {
	l.pushCount++
	if !l.set {
		l.returnTo = l.h.HighestActiveLayer()
		l.set = true
	}
	l.h.MoveToLayer(layer)
}

// Restore undoes the most recent unmatched Push, moving back to the
// remembered layer only once every nested push has been restored.
func (l *LayerStack) Restore() {
	if l.pushCount == 0 {
		return
	}
	l.pushCount--
	if l.pushCount == 0 {
		l.h.MoveToLayer(l.returnTo)
		l.set = false
		l.returnTo = returnLayerNotSet
	}
}

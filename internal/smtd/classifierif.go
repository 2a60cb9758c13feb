package smtd

// Classifier is the user-provided per-keycode decision function. Side
// effects (registering mods, pushing layers, tapping codes) happen inside
// OnAction; the returned Resolution tells the core whether the action is
// fully handled or should fall through to raw key emission.
type Classifier interface {
	OnAction(kc Keycode, action Action, tapCount int) Resolution
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(kc Keycode, action Action, tapCount int) Resolution

// OnAction implements Classifier.
func (f ClassifierFunc) OnAction(kc Keycode, action Action, tapCount int) Resolution {
	return f(kc, action, tapCount)
}

// ClassifierLookup resolves a keycode to the classifier responsible for it.
// A nil return means "no classifier registered" and is treated the same as
// a classifier that always returns ResolutionUnhandled.
type ClassifierLookup interface {
	Lookup(kc Keycode) Classifier
}

// ClassifierLookupFunc adapts a plain function to ClassifierLookup.
type ClassifierLookupFunc func(kc Keycode) Classifier

// Lookup implements ClassifierLookup.
func (f ClassifierLookupFunc) Lookup(kc Keycode) Classifier { return f(kc) }

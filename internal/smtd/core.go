package smtd

import (
	"github.com/dshills/smtd/internal/smtd/diag"
	"github.com/dshills/smtd/internal/smtd/host"
)

// Core is the coordinator that owns the state pool, the active stack, and
// the bypass flag, and wires the host, clock, timer, classifier lookup,
// and diagnostics together. It is the single entry point a firmware scan
// loop calls into, mirroring the teacher's dispatcher.Dispatcher shape
// (a struct holding subsystem interfaces plus SetX/X() accessors).
type Core struct {
	host       host.Host
	clock      host.Clock
	timer      host.Timer
	classifier ClassifierLookup
	config     Config
	log        *diag.Logger
	metrics    *diag.Metrics

	pool    *pool
	active  *stack
	bypass  bool
}

// New creates a Core. log and metrics may be nil, in which case discarding
// defaults are installed.
func New(h host.Host, clock host.Clock, timer host.Timer, classifier ClassifierLookup, cfg Config, log *diag.Logger, metrics *diag.Metrics) *Core {
	if log == nil {
		log = diag.NewDiscard()
	}
	if metrics == nil {
		metrics = diag.NewMetrics()
	}
	return &Core{
		host:       h,
		clock:      clock,
		timer:      timer,
		classifier: classifier,
		config:     cfg,
		log:        log,
		metrics:    metrics,
		pool:       newPool(),
		active:     newStack(),
	}
}

// Process is the entry point for every host key event. It returns true iff
// the host should continue handling the event itself (the core is
// bypassed), false iff the core consumed the event.
func (c *Core) Process(pressedKeycode Keycode, ev KeyEvent) bool {
	return c.processDesired(pressedKeycode, ev, 0)
}

// ProcessDesired behaves like Process but lets a caller redirect the event
// to a specific desired keycode (used when another layer of lookup already
// decided what this key should mean).
func (c *Core) ProcessDesired(pressedKeycode Keycode, ev KeyEvent, desired Keycode) bool {
	return c.processDesired(pressedKeycode, ev, desired)
}

func (c *Core) processDesired(pressedKeycode Keycode, ev KeyEvent, desired Keycode) bool {
	if c.bypass {
		c.log.Debug("bypass active, passthrough key=%v pressed=%v", ev.Key, ev.Pressed)
		return true
	}

	c.log.Debug("GOT KEY %v pressed=%v kc=%v", ev.Key, ev.Pressed, pressedKeycode)
	c.applyToStack(0, pressedKeycode, ev, desired)
	return false
}

func (c *Core) timeoutFor(state *State, which Timeout) uint32 {
	if over, ok := c.host.(host.TimeoutOverrider); ok {
		if ms, ok := over.TimeoutFor(state.desiredKeycode, which); ok {
			return ms
		}
	}
	return c.config.timeoutMS(which)
}

func (c *Core) featureEnabled(state *State, feature Feature) bool {
	if tog, ok := c.host.(host.FeatureToggler); ok {
		if enabled, ok := tog.FeatureEnabled(state.desiredKeycode, feature); ok {
			return enabled
		}
	}
	switch feature {
	case FeatureAggregateTaps:
		return c.config.AggregateTaps
	default:
		return false
	}
}

func (c *Core) currentKeycode(pos KeyPos) Keycode {
	return c.host.CurrentKeycode(pos)
}

func (c *Core) classifierFor(kc Keycode) Classifier {
	if c.classifier == nil {
		return nil
	}
	return c.classifier.Lookup(kc)
}

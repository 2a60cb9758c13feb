package smtd

import "github.com/dshills/smtd/internal/smtd/host"

// State is the per-key record tracked by the core while a physical key is
// non-idle. All fields are unexported, so only code inside package smtd
// (stage controller, active stack, router, transition table, dispatcher)
// mutates them; idx is mutated only by the active stack.
type State struct {
	pressedKeyPos   KeyPos
	pressedKeycode  Keycode
	desiredKeycode  Keycode
	tapCount        int
	pressedTimeMS   uint32
	releasedTimeMS  uint32
	timerToken      host.Token
	stage           Stage
	resolution      Resolution
	actionRequired  Action
	hasActionReq    bool
	idx             int
}

// reset restores a state to its pool-free defaults.
func (s *State) reset() {
	*s = State{
		timerToken: host.InvalidToken,
		stage:      StageNone,
		resolution: ResolutionUncertain,
	}
}

// PressedKeyPos returns the physical key position this state tracks.
func (s *State) PressedKeyPos() KeyPos { return s.pressedKeyPos }

// Stage returns the state's current stage.
func (s *State) Stage() Stage { return s.stage }

// Resolution returns the highest resolution reached so far.
func (s *State) Resolution() Resolution { return s.resolution }

// TapCount returns the number of completed same-key taps observed before
// this press.
func (s *State) TapCount() int { return s.tapCount }

// Idx returns the state's current position in the active stack.
func (s *State) Idx() int { return s.idx }

// pool is a fixed-size collection of state slots. A slot is free iff its
// stage is StageNone. No slot is ever allocated or freed dynamically.
const poolSize = 10

type pool struct {
	slots [poolSize]State
}

func newPool() *pool {
	p := &pool{}
	for i := range p.slots {
		p.slots[i].reset()
	}
	return p
}

// acquire returns the first free slot, or nil if the pool is exhausted.
func (p *pool) acquire() *State {
	for i := range p.slots {
		if p.slots[i].stage == StageNone {
			return &p.slots[i]
		}
	}
	return nil
}

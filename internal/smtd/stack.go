package smtd

// stack is the ordered, append-only-on-entry list of pointers to the
// currently non-idle states, in press order (oldest first). Length never
// exceeds poolSize. Removal happens only via detach, which compacts the
// slice and renumbers the idx of every later state — attach and detach
// are the only places idx is mutated, per invariant I2.
type stack struct {
	states []*State
}

func newStack() *stack {
	return &stack{states: make([]*State, 0, poolSize)}
}

func (s *stack) len() int { return len(s.states) }

func (s *stack) at(i int) *State { return s.states[i] }

// attach appends state to the end of the stack and assigns its idx.
func (s *stack) attach(state *State) {
	state.idx = len(s.states)
	s.states = append(s.states, state)
}

// detach removes state from the stack, wherever it is, compacting the
// slice and decrementing the idx of every state that was after it.
func (s *stack) detach(state *State) {
	i := state.idx
	copy(s.states[i:], s.states[i+1:])
	s.states = s.states[:len(s.states)-1]
	for j := i; j < len(s.states); j++ {
		s.states[j].idx = j
	}
}

// isTop reports whether state is the last (most recently pressed) entry.
func (s *stack) isTop(state *State) bool {
	return state.idx == len(s.states)-1
}

// isFollowingKey reports whether there exists a state later in the stack
// than `from` whose pressed key position matches ev.Key (and whose pressed
// or desired keycode matches kc). This distinguishes "a key pressed after
// me was released" from "some older key was released".
func (s *stack) isFollowingKey(from int, kc Keycode, ev KeyEvent) bool {
	for i := from + 1; i < len(s.states); i++ {
		st := s.states[i]
		if st.pressedKeyPos == ev.Key && (kc == st.pressedKeycode || kc == st.desiredKeycode) {
			return true
		}
	}
	return false
}

package smtd

// Each timeout callback re-checks the stage it expects to find the state
// in before acting. A Timer implementation is expected to honor Cancel
// reliably, but per the Design Notes a callback that fires after its
// originating stage has already changed must still no-op rather than
// corrupt state — the cheapest way to satisfy "(a) cancel reliably or
// (b) re-check stage and no-op" from both ends at once.

// onTouchTimeout: key held long enough to commit as a hold.
func (c *Core) onTouchTimeout(state *State) {
	if state.stage != StageTouch {
		return
	}
	defer c.log.Enter()()
	c.applyStage(state, StageHold)
	c.handleAction(state, ActionHold)
}

// onSequenceTimeout: no follow-up tap within the sequence term.
func (c *Core) onSequenceTimeout(state *State) {
	if state.stage != StageSequence {
		return
	}
	defer c.log.Enter()()
	if c.featureEnabled(state, FeatureAggregateTaps) {
		c.handleAction(state, ActionTap)
	}
	c.applyStage(state, StageNone)
}

// onTouchReleaseTimeout: a touch-released state survived the release
// window with no follow-up resolving it.
func (c *Core) onTouchReleaseTimeout(state *State) {
	if state.stage != StageTouchRelease {
		return
	}
	defer c.log.Enter()()
	c.handleAction(state, ActionTap)
	c.applyStage(state, StageNone)
}

// onHoldReleaseTimeout: a hold-released state survived the release window.
func (c *Core) onHoldReleaseTimeout(state *State) {
	if state.stage != StageHoldRelease {
		return
	}
	defer c.log.Enter()()
	c.handleAction(state, ActionRelease)
	c.applyStage(state, StageNone)
}

package smtd

// applyEvent is the per-state transition table (spec section 4.4), ported
// from sm_td.h's smtd_apply_event (lines 605-753). isStateKey tells us
// whether ev is this state's own physical key; last tells us whether state
// is currently the tail of the active stack.
//
// Open Question 1 (SPEC_FULL.md section 9): when a middle state is in
// Touch and the tail state (also in Touch) releases, this function is
// driven by applyToStack's single top-to-bottom loop over the stack, so
// the middle state's Touch->Hold transition (and its Handle(Hold) call)
// is evaluated and executed before the loop reaches the tail state's own
// index in the same pass. That ordering is a structural property of the
// loop, not an incidental scheduling accident, and scenario 3 pins it.
func (c *Core) applyEvent(isStateKey bool, state *State, pressedKeycode Keycode, ev KeyEvent) {
	switch state.stage {

	case StageNone:
		if isStateKey && ev.Pressed {
			c.applyStage(state, StageTouch)
			c.handleAction(state, ActionTouch)
		}

	case StageTouch:
		last := c.active.isTop(state)
		if last {
			if isStateKey && !ev.Pressed {
				if !c.featureEnabled(state, FeatureAggregateTaps) {
					c.handleAction(state, ActionTap)
				}
				c.applyStage(state, StageSequence)
			}
			return
		}

		if isStateKey && !ev.Pressed {
			c.applyStage(state, StageTouchRelease)
			return
		}

		if !c.active.isFollowingKey(state.idx, pressedKeycode, ev) {
			// The event is not about a key pressed after this one; nothing to do.
			return
		}

		if !isStateKey && !ev.Pressed {
			// The following key released first: the macro key is held.
			c.applyStage(state, StageHold)
			c.handleAction(state, ActionHold)
		}

	case StageSequence:
		if isStateKey && ev.Pressed {
			state.tapCount++
			c.handleAction(state, ActionTouch)
			c.applyStage(state, StageTouch)
			return
		}

		if !isStateKey && ev.Pressed {
			state.resolution = ResolutionDetermined
			if c.featureEnabled(state, FeatureAggregateTaps) {
				c.handleAction(state, ActionTap)
			}
			c.applyStage(state, StageNone)
		}

	case StageHold:
		if isStateKey && !ev.Pressed {
			if c.active.isTop(state) {
				c.handleAction(state, ActionRelease)
				c.applyStage(state, StageNone)
				return
			}
			c.applyStage(state, StageHoldRelease)
		}

	case StageTouchRelease:
		if ev.Pressed {
			c.handleAction(state, ActionTap)
			c.applyStage(state, StageNone)
			return
		}

		if c.clock.ElapsedMS(state.releasedTimeMS) >= c.timeoutFor(state, TimeoutRelease) {
			c.handleAction(state, ActionTap)
			c.applyStage(state, StageNone)
			return
		}

		if !c.active.isFollowingKey(state.idx, pressedKeycode, ev) {
			return
		}

		c.applyStage(state, StageHoldRelease)
		c.handleAction(state, ActionHold)

	case StageHoldRelease:
		if !ev.Pressed && !c.active.isTop(state) {
			return
		}
		c.handleAction(state, ActionRelease)
		c.applyStage(state, StageNone)

	default:
		c.metrics.IncUnreachableNoOp()
		c.log.Warn("unreachable stage in applyEvent: %v", state.stage)
	}
}

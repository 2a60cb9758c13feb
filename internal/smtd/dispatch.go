package smtd

// handleAction, executeAction and worstResolutionBefore implement the
// ordering guarantee described in spec section 4.5: a classifier is never
// called for state i until every earlier, non-Sequence state has reached
// Determined resolution. Ported from sm_td.h's smtd_handle_action /
// smtd_execute_action / smtd_worst_resolution_before (lines 832-983).
func (c *Core) handleAction(state *State, action Action) {
	if c.worstResolutionBefore(state) < ResolutionDetermined {
		state.hasActionReq = true
		state.actionRequired = action
		c.log.Debug("%v %v is deferred", state.pressedKeyPos, action)
		c.metrics.IncDispatchDeferred()
		return
	}

	c.log.Debug("%v %v processing", state.pressedKeyPos, action)

	resolutionBefore := state.resolution
	unenter := c.log.Enter()
	c.executeAction(state, action)
	unenter()
	resolutionAfter := state.resolution

	if resolutionBefore == ResolutionDetermined {
		c.log.Debug("%v %v was already determined before", state.pressedKeyPos, action)
		return
	}
	if resolutionAfter != ResolutionDetermined {
		c.log.Debug("%v %v is not yet determined", state.pressedKeyPos, action)
		return
	}

	for i := state.idx + 1; i < c.active.len(); i++ {
		next := c.active.at(i)
		if !next.hasActionReq {
			break
		}

		c.log.Debug("%v %v will run deferred %v", state.pressedKeyPos, action, next.pressedKeyPos)
		next.hasActionReq = false
		c.metrics.IncDispatchReplayed()

		unenter := c.log.Enter()
		switch next.actionRequired {
		case ActionTouch:
			c.handleAction(next, ActionTouch)
		case ActionTap:
			c.handleAction(next, ActionTouch)
			c.handleAction(next, ActionTap)
		case ActionHold:
			c.handleAction(next, ActionTouch)
			c.handleAction(next, ActionHold)
		case ActionRelease:
			c.handleAction(next, ActionTouch)
			c.handleAction(next, ActionHold)
			c.handleAction(next, ActionRelease)
		}
		unenter()

		c.log.Debug("%v %v is complete", state.pressedKeyPos, action)
	}
}

func (c *Core) executeAction(state *State, action Action) {
	if state.desiredKeycode == 0 {
		state.desiredKeycode = c.currentKeycode(state.pressedKeyPos)
	}

	c.log.Debug("%v exec in progress with %v", state.pressedKeyPos, action)

	classifier := c.classifierFor(state.desiredKeycode)
	c.bypass = true
	var newResolution Resolution
	if classifier != nil {
		newResolution = classifier.OnAction(state.desiredKeycode, action, state.tapCount)
	} else {
		newResolution = ResolutionUnhandled
	}
	c.bypass = false

	if newResolution > state.resolution {
		state.resolution = newResolution
	}

	if newResolution == ResolutionUnhandled {
		unenter := c.log.Enter()
		switch action {
		case ActionTouch:
			c.emitRaw(state.pressedKeyPos, true)
			state.resolution = ResolutionDetermined
		case ActionTap:
			c.emitRaw(state.pressedKeyPos, false)
		case ActionHold:
			// Nothing to emit; the held key produces no keystroke of its own.
		case ActionRelease:
			c.emitRaw(state.pressedKeyPos, false)
		}
		unenter()
	}

	c.log.Debug("%v exec done with %v", state.pressedKeyPos, action)
}

// worstResolutionBefore scans states below idx (excluding Sequence stage
// states, which never block ordering) for the lowest resolution reached so
// far. Ported from sm_td.h's smtd_worst_resolution_before.
func (c *Core) worstResolutionBefore(state *State) Resolution {
	result := ResolutionDetermined
	for i := 0; i < state.idx; i++ {
		other := c.active.at(i)
		if other.stage == StageSequence {
			continue
		}
		if other.resolution < result {
			result = other.resolution
		}
	}
	c.log.Debug("worst_resolution_before: %v result %v", state.pressedKeyPos, result)
	return result
}

package smtd

// applyToStack is the entry point for every host key event once the
// bypass flag has been checked. Ported from sm_td.h's
// smtd_apply_to_stack (lines 460-545).
func (c *Core) applyToStack(startIdx int, pressedKeycode Keycode, ev KeyEvent, desired Keycode) {
	processed := false

	for i := startIdx; i < c.active.len(); i++ {
		state := c.active.at(i)

		isStateKey := ev.Key == state.pressedKeyPos &&
			(pressedKeycode == state.pressedKeycode || pressedKeycode == state.desiredKeycode)
		processed = processed || isStateKey

		c.applyEvent(isStateKey, state, pressedKeycode, ev)

		if state.stage == StageNone {
			// The stack moved down one slot under us; revisit this index.
			i--
		}
	}

	c.cleanup()

	if processed {
		return
	}

	c.createState(pressedKeycode, ev, desired)
}

// cleanup is the post-walk, top-down tail pass: while the top of the stack
// is TouchRelease or HoldRelease, finalize it. A tail in Sequence is kept
// and stops the scan (property R3: running this twice in a row is a no-op
// the second time).
func (c *Core) cleanup() {
	for c.active.len() > 0 {
		state := c.active.at(c.active.len() - 1)

		switch state.stage {
		case StageTouchRelease:
			c.handleAction(state, ActionTap)
			c.applyStage(state, StageNone)
			c.metrics.IncCleanupFinalized()
			continue
		case StageHoldRelease:
			c.handleAction(state, ActionRelease)
			c.applyStage(state, StageNone)
			c.metrics.IncCleanupFinalized()
			continue
		case StageSequence:
			return
		default:
			return
		}
	}
}

// createState installs a new state for a press that matched no existing
// state. Releases of unknown keys are a pass-through no-op (property B2).
func (c *Core) createState(pressedKeycode Keycode, ev KeyEvent, desired Keycode) {
	if !ev.Pressed {
		return
	}

	state := c.pool.acquire()
	if state == nil {
		c.log.Warn("pool exhausted, dropping press key=%v", ev.Key)
		c.metrics.IncPoolExhausted()
		return
	}

	c.active.attach(state)
	state.pressedKeyPos = ev.Key
	state.pressedKeycode = pressedKeycode
	if desired > 0 {
		state.desiredKeycode = desired
	}

	c.applyEvent(true, state, pressedKeycode, ev)
}

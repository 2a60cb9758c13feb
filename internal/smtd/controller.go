package smtd

import "github.com/dshills/smtd/internal/smtd/host"

// applyStage is the sole owner of timer tokens and stack membership. Ported
// from sm_td.h's smtd_apply_stage (lines 770-830 of the original C). The
// previous timer token is cancelled only after a new one has been
// scheduled, to avoid a race in timer services that run cancellations
// synchronously (the original's own comment: "need to cancel after
// creating new timeout. There is a bug in QMK scheduling").
func (c *Core) applyStage(state *State, next Stage) {
	c.log.Debug("%v stage -> %v", state.pressedKeyPos, next)

	prevToken := state.timerToken
	state.timerToken = host.InvalidToken
	state.stage = next

	switch next {
	case StageNone:
		c.active.detach(state)
		state.reset()

	case StageTouch:
		state.pressedTimeMS = c.clock.NowMS()
		state.timerToken = c.timer.Defer(c.timeoutFor(state, TimeoutTap), func() {
			c.onTouchTimeout(state)
		})

	case StageSequence:
		state.releasedTimeMS = c.clock.NowMS()
		state.resolution = ResolutionUncertain
		state.timerToken = c.timer.Defer(c.timeoutFor(state, TimeoutSequence), func() {
			c.onSequenceTimeout(state)
		})

	case StageHold:
		// Resolved by a later key or a release; nothing to schedule.

	case StageTouchRelease:
		state.releasedTimeMS = c.clock.NowMS()
		state.timerToken = c.timer.Defer(c.timeoutFor(state, TimeoutRelease), func() {
			c.onTouchReleaseTimeout(state)
		})

	case StageHoldRelease:
		state.releasedTimeMS = c.clock.NowMS()
		state.timerToken = c.timer.Defer(c.timeoutFor(state, TimeoutRelease), func() {
			c.onHoldReleaseTimeout(state)
		})
	}

	c.timer.Cancel(prevToken)
}

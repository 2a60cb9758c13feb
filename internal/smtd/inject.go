package smtd

import "github.com/dshills/smtd/internal/smtd/host"

// emitRaw synthesizes a raw key event back into the host, the way
// sm_td.h's smtd_emulate_press loops a keyevent back through
// process_record. bypass prevents the re-entrant call from being picked up
// by this same core as a fresh event to classify (invariant I6).
func (c *Core) emitRaw(pos KeyPos, pressed bool) {
	action := "RELEASE"
	if pressed {
		action = "PRESS"
	}
	c.log.Debug("emulate %s %v", action, pos)

	c.bypass = true
	unenter := c.log.Enter()
	c.host.EmitRaw(KeyEvent{Key: pos, Pressed: pressed})
	unenter()
	c.bypass = false

	c.metrics.IncRawEventsEmitted()
	c.simultaneousPressesDelay()
}

// simultaneousPressesDelay gives the host a chance to enforce the
// SimultaneousPressesDelayMS spacing some keyboard controllers need between
// back-to-back synthesized reports. Hosts that don't need it implement
// Host without this optional interface and the delay is skipped.
func (c *Core) simultaneousPressesDelay() {
	if c.config.SimultaneousPressesDelayMS == 0 {
		return
	}
	if waiter, ok := c.host.(host.SimultaneousDelayer); ok {
		waiter.Wait(c.config.SimultaneousPressesDelayMS)
	}
}

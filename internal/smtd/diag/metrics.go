package diag

import "sync/atomic"

// Metrics holds counters a host can poll without parsing log output.
// Adapted from the teacher's internal/app/metrics.go counter style.
type Metrics struct {
	poolExhausted     atomic.Uint64
	dispatchDeferred  atomic.Uint64
	dispatchReplayed  atomic.Uint64
	rawEventsEmitted  atomic.Uint64
	unreachableNoOps  atomic.Uint64
	cleanupFinalized  atomic.Uint64
}

// NewMetrics creates a zeroed Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// PoolExhaustedTotal returns how many times a new press was dropped because
// the state pool had no free slot.
func (m *Metrics) PoolExhaustedTotal() uint64 { return m.poolExhausted.Load() }

// IncPoolExhausted records one dropped press.
func (m *Metrics) IncPoolExhausted() { m.poolExhausted.Add(1) }

// DispatchDeferredTotal returns how many classifier calls were deferred
// pending an earlier state's resolution.
func (m *Metrics) DispatchDeferredTotal() uint64 { return m.dispatchDeferred.Load() }

// IncDispatchDeferred records one deferred classifier call.
func (m *Metrics) IncDispatchDeferred() { m.dispatchDeferred.Add(1) }

// DispatchReplayedTotal returns how many deferred classifier calls were
// later replayed.
func (m *Metrics) DispatchReplayedTotal() uint64 { return m.dispatchReplayed.Load() }

// IncDispatchReplayed records one replayed classifier call.
func (m *Metrics) IncDispatchReplayed() { m.dispatchReplayed.Add(1) }

// RawEventsEmittedTotal returns how many raw key events the injector sent
// back to the host because a classifier declined to handle the action.
func (m *Metrics) RawEventsEmittedTotal() uint64 { return m.rawEventsEmitted.Load() }

// IncRawEventsEmitted records one raw key event emission.
func (m *Metrics) IncRawEventsEmitted() { m.rawEventsEmitted.Add(1) }

// UnreachableNoOpsTotal returns how many times the per-state transition
// table met a stage value outside the six known stages and did nothing.
// The table's ordinary ignore branches are not counted.
func (m *Metrics) UnreachableNoOpsTotal() uint64 { return m.unreachableNoOps.Load() }

// IncUnreachableNoOp records one no-op transition.
func (m *Metrics) IncUnreachableNoOp() { m.unreachableNoOps.Add(1) }

// CleanupFinalizedTotal returns how many states the tail cleanup pass
// finalized (TouchRelease/HoldRelease states left at the stack's tail after
// an event was applied).
func (m *Metrics) CleanupFinalizedTotal() uint64 { return m.cleanupFinalized.Load() }

// IncCleanupFinalized records one cleanup-pass finalization.
func (m *Metrics) IncCleanupFinalized() { m.cleanupFinalized.Add(1) }

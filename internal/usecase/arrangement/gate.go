package arrangement

import "github.com/mikiasgoitom/Studiofolio/internal/infrastructure/metrics"

// scheduleSaveLocked (re)arms the debounce timer. The order is read when the timer
// fires, so later drags within the quiet period are included.
func (b *Board) scheduleSaveLocked() {
	if b.opts.OnReorder == nil || b.closed {
		return
	}
	if b.stopSaveTimerLocked() {
		metrics.IncBoardSaveCoalesced()
	}
	gen := b.debounceGen
	b.saveTimer = b.clock.AfterFunc(b.opts.SaveDebounce, func() { b.debouncedSave(gen) })
}

// stopSaveTimerLocked cancels a pending debounced save and reports whether one was pending.
func (b *Board) stopSaveTimerLocked() bool {
	b.debounceGen++
	if b.saveTimer == nil {
		return false
	}
	b.saveTimer.Stop()
	b.saveTimer = nil
	return true
}

func (b *Board) debouncedSave(gen uint64) {
	var fx effects
	b.mu.Lock()
	if b.closed || gen != b.debounceGen || b.saveTimer == nil {
		b.mu.Unlock()
		return
	}
	b.saveTimer = nil
	b.startSaveLocked(&fx)
	b.mu.Unlock()
	fx.run()
}

// startSaveLocked raises the saving flag and queues the persistence call with a snapshot
// of the current order.
func (b *Board) startSaveLocked(fx *effects) {
	if b.opts.OnReorder == nil || len(b.order) == 0 {
		return
	}
	if b.settleTimer != nil {
		b.settleTimer.Stop()
		b.settleTimer = nil
	}
	b.saving = true
	b.flightGen++
	gen := b.flightGen
	snapshot := b.order.Clone()
	fx.add(func() { b.persist(gen, snapshot) })
}

// persist calls the reorder callback. A failed save is logged and not retried; the
// local order stays as the admin left it. A successful one keeps the saving flag up for
// the settle delay so the refresh it causes is not mistaken for new upstream data.
func (b *Board) persist(gen uint64, orderedIDs []string) {
	start := b.clock.Now()
	err := b.opts.OnReorder(b.ctx, orderedIDs)
	metrics.ObserveBoardSaveDuration(b.clock.Since(start).Seconds())
	metrics.IncBoardSave(err)
	if err != nil {
		b.log.Errorf("arrangement: saving order of %d items failed: %v", len(orderedIDs), err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.flightGen {
		// a newer save owns the flag
		return
	}
	if err != nil || b.closed {
		b.saving = false
		b.reconcileLocked()
		return
	}
	b.settleTimer = b.clock.AfterFunc(b.opts.SaveSettle, func() { b.settled(gen) })
}

func (b *Board) settled(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.flightGen || b.settleTimer == nil {
		return
	}
	b.settleTimer = nil
	b.saving = false
	b.reconcileLocked()
}

package arrangement

import "github.com/mikiasgoitom/Studiofolio/internal/infrastructure/metrics"

func (b *Board) editingLocked() bool {
	if b.external != nil {
		return *b.external
	}
	return b.internal
}

// PressStart begins a press-and-hold on an item. Holding for the hold threshold without
// PressEnd switches the board into edit mode. Ignored while edit mode is controlled
// externally or already on.
func (b *Board) PressStart(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	if !b.order.Contains(id) {
		return ErrUnknownItem
	}
	if b.external != nil || b.editingLocked() {
		return nil
	}
	b.stopHoldLocked()
	gen := b.holdGen
	b.holdTimer = b.clock.AfterFunc(b.opts.HoldThreshold, func() { b.holdElapsed(gen) })
	return nil
}

// PressEnd releases or cancels a press before it turned into a hold.
func (b *Board) PressEnd() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopHoldLocked()
}

func (b *Board) holdElapsed(gen uint64) {
	var fx effects
	b.mu.Lock()
	if b.closed || gen != b.holdGen || b.holdTimer == nil {
		b.mu.Unlock()
		return
	}
	b.holdTimer = nil
	b.applyEditModeLocked(&fx, func() {
		if b.external == nil {
			b.internal = true
		}
	})
	b.mu.Unlock()
	fx.run()
}

func (b *Board) stopHoldLocked() {
	b.holdGen++
	if b.holdTimer != nil {
		b.holdTimer.Stop()
		b.holdTimer = nil
	}
}

// SetEditMode applies the host's edit mode. A non-nil value takes control and wins over
// press-and-hold until SetEditMode(nil) hands control back, keeping the current mode.
func (b *Board) SetEditMode(editing *bool) {
	var fx effects
	b.mu.Lock()
	b.stopHoldLocked()
	b.applyEditModeLocked(&fx, func() {
		if editing == nil {
			b.internal = b.editingLocked()
			b.external = nil
			return
		}
		v := *editing
		b.external = &v
		b.internal = v
	})
	b.mu.Unlock()
	fx.run()
}

// Controlled reports whether the host currently drives edit mode.
func (b *Board) Controlled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.external != nil
}

// Done is the admin's "done" action. It leaves edit mode, writing through to the
// controlled value when the host drives the mode.
func (b *Board) Done() {
	var fx effects
	b.mu.Lock()
	b.stopHoldLocked()
	b.applyEditModeLocked(&fx, func() {
		if b.external != nil {
			off := false
			b.external = &off
		}
		b.internal = false
	})
	b.mu.Unlock()
	fx.run()
}

// applyEditModeLocked runs mutate and, when the effective mode flipped, queues the
// observer notification. Leaving edit mode drops the drag, replaces any pending
// debounced save with an immediate one and re-evaluates the incoming media.
func (b *Board) applyEditModeLocked(fx *effects, mutate func()) {
	before := b.editingLocked()
	mutate()
	after := b.editingLocked()
	if before == after {
		return
	}

	metrics.IncEditModeTransition(after)
	b.log.Debugf("arrangement: edit mode %t -> %t", before, after)
	if cb := b.opts.OnEditModeChange; cb != nil {
		fx.add(func() { cb(after) })
	}
	if after {
		return
	}

	b.dragging = ""
	b.stopSaveTimerLocked()
	if !b.closed {
		b.startSaveLocked(fx)
	}
	b.reconcileLocked()
}

package arrangement

import "context"

// RequestDelete asks for confirmation before id is removed. A second request replaces
// the pending one.
func (b *Board) RequestDelete(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.opts.OnDelete == nil {
		return ErrDeleteDisabled
	}
	if b.uploading {
		return ErrUploading
	}
	if !b.hasMediaLocked(id) {
		return ErrUnknownItem
	}
	b.pendingDelete = id
	return nil
}

// CancelDelete discards the pending deletion.
func (b *Board) CancelDelete() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pendingDelete = ""
}

// PendingDelete returns the id awaiting confirmation, or "".
func (b *Board) PendingDelete() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pendingDelete
}

// ConfirmDelete runs the delete callback for the pending item. The board is back to idle
// whatever the callback returns; its error is handed to the caller untouched.
func (b *Board) ConfirmDelete(ctx context.Context) error {
	b.mu.Lock()
	id := b.pendingDelete
	if id == "" {
		b.mu.Unlock()
		return ErrNoPendingDelete
	}
	if b.uploading {
		b.mu.Unlock()
		return ErrUploading
	}
	b.pendingDelete = ""
	onDelete := b.opts.OnDelete
	b.mu.Unlock()

	return onDelete(ctx, id)
}

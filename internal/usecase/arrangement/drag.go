package arrangement

// Draggable receives gesture events from the grid.
type Draggable interface {
	BeginDrag(id string) error
	DragOver(targetID string) bool
	EndDrag()
}

// BeginDrag marks id as the item being dragged. Dragging is only possible in edit mode.
func (b *Board) BeginDrag(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.editingLocked() {
		return ErrNotEditing
	}
	if !b.order.Contains(id) {
		return ErrUnknownItem
	}
	b.dragging = id
	return nil
}

// DragOver moves the dragged item to targetID's slot. It reports whether the order changed.
func (b *Board) DragOver(targetID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dragging == "" || !b.editingLocked() {
		return false
	}
	var o Orderable = &b.order
	return o.MoveBefore(b.dragging, targetID)
}

// EndDrag drops the dragged item and schedules a debounced save of the resulting order.
func (b *Board) EndDrag() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dragging = ""
	if b.editingLocked() {
		b.scheduleSaveLocked()
	}
}

// Dragging returns the id being dragged, or "".
func (b *Board) Dragging() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dragging
}

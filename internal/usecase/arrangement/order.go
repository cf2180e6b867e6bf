package arrangement

import "github.com/mikiasgoitom/Studiofolio/internal/domain/entity"

// Orderable accepts move instructions produced by a drag source.
type Orderable interface {
	MoveBefore(id, targetID string) bool
}

// DisplayOrder is the presentation order of media ids. It never holds an id twice.
type DisplayOrder []string

var _ Orderable = (*DisplayOrder)(nil)

// Index returns the position of id, or -1.
func (o DisplayOrder) Index(id string) int {
	for i, v := range o {
		if v == id {
			return i
		}
	}
	return -1
}

func (o DisplayOrder) Contains(id string) bool { return o.Index(id) >= 0 }

func (o DisplayOrder) Clone() []string {
	out := make([]string, len(o))
	copy(out, o)
	return out
}

// MoveBefore takes id out of the order and puts it back at the index targetID held
// before the move. Dragging towards the front lands in front of the target, dragging
// towards the back lands behind it. Unknown ids and id == targetID leave the order alone.
func (o *DisplayOrder) MoveBefore(id, targetID string) bool {
	if id == targetID {
		return false
	}
	from, to := o.Index(id), o.Index(targetID)
	if from < 0 || to < 0 {
		return false
	}
	s := *o
	moved := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = moved
	return true
}

// SameMembers reports whether a and b hold the same ids, in any order.
func SameMembers(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]struct{}, len(a))
	for _, id := range a {
		seen[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			return false
		}
	}
	return len(seen) == len(a)
}

// Reconcile hands the board the latest media from storage. The display order is only
// rebuilt when the set of ids changed and the admin is neither editing nor waiting on a
// save; a reload with the same ids keeps the local order even if storage returns them
// in a different sequence.
func (b *Board) Reconcile(media []entity.MediaItem) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.media = uniqueMedia(media)
	b.reconcileLocked()
}

func (b *Board) reconcileLocked() {
	if b.editingLocked() || b.saving {
		return
	}
	incoming := entity.MediaIDs(b.media)
	if b.hasOrder && SameMembers(incoming, b.order) {
		return
	}
	b.order = incoming
	b.hasOrder = true
	if b.pendingDelete != "" && !b.order.Contains(b.pendingDelete) {
		b.pendingDelete = ""
	}
}

func (b *Board) hasMediaLocked(id string) bool {
	for _, item := range b.media {
		if item.ID == id {
			return true
		}
	}
	return false
}

// uniqueMedia copies media, keeping the first item for each id.
func uniqueMedia(media []entity.MediaItem) []entity.MediaItem {
	seen := make(map[string]struct{}, len(media))
	out := make([]entity.MediaItem, 0, len(media))
	for _, item := range media {
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}

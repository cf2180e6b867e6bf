package arrangement

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const waitFor = time.Second

type saveRecorder struct {
	mu    sync.Mutex
	calls [][]string
	err   error
}

func (r *saveRecorder) reorder(_ context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, ids)
	return r.err
}

func (r *saveRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *saveRecorder) last() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

type modeRecorder struct {
	mu      sync.Mutex
	changes []bool
}

func (r *modeRecorder) observe(editing bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, editing)
}

func (r *modeRecorder) all() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.changes...)
}

func media(ids ...string) []entity.MediaItem {
	items := make([]entity.MediaItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, entity.MediaItem{ID: id, ImageURL: "https://cdn.example.com/" + id + ".jpg"})
	}
	return items
}

func newTestBoard(t *testing.T, opts Options, ids ...string) (*Board, *clockwork.FakeClock) {
	t.Helper()
	fc := clockwork.NewFakeClock()
	opts.Clock = fc
	b := NewBoard(context.Background(), media(ids...), opts)
	t.Cleanup(b.Close)
	return b, fc
}

func enterEditMode(t *testing.T, b *Board, fc *clockwork.FakeClock, id string) {
	t.Helper()
	require.NoError(t, b.PressStart(id))
	fc.Advance(DefaultHoldThreshold)
	require.Eventually(t, b.Editing, waitFor, time.Millisecond)
}

func drag(t *testing.T, b *Board, id, target string) {
	t.Helper()
	require.NoError(t, b.BeginDrag(id))
	b.DragOver(target)
	b.EndDrag()
}

func TestDisplayOrder_MoveBefore(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		target string
		want   []string
		moved  bool
	}{
		{"forward lands behind target", "A", "C", []string{"B", "C", "A", "D"}, true},
		{"backward lands in front of target", "D", "B", []string{"A", "D", "B", "C"}, true},
		{"neighbour swap", "B", "C", []string{"A", "C", "B", "D"}, true},
		{"same id", "B", "B", []string{"A", "B", "C", "D"}, false},
		{"unknown dragged id", "X", "B", []string{"A", "B", "C", "D"}, false},
		{"unknown target", "A", "X", []string{"A", "B", "C", "D"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DisplayOrder{"A", "B", "C", "D"}
			assert.Equal(t, tt.moved, o.MoveBefore(tt.id, tt.target))
			if diff := cmp.Diff(tt.want, []string(o)); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSameMembers(t *testing.T) {
	assert.True(t, SameMembers([]string{"A", "B", "C"}, []string{"C", "A", "B"}))
	assert.True(t, SameMembers(nil, []string{}))
	assert.False(t, SameMembers([]string{"A", "B", "C"}, []string{"A", "B", "D"}))
	assert.False(t, SameMembers([]string{"A", "B"}, []string{"A", "B", "C"}))
	assert.False(t, SameMembers([]string{"A", "A"}, []string{"A", "B"}))
}

func TestBoard_DragSequenceKeepsPermutation(t *testing.T) {
	ids := []string{"A", "B", "C", "D", "E", "F"}
	b, fc := newTestBoard(t, Options{}, ids...)
	enterEditMode(t, b, fc, "A")

	want := append([]string(nil), ids...)
	sort.Strings(want)
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		switch rnd.Intn(3) {
		case 0:
			_ = b.BeginDrag(ids[rnd.Intn(len(ids))])
		case 1:
			b.DragOver(ids[rnd.Intn(len(ids))])
		default:
			b.EndDrag()
		}
		got := b.Order()
		sort.Strings(got)
		require.Equal(t, want, got, "step %d", i)
	}
}

func TestBoard_BeginDragOutsideEditMode(t *testing.T) {
	b, _ := newTestBoard(t, Options{}, "A", "B", "C")

	assert.ErrorIs(t, b.BeginDrag("A"), ErrNotEditing)
	assert.False(t, b.DragOver("C"))
	assert.Equal(t, []string{"A", "B", "C"}, b.Order())
	assert.Empty(t, b.Dragging())
}

func TestBoard_NoResetWhileEditing(t *testing.T) {
	b, fc := newTestBoard(t, Options{}, "A", "B", "C")
	enterEditMode(t, b, fc, "A")

	b.Reconcile(media("C", "B", "A"))
	assert.Equal(t, []string{"A", "B", "C"}, b.Order())

	drag(t, b, "A", "C")
	b.Reconcile(media("A", "B", "C"))
	assert.Equal(t, []string{"B", "C", "A"}, b.Order())
}

func TestBoard_SameIDReloadPreservesOrder(t *testing.T) {
	b, _ := newTestBoard(t, Options{}, "A", "B", "C")

	b.Reconcile(media("A", "B", "C"))
	assert.Equal(t, []string{"A", "B", "C"}, b.Order())

	b.Reconcile(media("B", "A", "C"))
	assert.Equal(t, []string{"A", "B", "C"}, b.Order())
}

func TestBoard_MembershipChangeResetsOrder(t *testing.T) {
	b, _ := newTestBoard(t, Options{}, "A", "B", "C")

	b.Reconcile(media("A", "B", "D"))
	assert.Equal(t, []string{"A", "B", "D"}, b.Order())

	b.Reconcile(nil)
	assert.Empty(t, b.Order())
	assert.True(t, b.View().Empty)
}

func TestBoard_DebounceCoalescesSaves(t *testing.T) {
	rec := &saveRecorder{}
	b, fc := newTestBoard(t, Options{OnReorder: rec.reorder}, "A", "B", "C", "D")
	enterEditMode(t, b, fc, "A")

	drag(t, b, "A", "B")
	fc.Advance(300 * time.Millisecond)
	drag(t, b, "D", "A")
	fc.Advance(700 * time.Millisecond)
	drag(t, b, "C", "D")
	fc.Advance(799 * time.Millisecond)
	assert.Equal(t, 0, rec.count())

	fc.Advance(time.Millisecond)
	require.Eventually(t, func() bool { return rec.count() == 1 }, waitFor, time.Millisecond)
	assert.Equal(t, b.Order(), rec.last())
	assert.Equal(t, []string{"B", "C", "D", "A"}, rec.last())

	fc.Advance(5 * time.Second)
	assert.Never(t, func() bool { return rec.count() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestBoard_DebouncedSaveReadsOrderAtFireTime(t *testing.T) {
	rec := &saveRecorder{}
	b, fc := newTestBoard(t, Options{OnReorder: rec.reorder}, "A", "B", "C")
	enterEditMode(t, b, fc, "A")

	drag(t, b, "A", "C")
	require.NoError(t, b.BeginDrag("C"))
	b.DragOver("B")

	fc.Advance(DefaultSaveDebounce)
	require.Eventually(t, func() bool { return rec.count() == 1 }, waitFor, time.Millisecond)
	assert.Equal(t, []string{"C", "B", "A"}, rec.last())
}

func TestBoard_ExitSavesImmediatelyAndCancelsDebounce(t *testing.T) {
	rec := &saveRecorder{}
	b, fc := newTestBoard(t, Options{OnReorder: rec.reorder}, "A", "B", "C")
	enterEditMode(t, b, fc, "A")

	drag(t, b, "C", "A")
	fc.Advance(200 * time.Millisecond)
	b.Done()

	assert.False(t, b.Editing())
	require.Equal(t, 1, rec.count())
	assert.Equal(t, []string{"C", "A", "B"}, rec.last())

	fc.Advance(2 * DefaultSaveDebounce)
	assert.Never(t, func() bool { return rec.count() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestBoard_ExitWithoutReorderCallbackDoesNotSave(t *testing.T) {
	b, fc := newTestBoard(t, Options{}, "A", "B")
	enterEditMode(t, b, fc, "A")
	drag(t, b, "B", "A")
	b.Done()

	assert.False(t, b.Saving())
	assert.False(t, b.View().CanReorder)
	assert.Equal(t, []string{"B", "A"}, b.Order())
}

func TestBoard_SaveEchoDoesNotSnapBack(t *testing.T) {
	rec := &saveRecorder{}
	b, fc := newTestBoard(t, Options{OnReorder: rec.reorder}, "A", "B", "C")
	enterEditMode(t, b, fc, "A")
	drag(t, b, "A", "C")
	b.Done()
	require.True(t, b.Saving())

	// storage has not caught up yet and still returns the old order
	b.Reconcile(media("A", "B", "C"))
	assert.Equal(t, []string{"B", "C", "A"}, b.Order())

	fc.Advance(DefaultSaveSettle)
	require.Eventually(t, func() bool { return !b.Saving() }, waitFor, time.Millisecond)
	assert.Equal(t, []string{"B", "C", "A"}, b.Order())

	b.Reconcile(media("B", "C", "A", "D"))
	assert.Equal(t, []string{"B", "C", "A", "D"}, b.Order())
}

func TestBoard_MembershipChangeDuringSaveAppliesAfterSettle(t *testing.T) {
	rec := &saveRecorder{}
	b, fc := newTestBoard(t, Options{OnReorder: rec.reorder}, "A", "B", "C")
	enterEditMode(t, b, fc, "A")
	b.Done()
	require.True(t, b.Saving())

	b.Reconcile(media("A", "C"))
	assert.Equal(t, []string{"A", "B", "C"}, b.Order())

	fc.Advance(DefaultSaveSettle)
	require.Eventually(t, func() bool { return !b.Saving() }, waitFor, time.Millisecond)
	assert.Equal(t, []string{"A", "C"}, b.Order())
}

func TestBoard_SaveFailureKeepsLocalOrder(t *testing.T) {
	rec := &saveRecorder{err: errors.New("storage unavailable")}
	b, fc := newTestBoard(t, Options{OnReorder: rec.reorder}, "A", "B", "C")
	enterEditMode(t, b, fc, "A")
	drag(t, b, "C", "A")
	b.Done()

	assert.Equal(t, 1, rec.count())
	assert.False(t, b.Saving(), "failed save clears the flag at once")
	assert.Equal(t, []string{"C", "A", "B"}, b.Order())

	fc.Advance(10 * time.Second)
	assert.Never(t, func() bool { return rec.count() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestBoard_HoldReleasedEarlyStaysViewing(t *testing.T) {
	b, fc := newTestBoard(t, Options{}, "A", "B")

	require.NoError(t, b.PressStart("A"))
	fc.Advance(DefaultHoldThreshold - time.Millisecond)
	b.PressEnd()
	fc.Advance(time.Second)

	assert.Never(t, b.Editing, 50*time.Millisecond, 5*time.Millisecond)
	assert.ErrorIs(t, b.PressStart("missing"), ErrUnknownItem)
}

func TestBoard_ExternalEditModeWins(t *testing.T) {
	modes := &modeRecorder{}
	b, fc := newTestBoard(t, Options{OnEditModeChange: modes.observe}, "A", "B")

	off := false
	b.SetEditMode(&off)
	require.NoError(t, b.PressStart("A"))
	fc.Advance(2 * DefaultHoldThreshold)
	assert.Never(t, b.Editing, 50*time.Millisecond, 5*time.Millisecond)
	assert.Empty(t, modes.all())

	on := true
	b.SetEditMode(&on)
	b.SetEditMode(&on)
	assert.True(t, b.Editing())
	assert.True(t, b.Controlled())
	assert.Equal(t, []bool{true}, modes.all())

	b.SetEditMode(nil)
	assert.True(t, b.Editing(), "handing control back keeps the mode")
	assert.False(t, b.Controlled())

	b.Done()
	assert.Equal(t, []bool{true, false}, modes.all())
}

func TestBoard_ExternalInstructionCancelsHold(t *testing.T) {
	b, fc := newTestBoard(t, Options{}, "A")

	require.NoError(t, b.PressStart("A"))
	off := false
	b.SetEditMode(&off)
	b.SetEditMode(nil)
	fc.Advance(2 * DefaultHoldThreshold)

	assert.Never(t, b.Editing, 50*time.Millisecond, 5*time.Millisecond)
}

func TestBoard_DoneWhileControlledWritesThrough(t *testing.T) {
	modes := &modeRecorder{}
	rec := &saveRecorder{}
	b, _ := newTestBoard(t, Options{OnEditModeChange: modes.observe, OnReorder: rec.reorder}, "A", "B")

	on := true
	b.SetEditMode(&on)
	b.Done()

	assert.False(t, b.Editing())
	assert.True(t, b.Controlled())
	assert.Equal(t, []bool{true, false}, modes.all())
	assert.Equal(t, 1, rec.count())
}

func TestBoard_DeletionRequiresConfirmation(t *testing.T) {
	var deleted []string
	onDelete := func(_ context.Context, id string) error {
		deleted = append(deleted, id)
		return nil
	}
	b, _ := newTestBoard(t, Options{OnDelete: onDelete}, "A", "B", "C")

	require.NoError(t, b.RequestDelete("B"))
	assert.Empty(t, deleted)
	assert.Equal(t, "B", b.PendingDelete())

	b.CancelDelete()
	assert.Empty(t, deleted)
	assert.ErrorIs(t, b.ConfirmDelete(context.Background()), ErrNoPendingDelete)

	require.NoError(t, b.RequestDelete("A"))
	require.NoError(t, b.RequestDelete("C"))
	require.NoError(t, b.ConfirmDelete(context.Background()))
	assert.Equal(t, []string{"C"}, deleted)
	assert.Empty(t, b.PendingDelete())
}

func TestBoard_DeletionReturnsToIdleOnFailure(t *testing.T) {
	failure := errors.New("delete failed")
	b, _ := newTestBoard(t, Options{OnDelete: func(context.Context, string) error { return failure }}, "A")

	require.NoError(t, b.RequestDelete("A"))
	assert.ErrorIs(t, b.ConfirmDelete(context.Background()), failure)
	assert.Empty(t, b.PendingDelete())
}

func TestBoard_DeletionGuards(t *testing.T) {
	noDelete, _ := newTestBoard(t, Options{}, "A")
	assert.ErrorIs(t, noDelete.RequestDelete("A"), ErrDeleteDisabled)

	b, _ := newTestBoard(t, Options{OnDelete: func(context.Context, string) error { return nil }}, "A", "B")
	assert.ErrorIs(t, b.RequestDelete("Z"), ErrUnknownItem)

	require.NoError(t, b.RequestDelete("A"))
	b.SetUploading(true)
	assert.ErrorIs(t, b.RequestDelete("B"), ErrUploading)
	assert.ErrorIs(t, b.ConfirmDelete(context.Background()), ErrUploading)
	assert.False(t, b.View().CanDelete)

	b.SetUploading(false)
	b.Reconcile(media("B"))
	assert.Empty(t, b.PendingDelete(), "pending item vanished upstream")
}

func TestBoard_ViewDefaults(t *testing.T) {
	b, _ := newTestBoard(t, Options{}, "A", "B")
	v := b.View()

	assert.Equal(t, DefaultEmptyMessage, v.EmptyMessage)
	assert.Equal(t, DefaultColumns, v.Columns)
	assert.False(t, v.Empty)
	assert.Equal(t, []string{"A", "B"}, entity.MediaIDs(v.Items))
}

func TestBoard_ViewSkipsDuplicatesFromUpstream(t *testing.T) {
	b, _ := newTestBoard(t, Options{})
	b.Reconcile(append(media("A", "B"), media("A")...))

	assert.Equal(t, []string{"A", "B"}, b.Order())
	assert.Len(t, b.View().Items, 2)
}

func TestBoard_CloseFlushesPendingSave(t *testing.T) {
	rec := &saveRecorder{}
	fc := clockwork.NewFakeClock()
	b := NewBoard(context.Background(), media("A", "B"), Options{OnReorder: rec.reorder, Clock: fc})
	enterEditMode(t, b, fc, "A")
	drag(t, b, "B", "A")

	b.Close()
	assert.Equal(t, 1, rec.count())
	assert.Equal(t, []string{"B", "A"}, rec.last())
	assert.ErrorIs(t, b.PressStart("A"), ErrClosed)
}

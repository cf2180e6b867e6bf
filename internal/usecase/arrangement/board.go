// Package arrangement holds the gallery arrangement board: the server-side state behind
// the admin media grid (edit mode, drag reordering, debounced order saves and delete
// confirmation).
package arrangement

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
)

const (
	DefaultHoldThreshold = 500 * time.Millisecond
	DefaultSaveDebounce  = 800 * time.Millisecond
	DefaultSaveSettle    = 500 * time.Millisecond
	DefaultEmptyMessage  = "No media added yet."
	DefaultColumns       = 4
)

var (
	ErrNotEditing      = errors.New("board is not in edit mode")
	ErrUnknownItem     = errors.New("media item is not on the board")
	ErrDeleteDisabled  = errors.New("deletion is not available on this board")
	ErrUploading       = errors.New("deletion is disabled while an upload is in progress")
	ErrNoPendingDelete = errors.New("no deletion is awaiting confirmation")
	ErrClosed          = errors.New("board is closed")
)

// ReorderFunc persists a gallery order. It receives its own copy of the ids.
type ReorderFunc func(ctx context.Context, orderedIDs []string) error

// DeleteFunc removes a media item after the admin confirmed it.
type DeleteFunc func(ctx context.Context, mediaID string) error

// EditModeFunc observes edit mode transitions.
type EditModeFunc func(editing bool)

// Logger is the subset of the application logger the board writes to.
type Logger interface {
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Options configures a Board. Zero durations fall back to the defaults above.
type Options struct {
	OnReorder        ReorderFunc
	OnDelete         DeleteFunc
	OnEditModeChange EditModeFunc

	EmptyMessage string
	Columns      int

	HoldThreshold time.Duration
	SaveDebounce  time.Duration
	SaveSettle    time.Duration

	Clock  clockwork.Clock
	Logger Logger
}

// View is a snapshot of what the admin grid renders.
type View struct {
	Items         []entity.MediaItem `json:"items"`
	Order         []string           `json:"order"`
	Editing       bool               `json:"editing"`
	Saving        bool               `json:"saving"`
	Uploading     bool               `json:"uploading"`
	Dragging      string             `json:"dragging,omitempty"`
	PendingDelete string             `json:"pending_delete,omitempty"`
	Empty         bool               `json:"empty"`
	EmptyMessage  string             `json:"empty_message"`
	Columns       int                `json:"columns"`
	CanReorder    bool               `json:"can_reorder"`
	CanDelete     bool               `json:"can_delete"`
}

// Board is safe for concurrent use. Every state change happens under mu; callbacks
// run after mu is released so a slow save never blocks the grid.
type Board struct {
	opts   Options
	clock  clockwork.Clock
	log    Logger
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool

	// incoming media and the locally owned display order
	media    []entity.MediaItem
	order    DisplayOrder
	hasOrder bool

	// edit mode: external wins whenever set
	internal  bool
	external  *bool
	holdTimer clockwork.Timer
	holdGen   uint64

	dragging string

	// persistence gate
	saveTimer   clockwork.Timer
	debounceGen uint64
	saving      bool
	flightGen   uint64
	settleTimer clockwork.Timer

	uploading     bool
	pendingDelete string
}

var _ Draggable = (*Board)(nil)

// NewBoard creates a board showing media in its incoming order. The context bounds every
// persistence call; Close cancels it.
func NewBoard(ctx context.Context, media []entity.MediaItem, opts Options) *Board {
	if opts.HoldThreshold <= 0 {
		opts.HoldThreshold = DefaultHoldThreshold
	}
	if opts.SaveDebounce <= 0 {
		opts.SaveDebounce = DefaultSaveDebounce
	}
	if opts.SaveSettle <= 0 {
		opts.SaveSettle = DefaultSaveSettle
	}
	if opts.EmptyMessage == "" {
		opts.EmptyMessage = DefaultEmptyMessage
	}
	if opts.Columns <= 0 {
		opts.Columns = DefaultColumns
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	var log Logger = nopLogger{}
	if opts.Logger != nil {
		log = opts.Logger
	}
	bctx, cancel := context.WithCancel(ctx)

	b := &Board{
		opts:   opts,
		clock:  clock,
		log:    log,
		ctx:    bctx,
		cancel: cancel,
	}
	b.Reconcile(media)
	return b
}

// SetUploading toggles the host's upload indicator. Deletion is refused while it is set.
func (b *Board) SetUploading(uploading bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.uploading = uploading
}

// Editing reports the effective edit mode.
func (b *Board) Editing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.editingLocked()
}

// Saving reports whether an order save is in flight or settling.
func (b *Board) Saving() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.saving
}

// Order returns a copy of the current display order.
func (b *Board) Order() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.order.Clone()
}

// View renders the display order back into media items. Ids whose item is gone
// upstream are left out.
func (b *Board) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()

	byID := make(map[string]entity.MediaItem, len(b.media))
	for _, item := range b.media {
		byID[item.ID] = item
	}
	items := make([]entity.MediaItem, 0, len(b.order))
	for _, id := range b.order {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}

	return View{
		Items:         items,
		Order:         b.order.Clone(),
		Editing:       b.editingLocked(),
		Saving:        b.saving,
		Uploading:     b.uploading,
		Dragging:      b.dragging,
		PendingDelete: b.pendingDelete,
		Empty:         len(items) == 0,
		EmptyMessage:  b.opts.EmptyMessage,
		Columns:       b.opts.Columns,
		CanReorder:    b.opts.OnReorder != nil,
		CanDelete:     b.opts.OnDelete != nil && !b.uploading,
	}
}

// Close stops every timer. A debounced save that has not fired yet is flushed
// before the board's context is cancelled.
func (b *Board) Close() {
	var fx effects
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.stopHoldLocked()
	if b.stopSaveTimerLocked() {
		b.startSaveLocked(&fx)
	}
	if b.settleTimer != nil {
		b.settleTimer.Stop()
		b.settleTimer = nil
	}
	b.closed = true
	b.mu.Unlock()

	fx.run()
	b.cancel()
}

// effects collects callbacks produced under the lock so they run after it is released.
type effects []func()

func (fx *effects) add(f func()) { *fx = append(*fx, f) }

func (fx effects) run() {
	for _, f := range fx {
		f()
	}
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{}) {}

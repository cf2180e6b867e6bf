package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Studiofolio/internal/usecase/contract"
)

type galleryFixture struct {
	uc      *GalleryUseCase
	store   *memGalleryStore
	cache   *memCache
	storage *recordingStorage
	clock   *clockwork.FakeClock
}

func newGalleryFixture(t *testing.T) *galleryFixture {
	t.Helper()
	f := &galleryFixture{
		store:   newMemGalleryStore(),
		cache:   newMemCache(),
		storage: &recordingStorage{},
		clock:   clockwork.NewFakeClock(),
	}
	f.uc = NewGalleryUseCase(f.store, f.store, &seqUUID{}, fakeValidator{}, nopLogger{}, usecasecontract.BoardSettings{
		HoldThreshold: 500 * time.Millisecond,
		SaveDebounce:  800 * time.Millisecond,
		SaveSettle:    500 * time.Millisecond,
	})
	f.uc.SetContentCache(f.cache)
	f.uc.SetObjectStorage(f.storage)
	f.uc.SetClock(f.clock)
	t.Cleanup(f.uc.Close)
	return f
}

func (f *galleryFixture) storedOrder(t *testing.T, galleryID string) []string {
	t.Helper()
	items, err := f.store.GetMediaByGalleryID(context.Background(), galleryID)
	require.NoError(t, err)
	return entity.MediaIDs(items)
}

func TestCreateGallery(t *testing.T) {
	f := newGalleryFixture(t)
	ctx := context.Background()

	g, err := f.uc.CreateGallery(ctx, "  Weddings ", "Weddings")
	require.NoError(t, err)
	assert.Equal(t, "weddings", g.Slug)
	assert.NotEmpty(t, g.ID)

	_, err = f.uc.CreateGallery(ctx, "weddings", "Again")
	assert.ErrorIs(t, err, ErrSlugTaken)

	_, err = f.uc.CreateGallery(ctx, "portraits", "   ")
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = f.uc.CreateGallery(ctx, "bad slug", "Bad")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddMediaAppends(t *testing.T) {
	f := newGalleryFixture(t)
	f.store.seed("g1", "hero", "a", "b")

	item, err := f.uc.AddMedia(context.Background(), "g1", "https://cdn.example.com/c.jpg", "hero/c.jpg")

	require.NoError(t, err)
	assert.Equal(t, 2, item.Position)
	assert.Equal(t, []string{"a", "b", item.ID}, f.storedOrder(t, "g1"))
}

func TestAddMedia_Errors(t *testing.T) {
	f := newGalleryFixture(t)
	f.store.seed("g1", "hero")

	_, err := f.uc.AddMedia(context.Background(), "nope", "https://cdn.example.com/c.jpg", "")
	assert.ErrorIs(t, err, ErrGalleryNotFound)

	_, err = f.uc.AddMedia(context.Background(), "g1", "ftp://c.jpg", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReorderMedia(t *testing.T) {
	f := newGalleryFixture(t)
	f.store.seed("g1", "hero", "a", "b", "c", "d")
	ctx := context.Background()

	require.NoError(t, f.uc.ReorderMedia(ctx, "g1", []string{"d", "c", "b", "a"}))
	assert.Equal(t, []string{"d", "c", "b", "a"}, f.storedOrder(t, "g1"))

	// ids left out keep their relative order at the end
	require.NoError(t, f.uc.ReorderMedia(ctx, "g1", []string{"a"}))
	assert.Equal(t, []string{"a", "d", "c", "b"}, f.storedOrder(t, "g1"))

	assert.ErrorIs(t, f.uc.ReorderMedia(ctx, "g1", []string{"a", "zzz"}), ErrUnknownID)
	assert.ErrorIs(t, f.uc.ReorderMedia(ctx, "g1", []string{"a", "a"}), ErrDuplicateID)
	assert.ErrorIs(t, f.uc.ReorderMedia(ctx, "missing", []string{"a"}), ErrGalleryNotFound)
}

func TestDeleteMedia(t *testing.T) {
	f := newGalleryFixture(t)
	f.store.seed("g1", "hero", "a", "b")
	f.store.seed("g2", "portraits", "x")
	ctx := context.Background()

	require.NoError(t, f.uc.DeleteMedia(ctx, "g1", "a"))
	assert.Equal(t, []string{"b"}, f.storedOrder(t, "g1"))
	assert.Equal(t, []string{"hero/a.jpg"}, f.storage.keys)

	assert.ErrorIs(t, f.uc.DeleteMedia(ctx, "g1", "a"), ErrMediaNotFound)
	assert.ErrorIs(t, f.uc.DeleteMedia(ctx, "g1", "x"), ErrMediaNotFound, "media from another gallery")
}

func TestDeleteMedia_StorageFailureIsNotFatal(t *testing.T) {
	f := newGalleryFixture(t)
	f.store.seed("g1", "hero", "a")
	f.storage.err = errors.New("access denied")

	require.NoError(t, f.uc.DeleteMedia(context.Background(), "g1", "a"))
	assert.Empty(t, f.storedOrder(t, "g1"))
}

func TestPublicMediaCache(t *testing.T) {
	f := newGalleryFixture(t)
	f.store.seed("g1", "hero", "a", "b")
	ctx := context.Background()

	items, err := f.uc.PublicMedia(ctx, "hero")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, entity.MediaIDs(items))
	reads := f.store.listCalls.Load()

	items, err = f.uc.PublicMedia(ctx, "hero")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, entity.MediaIDs(items))
	assert.Equal(t, reads, f.store.listCalls.Load(), "second read served from cache")

	require.NoError(t, f.uc.ReorderMedia(ctx, "g1", []string{"b", "a"}))
	items, err = f.uc.PublicMedia(ctx, "hero")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, entity.MediaIDs(items), "reorder invalidates the cache")

	_, err = f.uc.PublicMedia(ctx, "unknown")
	assert.ErrorIs(t, err, ErrGalleryNotFound)
}

func TestPublicMedia_CacheErrorFallsBack(t *testing.T) {
	f := newGalleryFixture(t)
	f.store.seed("g1", "hero", "a")
	f.cache.failGet = true

	items, err := f.uc.PublicMedia(context.Background(), "hero")

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestBoardIsSharedPerGallery(t *testing.T) {
	f := newGalleryFixture(t)
	f.store.seed("g1", "hero", "a", "b")
	ctx := context.Background()

	b1, err := f.uc.Board(ctx, "g1")
	require.NoError(t, err)
	b2, err := f.uc.Board(ctx, "g1")
	require.NoError(t, err)
	assert.Same(t, b1, b2)

	_, err = f.uc.Board(ctx, "missing")
	assert.ErrorIs(t, err, ErrGalleryNotFound)
}

func TestBoardDragPersistsOrder(t *testing.T) {
	f := newGalleryFixture(t)
	f.store.seed("g1", "hero", "a", "b", "c")
	ctx := context.Background()
	board, err := f.uc.Board(ctx, "g1")
	require.NoError(t, err)

	on := true
	board.SetEditMode(&on)
	require.NoError(t, board.BeginDrag("c"))
	board.DragOver("a")
	board.EndDrag()
	f.clock.Advance(800 * time.Millisecond)

	assert.Eventually(t, func() bool {
		order := f.storedOrder(t, "g1")
		return len(order) == 3 && order[0] == "c" && order[1] == "a" && order[2] == "b"
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"c", "a", "b"}, board.Order())
}

func TestBoardAddMediaAppearsAfterEditing(t *testing.T) {
	f := newGalleryFixture(t)
	f.store.seed("g1", "hero", "a", "b")
	ctx := context.Background()
	board, err := f.uc.Board(ctx, "g1")
	require.NoError(t, err)

	on := true
	board.SetEditMode(&on)
	item, err := f.uc.AddMedia(ctx, "g1", "https://cdn.example.com/c.jpg", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, board.Order(), "the order is not reset while editing")

	off := false
	board.SetEditMode(&off)
	f.clock.Advance(500 * time.Millisecond)

	assert.Eventually(t, func() bool {
		order := board.Order()
		return len(order) == 3 && order[2] == item.ID
	}, time.Second, 5*time.Millisecond)
}

func TestBoardConfirmDeleteRemovesMedia(t *testing.T) {
	f := newGalleryFixture(t)
	f.store.seed("g1", "hero", "a", "b", "c")
	ctx := context.Background()
	board, err := f.uc.Board(ctx, "g1")
	require.NoError(t, err)

	require.NoError(t, board.RequestDelete("b"))
	require.NoError(t, board.ConfirmDelete(ctx))

	assert.Equal(t, []string{"a", "c"}, f.storedOrder(t, "g1"))
	assert.Equal(t, []string{"a", "c"}, board.Order())
	assert.Equal(t, []string{"hero/b.jpg"}, f.storage.keys)
}

func TestBoardSaveSkipsMediaDeletedWhileEditing(t *testing.T) {
	f := newGalleryFixture(t)
	f.store.seed("g1", "hero", "a", "b", "c")
	ctx := context.Background()
	board, err := f.uc.Board(ctx, "g1")
	require.NoError(t, err)

	on := true
	board.SetEditMode(&on)
	require.NoError(t, board.RequestDelete("b"))
	require.NoError(t, board.ConfirmDelete(ctx))
	require.NoError(t, board.BeginDrag("c"))
	board.DragOver("a")
	board.EndDrag()

	board.Done()

	assert.Equal(t, []string{"c", "a"}, f.storedOrder(t, "g1"))
}

func TestCloseFlushesPendingBoardSave(t *testing.T) {
	f := newGalleryFixture(t)
	f.store.seed("g1", "hero", "a", "b")
	board, err := f.uc.Board(context.Background(), "g1")
	require.NoError(t, err)

	on := true
	board.SetEditMode(&on)
	require.NoError(t, board.BeginDrag("b"))
	board.DragOver("a")
	board.EndDrag()

	f.uc.Close()

	assert.Equal(t, []string{"b", "a"}, f.storedOrder(t, "g1"))
}

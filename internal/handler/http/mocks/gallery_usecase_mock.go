package mocks

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
	"github.com/mikiasgoitom/Studiofolio/internal/usecase"
	"github.com/mikiasgoitom/Studiofolio/internal/usecase/arrangement"
	usecasecontract "github.com/mikiasgoitom/Studiofolio/internal/usecase/contract"
)

// MockGalleryUsecase is a mock implementation of the IGalleryUseCase interface. Its board
// is a real arrangement board on a fake clock, recording saves and deletions.
type MockGalleryUsecase struct {
	// Control mock behavior
	ShouldFailCreateGallery bool
	ShouldFailGetGallery    bool
	ShouldFailAddMedia      bool
	ShouldFailReorder       bool
	ShouldFailDelete        bool

	// Return values
	MockGallery entity.Gallery
	MockMedia   []entity.MediaItem

	Clock *clockwork.FakeClock

	mu      sync.Mutex
	board   *arrangement.Board
	Saved   [][]string
	Deleted []string
}

var _ usecasecontract.IGalleryUseCase = (*MockGalleryUsecase)(nil)

func NewMockGalleryUsecase() *MockGalleryUsecase {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	media := []entity.MediaItem{
		{ID: "m1", GalleryID: "g1", ImageURL: "https://cdn.example.com/1.jpg", Position: 0, CreatedAt: now},
		{ID: "m2", GalleryID: "g1", ImageURL: "https://cdn.example.com/2.jpg", Position: 1, CreatedAt: now},
		{ID: "m3", GalleryID: "g1", ImageURL: "https://cdn.example.com/3.jpg", Position: 2, CreatedAt: now},
	}
	return &MockGalleryUsecase{
		MockGallery: entity.Gallery{ID: "g1", Slug: "hero", Title: "Hero", CreatedAt: now},
		MockMedia:   media,
		Clock:       clockwork.NewFakeClock(),
	}
}

func (m *MockGalleryUsecase) CreateGallery(ctx context.Context, slug, title string) (*entity.Gallery, error) {
	if m.ShouldFailCreateGallery {
		return nil, usecase.ErrSlugTaken
	}
	g := m.MockGallery
	g.Slug, g.Title = slug, title
	return &g, nil
}

func (m *MockGalleryUsecase) GetGallery(ctx context.Context, galleryID string) (*entity.Gallery, error) {
	if m.ShouldFailGetGallery || galleryID != m.MockGallery.ID {
		return nil, usecase.ErrGalleryNotFound
	}
	g := m.MockGallery
	return &g, nil
}

func (m *MockGalleryUsecase) ListGalleries(ctx context.Context) ([]*entity.Gallery, error) {
	g := m.MockGallery
	return []*entity.Gallery{&g}, nil
}

func (m *MockGalleryUsecase) AddMedia(ctx context.Context, galleryID, imageURL, storageKey string) (*entity.MediaItem, error) {
	if m.ShouldFailAddMedia {
		return nil, errors.New("insert failed")
	}
	if _, err := m.GetGallery(ctx, galleryID); err != nil {
		return nil, err
	}
	return &entity.MediaItem{ID: "m-new", GalleryID: galleryID, ImageURL: imageURL, StorageKey: storageKey, Position: len(m.MockMedia)}, nil
}

func (m *MockGalleryUsecase) ListMedia(ctx context.Context, galleryID string) ([]entity.MediaItem, error) {
	if _, err := m.GetGallery(ctx, galleryID); err != nil {
		return nil, err
	}
	return m.MockMedia, nil
}

func (m *MockGalleryUsecase) PublicMedia(ctx context.Context, slug string) ([]entity.MediaItem, error) {
	if slug != m.MockGallery.Slug {
		return nil, usecase.ErrGalleryNotFound
	}
	return m.MockMedia, nil
}

func (m *MockGalleryUsecase) ReorderMedia(ctx context.Context, galleryID string, orderedIDs []string) error {
	if m.ShouldFailReorder {
		return usecase.ErrUnknownID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saved = append(m.Saved, orderedIDs)
	return nil
}

func (m *MockGalleryUsecase) DeleteMedia(ctx context.Context, galleryID, mediaID string) error {
	if m.ShouldFailDelete {
		return errors.New("delete failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, mediaID)
	return nil
}

func (m *MockGalleryUsecase) Board(ctx context.Context, galleryID string) (*arrangement.Board, error) {
	if _, err := m.GetGallery(ctx, galleryID); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.board == nil {
		m.board = arrangement.NewBoard(context.Background(), m.MockMedia, arrangement.Options{
			OnReorder: func(ctx context.Context, ids []string) error { return m.ReorderMedia(ctx, galleryID, ids) },
			OnDelete:  func(ctx context.Context, id string) error { return m.DeleteMedia(ctx, galleryID, id) },
			Clock:     m.Clock,
		})
	}
	return m.board, nil
}

// SavedOrders returns a copy of the orders persisted so far.
func (m *MockGalleryUsecase) SavedOrders() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.Saved...)
}

func (m *MockGalleryUsecase) Close() {
	m.mu.Lock()
	b := m.board
	m.mu.Unlock()
	if b != nil {
		b.Close()
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/contract"
	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
	"github.com/mikiasgoitom/Studiofolio/internal/infrastructure/metrics"
	"github.com/mikiasgoitom/Studiofolio/internal/usecase/arrangement"
	usecasecontract "github.com/mikiasgoitom/Studiofolio/internal/usecase/contract"
)

// GalleryUseCase implements IGalleryUseCase. It keeps one arrangement board per gallery
// and feeds every persisted change back into it.
type GalleryUseCase struct {
	galleryRepo contract.IGalleryRepository
	mediaRepo   contract.IMediaRepository
	uuidgen     contract.IUUIDGenerator
	validator   usecasecontract.IValidator
	logger      usecasecontract.IAppLogger
	settings    usecasecontract.BoardSettings

	// optional
	storage contract.IObjectStorage
	cache   contract.IContentCache
	clock   clockwork.Clock

	flight singleflight.Group

	mu     sync.Mutex
	boards map[string]*arrangement.Board
	ctx    context.Context
	cancel context.CancelFunc
}

var _ usecasecontract.IGalleryUseCase = (*GalleryUseCase)(nil)

// NewGalleryUseCase creates a GalleryUseCase.
func NewGalleryUseCase(galleryRepo contract.IGalleryRepository, mediaRepo contract.IMediaRepository, uuidgen contract.IUUIDGenerator, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger, settings usecasecontract.BoardSettings) *GalleryUseCase {
	ctx, cancel := context.WithCancel(context.Background())
	return &GalleryUseCase{
		galleryRepo: galleryRepo,
		mediaRepo:   mediaRepo,
		uuidgen:     uuidgen,
		validator:   validator,
		logger:      logger,
		settings:    settings,
		clock:       clockwork.NewRealClock(),
		boards:      make(map[string]*arrangement.Board),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// SetObjectStorage enables removal of image objects when media is deleted.
func (uc *GalleryUseCase) SetObjectStorage(storage contract.IObjectStorage) {
	uc.storage = storage
}

// SetContentCache enables caching of public gallery reads.
func (uc *GalleryUseCase) SetContentCache(cache contract.IContentCache) {
	uc.cache = cache
}

// SetClock replaces the clock handed to new boards.
func (uc *GalleryUseCase) SetClock(clock clockwork.Clock) {
	uc.clock = clock
}

// CreateGallery registers a new, empty gallery.
func (uc *GalleryUseCase) CreateGallery(ctx context.Context, slug, title string) (*entity.Gallery, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if err := uc.validator.ValidateSlug(slug); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := uc.galleryRepo.GetGalleryBySlug(ctx, slug); err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, contract.ErrNotFound) {
		return nil, fmt.Errorf("failed to check gallery slug: %w", err)
	}

	now := time.Now()
	gallery := &entity.Gallery{
		ID:        uc.uuidgen.NewUUID(),
		Slug:      slug,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.galleryRepo.CreateGallery(ctx, gallery); err != nil {
		uc.logger.Errorf("failed to create gallery %q: %v", slug, err)
		return nil, fmt.Errorf("failed to create gallery: %w", err)
	}
	return gallery, nil
}

// GetGallery returns a gallery by id.
func (uc *GalleryUseCase) GetGallery(ctx context.Context, galleryID string) (*entity.Gallery, error) {
	gallery, err := uc.galleryRepo.GetGalleryByID(ctx, galleryID)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, fmt.Errorf("failed to get gallery: %w", err)
	}
	return gallery, nil
}

// ListGalleries returns every active gallery.
func (uc *GalleryUseCase) ListGalleries(ctx context.Context) ([]*entity.Gallery, error) {
	galleries, err := uc.galleryRepo.ListGalleries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list galleries: %w", err)
	}
	return galleries, nil
}

// AddMedia appends an already uploaded image to the gallery. While the record is being
// written the gallery's board reports an upload in progress.
func (uc *GalleryUseCase) AddMedia(ctx context.Context, galleryID, imageURL, storageKey string) (*entity.MediaItem, error) {
	gallery, err := uc.GetGallery(ctx, galleryID)
	if err != nil {
		return nil, err
	}
	if err := uc.validator.ValidateImageURL(imageURL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if board := uc.openBoard(galleryID); board != nil {
		board.SetUploading(true)
		defer board.SetUploading(false)
	}

	count, err := uc.mediaRepo.CountMedia(ctx, galleryID)
	if err != nil {
		return nil, fmt.Errorf("failed to count gallery media: %w", err)
	}
	now := time.Now()
	item := &entity.MediaItem{
		ID:         uc.uuidgen.NewUUID(),
		GalleryID:  galleryID,
		ImageURL:   imageURL,
		StorageKey: storageKey,
		Position:   int(count),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.mediaRepo.CreateMedia(ctx, item); err != nil {
		uc.logger.Errorf("failed to add media to gallery %s: %v", galleryID, err)
		return nil, fmt.Errorf("failed to add media: %w", err)
	}

	uc.invalidate(ctx, gallery.Slug)
	uc.refreshBoard(ctx, galleryID)
	return item, nil
}

// ListMedia returns the gallery's media in stored order.
func (uc *GalleryUseCase) ListMedia(ctx context.Context, galleryID string) ([]entity.MediaItem, error) {
	if _, err := uc.GetGallery(ctx, galleryID); err != nil {
		return nil, err
	}
	items, err := uc.mediaRepo.GetMediaByGalleryID(ctx, galleryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	return items, nil
}

// PublicMedia serves the public site. Reads go through the cache and concurrent misses
// for the same gallery share one database round trip.
func (uc *GalleryUseCase) PublicMedia(ctx context.Context, slug string) ([]entity.MediaItem, error) {
	if uc.cache != nil {
		t0 := time.Now()
		cached, found, err := uc.cache.GetGalleryMedia(ctx, slug)
		metrics.ObserveCacheLookup("gallery", time.Since(t0).Seconds())
		switch {
		case err != nil:
			metrics.IncCacheError("gallery")
			uc.logger.Warningf("cache error: gallery media slug=%s err=%v", slug, err)
		case found:
			metrics.IncCacheHit("gallery")
			return cached, nil
		default:
			metrics.IncCacheMiss("gallery")
		}
	}

	v, err, _ := uc.flight.Do("gallery:"+slug, func() (interface{}, error) {
		gallery, err := uc.galleryRepo.GetGalleryBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, contract.ErrNotFound) {
				return nil, ErrGalleryNotFound
			}
			return nil, fmt.Errorf("failed to get gallery: %w", err)
		}
		items, err := uc.mediaRepo.GetMediaByGalleryID(ctx, gallery.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list media: %w", err)
		}
		if uc.cache != nil {
			if err := uc.cache.SetGalleryMedia(ctx, slug, items); err != nil {
				uc.logger.Warningf("cache set failed: gallery media slug=%s err=%v", slug, err)
			}
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.MediaItem), nil
}

// ReorderMedia stores a new order for the gallery. Items the request leaves out keep
// their relative order behind the listed ones.
func (uc *GalleryUseCase) ReorderMedia(ctx context.Context, galleryID string, orderedIDs []string) error {
	return uc.reorder(ctx, galleryID, orderedIDs, false)
}

// reorder persists orderedIDs. Boards pass dropGone so that ids deleted while the admin
// was still arranging do not fail the whole save.
func (uc *GalleryUseCase) reorder(ctx context.Context, galleryID string, orderedIDs []string, dropGone bool) error {
	gallery, err := uc.GetGallery(ctx, galleryID)
	if err != nil {
		return err
	}
	current, err := uc.mediaRepo.GetMediaByGalleryID(ctx, galleryID)
	if err != nil {
		return fmt.Errorf("failed to load gallery media: %w", err)
	}
	ids := entity.MediaIDs(current)
	if dropGone {
		orderedIDs = keepKnown(ids, orderedIDs)
	}
	order, err := completeOrder(ids, orderedIDs)
	if err != nil {
		return err
	}
	if err := uc.mediaRepo.UpdatePositions(ctx, galleryID, order); err != nil {
		return fmt.Errorf("failed to save media order: %w", err)
	}
	uc.logger.Infof("gallery %s: saved order of %d items", galleryID, len(order))

	uc.invalidate(ctx, gallery.Slug)
	uc.refreshBoard(ctx, galleryID)
	return nil
}

// DeleteMedia soft-deletes a media item and removes its stored object when storage is
// configured. Storage failures are logged; the record stays deleted.
func (uc *GalleryUseCase) DeleteMedia(ctx context.Context, galleryID, mediaID string) error {
	gallery, err := uc.GetGallery(ctx, galleryID)
	if err != nil {
		return err
	}
	item, err := uc.mediaRepo.GetMediaByID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return ErrMediaNotFound
		}
		return fmt.Errorf("failed to get media: %w", err)
	}
	if item.GalleryID != galleryID {
		return ErrMediaNotFound
	}
	if err := uc.mediaRepo.DeleteMedia(ctx, mediaID); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return ErrMediaNotFound
		}
		return fmt.Errorf("failed to delete media: %w", err)
	}

	if uc.storage != nil && item.StorageKey != "" {
		if err := uc.storage.DeleteObject(ctx, item.StorageKey); err != nil {
			uc.logger.Warningf("media %s deleted but object %q remains: %v", mediaID, item.StorageKey, err)
		}
	}

	uc.invalidate(ctx, gallery.Slug)
	uc.refreshBoard(ctx, galleryID)
	return nil
}

// Board returns the arrangement board for a gallery, loading its media on first use.
func (uc *GalleryUseCase) Board(ctx context.Context, galleryID string) (*arrangement.Board, error) {
	if board := uc.openBoard(galleryID); board != nil {
		return board, nil
	}

	items, err := uc.ListMedia(ctx, galleryID)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if board, ok := uc.boards[galleryID]; ok {
		return board, nil
	}
	board := arrangement.NewBoard(uc.ctx, items, uc.boardOptions(galleryID))
	uc.boards[galleryID] = board
	return board, nil
}

// Close shuts every board down, flushing saves that are still waiting on their debounce.
func (uc *GalleryUseCase) Close() {
	uc.mu.Lock()
	boards := uc.boards
	uc.boards = make(map[string]*arrangement.Board)
	uc.mu.Unlock()

	for _, board := range boards {
		board.Close()
	}
	uc.cancel()
}

func (uc *GalleryUseCase) boardOptions(galleryID string) arrangement.Options {
	return arrangement.Options{
		OnReorder: func(ctx context.Context, orderedIDs []string) error {
			return uc.reorder(ctx, galleryID, orderedIDs, true)
		},
		OnDelete: func(ctx context.Context, mediaID string) error {
			return uc.DeleteMedia(ctx, galleryID, mediaID)
		},
		OnEditModeChange: func(editing bool) {
			uc.logger.Infof("gallery %s: edit mode %t", galleryID, editing)
		},
		EmptyMessage:  uc.settings.EmptyMessage,
		Columns:       uc.settings.Columns,
		HoldThreshold: uc.settings.HoldThreshold,
		SaveDebounce:  uc.settings.SaveDebounce,
		SaveSettle:    uc.settings.SaveSettle,
		Clock:         uc.clock,
		Logger:        uc.logger,
	}
}

func (uc *GalleryUseCase) openBoard(galleryID string) *arrangement.Board {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.boards[galleryID]
}

// refreshBoard hands an open board the stored media, the same way a page reload would.
func (uc *GalleryUseCase) refreshBoard(ctx context.Context, galleryID string) {
	board := uc.openBoard(galleryID)
	if board == nil {
		return
	}
	items, err := uc.mediaRepo.GetMediaByGalleryID(ctx, galleryID)
	if err != nil {
		uc.logger.Warningf("gallery %s: board refresh failed: %v", galleryID, err)
		return
	}
	board.Reconcile(items)
}

func (uc *GalleryUseCase) invalidate(ctx context.Context, slug string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateGalleryMedia(ctx, slug); err != nil {
		uc.logger.Warningf("cache invalidation failed: gallery media slug=%s err=%v", slug, err)
	}
}

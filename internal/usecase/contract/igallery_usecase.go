package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
	"github.com/mikiasgoitom/Studiofolio/internal/usecase/arrangement"
)

// IGalleryUseCase manages galleries, their media and the admin arrangement boards.
type IGalleryUseCase interface {
	CreateGallery(ctx context.Context, slug, title string) (*entity.Gallery, error)
	GetGallery(ctx context.Context, galleryID string) (*entity.Gallery, error)
	ListGalleries(ctx context.Context) ([]*entity.Gallery, error)

	AddMedia(ctx context.Context, galleryID, imageURL, storageKey string) (*entity.MediaItem, error)
	ListMedia(ctx context.Context, galleryID string) ([]entity.MediaItem, error)
	PublicMedia(ctx context.Context, slug string) ([]entity.MediaItem, error)
	ReorderMedia(ctx context.Context, galleryID string, orderedIDs []string) error
	DeleteMedia(ctx context.Context, galleryID, mediaID string) error

	// Board returns the gallery's arrangement board, creating it on first use.
	Board(ctx context.Context, galleryID string) (*arrangement.Board, error)
	Close()
}

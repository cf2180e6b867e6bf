package contract

import (
	"context"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
)

// IGalleryRepository defines persistence for galleries.
type IGalleryRepository interface {
	CreateGallery(ctx context.Context, gallery *entity.Gallery) error
	GetGalleryByID(ctx context.Context, galleryID string) (*entity.Gallery, error)
	GetGalleryBySlug(ctx context.Context, slug string) (*entity.Gallery, error)
	ListGalleries(ctx context.Context) ([]*entity.Gallery, error)
}

// IMediaRepository defines persistence for gallery media.
type IMediaRepository interface {
	CreateMedia(ctx context.Context, media *entity.MediaItem) error
	GetMediaByID(ctx context.Context, mediaID string) (*entity.MediaItem, error)
	// GetMediaByGalleryID returns active media ordered by position, then creation time.
	GetMediaByGalleryID(ctx context.Context, galleryID string) ([]entity.MediaItem, error)
	CountMedia(ctx context.Context, galleryID string) (int64, error)
	// UpdatePositions sets position i on orderedIDs[i] within the gallery.
	UpdatePositions(ctx context.Context, galleryID string, orderedIDs []string) error
	DeleteMedia(ctx context.Context, mediaID string) error
}

package contract

import (
	"context"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
)

// AboutPage is the cached payload for the public About endpoint.
type AboutPage struct {
	About *entity.AboutUs      `json:"about"`
	Staff []entity.StaffMember `json:"staff"`
}

// IContentCache defines caching for public read paths.
type IContentCache interface {
	// Gallery media (by gallery slug)
	GetGalleryMedia(ctx context.Context, slug string) ([]entity.MediaItem, bool, error)
	SetGalleryMedia(ctx context.Context, slug string, items []entity.MediaItem) error
	InvalidateGalleryMedia(ctx context.Context, slug string) error

	// About page
	GetAboutPage(ctx context.Context) (*AboutPage, bool, error)
	SetAboutPage(ctx context.Context, page *AboutPage) error
	InvalidateAboutPage(ctx context.Context) error

	// Story engagements
	GetEngagements(ctx context.Context, storyID string) ([]entity.Engagement, bool, error)
	SetEngagements(ctx context.Context, storyID string, items []entity.Engagement) error
	InvalidateEngagements(ctx context.Context, storyID string) error
}

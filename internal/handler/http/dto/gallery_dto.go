package dto

import (
	"time"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
)

type CreateGalleryRequest struct {
	Slug  string `json:"slug" binding:"required,max=64,slug"`
	Title string `json:"title" binding:"required,notblank,max=200"`
}

type AddMediaRequest struct {
	ImageURL   string `json:"image_url" binding:"required,url"`
	StorageKey string `json:"storage_key" binding:"omitempty,max=1024"`
}

// ReorderRequest carries ids front to back. Ids left out keep their relative order at the end.
type ReorderRequest struct {
	OrderedIDs []string `json:"ordered_ids" binding:"required,dive,required"`
}

type GalleryResponse struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}

type MediaResponse struct {
	ID        string `json:"id"`
	GalleryID string `json:"gallery_id"`
	ImageURL  string `json:"image_url"`
	Position  int    `json:"position"`
	CreatedAt string `json:"created_at"`
}

func ToGalleryResponse(g entity.Gallery) GalleryResponse {
	return GalleryResponse{
		ID:        g.ID,
		Slug:      g.Slug,
		Title:     g.Title,
		CreatedAt: g.CreatedAt.Format(time.RFC3339),
	}
}

func ToMediaResponse(m entity.MediaItem) MediaResponse {
	return MediaResponse{
		ID:        m.ID,
		GalleryID: m.GalleryID,
		ImageURL:  m.ImageURL,
		Position:  m.Position,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

func ToMediaResponses(items []entity.MediaItem) []MediaResponse {
	out := make([]MediaResponse, 0, len(items))
	for _, m := range items {
		out = append(out, ToMediaResponse(m))
	}
	return out
}

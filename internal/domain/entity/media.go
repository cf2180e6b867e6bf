package entity

import "time"

// Gallery groups media items shown together on the public site (hero, services, portfolio ...).
type Gallery struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Slug      string    `bson:"slug" json:"slug"`
	Title     string    `bson:"title" json:"title"`
	IsDeleted bool      `bson:"is_deleted" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// MediaItem is a single image in a gallery. The image itself lives in object storage;
// StorageKey is the object key, ImageURL the public address.
type MediaItem struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	GalleryID  string    `bson:"gallery_id" json:"gallery_id"`
	ImageURL   string    `bson:"image_url" json:"image_url"`
	StorageKey string    `bson:"storage_key,omitempty" json:"storage_key,omitempty"`
	Position   int       `bson:"position" json:"position"`
	IsDeleted  bool      `bson:"is_deleted" json:"-"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// MediaIDs returns the ids of items in the given order.
func MediaIDs(items []MediaItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/contract"
	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
)

const aboutPageKey = "about:page"

// ContentCacheStore caches the public read paths in Redis as JSON.
type ContentCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.IContentCache = (*ContentCacheStore)(nil)

func NewContentCacheStore(rdb *redis.Client, ttl time.Duration) *ContentCacheStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &ContentCacheStore{rdb: rdb, ttl: ttl}
}

func galleryMediaKey(slug string) string { return fmt.Sprintf("gallery:slug:%s:media", slug) }
func engagementsKey(storyID string) string { return fmt.Sprintf("story:%s:engagements", storyID) }

func (c *ContentCacheStore) GetGalleryMedia(ctx context.Context, slug string) ([]entity.MediaItem, bool, error) {
	var items []entity.MediaItem
	found, err := c.get(ctx, galleryMediaKey(slug), &items)
	return items, found, err
}

func (c *ContentCacheStore) SetGalleryMedia(ctx context.Context, slug string, items []entity.MediaItem) error {
	return c.set(ctx, galleryMediaKey(slug), items)
}

func (c *ContentCacheStore) InvalidateGalleryMedia(ctx context.Context, slug string) error {
	return c.rdb.Del(ctx, galleryMediaKey(slug)).Err()
}

func (c *ContentCacheStore) GetAboutPage(ctx context.Context) (*contract.AboutPage, bool, error) {
	var page contract.AboutPage
	found, err := c.get(ctx, aboutPageKey, &page)
	if !found || err != nil {
		return nil, found, err
	}
	return &page, true, nil
}

func (c *ContentCacheStore) SetAboutPage(ctx context.Context, page *contract.AboutPage) error {
	return c.set(ctx, aboutPageKey, page)
}

func (c *ContentCacheStore) InvalidateAboutPage(ctx context.Context) error {
	return c.rdb.Del(ctx, aboutPageKey).Err()
}

func (c *ContentCacheStore) GetEngagements(ctx context.Context, storyID string) ([]entity.Engagement, bool, error) {
	var items []entity.Engagement
	found, err := c.get(ctx, engagementsKey(storyID), &items)
	return items, found, err
}

func (c *ContentCacheStore) SetEngagements(ctx context.Context, storyID string, items []entity.Engagement) error {
	return c.set(ctx, engagementsKey(storyID), items)
}

func (c *ContentCacheStore) InvalidateEngagements(ctx context.Context, storyID string) error {
	return c.rdb.Del(ctx, engagementsKey(storyID)).Err()
}

// get decodes key into dst. A missing key or an undecodable payload is a miss.
func (c *ContentCacheStore) get(ctx context.Context, key string, dst interface{}) (bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, nil
	}
	return true, nil
}

func (c *ContentCacheStore) set(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.ttl).Err()
}

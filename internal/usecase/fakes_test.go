package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/contract"
	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
)

type seqUUID struct{ n atomic.Int64 }

func (g *seqUUID) NewUUID() string { return fmt.Sprintf("id-%d", g.n.Add(1)) }

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Warnf(string, ...interface{})    {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{})   {}
func (nopLogger) Fatalf(string, ...interface{})   {}

type fakeValidator struct{}

func (fakeValidator) ValidateImageURL(url string) error {
	if len(url) < 8 || url[:8] != "https://" {
		return errors.New("bad url")
	}
	return nil
}

func (fakeValidator) ValidateSlug(slug string) error {
	if slug == "" || slug == "bad slug" {
		return errors.New("bad slug")
	}
	return nil
}

// memGalleryStore backs both gallery and media repositories.
type memGalleryStore struct {
	mu        sync.Mutex
	galleries map[string]*entity.Gallery
	media     map[string]*entity.MediaItem
	listCalls atomic.Int64
	failSave  bool
}

func newMemGalleryStore() *memGalleryStore {
	return &memGalleryStore{galleries: map[string]*entity.Gallery{}, media: map[string]*entity.MediaItem{}}
}

func (s *memGalleryStore) CreateGallery(_ context.Context, g *entity.Gallery) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *g
	s.galleries[g.ID] = &cp
	return nil
}

func (s *memGalleryStore) GetGalleryByID(_ context.Context, id string) (*entity.Gallery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.galleries[id]
	if !ok {
		return nil, contract.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (s *memGalleryStore) GetGalleryBySlug(_ context.Context, slug string) (*entity.Gallery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.galleries {
		if g.Slug == slug {
			cp := *g
			return &cp, nil
		}
	}
	return nil, contract.ErrNotFound
}

func (s *memGalleryStore) ListGalleries(_ context.Context) ([]*entity.Gallery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*entity.Gallery{}
	for _, g := range s.galleries {
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (s *memGalleryStore) CreateMedia(_ context.Context, m *entity.MediaItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *m
	s.media[m.ID] = &cp
	return nil
}

func (s *memGalleryStore) GetMediaByID(_ context.Context, id string) (*entity.MediaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.media[id]
	if !ok || m.IsDeleted {
		return nil, contract.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (s *memGalleryStore) GetMediaByGalleryID(_ context.Context, galleryID string) ([]entity.MediaItem, error) {
	s.listCalls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entity.MediaItem{}
	for _, m := range s.media {
		if m.GalleryID == galleryID && !m.IsDeleted {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *memGalleryStore) CountMedia(ctx context.Context, galleryID string) (int64, error) {
	items, _ := s.GetMediaByGalleryID(ctx, galleryID)
	return int64(len(items)), nil
}

func (s *memGalleryStore) UpdatePositions(_ context.Context, galleryID string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave {
		return errors.New("write conflict")
	}
	for i, id := range ids {
		if m, ok := s.media[id]; ok && m.GalleryID == galleryID {
			m.Position = i
		}
	}
	return nil
}

func (s *memGalleryStore) DeleteMedia(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.media[id]
	if !ok || m.IsDeleted {
		return contract.ErrNotFound
	}
	m.IsDeleted = true
	return nil
}

func (s *memGalleryStore) seed(galleryID, slug string, mediaIDs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.galleries[galleryID] = &entity.Gallery{ID: galleryID, Slug: slug, Title: slug}
	for i, id := range mediaIDs {
		s.media[id] = &entity.MediaItem{
			ID: id, GalleryID: galleryID, ImageURL: "https://cdn.example.com/" + id + ".jpg",
			StorageKey: slug + "/" + id + ".jpg", Position: i, CreatedAt: time.Unix(int64(i), 0),
		}
	}
}

// memCache is an in-memory IContentCache.
type memCache struct {
	mu          sync.Mutex
	gallery     map[string][]entity.MediaItem
	about       *contract.AboutPage
	engagements map[string][]entity.Engagement
	failGet     bool
}

func newMemCache() *memCache {
	return &memCache{gallery: map[string][]entity.MediaItem{}, engagements: map[string][]entity.Engagement{}}
}

func (c *memCache) GetGalleryMedia(_ context.Context, slug string) ([]entity.MediaItem, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return nil, false, errors.New("redis down")
	}
	items, ok := c.gallery[slug]
	return items, ok, nil
}

func (c *memCache) SetGalleryMedia(_ context.Context, slug string, items []entity.MediaItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gallery[slug] = items
	return nil
}

func (c *memCache) InvalidateGalleryMedia(_ context.Context, slug string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.gallery, slug)
	return nil
}

func (c *memCache) GetAboutPage(_ context.Context) (*contract.AboutPage, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.about, c.about != nil, nil
}

func (c *memCache) SetAboutPage(_ context.Context, page *contract.AboutPage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.about = page
	return nil
}

func (c *memCache) InvalidateAboutPage(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.about = nil
	return nil
}

func (c *memCache) GetEngagements(_ context.Context, storyID string) ([]entity.Engagement, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, ok := c.engagements[storyID]
	return items, ok, nil
}

func (c *memCache) SetEngagements(_ context.Context, storyID string, items []entity.Engagement) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engagements[storyID] = items
	return nil
}

func (c *memCache) InvalidateEngagements(_ context.Context, storyID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.engagements, storyID)
	return nil
}

type recordingStorage struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (s *recordingStorage) DeleteObject(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = append(s.keys, key)
	return s.err
}

// memAboutRepo is an in-memory IAboutRepository.
type memAboutRepo struct {
	mu    sync.Mutex
	about *entity.AboutUs
	staff map[string]entity.StaffMember
	reads atomic.Int64
}

func newMemAboutRepo() *memAboutRepo {
	return &memAboutRepo{staff: map[string]entity.StaffMember{}}
}

func (r *memAboutRepo) GetAboutUs(_ context.Context) (*entity.AboutUs, error) {
	r.reads.Add(1)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.about == nil {
		return nil, contract.ErrNotFound
	}
	cp := *r.about
	return &cp, nil
}

func (r *memAboutRepo) UpsertAboutUs(_ context.Context, updates map[string]interface{}) (*entity.AboutUs, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.about == nil {
		r.about = &entity.AboutUs{ID: "about", CreatedAt: time.Now()}
	}
	for k, v := range updates {
		switch k {
		case "main_image_url":
			r.about.MainImageURL = v.(string)
		case "description":
			r.about.Description = v.(string)
		case "meet_team_title":
			r.about.MeetTeamTitle = v.(string)
		case "meet_team_subtitle":
			r.about.MeetTeamSubtitle = v.(string)
		case "what_we_do_title":
			r.about.WhatWeDoTitle = v.(string)
		case "what_we_do_description":
			r.about.WhatWeDoDescription = v.(string)
		case "updated_at":
			r.about.UpdatedAt = v.(time.Time)
		}
	}
	cp := *r.about
	return &cp, nil
}

func (r *memAboutRepo) ListStaff(_ context.Context, aboutUsID string) ([]entity.StaffMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.StaffMember{}
	for _, m := range r.staff {
		if m.AboutUsID == aboutUsID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (r *memAboutRepo) AddStaff(_ context.Context, m *entity.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staff[m.ID] = *m
	return nil
}

func (r *memAboutRepo) DeleteStaff(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.staff[id]; !ok {
		return contract.ErrNotFound
	}
	delete(r.staff, id)
	return nil
}

func (r *memAboutRepo) UpdateStaffOrder(_ context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, id := range ids {
		m := r.staff[id]
		m.DisplayOrder = i
		r.staff[id] = m
	}
	return nil
}

// memEngagementRepo is an in-memory IEngagementRepository.
type memEngagementRepo struct {
	mu    sync.Mutex
	items map[string]entity.Engagement
	lists atomic.Int64
}

func newMemEngagementRepo() *memEngagementRepo {
	return &memEngagementRepo{items: map[string]entity.Engagement{}}
}

func (r *memEngagementRepo) Create(_ context.Context, e *entity.Engagement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[e.ID] = *e
	return nil
}

func (r *memEngagementRepo) GetByID(_ context.Context, id string) (*entity.Engagement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		return nil, contract.ErrNotFound
	}
	return &e, nil
}

func (r *memEngagementRepo) ListByStory(_ context.Context, storyID string) ([]entity.Engagement, error) {
	r.lists.Add(1)
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Engagement{}
	for _, e := range r.items {
		if e.StoryID == storyID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memEngagementRepo) Update(_ context.Context, id string, updates map[string]interface{}) (*entity.Engagement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		return nil, contract.ErrNotFound
	}
	if v, ok := updates["reaction_type"]; ok {
		e.ReactionType = v.(entity.ReactionType)
	}
	if v, ok := updates["content"]; ok {
		e.Content = v.(string)
	}
	r.items[id] = e
	return &e, nil
}

func (r *memEngagementRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return contract.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memEngagementRepo) CountByReaction(_ context.Context, storyID string) (map[entity.ReactionType]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[entity.ReactionType]int64{}
	for _, e := range r.items {
		if e.StoryID == storyID {
			counts[e.ReactionType]++
		}
	}
	return counts, nil
}

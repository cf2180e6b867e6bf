package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/singleflight"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/contract"
	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
	"github.com/mikiasgoitom/Studiofolio/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Studiofolio/internal/usecase/contract"
)

type EngagementUseCaseImpl struct {
	repo    contract.IEngagementRepository
	uuidgen contract.IUUIDGenerator
	logger  usecasecontract.IAppLogger
	cache   contract.IContentCache
	flight  singleflight.Group
}

var _ usecasecontract.IEngagementUseCase = (*EngagementUseCaseImpl)(nil)

func NewEngagementUseCase(repo contract.IEngagementRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *EngagementUseCaseImpl {
	return &EngagementUseCaseImpl{
		repo:    repo,
		uuidgen: uuidgen,
		logger:  logger,
	}
}

func (uc *EngagementUseCaseImpl) SetContentCache(cache contract.IContentCache) {
	uc.cache = cache
}

// ListForStory returns a story's engagements, newest first.
func (uc *EngagementUseCaseImpl) ListForStory(ctx context.Context, storyID string) ([]entity.Engagement, error) {
	storyID = strings.TrimSpace(storyID)
	if storyID == "" {
		return nil, ErrStoryIDRequired
	}

	if uc.cache != nil {
		t0 := time.Now()
		cached, found, err := uc.cache.GetEngagements(ctx, storyID)
		metrics.ObserveCacheLookup("engagement", time.Since(t0).Seconds())
		switch {
		case err != nil:
			metrics.IncCacheError("engagement")
			uc.logger.Warningf("cache error: engagements story=%s err=%v", storyID, err)
		case found:
			metrics.IncCacheHit("engagement")
			return cached, nil
		default:
			metrics.IncCacheMiss("engagement")
		}
	}

	v, err, _ := uc.flight.Do("engagements:"+storyID, func() (interface{}, error) {
		items, err := uc.repo.ListByStory(ctx, storyID)
		if err != nil {
			return nil, fmt.Errorf("failed to list engagements: %w", err)
		}
		if items == nil {
			items = []entity.Engagement{}
		}
		if uc.cache != nil {
			if err := uc.cache.SetEngagements(ctx, storyID, items); err != nil {
				uc.logger.Warningf("cache set failed: engagements story=%s err=%v", storyID, err)
			}
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.Engagement), nil
}

func (uc *EngagementUseCaseImpl) Create(ctx context.Context, storyID string, reaction entity.ReactionType, content string) (*entity.Engagement, error) {
	storyID = strings.TrimSpace(storyID)
	if storyID == "" {
		return nil, ErrStoryIDRequired
	}
	if !reaction.IsValid() {
		return nil, ErrInvalidReaction
	}
	content, err := validateEngagementContent(content)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	engagement := &entity.Engagement{
		ID:           uc.uuidgen.NewUUID(),
		StoryID:      storyID,
		ReactionType: reaction,
		Content:      content,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, engagement); err != nil {
		uc.logger.Errorf("failed to create engagement on story %s: %v", storyID, err)
		return nil, fmt.Errorf("failed to create engagement: %w", err)
	}
	uc.invalidate(ctx, storyID)
	return engagement, nil
}

func (uc *EngagementUseCaseImpl) Update(ctx context.Context, engagementID string, reaction *entity.ReactionType, content *string) (*entity.Engagement, error) {
	updates := make(map[string]interface{})
	if reaction != nil {
		if !reaction.IsValid() {
			return nil, ErrInvalidReaction
		}
		updates["reaction_type"] = *reaction
	}
	if content != nil {
		c, err := validateEngagementContent(*content)
		if err != nil {
			return nil, err
		}
		updates["content"] = c
	}
	if len(updates) == 0 {
		return nil, ErrNothingToUpdate
	}
	updates["updated_at"] = time.Now()

	engagement, err := uc.repo.Update(ctx, engagementID, updates)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrEngagementNotFound
		}
		return nil, fmt.Errorf("failed to update engagement: %w", err)
	}
	uc.invalidate(ctx, engagement.StoryID)
	return engagement, nil
}

func (uc *EngagementUseCaseImpl) Delete(ctx context.Context, engagementID string) error {
	engagement, err := uc.repo.GetByID(ctx, engagementID)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return ErrEngagementNotFound
		}
		return fmt.Errorf("failed to get engagement: %w", err)
	}
	if err := uc.repo.Delete(ctx, engagementID); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return ErrEngagementNotFound
		}
		return fmt.Errorf("failed to delete engagement: %w", err)
	}
	uc.invalidate(ctx, engagement.StoryID)
	return nil
}

// Summary counts reactions on a story. Every reaction type is present, zero or not.
func (uc *EngagementUseCaseImpl) Summary(ctx context.Context, storyID string) (*entity.EngagementSummary, error) {
	storyID = strings.TrimSpace(storyID)
	if storyID == "" {
		return nil, ErrStoryIDRequired
	}
	counts, err := uc.repo.CountByReaction(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("failed to count reactions: %w", err)
	}
	summary := &entity.EngagementSummary{
		StoryID: storyID,
		Counts:  make(map[entity.ReactionType]int64, len(entity.ReactionTypes())),
	}
	for _, r := range entity.ReactionTypes() {
		n := counts[r]
		summary.Counts[r] = n
		summary.Total += n
	}
	return summary, nil
}

func validateEngagementContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrContentRequired
	}
	if utf8.RuneCountInString(content) > entity.MaxEngagementContentLength {
		return "", ErrContentTooLong
	}
	return content, nil
}

func (uc *EngagementUseCaseImpl) invalidate(ctx context.Context, storyID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateEngagements(ctx, storyID); err != nil {
		uc.logger.Warningf("cache invalidation failed: engagements story=%s err=%v", storyID, err)
	}
}

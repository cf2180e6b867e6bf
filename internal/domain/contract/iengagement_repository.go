package contract

import (
	"context"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
)

// IEngagementRepository persists reader reactions and comments on stories.
type IEngagementRepository interface {
	Create(ctx context.Context, engagement *entity.Engagement) error
	GetByID(ctx context.Context, id string) (*entity.Engagement, error)
	ListByStory(ctx context.Context, storyID string) ([]entity.Engagement, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.Engagement, error)
	Delete(ctx context.Context, id string) error
	CountByReaction(ctx context.Context, storyID string) (map[entity.ReactionType]int64, error)
}

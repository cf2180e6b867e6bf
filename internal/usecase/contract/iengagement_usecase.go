package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
)

// IEngagementUseCase manages reader reactions and comments on magazine stories.
type IEngagementUseCase interface {
	ListForStory(ctx context.Context, storyID string) ([]entity.Engagement, error)
	Create(ctx context.Context, storyID string, reaction entity.ReactionType, content string) (*entity.Engagement, error)
	Update(ctx context.Context, engagementID string, reaction *entity.ReactionType, content *string) (*entity.Engagement, error)
	Delete(ctx context.Context, engagementID string) error
	Summary(ctx context.Context, storyID string) (*entity.EngagementSummary, error)
}

package mocks

import (
	"context"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
	"github.com/mikiasgoitom/Studiofolio/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Studiofolio/internal/usecase/contract"
)

// MockEngagementUsecase is a mock implementation of the IEngagementUseCase interface
type MockEngagementUsecase struct {
	ShouldFailCreate bool
	ShouldFailUpdate bool
	ShouldFailDelete bool

	MockEngagements []entity.Engagement
}

var _ usecasecontract.IEngagementUseCase = (*MockEngagementUsecase)(nil)

func NewMockEngagementUsecase() *MockEngagementUsecase {
	return &MockEngagementUsecase{
		MockEngagements: []entity.Engagement{
			{ID: "e2", StoryID: "story-1", ReactionType: entity.ReactionLove, Content: "Beautiful light"},
			{ID: "e1", StoryID: "story-1", ReactionType: entity.ReactionSmile, Content: "So happy for them"},
		},
	}
}

func (m *MockEngagementUsecase) ListForStory(ctx context.Context, storyID string) ([]entity.Engagement, error) {
	var out []entity.Engagement
	for _, e := range m.MockEngagements {
		if e.StoryID == storyID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockEngagementUsecase) Create(ctx context.Context, storyID string, reaction entity.ReactionType, content string) (*entity.Engagement, error) {
	if m.ShouldFailCreate {
		return nil, usecase.ErrContentTooLong
	}
	return &entity.Engagement{ID: "e-new", StoryID: storyID, ReactionType: reaction, Content: content}, nil
}

func (m *MockEngagementUsecase) Update(ctx context.Context, engagementID string, reaction *entity.ReactionType, content *string) (*entity.Engagement, error) {
	if m.ShouldFailUpdate {
		return nil, usecase.ErrEngagementNotFound
	}
	if reaction == nil && content == nil {
		return nil, usecase.ErrNothingToUpdate
	}
	e := entity.Engagement{ID: engagementID, StoryID: "story-1", ReactionType: entity.ReactionSmile}
	if reaction != nil {
		e.ReactionType = *reaction
	}
	if content != nil {
		e.Content = *content
	}
	return &e, nil
}

func (m *MockEngagementUsecase) Delete(ctx context.Context, engagementID string) error {
	if m.ShouldFailDelete {
		return usecase.ErrEngagementNotFound
	}
	return nil
}

func (m *MockEngagementUsecase) Summary(ctx context.Context, storyID string) (*entity.EngagementSummary, error) {
	summary := &entity.EngagementSummary{StoryID: storyID, Counts: map[entity.ReactionType]int64{}}
	for _, r := range entity.ReactionTypes() {
		summary.Counts[r] = 0
	}
	for _, e := range m.MockEngagements {
		if e.StoryID == storyID {
			summary.Counts[e.ReactionType]++
			summary.Total++
		}
	}
	return summary, nil
}

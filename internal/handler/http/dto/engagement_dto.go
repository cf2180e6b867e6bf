package dto

import "github.com/mikiasgoitom/Studiofolio/internal/domain/entity"

type CreateEngagementRequest struct {
	ReactionType entity.ReactionType `json:"reaction_type" binding:"required,reaction"`
	Content      string              `json:"content" binding:"required,notblank,max=500"`
}

// UpdateEngagementRequest changes the reaction, the content or both.
type UpdateEngagementRequest struct {
	ReactionType *entity.ReactionType `json:"reaction_type" binding:"omitempty,reaction"`
	Content      *string              `json:"content" binding:"omitempty,notblank,max=500"`
}

package entity

import "time"

// ReactionType is the emoji a reader picks when leaving feedback on a story.
type ReactionType string

const (
	ReactionSmile     ReactionType = "smile"
	ReactionSurprised ReactionType = "surprised"
	ReactionSad       ReactionType = "sad"
	ReactionLove      ReactionType = "love"
	ReactionShocked   ReactionType = "shocked"
)

// MaxEngagementContentLength caps the comment attached to a reaction.
const MaxEngagementContentLength = 500

// ReactionTypes lists every accepted reaction in display order.
func ReactionTypes() []ReactionType {
	return []ReactionType{ReactionSmile, ReactionSurprised, ReactionSad, ReactionLove, ReactionShocked}
}

// IsValid reports whether r is one of the known reactions.
func (r ReactionType) IsValid() bool {
	for _, t := range ReactionTypes() {
		if r == t {
			return true
		}
	}
	return false
}

// Engagement is a reader's reaction plus comment on a magazine story.
type Engagement struct {
	ID           string       `bson:"_id,omitempty" json:"id"`
	StoryID      string       `bson:"story_id" json:"story_id"`
	ReactionType ReactionType `bson:"reaction_type" json:"reaction_type"`
	Content      string       `bson:"content" json:"content"`
	CreatedAt    time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `bson:"updated_at" json:"updated_at"`
}

// EngagementSummary counts reactions left on a story.
type EngagementSummary struct {
	StoryID string                 `json:"story_id"`
	Total   int64                  `json:"total"`
	Counts  map[ReactionType]int64 `json:"counts"`
}

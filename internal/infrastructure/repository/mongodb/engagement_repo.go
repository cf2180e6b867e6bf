package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/contract"
	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
)

type EngagementRepository struct {
	collection *mongo.Collection
}

var _ contract.IEngagementRepository = (*EngagementRepository)(nil)

func NewEngagementRepository(db *mongo.Database) *EngagementRepository {
	return &EngagementRepository{collection: db.Collection("magazine_engagements")}
}

func (r *EngagementRepository) Create(ctx context.Context, engagement *entity.Engagement) error {
	if _, err := r.collection.InsertOne(ctx, engagement); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}
	return nil
}

func (r *EngagementRepository) GetByID(ctx context.Context, id string) (*entity.Engagement, error) {
	var engagement entity.Engagement
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&engagement); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get engagement: %w", err)
	}
	return &engagement, nil
}

// ListByStory returns the story's engagements, newest first.
func (r *EngagementRepository) ListByStory(ctx context.Context, storyID string) ([]entity.Engagement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"story_id": storyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list engagements: %w", err)
	}
	defer cursor.Close(ctx)

	items := []entity.Engagement{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode engagements: %w", err)
	}
	return items, nil
}

func (r *EngagementRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.Engagement, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var engagement entity.Engagement
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(updates)}, opts).Decode(&engagement)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update engagement: %w", err)
	}
	return &engagement, nil
}

func (r *EngagementRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete engagement: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

// CountByReaction groups the story's engagements by reaction type.
func (r *EngagementRepository) CountByReaction(ctx context.Context, storyID string) (map[entity.ReactionType]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"story_id": storyID}}},
		{{Key: "$group", Value: bson.M{"_id": "$reaction_type", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count reactions: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Reaction entity.ReactionType `bson:"_id"`
		Count    int64               `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode reaction counts: %w", err)
	}
	counts := make(map[entity.ReactionType]int64, len(rows))
	for _, row := range rows {
		counts[row.Reaction] = row.Count
	}
	return counts, nil
}

package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/contract"
	"github.com/mikiasgoitom/Studiofolio/internal/domain/entity"
)

// MediaRepository represents the MongoDB implementation of the IMediaRepository interface.
type MediaRepository struct {
	collection *mongo.Collection
}

var _ contract.IMediaRepository = (*MediaRepository)(nil)

// NewMediaRepository creates and returns a new MediaRepository instance.
func NewMediaRepository(db *mongo.Database) *MediaRepository {
	return &MediaRepository{
		collection: db.Collection("media"),
	}
}

// EnsureIndexes creates the index backing ordered gallery reads.
func (r *MediaRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "gallery_id", Value: 1}, {Key: "is_deleted", Value: 1}, {Key: "position", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create media index: %w", err)
	}
	return nil
}

// CreateMedia inserts a new media record into the database.
func (r *MediaRepository) CreateMedia(ctx context.Context, media *entity.MediaItem) error {
	if _, err := r.collection.InsertOne(ctx, media); err != nil {
		return fmt.Errorf("failed to create media record: %w", err)
	}
	return nil
}

// GetMediaByID retrieves a single media record by its unique ID, excluding soft-deleted records.
func (r *MediaRepository) GetMediaByID(ctx context.Context, mediaID string) (*entity.MediaItem, error) {
	var media entity.MediaItem
	filter := bson.M{
		"_id":        mediaID,
		"is_deleted": false,
	}

	err := r.collection.FindOne(ctx, filter).Decode(&media)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("media %s: %w", mediaID, contract.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve media record with ID %s: %w", mediaID, err)
	}
	return &media, nil
}

// GetMediaByGalleryID returns the gallery's active media by position, oldest first on ties.
func (r *MediaRepository) GetMediaByGalleryID(ctx context.Context, galleryID string) ([]entity.MediaItem, error) {
	filter := bson.M{"gallery_id": galleryID, "is_deleted": false}
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve media for gallery %s: %w", galleryID, err)
	}
	defer cursor.Close(ctx)

	mediaList := []entity.MediaItem{}
	if err = cursor.All(ctx, &mediaList); err != nil {
		return nil, fmt.Errorf("failed to decode media records: %w", err)
	}
	return mediaList, nil
}

func (r *MediaRepository) CountMedia(ctx context.Context, galleryID string) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"gallery_id": galleryID, "is_deleted": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count media for gallery %s: %w", galleryID, err)
	}
	return n, nil
}

// UpdatePositions writes every position in one unordered bulk write.
func (r *MediaRepository) UpdatePositions(ctx context.Context, galleryID string, orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return nil
	}
	now := time.Now()
	models := make([]mongo.WriteModel, 0, len(orderedIDs))
	for i, id := range orderedIDs {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id, "gallery_id": galleryID, "is_deleted": false}).
			SetUpdate(bson.M{"$set": bson.M{"position": i, "updated_at": now}}))
	}
	if _, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("failed to update media positions for gallery %s: %w", galleryID, err)
	}
	return nil
}

// DeleteMedia soft deletes a media record by its ID.
func (r *MediaRepository) DeleteMedia(ctx context.Context, mediaID string) error {
	filter := bson.M{"_id": mediaID, "is_deleted": false}
	update := bson.M{
		"$set": bson.M{
			"is_deleted": true,
			"updated_at": time.Now(),
		},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to soft-delete media record with ID %s: %w", mediaID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("media %s: %w", mediaID, contract.ErrNotFound)
	}
	return nil
}

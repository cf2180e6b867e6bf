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

// GalleryRepository is the MongoDB implementation of IGalleryRepository.
type GalleryRepository struct {
	collection *mongo.Collection
}

var _ contract.IGalleryRepository = (*GalleryRepository)(nil)

func NewGalleryRepository(db *mongo.Database) *GalleryRepository {
	return &GalleryRepository{collection: db.Collection("galleries")}
}

// EnsureIndexes creates the unique slug index.
func (r *GalleryRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create gallery slug index: %w", err)
	}
	return nil
}

func (r *GalleryRepository) CreateGallery(ctx context.Context, gallery *entity.Gallery) error {
	if _, err := r.collection.InsertOne(ctx, gallery); err != nil {
		return fmt.Errorf("failed to create gallery: %w", err)
	}
	return nil
}

func (r *GalleryRepository) GetGalleryByID(ctx context.Context, galleryID string) (*entity.Gallery, error) {
	return r.findOne(ctx, bson.M{"_id": galleryID, "is_deleted": false})
}

func (r *GalleryRepository) GetGalleryBySlug(ctx context.Context, slug string) (*entity.Gallery, error) {
	return r.findOne(ctx, bson.M{"slug": slug, "is_deleted": false})
}

func (r *GalleryRepository) ListGalleries(ctx context.Context) ([]*entity.Gallery, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"is_deleted": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list galleries: %w", err)
	}
	defer cursor.Close(ctx)

	galleries := []*entity.Gallery{}
	if err := cursor.All(ctx, &galleries); err != nil {
		return nil, fmt.Errorf("failed to decode galleries: %w", err)
	}
	return galleries, nil
}

func (r *GalleryRepository) findOne(ctx context.Context, filter bson.M) (*entity.Gallery, error) {
	var gallery entity.Gallery
	if err := r.collection.FindOne(ctx, filter).Decode(&gallery); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get gallery: %w", err)
	}
	return &gallery, nil
}

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

// aboutDocumentID keys the single About document.
const aboutDocumentID = "about"

// AboutRepository stores the About page and its staff list.
type AboutRepository struct {
	collection      *mongo.Collection
	staffCollection *mongo.Collection
}

var _ contract.IAboutRepository = (*AboutRepository)(nil)

func NewAboutRepository(db *mongo.Database) *AboutRepository {
	return &AboutRepository{
		collection:      db.Collection("about_us"),
		staffCollection: db.Collection("about_us_staff"),
	}
}

func (r *AboutRepository) GetAboutUs(ctx context.Context) (*entity.AboutUs, error) {
	var about entity.AboutUs
	if err := r.collection.FindOne(ctx, bson.M{"_id": aboutDocumentID}).Decode(&about); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get about page: %w", err)
	}
	return &about, nil
}

// UpsertAboutUs sets the given fields and returns the document after the update.
func (r *AboutRepository) UpsertAboutUs(ctx context.Context, updates map[string]interface{}) (*entity.AboutUs, error) {
	update := bson.M{
		"$set":         bson.M(updates),
		"$setOnInsert": bson.M{"created_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var about entity.AboutUs
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": aboutDocumentID}, update, opts).Decode(&about); err != nil {
		return nil, fmt.Errorf("failed to upsert about page: %w", err)
	}
	return &about, nil
}

func (r *AboutRepository) ListStaff(ctx context.Context, aboutUsID string) ([]entity.StaffMember, error) {
	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}, {Key: "created_at", Value: 1}})
	cursor, err := r.staffCollection.Find(ctx, bson.M{"about_us_id": aboutUsID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer cursor.Close(ctx)

	staff := []entity.StaffMember{}
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("failed to decode staff: %w", err)
	}
	return staff, nil
}

func (r *AboutRepository) AddStaff(ctx context.Context, member *entity.StaffMember) error {
	if _, err := r.staffCollection.InsertOne(ctx, member); err != nil {
		return fmt.Errorf("failed to add staff member: %w", err)
	}
	return nil
}

func (r *AboutRepository) DeleteStaff(ctx context.Context, staffID string) error {
	res, err := r.staffCollection.DeleteOne(ctx, bson.M{"_id": staffID})
	if err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

func (r *AboutRepository) UpdateStaffOrder(ctx context.Context, orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(orderedIDs))
	for i, id := range orderedIDs {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": bson.M{"display_order": i}}))
	}
	if _, err := r.staffCollection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("failed to update staff order: %w", err)
	}
	return nil
}

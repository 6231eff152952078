package repository

import (
	"context"
	"time"

	"digitalagency/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityFilter narrows feed queries. ProjectID is optional.
type ActivityFilter struct {
	ClientEmail string
	ProjectID   primitive.ObjectID
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	Find(ctx context.Context, filter ActivityFilter, skip, limit int64) ([]models.Activity, error)
	CountFiltered(ctx context.Context, filter ActivityFilter) (int64, error)
	CountSince(ctx context.Context, email string, since time.Time) (int64, error)
	TypeDistribution(ctx context.Context, email string) ([]models.GroupCount, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type activityRepository struct {
	collection *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) ActivityRepository {
	return &activityRepository{
		collection: db.Collection("activities"),
	}
}

func (r *activityRepository) Create(ctx context.Context, activity *models.Activity) error {
	activity.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, activity)
	return err
}

func (f ActivityFilter) query() bson.M {
	query := bson.M{"clientEmail": f.ClientEmail}
	if !f.ProjectID.IsZero() {
		query["projectId"] = f.ProjectID
	}
	return query
}

// Find returns a page sorted by createdAt descending. Ordering across
// concurrent inserts is whatever the timestamps say; sorting happens at read
// time.
func (r *activityRepository) Find(ctx context.Context, filter ActivityFilter, skip, limit int64) ([]models.Activity, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetSkip(skip).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, filter.query(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	activities := []models.Activity{}
	if err = cursor.All(ctx, &activities); err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *activityRepository) CountFiltered(ctx context.Context, filter ActivityFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, filter.query())
}

func (r *activityRepository) CountSince(ctx context.Context, email string, since time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"clientEmail": email,
		"createdAt":   bson.M{"$gte": since},
	})
}

func (r *activityRepository) TypeDistribution(ctx context.Context, email string) ([]models.GroupCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"clientEmail": email}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$type",
			"count": bson.M{"$sum": 1},
		}}},
	}
	return runGroupPipeline(ctx, r.collection, pipeline)
}

// DeleteOlderThan removes entries created before cutoff and reports how many
// went. An empty range deletes 0 and succeeds.
func (r *activityRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"createdAt": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

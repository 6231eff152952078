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

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *models.Subscription) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Subscription, error)
	GetAll(ctx context.Context) ([]models.Subscription, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	DailyTrend(ctx context.Context, since time.Time) ([]models.TrendPoint, error)
}

type subscriptionRepository struct {
	collection *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) SubscriptionRepository {
	return &subscriptionRepository{
		collection: db.Collection("subscriptions"),
	}
}

// Create relies on the unique email index; a duplicate insert fails with a
// ConflictError, never a silent overwrite.
func (r *subscriptionRepository) Create(ctx context.Context, subscription *models.Subscription) error {
	subscription.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, subscription)
	return translateErr(err, "Subscription", "Email")
}

func (r *subscriptionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&subscription)
	if err != nil {
		return nil, translateErr(err, "Subscription", "Email")
	}

	return &subscription, nil
}

func (r *subscriptionRepository) GetAll(ctx context.Context) ([]models.Subscription, error) {
	opts := options.Find().SetSort(bson.M{"subscribedAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subscriptions := []models.Subscription{}
	if err = cursor.All(ctx, &subscriptions); err != nil {
		return nil, err
	}

	return subscriptions, nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return translateErr(mongo.ErrNoDocuments, "Subscription", "Email")
	}

	return nil
}

func (r *subscriptionRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *subscriptionRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"subscribedAt": bson.M{"$gte": since}})
}

func (r *subscriptionRepository) DailyTrend(ctx context.Context, since time.Time) ([]models.TrendPoint, error) {
	return dailyTrend(ctx, r.collection, "subscribedAt", since)
}

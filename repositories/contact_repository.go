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

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	GetAll(ctx context.Context) ([]models.Contact, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	DailyTrend(ctx context.Context, since time.Time) ([]models.TrendPoint, error)
}

type contactRepository struct {
	collection *mongo.Collection
}

func NewContactRepository(db *mongo.Database) ContactRepository {
	return &contactRepository{
		collection: db.Collection("contacts"),
	}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	contact.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, contact)
	return err
}

func (r *contactRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	var contact models.Contact
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&contact)
	if err != nil {
		return nil, translateErr(err, "Contact", "")
	}

	return &contact, nil
}

func (r *contactRepository) GetAll(ctx context.Context) ([]models.Contact, error) {
	opts := options.Find().SetSort(bson.M{"submittedAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contacts := []models.Contact{}
	if err = cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}

	return contacts, nil
}

func (r *contactRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return translateErr(mongo.ErrNoDocuments, "Contact", "")
	}

	return nil
}

func (r *contactRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *contactRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"submittedAt": bson.M{"$gte": since}})
}

func (r *contactRepository) DailyTrend(ctx context.Context, since time.Time) ([]models.TrendPoint, error) {
	return dailyTrend(ctx, r.collection, "submittedAt", since)
}

// dailyTrend buckets documents per calendar day. Days with no documents are
// absent from the result; the series is sparse and sorted ascending.
func dailyTrend(ctx context.Context, collection *mongo.Collection, dateField string, since time.Time) ([]models.TrendPoint, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{dateField: bson.M{"$gte": since}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$" + dateField},
			},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	points := []models.TrendPoint{}
	if err = cursor.All(ctx, &points); err != nil {
		return nil, err
	}

	return points, nil
}

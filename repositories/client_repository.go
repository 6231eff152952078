package repository

import (
	"context"

	"digitalagency/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error)
	GetAll(ctx context.Context) ([]models.Client, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Client, error)
	Count(ctx context.Context) (int64, error)
	TopByRating(ctx context.Context, limit int64) ([]models.Client, error)
}

type clientRepository struct {
	collection *mongo.Collection
}

func NewClientRepository(db *mongo.Database) ClientRepository {
	return &clientRepository{
		collection: db.Collection("clients"),
	}
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	client.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, client)
	return err
}

func (r *clientRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	var client models.Client
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&client)
	if err != nil {
		return nil, translateErr(err, "Client", "")
	}

	return &client, nil
}

func (r *clientRepository) GetAll(ctx context.Context) ([]models.Client, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	clients := []models.Client{}
	if err = cursor.All(ctx, &clients); err != nil {
		return nil, err
	}

	return clients, nil
}

func (r *clientRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	var client models.Client
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&client)
	if err != nil {
		return nil, translateErr(err, "Client", "")
	}

	return &client, nil
}

func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *clientRepository) TopByRating(ctx context.Context, limit int64) ([]models.Client, error) {
	opts := options.Find().SetSort(bson.M{"rating": -1}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	clients := []models.Client{}
	if err = cursor.All(ctx, &clients); err != nil {
		return nil, err
	}

	return clients, nil
}

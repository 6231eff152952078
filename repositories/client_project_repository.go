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

type ClientProjectRepository interface {
	Create(ctx context.Context, project *models.ClientProject) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ClientProject, error)
	GetByClientEmail(ctx context.Context, email string) ([]models.ClientProject, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context, email string) (int64, error)
	StatusDistribution(ctx context.Context) ([]models.GroupCount, error)
}

type clientProjectRepository struct {
	collection *mongo.Collection
}

func NewClientProjectRepository(db *mongo.Database) ClientProjectRepository {
	return &clientProjectRepository{
		collection: db.Collection("client_projects"),
	}
}

func (r *clientProjectRepository) Create(ctx context.Context, project *models.ClientProject) error {
	project.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, project)
	return err
}

func (r *clientProjectRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ClientProject, error) {
	var project models.ClientProject
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		return nil, translateErr(err, "Client project", "")
	}

	return &project, nil
}

func (r *clientProjectRepository) GetByClientEmail(ctx context.Context, email string) ([]models.ClientProject, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"clientEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []models.ClientProject{}
	if err = cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *clientProjectRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return translateErr(mongo.ErrNoDocuments, "Client project", "")
	}

	return nil
}

func (r *clientProjectRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return translateErr(mongo.ErrNoDocuments, "Client project", "")
	}

	return nil
}

func (r *clientProjectRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountActive counts the owner's projects not yet completed.
func (r *clientProjectRepository) CountActive(ctx context.Context, email string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"clientEmail": email,
		"status":      bson.M{"$ne": "completed"},
	})
}

func (r *clientProjectRepository) StatusDistribution(ctx context.Context) ([]models.GroupCount, error) {
	return groupByStatus(ctx, r.collection)
}

package repository

import (
	"context"

	"digitalagency/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FileRepository interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.File, error)
	GetByClientEmail(ctx context.Context, email string) ([]models.File, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.File, error)
	Count(ctx context.Context) (int64, error)
	CountByClientEmail(ctx context.Context, email string) (int64, error)
}

type fileRepository struct {
	collection *mongo.Collection
}

func NewFileRepository(db *mongo.Database) FileRepository {
	return &fileRepository{
		collection: db.Collection("files"),
	}
}

func (r *fileRepository) Create(ctx context.Context, file *models.File) error {
	file.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, file)
	return err
}

func (r *fileRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.File, error) {
	var file models.File
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&file)
	if err != nil {
		return nil, translateErr(err, "File", "")
	}

	return &file, nil
}

func (r *fileRepository) GetByClientEmail(ctx context.Context, email string) ([]models.File, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"clientEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	files := []models.File{}
	if err = cursor.All(ctx, &files); err != nil {
		return nil, err
	}

	return files, nil
}

func (r *fileRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.File, error) {
	var file models.File
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&file)
	if err != nil {
		return nil, translateErr(err, "File", "")
	}

	return &file, nil
}

func (r *fileRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *fileRepository) CountByClientEmail(ctx context.Context, email string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"clientEmail": email})
}

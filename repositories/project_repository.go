package repository

import (
	"context"

	"digitalagency/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	GetAll(ctx context.Context) ([]models.Project, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	Count(ctx context.Context) (int64, error)
	StatusDistribution(ctx context.Context) ([]models.GroupCount, error)
}

type projectRepository struct {
	collection *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) ProjectRepository {
	return &projectRepository{
		collection: db.Collection("projects"),
	}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	project.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, project)
	return err
}

func (r *projectRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		return nil, translateErr(err, "Project", "")
	}

	return &project, nil
}

func (r *projectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err = cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

// Delete hard-deletes and returns the removed document so the caller can
// clean up its externally-hosted image.
func (r *projectRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		return nil, translateErr(err, "Project", "")
	}

	return &project, nil
}

func (r *projectRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *projectRepository) StatusDistribution(ctx context.Context) ([]models.GroupCount, error) {
	return groupByStatus(ctx, r.collection)
}

// groupByStatus counts documents per status value.
func groupByStatus(ctx context.Context, collection *mongo.Collection) ([]models.GroupCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err = cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	return statusGroups(raw), nil
}

// statusGroups shapes raw $group output. Documents with a missing status land
// in a null-keyed group; that group is dropped from the response, while the
// plain collection count still includes its documents.
func statusGroups(raw []bson.M) []models.GroupCount {
	groups := []models.GroupCount{}
	for _, doc := range raw {
		status, ok := doc["_id"].(string)
		if !ok {
			continue
		}
		groups = append(groups, models.GroupCount{
			Status: status,
			Count:  toInt64(doc["count"]),
		})
	}

	return groups
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}

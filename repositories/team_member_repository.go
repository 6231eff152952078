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

// TeamMemberFilter narrows GetAll by exact-match equality only.
type TeamMemberFilter struct {
	Role      string
	Status    string
	ProjectID primitive.ObjectID
}

type TeamMemberRepository interface {
	Create(ctx context.Context, member *models.TeamMember) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.TeamMember, error)
	GetByEmail(ctx context.Context, email string) (*models.TeamMember, error)
	GetAll(ctx context.Context, filter TeamMemberFilter) ([]models.TeamMember, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.TeamMember, error)
	AddProject(ctx context.Context, id, projectID primitive.ObjectID) (*models.TeamMember, error)
	RemoveProject(ctx context.Context, id, projectID primitive.ObjectID) (*models.TeamMember, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	RoleDistribution(ctx context.Context) ([]models.GroupCount, error)
	StatusDistribution(ctx context.Context) ([]models.GroupCount, error)
}

type teamMemberRepository struct {
	collection *mongo.Collection
}

func NewTeamMemberRepository(db *mongo.Database) TeamMemberRepository {
	return &teamMemberRepository{
		collection: db.Collection("team_members"),
	}
}

// Create relies on the unique email index for conflict detection.
func (r *teamMemberRepository) Create(ctx context.Context, member *models.TeamMember) error {
	member.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, member)
	return translateErr(err, "Team member", "Email")
}

func (r *teamMemberRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&member)
	if err != nil {
		return nil, translateErr(err, "Team member", "Email")
	}

	return &member, nil
}

func (r *teamMemberRepository) GetByEmail(ctx context.Context, email string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&member)
	if err != nil {
		return nil, translateErr(err, "Team member", "Email")
	}

	return &member, nil
}

func (r *teamMemberRepository) GetAll(ctx context.Context, filter TeamMemberFilter) ([]models.TeamMember, error) {
	query := bson.M{}
	if filter.Role != "" {
		query["role"] = filter.Role
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if !filter.ProjectID.IsZero() {
		query["assignedProjects"] = filter.ProjectID
	}

	opts := options.Find().SetSort(bson.M{"joinDate": -1})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	members := []models.TeamMember{}
	if err = cursor.All(ctx, &members); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *teamMemberRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.TeamMember, error) {
	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var member models.TeamMember
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		opts,
	).Decode(&member)
	if err != nil {
		return nil, translateErr(err, "Team member", "Email")
	}

	return &member, nil
}

// AddProject uses $addToSet so assignedProjects keeps set semantics.
func (r *teamMemberRepository) AddProject(ctx context.Context, id, projectID primitive.ObjectID) (*models.TeamMember, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var member models.TeamMember
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{
			"$addToSet": bson.M{"assignedProjects": projectID},
			"$set":      bson.M{"updatedAt": time.Now()},
		},
		opts,
	).Decode(&member)
	if err != nil {
		return nil, translateErr(err, "Team member", "Email")
	}

	return &member, nil
}

// RemoveProject matches on the member id alone, so pulling an absent project
// id is a no-op rather than an error.
func (r *teamMemberRepository) RemoveProject(ctx context.Context, id, projectID primitive.ObjectID) (*models.TeamMember, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var member models.TeamMember
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{
			"$pull": bson.M{"assignedProjects": projectID},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
		opts,
	).Decode(&member)
	if err != nil {
		return nil, translateErr(err, "Team member", "Email")
	}

	return &member, nil
}

func (r *teamMemberRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return translateErr(mongo.ErrNoDocuments, "Team member", "Email")
	}

	return nil
}

func (r *teamMemberRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *teamMemberRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}

func (r *teamMemberRepository) RoleDistribution(ctx context.Context) ([]models.GroupCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$role",
			"count": bson.M{"$sum": 1},
		}}},
	}
	return runGroupPipeline(ctx, r.collection, pipeline)
}

func (r *teamMemberRepository) StatusDistribution(ctx context.Context) ([]models.GroupCount, error) {
	return groupByStatus(ctx, r.collection)
}

func runGroupPipeline(ctx context.Context, collection *mongo.Collection, pipeline mongo.Pipeline) ([]models.GroupCount, error) {
	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	groups := []models.GroupCount{}
	if err = cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	return groups, nil
}

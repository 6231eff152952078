package repository

import (
	"context"

	"digitalagency/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Message, error)
	GetByClientEmail(ctx context.Context, email string) ([]models.Message, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) (*models.Message, error)
	Count(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context, email string) (int64, error)
}

type messageRepository struct {
	collection *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) MessageRepository {
	return &messageRepository{
		collection: db.Collection("messages"),
	}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	message.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, message)
	return err
}

func (r *messageRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	var message models.Message
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&message)
	if err != nil {
		return nil, translateErr(err, "Message", "")
	}

	return &message, nil
}

func (r *messageRepository) GetByClientEmail(ctx context.Context, email string) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"clientEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []models.Message{}
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

// MarkRead sets read to true. The update matches on _id alone so repeating
// the call is a no-op, never an error; no code path resets read to false.
func (r *messageRepository) MarkRead(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var message models.Message
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"read": true}},
		opts,
	).Decode(&message)
	if err != nil {
		return nil, translateErr(err, "Message", "")
	}

	return &message, nil
}

func (r *messageRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountUnread counts unread messages, scoped to one client when email is
// non-empty, across all clients otherwise.
func (r *messageRepository) CountUnread(ctx context.Context, email string) (int64, error) {
	filter := bson.M{"read": false}
	if email != "" {
		filter["clientEmail"] = email
	}
	return r.collection.CountDocuments(ctx, filter)
}

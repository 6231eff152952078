package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription is a newsletter list entry. Email is unique within the collection.
type Subscription struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email" validate:"required,email"`
	SubscribedAt time.Time          `json:"subscribedAt" bson:"subscribedAt"`
}

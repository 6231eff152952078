package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a public portfolio showcase item.
type Project struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title" validate:"required,max=100"`
	Description   string             `json:"description" bson:"description" validate:"required,max=500"`
	ImageUrl      string             `json:"imageUrl" bson:"imageUrl"`
	ImagePublicID string             `json:"-" bson:"imagePublicId,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client is a public testimonial entry.
type Client struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name" validate:"required,max=100"`
	Designation   string             `json:"designation" bson:"designation" validate:"required,max=100"`
	Description   string             `json:"description" bson:"description" validate:"required,max=500"`
	Company       string             `json:"company,omitempty" bson:"company,omitempty"`
	Rating        int                `json:"rating" bson:"rating" validate:"min=0,max=5"`
	ImageUrl      string             `json:"imageUrl" bson:"imageUrl"`
	ImagePublicID string             `json:"-" bson:"imagePublicId,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a simple inbox item between the agency and a client. Read only
// transitions false to true.
type Message struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ClientEmail string             `json:"clientEmail" bson:"clientEmail" validate:"required,email"`
	Subject     string             `json:"subject" bson:"subject" validate:"required"`
	Body        string             `json:"message" bson:"message" validate:"required"`
	Sender      string             `json:"sender" bson:"sender" validate:"required,oneof=client admin"`
	SenderName  string             `json:"senderName" bson:"senderName" validate:"required"`
	Read        bool               `json:"read" bson:"read"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

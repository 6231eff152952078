package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is an inbound lead from the public contact form.
type Contact struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FullName     string             `json:"fullName" bson:"fullName" validate:"required,max=100"`
	Email        string             `json:"email" bson:"email" validate:"required,email"`
	MobileNumber string             `json:"mobileNumber" bson:"mobileNumber" validate:"required,min=10"`
	City         string             `json:"city" bson:"city" validate:"required,max=50"`
	SubmittedAt  time.Time          `json:"submittedAt" bson:"submittedAt"`
}

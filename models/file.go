package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// File is metadata only; the binary lives on the external CDN.
type File struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ClientEmail    string             `json:"clientEmail" bson:"clientEmail" validate:"required,email"`
	FileName       string             `json:"fileName" bson:"fileName" validate:"required"`
	FileUrl        string             `json:"fileUrl" bson:"fileUrl" validate:"required"`
	FileType       string             `json:"fileType" bson:"fileType" validate:"required"`
	FileSize       int64              `json:"fileSize" bson:"fileSize" validate:"required"`
	UploadedBy     string             `json:"uploadedBy" bson:"uploadedBy" validate:"required,oneof=client admin"`
	UploadedByName string             `json:"uploadedByName" bson:"uploadedByName" validate:"required"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientProject is a per-client project instance shown in the client portal.
// Status and progress are independently set; no correlation is enforced.
type ClientProject struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ClientEmail         string             `json:"clientEmail" bson:"clientEmail" validate:"required,email"`
	Title               string             `json:"title" bson:"title" validate:"required"`
	Description         string             `json:"description" bson:"description" validate:"required"`
	Status              string             `json:"status" bson:"status" validate:"omitempty,oneof=planning in-progress review completed on-hold"`
	Progress            int                `json:"progress" bson:"progress" validate:"min=0,max=100"`
	StartDate           time.Time          `json:"startDate" bson:"startDate"`
	EstimatedCompletion time.Time          `json:"estimatedCompletion,omitempty" bson:"estimatedCompletion,omitempty"`
	Technologies        []string           `json:"technologies" bson:"technologies"`
	Team                []TeamEntry        `json:"team" bson:"team"`
	Milestones          []Milestone        `json:"milestones" bson:"milestones"`
	CreatedAt           time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// TeamEntry is an embedded display entry, not a reference to a TeamMember.
type TeamEntry struct {
	Name   string `json:"name" bson:"name"`
	Role   string `json:"role" bson:"role"`
	Avatar string `json:"avatar,omitempty" bson:"avatar,omitempty"`
}

type Milestone struct {
	Title         string    `json:"title" bson:"title"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Completed     bool      `json:"completed" bson:"completed"`
	CompletedDate time.Time `json:"completedDate,omitempty" bson:"completedDate,omitempty"`
}

// ClientProjectPatch carries the updatable fields of a partial update. Pointers
// distinguish "absent" from zero values so only touched fields are re-validated.
type ClientProjectPatch struct {
	Title               *string     `json:"title,omitempty" validate:"omitempty,min=1"`
	Description         *string     `json:"description,omitempty" validate:"omitempty,min=1"`
	Status              *string     `json:"status,omitempty" validate:"omitempty,oneof=planning in-progress review completed on-hold"`
	Progress            *int        `json:"progress,omitempty" validate:"omitempty,min=0,max=100"`
	EstimatedCompletion *time.Time  `json:"estimatedCompletion,omitempty"`
	Technologies        []string    `json:"technologies,omitempty"`
	Team                []TeamEntry `json:"team,omitempty"`
	Milestones          []Milestone `json:"milestones,omitempty"`
}

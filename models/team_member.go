package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMember is an internal roster entry. Email is unique within the
// collection. AssignedProjects holds ClientProject ids with set semantics.
type TeamMember struct {
	ID               primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name             string               `json:"name" bson:"name" validate:"required"`
	Email            string               `json:"email" bson:"email" validate:"required,email"`
	Role             string               `json:"role" bson:"role" validate:"required,oneof=project_manager developer designer qa_engineer devops other"`
	Department       string               `json:"department,omitempty" bson:"department,omitempty"`
	Phone            string               `json:"phone,omitempty" bson:"phone,omitempty"`
	Avatar           string               `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Bio              string               `json:"bio,omitempty" bson:"bio,omitempty"`
	Skills           []string             `json:"skills" bson:"skills"`
	Permissions      Permissions          `json:"permissions" bson:"permissions"`
	AssignedProjects []primitive.ObjectID `json:"assignedProjects" bson:"assignedProjects"`
	Status           string               `json:"status" bson:"status" validate:"omitempty,oneof=active inactive on_leave"`
	JoinDate         time.Time            `json:"joinDate" bson:"joinDate"`
	LastActiveAt     time.Time            `json:"lastActiveAt,omitempty" bson:"lastActiveAt,omitempty"`
	CreatedAt        time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt" bson:"updatedAt"`
}

type Permissions struct {
	CanViewProjects  bool `json:"canViewProjects" bson:"canViewProjects"`
	CanEditProjects  bool `json:"canEditProjects" bson:"canEditProjects"`
	CanManageTeam    bool `json:"canManageTeam" bson:"canManageTeam"`
	CanViewMessages  bool `json:"canViewMessages" bson:"canViewMessages"`
	CanSendMessages  bool `json:"canSendMessages" bson:"canSendMessages"`
	CanUploadFiles   bool `json:"canUploadFiles" bson:"canUploadFiles"`
	CanDeleteFiles   bool `json:"canDeleteFiles" bson:"canDeleteFiles"`
	CanViewAnalytics bool `json:"canViewAnalytics" bson:"canViewAnalytics"`
}

// DefaultPermissions matches the defaults granted to a new team member.
func DefaultPermissions() Permissions {
	return Permissions{
		CanViewProjects: true,
		CanViewMessages: true,
		CanSendMessages: true,
		CanUploadFiles:  true,
	}
}

// TeamMemberPatch carries the updatable fields of a partial update.
type TeamMemberPatch struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Role       *string  `json:"role,omitempty" validate:"omitempty,oneof=project_manager developer designer qa_engineer devops other"`
	Department *string  `json:"department,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Avatar     *string  `json:"avatar,omitempty"`
	Bio        *string  `json:"bio,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Status     *string  `json:"status,omitempty" validate:"omitempty,oneof=active inactive on_leave"`
}

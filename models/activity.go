package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity types recorded in the audit feed.
const (
	ActivityMessage         = "message"
	ActivityFileUpload      = "file_upload"
	ActivityFileDelete      = "file_delete"
	ActivityStatusChange    = "status_change"
	ActivityMilestoneUpdate = "milestone_update"
	ActivityTeamUpdate      = "team_update"
	ActivityComment         = "comment"
)

// Activity is an append-only audit entry. Records are immutable once created
// and only removed by the age-based cleanup.
type Activity struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ClientEmail string             `json:"clientEmail" bson:"clientEmail" validate:"required,email"`
	ProjectID   primitive.ObjectID `json:"projectId,omitempty" bson:"projectId,omitempty"`
	ProjectName string             `json:"projectName,omitempty" bson:"projectName,omitempty"`
	Type        string             `json:"type" bson:"type" validate:"required,oneof=message file_upload file_delete status_change milestone_update team_update comment"`
	Title       string             `json:"title" bson:"title" validate:"required"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Actor       string             `json:"actor" bson:"actor"`
	ActorRole   string             `json:"actorRole" bson:"actorRole" validate:"omitempty,oneof=admin client team_member"`
	Metadata    ActivityMetadata   `json:"metadata" bson:"metadata"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

type ActivityMetadata struct {
	FileName       string `json:"fileName,omitempty" bson:"fileName,omitempty"`
	FileSize       int64  `json:"fileSize,omitempty" bson:"fileSize,omitempty"`
	OldStatus      string `json:"oldStatus,omitempty" bson:"oldStatus,omitempty"`
	NewStatus      string `json:"newStatus,omitempty" bson:"newStatus,omitempty"`
	MilestoneTitle string `json:"milestoneTitle,omitempty" bson:"milestoneTitle,omitempty"`
	TeamMemberName string `json:"teamMemberName,omitempty" bson:"teamMemberName,omitempty"`
}

// ActivityPage is the paginated feed response.
type ActivityPage struct {
	Activities []Activity `json:"activities"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// ActivityStats summarizes a client's feed for the dashboard.
type ActivityStats struct {
	TotalActivities  int64        `json:"totalActivities"`
	LastWeek         int64        `json:"lastWeek"`
	ByType           []GroupCount `json:"byType"`
	RecentActivities []Activity   `json:"recentActivities"`
}

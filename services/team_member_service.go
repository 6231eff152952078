package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"digitalagency/apperrors"
	"digitalagency/models"
	repository "digitalagency/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamStats summarizes the roster for the admin dashboard.
type TeamStats struct {
	Total    int64               `json:"total"`
	ByRole   []models.GroupCount `json:"byRole"`
	ByStatus []models.GroupCount `json:"byStatus"`
	Active   int64               `json:"active"`
	OnLeave  int64               `json:"onLeave"`
}

type TeamMemberService interface {
	Create(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.TeamMember, error)
	GetAll(ctx context.Context, filter repository.TeamMemberFilter) ([]models.TeamMember, error)
	Update(ctx context.Context, id primitive.ObjectID, patch *models.TeamMemberPatch) (*models.TeamMember, error)
	UpdatePermissions(ctx context.Context, id primitive.ObjectID, permissions models.Permissions) (*models.TeamMember, error)
	AssignProject(ctx context.Context, id, projectID primitive.ObjectID) (*models.TeamMember, error)
	RemoveProject(ctx context.Context, id, projectID primitive.ObjectID) (*models.TeamMember, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Stats(ctx context.Context) (*TeamStats, error)
}

type teamMemberService struct {
	repo       repository.TeamMemberRepository
	activities ActivityService
}

func NewTeamMemberService(repo repository.TeamMemberRepository, activities ActivityService) TeamMemberService {
	return &teamMemberService{
		repo:       repo,
		activities: activities,
	}
}

// Create rejects a duplicate email with a ConflictError before inserting;
// the unique index backs this up against races.
func (s *teamMemberService) Create(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error) {
	member.Email = strings.ToLower(strings.TrimSpace(member.Email))

	_, err := s.repo.GetByEmail(ctx, member.Email)
	if err == nil {
		return nil, &apperrors.ConflictError{Field: "Email"}
	}
	var notFound *apperrors.NotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}

	now := time.Now()
	if member.Status == "" {
		member.Status = "active"
	}
	if member.Skills == nil {
		member.Skills = []string{}
	}
	if member.AssignedProjects == nil {
		member.AssignedProjects = []primitive.ObjectID{}
	}
	member.Permissions = mergePermissions(member.Permissions)
	member.JoinDate = now
	member.CreatedAt = now
	member.UpdatedAt = now

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// mergePermissions falls back to the roster defaults when the request omits
// the permissions block entirely.
func mergePermissions(p models.Permissions) models.Permissions {
	defaults := models.DefaultPermissions()
	if p == (models.Permissions{}) {
		return defaults
	}
	return p
}

func (s *teamMemberService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.TeamMember, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *teamMemberService) GetAll(ctx context.Context, filter repository.TeamMemberFilter) ([]models.TeamMember, error) {
	return s.repo.GetAll(ctx, filter)
}

func (s *teamMemberService) Update(ctx context.Context, id primitive.ObjectID, patch *models.TeamMemberPatch) (*models.TeamMember, error) {
	fields := bson.M{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Role != nil {
		fields["role"] = *patch.Role
	}
	if patch.Department != nil {
		fields["department"] = *patch.Department
	}
	if patch.Phone != nil {
		fields["phone"] = *patch.Phone
	}
	if patch.Avatar != nil {
		fields["avatar"] = *patch.Avatar
	}
	if patch.Bio != nil {
		fields["bio"] = *patch.Bio
	}
	if patch.Skills != nil {
		fields["skills"] = patch.Skills
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}

	member, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.activities.Record(models.Activity{
		ClientEmail: member.Email,
		Type:        models.ActivityTeamUpdate,
		Title:       "Team member updated: " + member.Name,
		Metadata: models.ActivityMetadata{
			TeamMemberName: member.Name,
		},
	})

	return member, nil
}

func (s *teamMemberService) UpdatePermissions(ctx context.Context, id primitive.ObjectID, permissions models.Permissions) (*models.TeamMember, error) {
	return s.repo.Update(ctx, id, bson.M{"permissions": permissions})
}

func (s *teamMemberService) AssignProject(ctx context.Context, id, projectID primitive.ObjectID) (*models.TeamMember, error) {
	return s.repo.AddProject(ctx, id, projectID)
}

// RemoveProject is idempotent: pulling an id that is not assigned leaves the
// member unchanged and succeeds.
func (s *teamMemberService) RemoveProject(ctx context.Context, id, projectID primitive.ObjectID) (*models.TeamMember, error) {
	return s.repo.RemoveProject(ctx, id, projectID)
}

func (s *teamMemberService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

func (s *teamMemberService) Stats(ctx context.Context) (*TeamStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, &apperrors.AggregationError{Err: err}
	}

	byRole, err := s.repo.RoleDistribution(ctx)
	if err != nil {
		return nil, &apperrors.AggregationError{Err: err}
	}

	byStatus, err := s.repo.StatusDistribution(ctx)
	if err != nil {
		return nil, &apperrors.AggregationError{Err: err}
	}

	active, err := s.repo.CountByStatus(ctx, "active")
	if err != nil {
		return nil, &apperrors.AggregationError{Err: err}
	}

	onLeave, err := s.repo.CountByStatus(ctx, "on_leave")
	if err != nil {
		return nil, &apperrors.AggregationError{Err: err}
	}

	return &TeamStats{
		Total:    total,
		ByRole:   byRole,
		ByStatus: byStatus,
		Active:   active,
		OnLeave:  onLeave,
	}, nil
}

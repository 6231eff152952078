package services

import (
	"context"
	"fmt"
	"time"

	"digitalagency/mailer"
	"digitalagency/models"
	repository "digitalagency/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientProjectService is the admin's management surface over per-client
// projects.
type ClientProjectService interface {
	Create(ctx context.Context, project *models.ClientProject) (*models.ClientProject, error)
	List(ctx context.Context, email string) ([]models.ClientProject, error)
	Update(ctx context.Context, id primitive.ObjectID, patch *models.ClientProjectPatch) (*models.ClientProject, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type clientProjectService struct {
	repo       repository.ClientProjectRepository
	activities ActivityService
	mail       MailSender
	dashboard  string
}

func NewClientProjectService(
	repo repository.ClientProjectRepository,
	activities ActivityService,
	mail MailSender,
	frontendURL string,
) ClientProjectService {
	return &clientProjectService{
		repo:       repo,
		activities: activities,
		mail:       mail,
		dashboard:  frontendURL,
	}
}

func (s *clientProjectService) Create(ctx context.Context, project *models.ClientProject) (*models.ClientProject, error) {
	now := time.Now()
	if project.Status == "" {
		project.Status = "planning"
	}
	if project.StartDate.IsZero() {
		project.StartDate = now
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	if project.Team == nil {
		project.Team = []models.TeamEntry{}
	}
	if project.Milestones == nil {
		project.Milestones = []models.Milestone{}
	}
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *clientProjectService) List(ctx context.Context, email string) ([]models.ClientProject, error) {
	return s.repo.GetByClientEmail(ctx, email)
}

// Update merges the patch into the stored document, re-validating only the
// touched fields. A status change records an audit entry and mails the
// client; a milestone change records one as well. Both are detached from the
// write.
func (s *clientProjectService) Update(ctx context.Context, id primitive.ObjectID, patch *models.ClientProjectPatch) (*models.ClientProject, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	if patch.Progress != nil {
		fields["progress"] = *patch.Progress
	}
	if patch.EstimatedCompletion != nil {
		fields["estimatedCompletion"] = *patch.EstimatedCompletion
	}
	if patch.Technologies != nil {
		fields["technologies"] = patch.Technologies
	}
	if patch.Team != nil {
		fields["team"] = patch.Team
	}
	if patch.Milestones != nil {
		fields["milestones"] = patch.Milestones
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && *patch.Status != existing.Status {
		s.activities.Record(models.Activity{
			ClientEmail: existing.ClientEmail,
			ProjectID:   existing.ID,
			ProjectName: existing.Title,
			Type:        models.ActivityStatusChange,
			Title:       fmt.Sprintf("Project status changed to %s", *patch.Status),
			Metadata: models.ActivityMetadata{
				OldStatus: existing.Status,
				NewStatus: *patch.Status,
			},
		})

		detachedSend(s.mail, existing.ClientEmail,
			mailer.ProjectUpdate(existing.ClientEmail, existing.Title,
				fmt.Sprintf("Status changed from %s to %s", existing.Status, *patch.Status),
				s.dashboard))
	}

	if patch.Milestones != nil {
		s.activities.Record(models.Activity{
			ClientEmail: existing.ClientEmail,
			ProjectID:   existing.ID,
			ProjectName: existing.Title,
			Type:        models.ActivityMilestoneUpdate,
			Title:       "Project milestones updated",
		})
	}

	return updated, nil
}

func (s *clientProjectService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

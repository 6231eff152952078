package services

import (
	"context"
	"io"
	"time"

	"digitalagency/models"
	repository "digitalagency/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectService interface {
	Create(ctx context.Context, project *models.Project, image io.Reader) (*models.Project, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	GetAll(ctx context.Context) ([]models.Project, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type projectService struct {
	repo   repository.ProjectRepository
	images ImageStore
}

func NewProjectService(repo repository.ProjectRepository, images ImageStore) ProjectService {
	return &projectService{
		repo:   repo,
		images: images,
	}
}

// Create uploads the image first; the CDN applies the showcase crop. An
// upload failure surfaces to the caller since the image is part of the
// record, unlike the best-effort cleanup on delete.
func (s *projectService) Create(ctx context.Context, project *models.Project, image io.Reader) (*models.Project, error) {
	result, err := s.images.UploadImage(ctx, image, "projects")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	project.ImageUrl = result.URL
	project.ImagePublicID = result.PublicID
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectService) GetAll(ctx context.Context) ([]models.Project, error) {
	return s.repo.GetAll(ctx)
}

func (s *projectService) Delete(ctx context.Context, id primitive.ObjectID) error {
	project, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	detachedDestroy(s.images, project.ImagePublicID)
	return nil
}

package services

import (
	"context"
	"io"
	"time"

	"digitalagency/models"
	repository "digitalagency/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClientService interface {
	Create(ctx context.Context, client *models.Client, image io.Reader) (*models.Client, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error)
	GetAll(ctx context.Context) ([]models.Client, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type clientService struct {
	repo   repository.ClientRepository
	images ImageStore
}

func NewClientService(repo repository.ClientRepository, images ImageStore) ClientService {
	return &clientService{
		repo:   repo,
		images: images,
	}
}

func (s *clientService) Create(ctx context.Context, client *models.Client, image io.Reader) (*models.Client, error) {
	result, err := s.images.UploadImage(ctx, image, "clients")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	client.ImageUrl = result.URL
	client.ImagePublicID = result.PublicID
	client.CreatedAt = now
	client.UpdatedAt = now

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *clientService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *clientService) GetAll(ctx context.Context) ([]models.Client, error) {
	return s.repo.GetAll(ctx)
}

func (s *clientService) Delete(ctx context.Context, id primitive.ObjectID) error {
	client, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	detachedDestroy(s.images, client.ImagePublicID)
	return nil
}

package services

import (
	"context"
	"strings"
	"time"

	"digitalagency/models"
	repository "digitalagency/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactService interface {
	Submit(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	GetAll(ctx context.Context) ([]models.Contact, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type contactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{
		repo: repo,
	}
}

func (s *contactService) Submit(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	contact.FullName = strings.TrimSpace(contact.FullName)
	contact.Email = strings.ToLower(strings.TrimSpace(contact.Email))
	contact.MobileNumber = strings.TrimSpace(contact.MobileNumber)
	contact.City = strings.TrimSpace(contact.City)
	contact.SubmittedAt = time.Now()

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

func (s *contactService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *contactService) GetAll(ctx context.Context) ([]models.Contact, error) {
	return s.repo.GetAll(ctx)
}

func (s *contactService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

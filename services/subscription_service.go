package services

import (
	"context"
	"strings"
	"time"

	"digitalagency/models"
	repository "digitalagency/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubscriptionService interface {
	Subscribe(ctx context.Context, email string) (*models.Subscription, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Subscription, error)
	GetAll(ctx context.Context) ([]models.Subscription, error)
	Unsubscribe(ctx context.Context, id primitive.ObjectID) error
}

type subscriptionService struct {
	repo repository.SubscriptionRepository
}

func NewSubscriptionService(repo repository.SubscriptionRepository) SubscriptionService {
	return &subscriptionService{
		repo: repo,
	}
}

// Subscribe inserts the lowercased address. A duplicate fails on the unique
// index with a ConflictError; the collection keeps exactly one entry.
func (s *subscriptionService) Subscribe(ctx context.Context, email string) (*models.Subscription, error) {
	subscription := &models.Subscription{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		SubscribedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, subscription); err != nil {
		return nil, err
	}

	return subscription, nil
}

func (s *subscriptionService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Subscription, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *subscriptionService) GetAll(ctx context.Context) ([]models.Subscription, error) {
	return s.repo.GetAll(ctx)
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

package services

import (
	"context"
	"log"
	"math"
	"time"

	"digitalagency/models"
	repository "digitalagency/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ActivityService interface {
	// Record appends an audit entry without ever failing the caller's
	// primary operation; logging failures are caught and discarded.
	Record(activity models.Activity)
	Feed(ctx context.Context, email string, page, limit int, projectID primitive.ObjectID) (*models.ActivityPage, error)
	ProjectFeed(ctx context.Context, email string, projectID primitive.ObjectID) ([]models.Activity, error)
	Stats(ctx context.Context, email string) (*models.ActivityStats, error)
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
}

type activityService struct {
	repo repository.ActivityRepository
}

func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{
		repo: repo,
	}
}

func (s *activityService) Record(activity models.Activity) {
	if activity.Actor == "" {
		activity.Actor = "System"
	}
	if activity.ActorRole == "" {
		activity.ActorRole = "admin"
	}
	activity.CreatedAt = time.Now()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), detachedTimeout)
		defer cancel()

		if err := s.repo.Create(ctx, &activity); err != nil {
			log.Printf("activity record failed: %v", err)
		}
	}()
}

func (s *activityService) Feed(ctx context.Context, email string, page, limit int, projectID primitive.ObjectID) (*models.ActivityPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	filter := repository.ActivityFilter{ClientEmail: email, ProjectID: projectID}
	skip := int64(page-1) * int64(limit)

	activities, err := s.repo.Find(ctx, filter, skip, int64(limit))
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &models.ActivityPage{
		Activities: activities,
		Pagination: models.Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *activityService) ProjectFeed(ctx context.Context, email string, projectID primitive.ObjectID) ([]models.Activity, error) {
	filter := repository.ActivityFilter{ClientEmail: email, ProjectID: projectID}
	return s.repo.Find(ctx, filter, 0, 0)
}

func (s *activityService) Stats(ctx context.Context, email string) (*models.ActivityStats, error) {
	total, err := s.repo.CountFiltered(ctx, repository.ActivityFilter{ClientEmail: email})
	if err != nil {
		return nil, err
	}

	lastWeek, err := s.repo.CountSince(ctx, email, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	byType, err := s.repo.TypeDistribution(ctx, email)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.Find(ctx, repository.ActivityFilter{ClientEmail: email}, 0, 10)
	if err != nil {
		return nil, err
	}

	return &models.ActivityStats{
		TotalActivities:  total,
		LastWeek:         lastWeek,
		ByType:           byType,
		RecentActivities: recent,
	}, nil
}

// PurgeOlderThan deletes entries past the retention window and reports the
// count removed. Re-running on an empty range deletes 0 and succeeds.
func (s *activityService) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	return s.repo.DeleteOlderThan(ctx, cutoff)
}

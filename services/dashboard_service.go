package services

import (
	"context"
	"time"

	"digitalagency/apperrors"
	"digitalagency/models"
	repository "digitalagency/repositories"

	"golang.org/x/sync/errgroup"
)

// DashboardService produces the admin overview: counts, trends and status
// breakdowns gathered from every collection. The queries run concurrently
// and independently; there is no cross-query snapshot, so two counts taken
// during the same request may disagree under concurrent writes.
type DashboardService interface {
	AdminStats(ctx context.Context) (*models.AdminStats, error)
}

type dashboardService struct {
	projects       repository.ProjectRepository
	clients        repository.ClientRepository
	contacts       repository.ContactRepository
	subscriptions  repository.SubscriptionRepository
	clientProjects repository.ClientProjectRepository
	messages       repository.MessageRepository
	files          repository.FileRepository
}

func NewDashboardService(
	projects repository.ProjectRepository,
	clients repository.ClientRepository,
	contacts repository.ContactRepository,
	subscriptions repository.SubscriptionRepository,
	clientProjects repository.ClientProjectRepository,
	messages repository.MessageRepository,
	files repository.FileRepository,
) DashboardService {
	return &dashboardService{
		projects:       projects,
		clients:        clients,
		contacts:       contacts,
		subscriptions:  subscriptions,
		clientProjects: clientProjects,
		messages:       messages,
		files:          files,
	}
}

const topClientsLimit = 5

// AdminStats fans the queries out with an errgroup; the first failure cancels
// the rest and the whole aggregate aborts with an AggregationError.
func (s *dashboardService) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats

	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.Overview.TotalProjects, err = s.projects.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Overview.TotalClients, err = s.clients.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Overview.TotalContacts, err = s.contacts.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Overview.TotalSubscribers, err = s.subscriptions.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Overview.TotalMessages, err = s.messages.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Overview.TotalFiles, err = s.files.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Overview.ClientProjects, err = s.clientProjects.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Overview.UnreadMessages, err = s.messages.CountUnread(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		stats.Overview.RecentContacts, err = s.contacts.CountSince(gctx, sevenDaysAgo)
		return err
	})
	g.Go(func() (err error) {
		stats.Overview.RecentSubscribers, err = s.subscriptions.CountSince(gctx, sevenDaysAgo)
		return err
	})
	g.Go(func() (err error) {
		stats.ProjectStatus, err = s.projects.StatusDistribution(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.ClientProjectStatus, err = s.clientProjects.StatusDistribution(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.ContactsTrend, err = s.contacts.DailyTrend(gctx, thirtyDaysAgo)
		return err
	})
	g.Go(func() (err error) {
		stats.SubscribersTrend, err = s.subscriptions.DailyTrend(gctx, thirtyDaysAgo)
		return err
	})
	g.Go(func() (err error) {
		stats.TopClients, err = s.clients.TopByRating(gctx, topClientsLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, &apperrors.AggregationError{Err: err}
	}

	return &stats, nil
}

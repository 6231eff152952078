package handlers

import (
	"context"

	"digitalagency/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockContactService implements service.ContactService.
type mockContactService struct {
	SubmitFunc  func(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	GetByIDFunc func(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	GetAllFunc  func(ctx context.Context) ([]models.Contact, error)
	DeleteFunc  func(ctx context.Context, id primitive.ObjectID) error
}

func (m *mockContactService) Submit(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, contact)
	}
	return contact, nil
}

func (m *mockContactService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &models.Contact{ID: id}, nil
}

func (m *mockContactService) GetAll(ctx context.Context) ([]models.Contact, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockSubscriptionService implements service.SubscriptionService.
type mockSubscriptionService struct {
	SubscribeFunc   func(ctx context.Context, email string) (*models.Subscription, error)
	GetByIDFunc     func(ctx context.Context, id primitive.ObjectID) (*models.Subscription, error)
	GetAllFunc      func(ctx context.Context) ([]models.Subscription, error)
	UnsubscribeFunc func(ctx context.Context, id primitive.ObjectID) error
}

func (m *mockSubscriptionService) Subscribe(ctx context.Context, email string) (*models.Subscription, error) {
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(ctx, email)
	}
	return &models.Subscription{Email: email}, nil
}

func (m *mockSubscriptionService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Subscription, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &models.Subscription{ID: id}, nil
}

func (m *mockSubscriptionService) GetAll(ctx context.Context) ([]models.Subscription, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockSubscriptionService) Unsubscribe(ctx context.Context, id primitive.ObjectID) error {
	if m.UnsubscribeFunc != nil {
		return m.UnsubscribeFunc(ctx, id)
	}
	return nil
}

// mockPortalService implements service.PortalService.
type mockPortalService struct {
	StatsFunc            func(ctx context.Context, email string) (*models.ClientStats, error)
	ProjectsFunc         func(ctx context.Context, email string) ([]models.ClientProject, error)
	MessagesFunc         func(ctx context.Context, email string) ([]models.Message, error)
	SendMessageFunc      func(ctx context.Context, message *models.Message) (*models.Message, error)
	MarkMessageReadFunc  func(ctx context.Context, id primitive.ObjectID) (*models.Message, error)
	FilesFunc            func(ctx context.Context, email string) ([]models.File, error)
	RegisterFileFunc     func(ctx context.Context, file *models.File) (*models.File, error)
	DeleteFileFunc       func(ctx context.Context, id primitive.ObjectID) error
	SendWelcomeEmailFunc func(ctx context.Context, email, name string) error
}

func (m *mockPortalService) Stats(ctx context.Context, email string) (*models.ClientStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, email)
	}
	return &models.ClientStats{}, nil
}

func (m *mockPortalService) Projects(ctx context.Context, email string) ([]models.ClientProject, error) {
	if m.ProjectsFunc != nil {
		return m.ProjectsFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockPortalService) Messages(ctx context.Context, email string) ([]models.Message, error) {
	if m.MessagesFunc != nil {
		return m.MessagesFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockPortalService) SendMessage(ctx context.Context, message *models.Message) (*models.Message, error) {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, message)
	}
	return message, nil
}

func (m *mockPortalService) MarkMessageRead(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	if m.MarkMessageReadFunc != nil {
		return m.MarkMessageReadFunc(ctx, id)
	}
	return &models.Message{ID: id, Read: true}, nil
}

func (m *mockPortalService) Files(ctx context.Context, email string) ([]models.File, error) {
	if m.FilesFunc != nil {
		return m.FilesFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockPortalService) RegisterFile(ctx context.Context, file *models.File) (*models.File, error) {
	if m.RegisterFileFunc != nil {
		return m.RegisterFileFunc(ctx, file)
	}
	return file, nil
}

func (m *mockPortalService) DeleteFile(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, id)
	}
	return nil
}

func (m *mockPortalService) SendWelcomeEmail(ctx context.Context, email, name string) error {
	if m.SendWelcomeEmailFunc != nil {
		return m.SendWelcomeEmailFunc(ctx, email, name)
	}
	return nil
}

// mockActivityService implements service.ActivityService.
type mockActivityService struct {
	RecordFunc         func(activity models.Activity)
	FeedFunc           func(ctx context.Context, email string, page, limit int, projectID primitive.ObjectID) (*models.ActivityPage, error)
	ProjectFeedFunc    func(ctx context.Context, email string, projectID primitive.ObjectID) ([]models.Activity, error)
	StatsFunc          func(ctx context.Context, email string) (*models.ActivityStats, error)
	PurgeOlderThanFunc func(ctx context.Context, days int) (int64, error)
}

func (m *mockActivityService) Record(activity models.Activity) {
	if m.RecordFunc != nil {
		m.RecordFunc(activity)
	}
}

func (m *mockActivityService) Feed(ctx context.Context, email string, page, limit int, projectID primitive.ObjectID) (*models.ActivityPage, error) {
	if m.FeedFunc != nil {
		return m.FeedFunc(ctx, email, page, limit, projectID)
	}
	return &models.ActivityPage{}, nil
}

func (m *mockActivityService) ProjectFeed(ctx context.Context, email string, projectID primitive.ObjectID) ([]models.Activity, error) {
	if m.ProjectFeedFunc != nil {
		return m.ProjectFeedFunc(ctx, email, projectID)
	}
	return nil, nil
}

func (m *mockActivityService) Stats(ctx context.Context, email string) (*models.ActivityStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, email)
	}
	return &models.ActivityStats{}, nil
}

func (m *mockActivityService) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if m.PurgeOlderThanFunc != nil {
		return m.PurgeOlderThanFunc(ctx, days)
	}
	return 0, nil
}

// mockClientProjectService implements service.ClientProjectService.
type mockClientProjectService struct {
	CreateFunc func(ctx context.Context, project *models.ClientProject) (*models.ClientProject, error)
	ListFunc   func(ctx context.Context, email string) ([]models.ClientProject, error)
	UpdateFunc func(ctx context.Context, id primitive.ObjectID, patch *models.ClientProjectPatch) (*models.ClientProject, error)
	DeleteFunc func(ctx context.Context, id primitive.ObjectID) error
}

func (m *mockClientProjectService) Create(ctx context.Context, project *models.ClientProject) (*models.ClientProject, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return project, nil
}

func (m *mockClientProjectService) List(ctx context.Context, email string) ([]models.ClientProject, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockClientProjectService) Update(ctx context.Context, id primitive.ObjectID, patch *models.ClientProjectPatch) (*models.ClientProject, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return &models.ClientProject{ID: id}, nil
}

func (m *mockClientProjectService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

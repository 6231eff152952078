package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"digitalagency/mailer"
	"digitalagency/models"
	repository "digitalagency/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errMockQuery = errors.New("mock query error")

// mockClientProjectRepo implements repository.ClientProjectRepository.
type mockClientProjectRepo struct {
	CreateFunc             func(ctx context.Context, project *models.ClientProject) error
	GetByIDFunc            func(ctx context.Context, id primitive.ObjectID) (*models.ClientProject, error)
	GetByClientEmailFunc   func(ctx context.Context, email string) ([]models.ClientProject, error)
	UpdateFunc             func(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	DeleteFunc             func(ctx context.Context, id primitive.ObjectID) error
	CountFunc              func(ctx context.Context) (int64, error)
	CountActiveFunc        func(ctx context.Context, email string) (int64, error)
	StatusDistributionFunc func(ctx context.Context) ([]models.GroupCount, error)
}

func (m *mockClientProjectRepo) Create(ctx context.Context, project *models.ClientProject) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *mockClientProjectRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ClientProject, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &models.ClientProject{ID: id}, nil
}

func (m *mockClientProjectRepo) GetByClientEmail(ctx context.Context, email string) ([]models.ClientProject, error) {
	if m.GetByClientEmailFunc != nil {
		return m.GetByClientEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockClientProjectRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil
}

func (m *mockClientProjectRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockClientProjectRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockClientProjectRepo) CountActive(ctx context.Context, email string) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx, email)
	}
	return 0, nil
}

func (m *mockClientProjectRepo) StatusDistribution(ctx context.Context) ([]models.GroupCount, error) {
	if m.StatusDistributionFunc != nil {
		return m.StatusDistributionFunc(ctx)
	}
	return nil, nil
}

// mockMessageRepo implements repository.MessageRepository.
type mockMessageRepo struct {
	CreateFunc           func(ctx context.Context, message *models.Message) error
	GetByIDFunc          func(ctx context.Context, id primitive.ObjectID) (*models.Message, error)
	GetByClientEmailFunc func(ctx context.Context, email string) ([]models.Message, error)
	MarkReadFunc         func(ctx context.Context, id primitive.ObjectID) (*models.Message, error)
	CountFunc            func(ctx context.Context) (int64, error)
	CountUnreadFunc      func(ctx context.Context, email string) (int64, error)
}

func (m *mockMessageRepo) Create(ctx context.Context, message *models.Message) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, message)
	}
	return nil
}

func (m *mockMessageRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &models.Message{ID: id}, nil
}

func (m *mockMessageRepo) GetByClientEmail(ctx context.Context, email string) ([]models.Message, error) {
	if m.GetByClientEmailFunc != nil {
		return m.GetByClientEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockMessageRepo) MarkRead(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id)
	}
	return &models.Message{ID: id, Read: true}, nil
}

func (m *mockMessageRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockMessageRepo) CountUnread(ctx context.Context, email string) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, email)
	}
	return 0, nil
}

// mockFileRepo implements repository.FileRepository.
type mockFileRepo struct {
	CreateFunc             func(ctx context.Context, file *models.File) error
	GetByIDFunc            func(ctx context.Context, id primitive.ObjectID) (*models.File, error)
	GetByClientEmailFunc   func(ctx context.Context, email string) ([]models.File, error)
	DeleteFunc             func(ctx context.Context, id primitive.ObjectID) (*models.File, error)
	CountFunc              func(ctx context.Context) (int64, error)
	CountByClientEmailFunc func(ctx context.Context, email string) (int64, error)
}

func (m *mockFileRepo) Create(ctx context.Context, file *models.File) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, file)
	}
	return nil
}

func (m *mockFileRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.File, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &models.File{ID: id}, nil
}

func (m *mockFileRepo) GetByClientEmail(ctx context.Context, email string) ([]models.File, error) {
	if m.GetByClientEmailFunc != nil {
		return m.GetByClientEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockFileRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.File, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return &models.File{ID: id}, nil
}

func (m *mockFileRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockFileRepo) CountByClientEmail(ctx context.Context, email string) (int64, error) {
	if m.CountByClientEmailFunc != nil {
		return m.CountByClientEmailFunc(ctx, email)
	}
	return 0, nil
}

// mockProjectRepo implements repository.ProjectRepository.
type mockProjectRepo struct {
	CreateFunc             func(ctx context.Context, project *models.Project) error
	GetByIDFunc            func(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	GetAllFunc             func(ctx context.Context) ([]models.Project, error)
	DeleteFunc             func(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	CountFunc              func(ctx context.Context) (int64, error)
	StatusDistributionFunc func(ctx context.Context) ([]models.GroupCount, error)
}

func (m *mockProjectRepo) Create(ctx context.Context, project *models.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &models.Project{ID: id}, nil
}

func (m *mockProjectRepo) GetAll(ctx context.Context) ([]models.Project, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return &models.Project{ID: id}, nil
}

func (m *mockProjectRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockProjectRepo) StatusDistribution(ctx context.Context) ([]models.GroupCount, error) {
	if m.StatusDistributionFunc != nil {
		return m.StatusDistributionFunc(ctx)
	}
	return nil, nil
}

// mockClientRepo implements repository.ClientRepository.
type mockClientRepo struct {
	CreateFunc      func(ctx context.Context, client *models.Client) error
	GetByIDFunc     func(ctx context.Context, id primitive.ObjectID) (*models.Client, error)
	GetAllFunc      func(ctx context.Context) ([]models.Client, error)
	DeleteFunc      func(ctx context.Context, id primitive.ObjectID) (*models.Client, error)
	CountFunc       func(ctx context.Context) (int64, error)
	TopByRatingFunc func(ctx context.Context, limit int64) ([]models.Client, error)
}

func (m *mockClientRepo) Create(ctx context.Context, client *models.Client) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, client)
	}
	return nil
}

func (m *mockClientRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &models.Client{ID: id}, nil
}

func (m *mockClientRepo) GetAll(ctx context.Context) ([]models.Client, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockClientRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return &models.Client{ID: id}, nil
}

func (m *mockClientRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockClientRepo) TopByRating(ctx context.Context, limit int64) ([]models.Client, error) {
	if m.TopByRatingFunc != nil {
		return m.TopByRatingFunc(ctx, limit)
	}
	return nil, nil
}

// mockContactRepo implements repository.ContactRepository.
type mockContactRepo struct {
	CreateFunc     func(ctx context.Context, contact *models.Contact) error
	GetByIDFunc    func(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	GetAllFunc     func(ctx context.Context) ([]models.Contact, error)
	DeleteFunc     func(ctx context.Context, id primitive.ObjectID) error
	CountFunc      func(ctx context.Context) (int64, error)
	CountSinceFunc func(ctx context.Context, since time.Time) (int64, error)
	DailyTrendFunc func(ctx context.Context, since time.Time) ([]models.TrendPoint, error)
}

func (m *mockContactRepo) Create(ctx context.Context, contact *models.Contact) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, contact)
	}
	return nil
}

func (m *mockContactRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &models.Contact{ID: id}, nil
}

func (m *mockContactRepo) GetAll(ctx context.Context) ([]models.Contact, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockContactRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockContactRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	if m.CountSinceFunc != nil {
		return m.CountSinceFunc(ctx, since)
	}
	return 0, nil
}

func (m *mockContactRepo) DailyTrend(ctx context.Context, since time.Time) ([]models.TrendPoint, error) {
	if m.DailyTrendFunc != nil {
		return m.DailyTrendFunc(ctx, since)
	}
	return nil, nil
}

// mockSubscriptionRepo implements repository.SubscriptionRepository.
type mockSubscriptionRepo struct {
	CreateFunc     func(ctx context.Context, subscription *models.Subscription) error
	GetByIDFunc    func(ctx context.Context, id primitive.ObjectID) (*models.Subscription, error)
	GetAllFunc     func(ctx context.Context) ([]models.Subscription, error)
	DeleteFunc     func(ctx context.Context, id primitive.ObjectID) error
	CountFunc      func(ctx context.Context) (int64, error)
	CountSinceFunc func(ctx context.Context, since time.Time) (int64, error)
	DailyTrendFunc func(ctx context.Context, since time.Time) ([]models.TrendPoint, error)
}

func (m *mockSubscriptionRepo) Create(ctx context.Context, subscription *models.Subscription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, subscription)
	}
	return nil
}

func (m *mockSubscriptionRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Subscription, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &models.Subscription{ID: id}, nil
}

func (m *mockSubscriptionRepo) GetAll(ctx context.Context) ([]models.Subscription, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockSubscriptionRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockSubscriptionRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockSubscriptionRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	if m.CountSinceFunc != nil {
		return m.CountSinceFunc(ctx, since)
	}
	return 0, nil
}

func (m *mockSubscriptionRepo) DailyTrend(ctx context.Context, since time.Time) ([]models.TrendPoint, error) {
	if m.DailyTrendFunc != nil {
		return m.DailyTrendFunc(ctx, since)
	}
	return nil, nil
}

// mockTeamMemberRepo implements repository.TeamMemberRepository.
type mockTeamMemberRepo struct {
	CreateFunc             func(ctx context.Context, member *models.TeamMember) error
	GetByIDFunc            func(ctx context.Context, id primitive.ObjectID) (*models.TeamMember, error)
	GetByEmailFunc         func(ctx context.Context, email string) (*models.TeamMember, error)
	GetAllFunc             func(ctx context.Context, filter repository.TeamMemberFilter) ([]models.TeamMember, error)
	UpdateFunc             func(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.TeamMember, error)
	AddProjectFunc         func(ctx context.Context, id, projectID primitive.ObjectID) (*models.TeamMember, error)
	RemoveProjectFunc      func(ctx context.Context, id, projectID primitive.ObjectID) (*models.TeamMember, error)
	DeleteFunc             func(ctx context.Context, id primitive.ObjectID) error
	CountFunc              func(ctx context.Context) (int64, error)
	CountByStatusFunc      func(ctx context.Context, status string) (int64, error)
	RoleDistributionFunc   func(ctx context.Context) ([]models.GroupCount, error)
	StatusDistributionFunc func(ctx context.Context) ([]models.GroupCount, error)
}

func (m *mockTeamMemberRepo) Create(ctx context.Context, member *models.TeamMember) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, member)
	}
	return nil
}

func (m *mockTeamMemberRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.TeamMember, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &models.TeamMember{ID: id}, nil
}

func (m *mockTeamMemberRepo) GetByEmail(ctx context.Context, email string) (*models.TeamMember, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return &models.TeamMember{Email: email}, nil
}

func (m *mockTeamMemberRepo) GetAll(ctx context.Context, filter repository.TeamMemberFilter) ([]models.TeamMember, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTeamMemberRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.TeamMember, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return &models.TeamMember{ID: id}, nil
}

func (m *mockTeamMemberRepo) AddProject(ctx context.Context, id, projectID primitive.ObjectID) (*models.TeamMember, error) {
	if m.AddProjectFunc != nil {
		return m.AddProjectFunc(ctx, id, projectID)
	}
	return &models.TeamMember{ID: id, AssignedProjects: []primitive.ObjectID{projectID}}, nil
}

func (m *mockTeamMemberRepo) RemoveProject(ctx context.Context, id, projectID primitive.ObjectID) (*models.TeamMember, error) {
	if m.RemoveProjectFunc != nil {
		return m.RemoveProjectFunc(ctx, id, projectID)
	}
	return &models.TeamMember{ID: id, AssignedProjects: []primitive.ObjectID{}}, nil
}

func (m *mockTeamMemberRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTeamMemberRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockTeamMemberRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

func (m *mockTeamMemberRepo) RoleDistribution(ctx context.Context) ([]models.GroupCount, error) {
	if m.RoleDistributionFunc != nil {
		return m.RoleDistributionFunc(ctx)
	}
	return nil, nil
}

func (m *mockTeamMemberRepo) StatusDistribution(ctx context.Context) ([]models.GroupCount, error) {
	if m.StatusDistributionFunc != nil {
		return m.StatusDistributionFunc(ctx)
	}
	return nil, nil
}

// mockActivityRepo implements repository.ActivityRepository.
type mockActivityRepo struct {
	CreateFunc          func(ctx context.Context, activity *models.Activity) error
	FindFunc            func(ctx context.Context, filter repository.ActivityFilter, skip, limit int64) ([]models.Activity, error)
	CountFilteredFunc   func(ctx context.Context, filter repository.ActivityFilter) (int64, error)
	CountSinceFunc      func(ctx context.Context, email string, since time.Time) (int64, error)
	TypeDistFunc        func(ctx context.Context, email string) ([]models.GroupCount, error)
	DeleteOlderThanFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockActivityRepo) Create(ctx context.Context, activity *models.Activity) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, activity)
	}
	return nil
}

func (m *mockActivityRepo) Find(ctx context.Context, filter repository.ActivityFilter, skip, limit int64) ([]models.Activity, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, filter, skip, limit)
	}
	return nil, nil
}

func (m *mockActivityRepo) CountFiltered(ctx context.Context, filter repository.ActivityFilter) (int64, error) {
	if m.CountFilteredFunc != nil {
		return m.CountFilteredFunc(ctx, filter)
	}
	return 0, nil
}

func (m *mockActivityRepo) CountSince(ctx context.Context, email string, since time.Time) (int64, error) {
	if m.CountSinceFunc != nil {
		return m.CountSinceFunc(ctx, email, since)
	}
	return 0, nil
}

func (m *mockActivityRepo) TypeDistribution(ctx context.Context, email string) ([]models.GroupCount, error) {
	if m.TypeDistFunc != nil {
		return m.TypeDistFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockActivityRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteOlderThanFunc != nil {
		return m.DeleteOlderThanFunc(ctx, cutoff)
	}
	return 0, nil
}

// activityRecorder is an ActivityService that captures entries synchronously
// so tests can assert on them without racing the detached write.
type activityRecorder struct {
	mu       sync.Mutex
	recorded []models.Activity
}

func (r *activityRecorder) Record(activity models.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recorded = append(r.recorded, activity)
}

func (r *activityRecorder) entries() []models.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Activity(nil), r.recorded...)
}

func (r *activityRecorder) Feed(ctx context.Context, email string, page, limit int, projectID primitive.ObjectID) (*models.ActivityPage, error) {
	return &models.ActivityPage{}, nil
}

func (r *activityRecorder) ProjectFeed(ctx context.Context, email string, projectID primitive.ObjectID) ([]models.Activity, error) {
	return nil, nil
}

func (r *activityRecorder) Stats(ctx context.Context, email string) (*models.ActivityStats, error) {
	return &models.ActivityStats{}, nil
}

func (r *activityRecorder) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	return 0, nil
}

// mockMail implements MailSender. Deliveries are pushed to a channel so tests
// can wait for the detached goroutine.
type mockMail struct {
	mu        sync.Mutex
	SendFunc  func(ctx context.Context, to string, email mailer.Email) error
	delivered chan string
	sent      []string
}

func newMockMail() *mockMail {
	return &mockMail{delivered: make(chan string, 8)}
}

func (m *mockMail) Send(ctx context.Context, to string, email mailer.Email) error {
	m.mu.Lock()
	m.sent = append(m.sent, to)
	m.mu.Unlock()

	if m.delivered != nil {
		m.delivered <- to
	}
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, email)
	}
	return nil
}

func (m *mockMail) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

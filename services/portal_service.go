package services

import (
	"context"
	"time"

	"digitalagency/apperrors"
	"digitalagency/mailer"
	"digitalagency/models"
	repository "digitalagency/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PortalService serves the client-facing dashboard, keyed by the owner's
// email. There is no referential integrity behind that key; it is a plain
// filter string.
type PortalService interface {
	Stats(ctx context.Context, email string) (*models.ClientStats, error)
	Projects(ctx context.Context, email string) ([]models.ClientProject, error)
	Messages(ctx context.Context, email string) ([]models.Message, error)
	SendMessage(ctx context.Context, message *models.Message) (*models.Message, error)
	MarkMessageRead(ctx context.Context, id primitive.ObjectID) (*models.Message, error)
	Files(ctx context.Context, email string) ([]models.File, error)
	RegisterFile(ctx context.Context, file *models.File) (*models.File, error)
	DeleteFile(ctx context.Context, id primitive.ObjectID) error
	SendWelcomeEmail(ctx context.Context, email, name string) error
}

type portalService struct {
	projects   repository.ClientProjectRepository
	messages   repository.MessageRepository
	files      repository.FileRepository
	activities ActivityService
	mail       MailSender
	dashboard  string
}

func NewPortalService(
	projects repository.ClientProjectRepository,
	messages repository.MessageRepository,
	files repository.FileRepository,
	activities ActivityService,
	mail MailSender,
	frontendURL string,
) PortalService {
	return &portalService{
		projects:   projects,
		messages:   messages,
		files:      files,
		activities: activities,
		mail:       mail,
		dashboard:  frontendURL,
	}
}

// Stats assembles the portal dashboard from independent point reads. Any
// single query failure aborts the whole aggregate; there is no partial
// result. Team members are deduplicated by display name since embedded team
// entries carry no stable id.
func (s *portalService) Stats(ctx context.Context, email string) (*models.ClientStats, error) {
	active, err := s.projects.CountActive(ctx, email)
	if err != nil {
		return nil, &apperrors.AggregationError{Err: err}
	}

	unread, err := s.messages.CountUnread(ctx, email)
	if err != nil {
		return nil, &apperrors.AggregationError{Err: err}
	}

	fileCount, err := s.files.CountByClientEmail(ctx, email)
	if err != nil {
		return nil, &apperrors.AggregationError{Err: err}
	}

	projects, err := s.projects.GetByClientEmail(ctx, email)
	if err != nil {
		return nil, &apperrors.AggregationError{Err: err}
	}

	names := map[string]struct{}{}
	for _, project := range projects {
		for _, member := range project.Team {
			names[member.Name] = struct{}{}
		}
	}

	return &models.ClientStats{
		ActiveProjects: active,
		UnreadMessages: unread,
		TotalFiles:     fileCount,
		TeamMembers:    len(names),
	}, nil
}

func (s *portalService) Projects(ctx context.Context, email string) ([]models.ClientProject, error) {
	return s.projects.GetByClientEmail(ctx, email)
}

func (s *portalService) Messages(ctx context.Context, email string) ([]models.Message, error) {
	return s.messages.GetByClientEmail(ctx, email)
}

// SendMessage commits the message, then records the activity and, when the
// sender is the admin, notifies the client by mail. Both side effects are
// detached from the write.
func (s *portalService) SendMessage(ctx context.Context, message *models.Message) (*models.Message, error) {
	message.Read = false
	message.CreatedAt = time.Now()

	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}

	s.activities.Record(models.Activity{
		ClientEmail: message.ClientEmail,
		Type:        models.ActivityMessage,
		Title:       "New message: " + message.Subject,
		Actor:       message.SenderName,
		ActorRole:   message.Sender,
	})

	if message.Sender == "admin" {
		detachedSend(s.mail, message.ClientEmail,
			mailer.NewMessage(message.ClientEmail, message.Subject, message.SenderName, s.dashboard))
	}

	return message, nil
}

func (s *portalService) MarkMessageRead(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	return s.messages.MarkRead(ctx, id)
}

func (s *portalService) Files(ctx context.Context, email string) ([]models.File, error) {
	return s.files.GetByClientEmail(ctx, email)
}

func (s *portalService) RegisterFile(ctx context.Context, file *models.File) (*models.File, error) {
	file.CreatedAt = time.Now()

	if err := s.files.Create(ctx, file); err != nil {
		return nil, err
	}

	s.activities.Record(models.Activity{
		ClientEmail: file.ClientEmail,
		Type:        models.ActivityFileUpload,
		Title:       "File uploaded: " + file.FileName,
		Actor:       file.UploadedByName,
		ActorRole:   file.UploadedBy,
		Metadata: models.ActivityMetadata{
			FileName: file.FileName,
			FileSize: file.FileSize,
		},
	})

	if file.UploadedBy == "admin" {
		detachedSend(s.mail, file.ClientEmail,
			mailer.FileUploaded(file.ClientEmail, file.FileName, file.UploadedByName, s.dashboard))
	}

	return file, nil
}

func (s *portalService) DeleteFile(ctx context.Context, id primitive.ObjectID) error {
	file, err := s.files.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.activities.Record(models.Activity{
		ClientEmail: file.ClientEmail,
		Type:        models.ActivityFileDelete,
		Title:       "File deleted: " + file.FileName,
		Metadata: models.ActivityMetadata{
			FileName: file.FileName,
		},
	})

	return nil
}

// SendWelcomeEmail is the one mail path where delivery is the primary effect,
// so its failure surfaces to the caller.
func (s *portalService) SendWelcomeEmail(ctx context.Context, email, name string) error {
	return s.mail.Send(ctx, email, mailer.Welcome(name, s.dashboard))
}

package services

import (
	"context"
	"testing"
	"time"

	"digitalagency/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateClientProjectDefaults(t *testing.T) {
	var created *models.ClientProject
	repo := &mockClientProjectRepo{
		CreateFunc: func(ctx context.Context, project *models.ClientProject) error {
			created = project
			return nil
		},
	}

	svc := NewClientProjectService(repo, &activityRecorder{}, newMockMail(), "")

	_, err := svc.Create(context.Background(), &models.ClientProject{
		ClientEmail: "client@example.com",
		Title:       "Website redesign",
		Description: "Full rebuild of the marketing site",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.Status != "planning" {
		t.Errorf("status = %q, want planning", created.Status)
	}
	if created.StartDate.IsZero() {
		t.Error("startDate not defaulted")
	}
	if created.Technologies == nil || created.Team == nil || created.Milestones == nil {
		t.Error("embedded slices must be initialized, not nil")
	}
}

func TestUpdateStatusChangeRecordsAndNotifies(t *testing.T) {
	id := primitive.NewObjectID()
	stored := &models.ClientProject{
		ID:          id,
		ClientEmail: "client@example.com",
		Title:       "Website redesign",
		Status:      "planning",
	}

	repo := &mockClientProjectRepo{
		GetByIDFunc: func(ctx context.Context, gotID primitive.ObjectID) (*models.ClientProject, error) {
			snapshot := *stored
			return &snapshot, nil
		},
		UpdateFunc: func(ctx context.Context, gotID primitive.ObjectID, fields bson.M) error {
			if status, ok := fields["status"]; ok {
				stored.Status = status.(string)
			}
			return nil
		},
	}

	recorder := &activityRecorder{}
	mail := newMockMail()
	svc := NewClientProjectService(repo, recorder, mail, "http://localhost:5173")

	status := "in-progress"
	updated, err := svc.Update(context.Background(), id, &models.ClientProjectPatch{Status: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != "in-progress" {
		t.Errorf("status = %q, want in-progress", updated.Status)
	}

	entries := recorder.entries()
	if len(entries) != 1 {
		t.Fatalf("expected one activity, got %d", len(entries))
	}
	if entries[0].Type != models.ActivityStatusChange {
		t.Errorf("activity type = %q, want %q", entries[0].Type, models.ActivityStatusChange)
	}
	if entries[0].Metadata.OldStatus != "planning" || entries[0].Metadata.NewStatus != "in-progress" {
		t.Errorf("unexpected status metadata: %+v", entries[0].Metadata)
	}

	select {
	case to := <-mail.delivered:
		if to != "client@example.com" {
			t.Errorf("mail sent to %q, want client@example.com", to)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected a project-update mail on status change")
	}
}

func TestUpdateSameStatusIsSilent(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &mockClientProjectRepo{
		GetByIDFunc: func(ctx context.Context, gotID primitive.ObjectID) (*models.ClientProject, error) {
			return &models.ClientProject{ID: id, ClientEmail: "client@example.com", Status: "planning"}, nil
		},
	}

	recorder := &activityRecorder{}
	mail := newMockMail()
	svc := NewClientProjectService(repo, recorder, mail, "")

	status := "planning"
	if _, err := svc.Update(context.Background(), id, &models.ClientProjectPatch{Status: &status}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if entries := recorder.entries(); len(entries) != 0 {
		t.Errorf("unchanged status must not record activities, got %+v", entries)
	}
	select {
	case to := <-mail.delivered:
		t.Errorf("unchanged status must not mail anyone, delivered to %q", to)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUpdateMilestonesRecordsActivity(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &mockClientProjectRepo{
		GetByIDFunc: func(ctx context.Context, gotID primitive.ObjectID) (*models.ClientProject, error) {
			return &models.ClientProject{ID: id, ClientEmail: "client@example.com", Status: "in-progress"}, nil
		},
	}

	recorder := &activityRecorder{}
	svc := NewClientProjectService(repo, recorder, newMockMail(), "")

	patch := &models.ClientProjectPatch{
		Milestones: []models.Milestone{{Title: "Design approved", Completed: true}},
	}
	if _, err := svc.Update(context.Background(), id, patch); err != nil {
		t.Fatalf("Update: %v", err)
	}

	entries := recorder.entries()
	if len(entries) != 1 || entries[0].Type != models.ActivityMilestoneUpdate {
		t.Fatalf("expected one milestone_update activity, got %+v", entries)
	}
}

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"digitalagency/apperrors"
	"digitalagency/models"
)

func TestSubscribe(t *testing.T) {
	handler := NewSubscriptionHandler(&mockSubscriptionService{}, false)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subscribe", strings.NewReader(`{"email":"dana@example.com"}`))
	rec := httptest.NewRecorder()

	handler.Subscribe(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}
}

func TestSubscribeDuplicateIsBadRequest(t *testing.T) {
	handler := NewSubscriptionHandler(&mockSubscriptionService{
		SubscribeFunc: func(ctx context.Context, email string) (*models.Subscription, error) {
			return nil, &apperrors.ConflictError{Field: "Email"}
		},
	}, false)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subscribe", strings.NewReader(`{"email":"dana@example.com"}`))
	rec := httptest.NewRecorder()

	handler.Subscribe(rec, req)

	// the public signup reports duplicates as 400, not 409
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.Success {
		t.Error("duplicate signup must not report success")
	}
	if envelope.Message != "Email already exists" {
		t.Errorf("message = %q, want %q", envelope.Message, "Email already exists")
	}
}

func TestSubscribeInvalidEmail(t *testing.T) {
	handler := NewSubscriptionHandler(&mockSubscriptionService{}, false)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subscribe", strings.NewReader(`{"email":"not-an-email"}`))
	rec := httptest.NewRecorder()

	handler.Subscribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

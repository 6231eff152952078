package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"digitalagency/apperrors"
	service "digitalagency/services"
	"digitalagency/utils"
)

type SubscriptionHandler struct {
	errorWriter
	service service.SubscriptionService
}

func NewSubscriptionHandler(service service.SubscriptionService, production bool) *SubscriptionHandler {
	return &SubscriptionHandler{
		errorWriter: errorWriter{production: production},
		service:     service,
	}
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	subscription, err := h.service.Subscribe(ctx, req.Email)
	if err != nil {
		// Duplicate signup is a plain 400 on this public endpoint.
		var conflict *apperrors.ConflictError
		if errors.As(err, &conflict) {
			utils.HandleMessageResponse(w, "Email already exists", http.StatusBadRequest)
			return
		}
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Subscribed successfully", subscription, http.StatusCreated)
}

func (h *SubscriptionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	subscriptions, err := h.service.GetAll(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleListResponse(w, subscriptions, len(subscriptions))
}

func (h *SubscriptionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	objectID, ok := h.pathObjectID(w, r, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	subscription, err := h.service.GetByID(ctx, objectID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Subscription retrieved successfully", subscription, http.StatusOK)
}

func (h *SubscriptionHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	objectID, ok := h.pathObjectID(w, r, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.Unsubscribe(ctx, objectID); err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleMessageResponse(w, "Unsubscribed successfully", http.StatusOK)
}

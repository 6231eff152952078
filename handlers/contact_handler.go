package handlers

import (
	"context"
	"net/http"
	"time"

	"digitalagency/models"
	service "digitalagency/services"
	"digitalagency/utils"
)

type ContactHandler struct {
	errorWriter
	service service.ContactService
}

func NewContactHandler(service service.ContactService, production bool) *ContactHandler {
	return &ContactHandler{
		errorWriter: errorWriter{production: production},
		service:     service,
	}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if err := utils.DecodeAndValidate(w, r, &contact); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.Submit(ctx, &contact)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Contact form submitted successfully", created, http.StatusCreated)
}

func (h *ContactHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	contacts, err := h.service.GetAll(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleListResponse(w, contacts, len(contacts))
}

func (h *ContactHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	objectID, ok := h.pathObjectID(w, r, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	contact, err := h.service.GetByID(ctx, objectID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Contact retrieved successfully", contact, http.StatusOK)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	objectID, ok := h.pathObjectID(w, r, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, objectID); err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleMessageResponse(w, "Contact deleted successfully", http.StatusOK)
}

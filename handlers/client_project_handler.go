package handlers

import (
	"context"
	"net/http"
	"time"

	"digitalagency/models"
	service "digitalagency/services"
	"digitalagency/utils"
)

// ClientProjectHandler is the admin management surface over per-client
// projects; the read side for clients lives on PortalHandler.
type ClientProjectHandler struct {
	errorWriter
	service service.ClientProjectService
}

func NewClientProjectHandler(service service.ClientProjectService, production bool) *ClientProjectHandler {
	return &ClientProjectHandler{
		errorWriter: errorWriter{production: production},
		service:     service,
	}
}

func (h *ClientProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	email, ok := requireEmail(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	projects, err := h.service.List(ctx, email)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleListResponse(w, projects, len(projects))
}

func (h *ClientProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var project models.ClientProject
	if err := utils.DecodeAndValidate(w, r, &project); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.Create(ctx, &project)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Client project created successfully", created, http.StatusCreated)
}

func (h *ClientProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	objectID, ok := h.pathObjectID(w, r, "id")
	if !ok {
		return
	}

	var patch models.ClientProjectPatch
	if err := utils.DecodeAndValidate(w, r, &patch); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.Update(ctx, objectID, &patch)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Client project updated successfully", updated, http.StatusOK)
}

func (h *ClientProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	utils.HandleMessageResponse(w, "Client project deleted successfully", http.StatusOK)
}

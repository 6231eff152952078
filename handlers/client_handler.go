package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"digitalagency/models"
	service "digitalagency/services"
	"digitalagency/utils"
)

type ClientHandler struct {
	errorWriter
	service service.ClientService
}

func NewClientHandler(service service.ClientService, production bool) *ClientHandler {
	return &ClientHandler{
		errorWriter: errorWriter{production: production},
		service:     service,
	}
}

func (h *ClientHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	clients, err := h.service.GetAll(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleListResponse(w, clients, len(clients))
}

func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	objectID, ok := h.pathObjectID(w, r, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	client, err := h.service.GetByID(ctx, objectID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Client retrieved successfully", client, http.StatusOK)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	file, ok := formImage(w, r)
	if !ok {
		return
	}
	defer file.Close()

	rating := 0
	if raw := r.FormValue("rating"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			rating = parsed
		}
	}

	client := models.Client{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Designation: strings.TrimSpace(r.FormValue("designation")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Company:     strings.TrimSpace(r.FormValue("company")),
		Rating:      rating,
	}
	if err := utils.ValidatePartial(&client); err != nil {
		h.writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	created, err := h.service.Create(ctx, &client, file)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Client created successfully", created, http.StatusCreated)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	utils.HandleMessageResponse(w, "Client deleted successfully", http.StatusOK)
}

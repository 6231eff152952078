package handlers

import (
	"context"
	"net/http"
	"time"

	"digitalagency/models"
	service "digitalagency/services"
	"digitalagency/utils"
)

type PortalHandler struct {
	errorWriter
	service service.PortalService
}

func NewPortalHandler(service service.PortalService, production bool) *PortalHandler {
	return &PortalHandler{
		errorWriter: errorWriter{production: production},
		service:     service,
	}
}

func (h *PortalHandler) Stats(w http.ResponseWriter, r *http.Request) {
	email, ok := requireEmail(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	stats, err := h.service.Stats(ctx, email)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Dashboard stats retrieved successfully", stats, http.StatusOK)
}

func (h *PortalHandler) Projects(w http.ResponseWriter, r *http.Request) {
	email, ok := requireEmail(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	projects, err := h.service.Projects(ctx, email)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleListResponse(w, projects, len(projects))
}

func (h *PortalHandler) Messages(w http.ResponseWriter, r *http.Request) {
	email, ok := requireEmail(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	messages, err := h.service.Messages(ctx, email)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleListResponse(w, messages, len(messages))
}

func (h *PortalHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var message models.Message
	if err := utils.DecodeAndValidate(w, r, &message); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.SendMessage(ctx, &message)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Message sent successfully", created, http.StatusCreated)
}

func (h *PortalHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	objectID, ok := h.pathObjectID(w, r, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	message, err := h.service.MarkMessageRead(ctx, objectID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Message marked as read", message, http.StatusOK)
}

func (h *PortalHandler) Files(w http.ResponseWriter, r *http.Request) {
	email, ok := requireEmail(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	files, err := h.service.Files(ctx, email)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleListResponse(w, files, len(files))
}

func (h *PortalHandler) RegisterFile(w http.ResponseWriter, r *http.Request) {
	var file models.File
	if err := utils.DecodeAndValidate(w, r, &file); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.RegisterFile(ctx, &file)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "File registered successfully", created, http.StatusCreated)
}

func (h *PortalHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	objectID, ok := h.pathObjectID(w, r, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.DeleteFile(ctx, objectID); err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleMessageResponse(w, "File deleted successfully", http.StatusOK)
}

type welcomeEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

func (h *PortalHandler) SendWelcomeEmail(w http.ResponseWriter, r *http.Request) {
	var req welcomeEmailRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := h.service.SendWelcomeEmail(ctx, req.Email, req.Name); err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleMessageResponse(w, "Welcome email sent successfully", http.StatusOK)
}

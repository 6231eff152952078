package handlers

import (
	"context"
	"net/http"
	"time"

	"digitalagency/apperrors"
	"digitalagency/models"
	repository "digitalagency/repositories"
	service "digitalagency/services"
	"digitalagency/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamMemberHandler struct {
	errorWriter
	service service.TeamMemberService
}

func NewTeamMemberHandler(service service.TeamMemberService, production bool) *TeamMemberHandler {
	return &TeamMemberHandler{
		errorWriter: errorWriter{production: production},
		service:     service,
	}
}

func (h *TeamMemberHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := repository.TeamMemberFilter{
		Role:   r.URL.Query().Get("role"),
		Status: r.URL.Query().Get("status"),
	}
	if raw := r.URL.Query().Get("projectId"); raw != "" {
		projectID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			h.writeError(w, &apperrors.InvalidIDError{ID: raw})
			return
		}
		filter.ProjectID = projectID
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	members, err := h.service.GetAll(ctx, filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleListResponse(w, members, len(members))
}

func (h *TeamMemberHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	objectID, ok := h.pathObjectID(w, r, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	member, err := h.service.GetByID(ctx, objectID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Team member retrieved successfully", member, http.StatusOK)
}

func (h *TeamMemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var member models.TeamMember
	if err := utils.DecodeAndValidate(w, r, &member); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.Create(ctx, &member)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Team member created successfully", created, http.StatusCreated)
}

func (h *TeamMemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	objectID, ok := h.pathObjectID(w, r, "id")
	if !ok {
		return
	}

	var patch models.TeamMemberPatch
	if err := utils.DecodeAndValidate(w, r, &patch); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	member, err := h.service.Update(ctx, objectID, &patch)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Team member updated successfully", member, http.StatusOK)
}

type permissionsRequest struct {
	Permissions models.Permissions `json:"permissions"`
}

func (h *TeamMemberHandler) UpdatePermissions(w http.ResponseWriter, r *http.Request) {
	objectID, ok := h.pathObjectID(w, r, "id")
	if !ok {
		return
	}

	var req permissionsRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	member, err := h.service.UpdatePermissions(ctx, objectID, req.Permissions)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Permissions updated successfully", member, http.StatusOK)
}

type assignProjectRequest struct {
	ProjectID string `json:"projectId" validate:"required"`
}

func (h *TeamMemberHandler) AssignProject(w http.ResponseWriter, r *http.Request) {
	objectID, ok := h.pathObjectID(w, r, "id")
	if !ok {
		return
	}

	var req assignProjectRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}
	projectID, err := primitive.ObjectIDFromHex(req.ProjectID)
	if err != nil {
		h.writeError(w, &apperrors.InvalidIDError{ID: req.ProjectID})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	member, err := h.service.AssignProject(ctx, objectID, projectID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Team member assigned to project", member, http.StatusOK)
}

func (h *TeamMemberHandler) RemoveProject(w http.ResponseWriter, r *http.Request) {
	objectID, ok := h.pathObjectID(w, r, "id")
	if !ok {
		return
	}
	projectID, ok := h.pathObjectID(w, r, "projectId")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	member, err := h.service.RemoveProject(ctx, objectID, projectID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Team member removed from project", member, http.StatusOK)
}

func (h *TeamMemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	utils.HandleMessageResponse(w, "Team member deleted successfully", http.StatusOK)
}

func (h *TeamMemberHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	stats, err := h.service.Stats(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Team statistics retrieved successfully", stats, http.StatusOK)
}

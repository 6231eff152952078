package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"digitalagency/apperrors"
	service "digitalagency/services"
	"digitalagency/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ActivityHandler struct {
	errorWriter
	service service.ActivityService
}

func NewActivityHandler(service service.ActivityService, production bool) *ActivityHandler {
	return &ActivityHandler{
		errorWriter: errorWriter{production: production},
		service:     service,
	}
}

func (h *ActivityHandler) Feed(w http.ResponseWriter, r *http.Request) {
	email, ok := requireEmail(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	var projectID primitive.ObjectID
	if raw := query.Get("projectId"); raw != "" {
		parsed, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			h.writeError(w, &apperrors.InvalidIDError{ID: raw})
			return
		}
		projectID = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	feed, err := h.service.Feed(ctx, email, page, limit, projectID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Activities retrieved successfully", feed, http.StatusOK)
}

func (h *ActivityHandler) ProjectFeed(w http.ResponseWriter, r *http.Request) {
	email, ok := requireEmail(w, r)
	if !ok {
		return
	}
	projectID, ok := h.pathObjectID(w, r, "projectId")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	activities, err := h.service.ProjectFeed(ctx, email, projectID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleListResponse(w, activities, len(activities))
}

func (h *ActivityHandler) Stats(w http.ResponseWriter, r *http.Request) {
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

	utils.HandleDataResponse(w, "Activity statistics retrieved successfully", stats, http.StatusOK)
}

func (h *ActivityHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	deleted, err := h.service.PurgeOlderThan(ctx, 30)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleMessageResponse(w, fmt.Sprintf("Deleted %d old activities", deleted), http.StatusOK)
}

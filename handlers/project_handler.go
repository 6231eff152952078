package handlers

import (
	"context"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"digitalagency/models"
	service "digitalagency/services"
	"digitalagency/utils"
)

const maxImageSize = 10 << 20 // 10 MB

type ProjectHandler struct {
	errorWriter
	service service.ProjectService
}

func NewProjectHandler(service service.ProjectService, production bool) *ProjectHandler {
	return &ProjectHandler{
		errorWriter: errorWriter{production: production},
		service:     service,
	}
}

func (h *ProjectHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	projects, err := h.service.GetAll(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleListResponse(w, projects, len(projects))
}

func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	objectID, ok := h.pathObjectID(w, r, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	project, err := h.service.GetByID(ctx, objectID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Project retrieved successfully", project, http.StatusOK)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	file, ok := formImage(w, r)
	if !ok {
		return
	}
	defer file.Close()

	project := models.Project{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
	}
	if err := utils.ValidatePartial(&project); err != nil {
		h.writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	created, err := h.service.Create(ctx, &project, file)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Project created successfully", created, http.StatusCreated)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	utils.HandleMessageResponse(w, "Project deleted successfully", http.StatusOK)
}

// formImage pulls the validated image out of a multipart create request.
func formImage(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		utils.HandleMessageResponse(w, "Failed to parse multipart form", http.StatusBadRequest)
		return nil, false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.HandleMessageResponse(w, "Please upload an image", http.StatusBadRequest)
		return nil, false
	}

	if header.Size > maxImageSize {
		file.Close()
		utils.HandleMessageResponse(w, "File size too large (max 10MB)", http.StatusBadRequest)
		return nil, false
	}

	switch header.Header.Get("Content-Type") {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
	default:
		file.Close()
		utils.HandleMessageResponse(w, "Invalid file type. Only JPEG, PNG, and WebP are allowed.", http.StatusBadRequest)
		return nil, false
	}

	return file, true
}

package handlers

import (
	"context"
	"net/http"
	"time"

	service "digitalagency/services"
	"digitalagency/utils"
)

type DashboardHandler struct {
	errorWriter
	service       service.DashboardService
	contacts      service.ContactService
	subscriptions service.SubscriptionService
}

func NewDashboardHandler(
	dashboard service.DashboardService,
	contacts service.ContactService,
	subscriptions service.SubscriptionService,
	production bool,
) *DashboardHandler {
	return &DashboardHandler{
		errorWriter:   errorWriter{production: production},
		service:       dashboard,
		contacts:      contacts,
		subscriptions: subscriptions,
	}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	stats, err := h.service.AdminStats(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Admin statistics retrieved successfully", stats, http.StatusOK)
}

func (h *DashboardHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	contacts, err := h.contacts.GetAll(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleListResponse(w, contacts, len(contacts))
}

func (h *DashboardHandler) Subscribers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	subscribers, err := h.subscriptions.GetAll(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.HandleListResponse(w, subscribers, len(subscribers))
}

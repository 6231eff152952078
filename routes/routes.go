package routes

import (
	"net/http"

	"digitalagency/handlers"
	"digitalagency/middlewares"
)

type Handlers struct {
	Project       *handlers.ProjectHandler
	Client        *handlers.ClientHandler
	Contact       *handlers.ContactHandler
	Subscription  *handlers.SubscriptionHandler
	Dashboard     *handlers.DashboardHandler
	ClientProject *handlers.ClientProjectHandler
	Portal        *handlers.PortalHandler
	TeamMember    *handlers.TeamMemberHandler
	Activity      *handlers.ActivityHandler
}

// Setup wires every route under /api/v1. Admin routes sit behind the
// x-admin-token middleware; the client portal is keyed by email only.
func Setup(h Handlers, adminToken string, production bool) *http.ServeMux {
	mux := http.NewServeMux()

	admin := middlewares.AdminAuth(adminToken, production)

	mux.HandleFunc("GET /api/v1/health", handlers.Health)

	// Public marketing site
	mux.HandleFunc("GET /api/v1/projects", h.Project.GetAll)
	mux.HandleFunc("GET /api/v1/projects/{id}", h.Project.GetByID)
	mux.HandleFunc("GET /api/v1/clients", h.Client.GetAll)
	mux.HandleFunc("GET /api/v1/clients/{id}", h.Client.GetByID)
	mux.HandleFunc("POST /api/v1/contact", h.Contact.Submit)
	mux.HandleFunc("POST /api/v1/subscribe", h.Subscription.Subscribe)

	// Admin content management
	mux.Handle("POST /api/v1/projects", admin(http.HandlerFunc(h.Project.Create)))
	mux.Handle("DELETE /api/v1/projects/{id}", admin(http.HandlerFunc(h.Project.Delete)))
	mux.Handle("POST /api/v1/clients", admin(http.HandlerFunc(h.Client.Create)))
	mux.Handle("DELETE /api/v1/clients/{id}", admin(http.HandlerFunc(h.Client.Delete)))
	mux.Handle("GET /api/v1/contact", admin(http.HandlerFunc(h.Contact.GetAll)))
	mux.Handle("GET /api/v1/contact/{id}", admin(http.HandlerFunc(h.Contact.GetByID)))
	mux.Handle("DELETE /api/v1/contact/{id}", admin(http.HandlerFunc(h.Contact.Delete)))
	mux.Handle("GET /api/v1/subscribe", admin(http.HandlerFunc(h.Subscription.GetAll)))
	mux.Handle("GET /api/v1/subscribe/{id}", admin(http.HandlerFunc(h.Subscription.GetByID)))
	mux.Handle("DELETE /api/v1/subscribe/{id}", admin(http.HandlerFunc(h.Subscription.Unsubscribe)))

	// Admin dashboard
	mux.Handle("GET /api/v1/dashboard/stats", admin(http.HandlerFunc(h.Dashboard.Stats)))
	mux.Handle("GET /api/v1/dashboard/contacts", admin(http.HandlerFunc(h.Dashboard.Contacts)))
	mux.Handle("GET /api/v1/dashboard/subscribers", admin(http.HandlerFunc(h.Dashboard.Subscribers)))
	mux.Handle("GET /api/v1/dashboard/client-projects", admin(http.HandlerFunc(h.ClientProject.List)))
	mux.Handle("POST /api/v1/dashboard/client-projects", admin(http.HandlerFunc(h.ClientProject.Create)))
	mux.Handle("PATCH /api/v1/dashboard/client-projects/{id}", admin(http.HandlerFunc(h.ClientProject.Update)))
	mux.Handle("DELETE /api/v1/dashboard/client-projects/{id}", admin(http.HandlerFunc(h.ClientProject.Delete)))

	// Client portal
	mux.HandleFunc("GET /api/v1/client/stats", h.Portal.Stats)
	mux.HandleFunc("GET /api/v1/client/projects", h.Portal.Projects)
	mux.HandleFunc("GET /api/v1/client/messages", h.Portal.Messages)
	mux.HandleFunc("POST /api/v1/client/messages", h.Portal.SendMessage)
	mux.HandleFunc("PATCH /api/v1/client/messages/{id}/read", h.Portal.MarkMessageRead)
	mux.HandleFunc("GET /api/v1/client/files", h.Portal.Files)
	mux.HandleFunc("POST /api/v1/client/files", h.Portal.RegisterFile)
	mux.HandleFunc("DELETE /api/v1/client/files/{id}", h.Portal.DeleteFile)
	mux.HandleFunc("POST /api/v1/client/welcome-email", h.Portal.SendWelcomeEmail)

	// Team roster
	mux.Handle("GET /api/v1/team-members", admin(http.HandlerFunc(h.TeamMember.GetAll)))
	mux.Handle("GET /api/v1/team-members/stats", admin(http.HandlerFunc(h.TeamMember.Stats)))
	mux.Handle("GET /api/v1/team-members/{id}", admin(http.HandlerFunc(h.TeamMember.GetByID)))
	mux.Handle("POST /api/v1/team-members", admin(http.HandlerFunc(h.TeamMember.Create)))
	mux.Handle("PATCH /api/v1/team-members/{id}", admin(http.HandlerFunc(h.TeamMember.Update)))
	mux.Handle("PATCH /api/v1/team-members/{id}/permissions", admin(http.HandlerFunc(h.TeamMember.UpdatePermissions)))
	mux.Handle("POST /api/v1/team-members/{id}/assign-project", admin(http.HandlerFunc(h.TeamMember.AssignProject)))
	mux.Handle("DELETE /api/v1/team-members/{id}/project/{projectId}", admin(http.HandlerFunc(h.TeamMember.RemoveProject)))
	mux.Handle("DELETE /api/v1/team-members/{id}", admin(http.HandlerFunc(h.TeamMember.Delete)))

	// Activity log
	mux.HandleFunc("GET /api/v1/activities", h.Activity.Feed)
	mux.HandleFunc("GET /api/v1/activities/project/{projectId}", h.Activity.ProjectFeed)
	mux.HandleFunc("GET /api/v1/activities/stats", h.Activity.Stats)
	mux.Handle("DELETE /api/v1/activities/cleanup", admin(http.HandlerFunc(h.Activity.Cleanup)))

	return mux
}

package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/security"
	"accreditation-backend/internal/service"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Registration *RegistrationHandler
	Participant  *ParticipantHandler
	Event        *EventHandler
	Invitation   *InvitationHandler
	Export       *ExportHandler
	Notification *NotificationHandler
}

func NewHandlers(
	auth service.AuthService,
	registrations service.RegistrationService,
	accreditation service.AccreditationService,
	events service.EventService,
	invitations service.InvitationService,
	exports service.ExportService,
	notifications service.NotificationService,
) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(auth),
		Registration: NewRegistrationHandler(registrations),
		Participant:  NewParticipantHandler(accreditation),
		Event:        NewEventHandler(events),
		Invitation:   NewInvitationHandler(invitations),
		Export:       NewExportHandler(exports),
		Notification: NewNotificationHandler(notifications),
	}
}

// NewRouter mounts the full API surface. The registration endpoints are
// public so invitees can register without an account; everything else sits
// behind the bearer-token middleware, with organizer setup gated on ADMIN.
func NewRouter(h *Handlers, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public surface.
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/registration/{code}/types", h.Registration.SelectableTypes).Methods(http.MethodGet)
	api.HandleFunc("/registration", h.Registration.Register).Methods(http.MethodPost)

	// Authenticated surface.
	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	authed.HandleFunc("/drafts", h.Registration.SaveDraft).Methods(http.MethodPost)
	authed.HandleFunc("/drafts", h.Registration.GetDraft).Methods(http.MethodGet)
	authed.HandleFunc("/drafts", h.Registration.DiscardDraft).Methods(http.MethodDelete)

	authed.HandleFunc("/participants/{id}", h.Participant.Get).Methods(http.MethodGet)
	authed.HandleFunc("/participants/{id}/approvals", h.Participant.ListApprovals).Methods(http.MethodGet)
	authed.HandleFunc("/participants/{id}/approve", h.Participant.Approve).Methods(http.MethodPost)
	authed.HandleFunc("/participants/{id}/reject", h.Participant.Reject).Methods(http.MethodPost)
	authed.HandleFunc("/participants/{id}/print", h.Participant.Print).Methods(http.MethodPost)
	authed.HandleFunc("/participants/{id}/notify", h.Participant.Notify).Methods(http.MethodPost)
	authed.HandleFunc("/participants/{id}/archive", h.Participant.Archive).Methods(http.MethodPost)
	authed.HandleFunc("/events/{event_id}/participants", h.Participant.List).Methods(http.MethodGet)

	authed.HandleFunc("/notifications", h.Notification.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id}/read", h.Notification.MarkAsRead).Methods(http.MethodPost)

	// Organizer setup, ADMIN only.
	admin := authed.NewRoute().Subrouter()
	admin.Use(RequireRole(domain.RoleAdmin))

	admin.HandleFunc("/users", h.Auth.CreateUser).Methods(http.MethodPost)

	admin.HandleFunc("/events", h.Event.Create).Methods(http.MethodPost)
	admin.HandleFunc("/events", h.Event.List).Methods(http.MethodGet)
	admin.HandleFunc("/events/{id}", h.Event.Get).Methods(http.MethodGet)
	admin.HandleFunc("/events/{id}/types", h.Event.CreateParticipantType).Methods(http.MethodPost)
	admin.HandleFunc("/events/{id}/types", h.Event.ListParticipantTypes).Methods(http.MethodGet)
	admin.HandleFunc("/events/{id}/workflows", h.Event.CreateWorkflow).Methods(http.MethodPost)
	admin.HandleFunc("/events/{id}/workflows", h.Event.ListWorkflows).Methods(http.MethodGet)
	admin.HandleFunc("/workflows/{workflow_id}/steps", h.Event.ListSteps).Methods(http.MethodGet)

	admin.HandleFunc("/invitations", h.Invitation.Create).Methods(http.MethodPost)
	admin.HandleFunc("/events/{id}/invitations", h.Invitation.ListByEvent).Methods(http.MethodGet)
	admin.HandleFunc("/restrictions", h.Invitation.CreateRestriction).Methods(http.MethodPost)

	admin.HandleFunc("/events/{id}/roster", h.Export.Roster).Methods(http.MethodGet)

	return router
}

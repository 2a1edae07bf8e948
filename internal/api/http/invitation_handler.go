package http

import (
	"net/http"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/service"
)

type InvitationHandler struct {
	invitations service.InvitationService
}

func NewInvitationHandler(invitations service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitations: invitations}
}

func (h *InvitationHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	var inv domain.Invitation
	if err := decodeJSON(r, &inv); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if inv.EventID == 0 || inv.Organization == "" || inv.Email == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "event, organization and email are required"})
		return
	}
	inv.CreatedBy = claims.UserID

	if err := h.invitations.CreateInvitation(r.Context(), &inv); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

func (h *InvitationHandler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	invitations, err := h.invitations.ListInvitations(r.Context(), eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invitations)
}

func (h *InvitationHandler) CreateRestriction(w http.ResponseWriter, r *http.Request) {
	var restriction domain.Restriction
	if err := decodeJSON(r, &restriction); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if restriction.EventID == 0 || restriction.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "event and name are required"})
		return
	}

	if err := h.invitations.CreateRestriction(r.Context(), &restriction); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, restriction)
}

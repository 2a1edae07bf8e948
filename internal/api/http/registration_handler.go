package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"accreditation-backend/internal/service"
)

// RegistrationHandler serves the public invitee-facing surface: type
// selection, registration submission, and form drafts.
type RegistrationHandler struct {
	registrations service.RegistrationService
}

func NewRegistrationHandler(registrations service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations}
}

func (h *RegistrationHandler) SelectableTypes(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if code == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invitation code is required"})
		return
	}

	types, err := h.registrations.SelectableTypes(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}

func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.InvitationCode == "" || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invitation code and email are required"})
		return
	}

	participant, err := h.registrations.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, participant)
}

type saveDraftRequest struct {
	EventID        int32  `json:"event_id"`
	InvitationCode string `json:"invitation_code"`
	Payload        string `json:"payload"`
}

func (h *RegistrationHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	var req saveDraftRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	draft, err := h.registrations.SaveDraft(r.Context(), claims.UserID, req.EventID, req.InvitationCode, req.Payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *RegistrationHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	draft, err := h.registrations.GetDraft(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *RegistrationHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	if err := h.registrations.DiscardDraft(r.Context(), claims.UserID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}

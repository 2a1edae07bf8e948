package http

import (
	"context"
	"net/http"
	"strconv"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/service"
)

// ParticipantHandler exposes the role-gated workflow actions plus read access
// to participants and their approval history.
type ParticipantHandler struct {
	accreditation service.AccreditationService
}

func NewParticipantHandler(accreditation service.AccreditationService) *ParticipantHandler {
	return &ParticipantHandler{accreditation: accreditation}
}

type actionRequest struct {
	Remarks string `json:"remarks"`
}

type actionFunc func(ctx context.Context, userID, participantID int32, remarks string) (*domain.Participant, error)

func (h *ParticipantHandler) action(fn actionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}

		participantID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid participant id"})
			return
		}

		var req actionRequest
		if r.ContentLength > 0 {
			if err := decodeJSON(r, &req); err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
				return
			}
		}

		participant, err := fn(r.Context(), claims.UserID, participantID, req.Remarks)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, participant)
	}
}

func (h *ParticipantHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.action(h.accreditation.Approve)(w, r)
}

func (h *ParticipantHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.action(h.accreditation.Reject)(w, r)
}

func (h *ParticipantHandler) Print(w http.ResponseWriter, r *http.Request) {
	h.action(h.accreditation.Print)(w, r)
}

func (h *ParticipantHandler) Notify(w http.ResponseWriter, r *http.Request) {
	h.action(h.accreditation.Notify)(w, r)
}

func (h *ParticipantHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.action(h.accreditation.Archive)(w, r)
}

func (h *ParticipantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid participant id"})
		return
	}

	participant, err := h.accreditation.GetParticipant(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, participant)
}

type participantListResponse struct {
	Participants []domain.Participant `json:"participants"`
	TotalCount   int32                `json:"total_count"`
	Page         int32                `json:"page"`
	PageSize     int32                `json:"page_size"`
}

func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "event_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)
	status := r.URL.Query().Get("status")

	participants, total, err := h.accreditation.ListParticipants(r.Context(), eventID, status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, participantListResponse{
		Participants: participants,
		TotalCount:   total,
		Page:         page,
		PageSize:     pageSize,
	})
}

func (h *ParticipantHandler) ListApprovals(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid participant id"})
		return
	}

	approvals, err := h.accreditation.ListApprovals(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, approvals)
}

func queryInt32(r *http.Request, name string, fallback int32) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 1 {
		return fallback
	}
	return int32(v)
}

package http

import (
	"net/http"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/service"
)

// EventHandler covers organizer-side setup: events, participant types, and
// workflow definitions.
type EventHandler struct {
	events service.EventService
}

func NewEventHandler(events service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var ev domain.Event
	if err := decodeJSON(r, &ev); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if ev.Name == "" || ev.Prefix == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name and prefix are required"})
		return
	}

	if err := h.events.CreateEvent(r.Context(), &ev); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ev)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	ev, err := h.events.GetEvent(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListEvents(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) CreateParticipantType(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	var pt domain.ParticipantType
	if err := decodeJSON(r, &pt); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	pt.EventID = eventID
	if pt.Name == "" || pt.Prefix == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name and prefix are required"})
		return
	}

	if err := h.events.CreateParticipantType(r.Context(), &pt); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pt)
}

func (h *EventHandler) ListParticipantTypes(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	types, err := h.events.ListParticipantTypes(r.Context(), eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}

type createWorkflowRequest struct {
	Workflow domain.Workflow `json:"workflow"`
	Steps    []domain.Step   `json:"steps"`
}

func (h *EventHandler) CreateWorkflow(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	var req createWorkflowRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	req.Workflow.EventID = eventID

	if err := h.events.CreateWorkflow(r.Context(), &req.Workflow, req.Steps); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req.Workflow)
}

func (h *EventHandler) ListWorkflows(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	workflows, err := h.events.ListWorkflows(r.Context(), eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workflows)
}

func (h *EventHandler) ListSteps(w http.ResponseWriter, r *http.Request) {
	workflowID, err := pathID(r, "workflow_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid workflow id"})
		return
	}

	steps, err := h.events.ListSteps(r.Context(), workflowID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, steps)
}

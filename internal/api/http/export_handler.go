package http

import (
	"fmt"
	"net/http"

	"accreditation-backend/internal/service"
)

type ExportHandler struct {
	exports service.ExportService
}

func NewExportHandler(exports service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Roster streams the event roster as an xlsx workbook.
func (h *ExportHandler) Roster(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	workbook, err := h.exports.ExportRoster(r.Context(), eventID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="roster-event-%d.xlsx"`, eventID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}

package handlers

import (
	"errors"
	"net/http"

	"elderguard/internal/domain/services"
	"elderguard/pkg/logger"
)

// ReportHandler builds the helpline report text for a session
type ReportHandler struct {
	report *services.ReportService
	logger *logger.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(report *services.ReportService, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		report: report,
		logger: log.WithComponent("report-handler"),
	}
}

// Build handles POST /api/v1/sessions/{id}/report. The response carries the
// flat text the caregiver pastes into the 1930 / cybercrime.gov.in form.
func (h *ReportHandler) Build(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	body, err := h.report.Build(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, "session not found")
			return
		}
		h.logger.Error().Err(err).Str("session_id", id.String()).Msg("failed to build report")
		respondError(w, http.StatusInternalServerError, "failed to build report")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"report": body})
}

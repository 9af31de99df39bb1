package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"elderguard/internal/domain/services"
	"elderguard/internal/infrastructure/database/repository"
	"elderguard/pkg/logger"
)

// AdminHandler serves the archived-report routes. Mounted only when a
// database is configured.
type AdminHandler struct {
	report *services.ReportService
	logger *logger.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(report *services.ReportService, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		report: report,
		logger: log.WithComponent("admin-handler"),
	}
}

// ListReports handles GET /api/v1/admin/reports
func (h *AdminHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	reports, err := h.report.Archived(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list archived reports")
		respondError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"reports": reports,
		"count":   len(reports),
	})
}

// GetReport handles GET /api/v1/admin/reports/{id}
func (h *AdminHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	report, err := h.report.ArchivedByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			respondError(w, http.StatusNotFound, "report not found")
			return
		}
		h.logger.Error().Err(err).Str("report_id", id.String()).Msg("failed to fetch archived report")
		respondError(w, http.StatusInternalServerError, "failed to fetch report")
		return
	}

	respondJSON(w, http.StatusOK, report)
}

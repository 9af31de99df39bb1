package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"elderguard/internal/domain/models"
	"elderguard/pkg/logger"
)

// HandlesHandler serves the built-in UPI handle registry
type HandlesHandler struct {
	logger *logger.Logger
}

// NewHandlesHandler creates a new HandlesHandler
func NewHandlesHandler(log *logger.Logger) *HandlesHandler {
	return &HandlesHandler{logger: log.WithComponent("handles-handler")}
}

// List handles GET /api/v1/handles
func (h *HandlesHandler) List(w http.ResponseWriter, r *http.Request) {
	handles := make([]models.HandleInfo, 0, len(models.KnownUPIHandles))
	for _, info := range models.KnownUPIHandles {
		handles = append(handles, info)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i].Suffix < handles[j].Suffix })
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"handles": handles,
		"count":   len(handles),
	})
}

// Get handles GET /api/v1/handles/{suffix}
func (h *HandlesHandler) Get(w http.ResponseWriter, r *http.Request) {
	suffix := strings.ToLower(strings.TrimPrefix(chi.URLParam(r, "suffix"), "@"))

	info, ok := models.KnownUPIHandles[suffix]
	if !ok {
		respondError(w, http.StatusNotFound, "unknown handle suffix")
		return
	}

	respondJSON(w, http.StatusOK, info)
}

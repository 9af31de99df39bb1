package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"elderguard/internal/domain/models"
	"elderguard/internal/domain/services"
	"elderguard/pkg/logger"
)

// BaitHandler handles bait-mode conversation turns
type BaitHandler struct {
	bait   *services.BaitService
	logger *logger.Logger
}

// NewBaitHandler creates a new BaitHandler
func NewBaitHandler(bait *services.BaitService, log *logger.Logger) *BaitHandler {
	return &BaitHandler{
		bait:   bait,
		logger: log.WithComponent("bait-handler"),
	}
}

// Reply handles POST /api/v1/sessions/{id}/bait
func (h *BaitHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	var req models.BaitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	result, err := h.bait.Reply(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, "session not found")
			return
		}
		h.logger.Error().Err(err).Str("session_id", id.String()).Msg("bait turn failed")
		respondError(w, http.StatusBadGateway, "bait reply failed")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

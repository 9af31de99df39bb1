package handlers

import (
	"errors"
	"net/http"

	"elderguard/internal/domain/services"
	"elderguard/pkg/logger"
)

// SessionsHandler handles session lifecycle endpoints
type SessionsHandler struct {
	sessions services.SessionStore
	logger   *logger.Logger
}

// NewSessionsHandler creates a new SessionsHandler
func NewSessionsHandler(sessions services.SessionStore, log *logger.Logger) *SessionsHandler {
	return &SessionsHandler{
		sessions: sessions,
		logger:   log.WithComponent("sessions-handler"),
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Create(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create session")
		respondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	h.logger.Info().Str("session_id", sess.ID.String()).Msg("session created")
	respondJSON(w, http.StatusCreated, sess)
}

// Intel handles GET /api/v1/sessions/{id}/intel
func (h *SessionsHandler) Intel(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	sess, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, "session not found")
			return
		}
		h.logger.Error().Err(err).Str("session_id", id.String()).Msg("failed to load session")
		respondError(w, http.StatusInternalServerError, "failed to load session")
		return
	}

	respondJSON(w, http.StatusOK, sess)
}

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"elderguard/internal/config"
	"elderguard/internal/domain/models"
	"elderguard/internal/domain/services"
	"elderguard/pkg/logger"
)

// ScanHandler handles the three scan endpoints: protect-mode text, warrant
// document and QR image.
type ScanHandler struct {
	protect *services.ProtectService
	warrant *services.WarrantService
	qr      *services.QRService
	cfg     *config.Config
	logger  *logger.Logger
}

// NewScanHandler creates a new ScanHandler
func NewScanHandler(protect *services.ProtectService, warrant *services.WarrantService, qr *services.QRService, cfg *config.Config, log *logger.Logger) *ScanHandler {
	return &ScanHandler{
		protect: protect,
		warrant: warrant,
		qr:      qr,
		cfg:     cfg,
		logger:  log.WithComponent("scan-handler"),
	}
}

// Text handles POST /api/v1/sessions/{id}/scan/text
func (h *ScanHandler) Text(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	var req models.TextScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	result, err := h.protect.ScanText(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, "session not found")
			return
		}
		h.logger.Error().Err(err).Str("session_id", id.String()).Msg("text scan failed")
		respondError(w, http.StatusInternalServerError, "scan failed")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Warrant handles POST /api/v1/sessions/{id}/scan/warrant
func (h *ScanHandler) Warrant(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	data, mediaType, form, err := h.readUpload(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer form.RemoveAll()

	lang := models.NormalizeLanguage(r.FormValue("language"))
	searchableInfo := r.FormValue("searchable_info")

	analysis, err := h.warrant.Analyze(r.Context(), id, lang, searchableInfo, data, mediaType)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, "session not found")
			return
		}
		h.logger.Error().Err(err).Str("session_id", id.String()).Msg("warrant analysis failed")
		respondJSON(w, http.StatusBadGateway, models.WarrantAnalysis{
			Risk:    models.RiskUnknown,
			Message: services.WarrantErrorMessage(lang),
		})
		return
	}

	respondJSON(w, http.StatusOK, analysis)
}

// QR handles POST /api/v1/sessions/{id}/scan/qr
func (h *ScanHandler) QR(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	data, mediaType, form, err := h.readUpload(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer form.RemoveAll()

	lang := models.NormalizeLanguage(r.FormValue("language"))

	analysis, err := h.qr.Analyze(r.Context(), id, lang, data, mediaType)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, "session not found")
			return
		}
		h.logger.Error().Err(err).Str("session_id", id.String()).Msg("qr analysis failed")
		respondJSON(w, http.StatusBadGateway, models.QRAnalysis{
			Decoded: false,
			Risk:    models.RiskUnknown,
			Message: services.QRErrorMessage(lang),
		})
		return
	}

	respondJSON(w, http.StatusOK, analysis)
}

// readUpload parses the multipart "file" field under the configured size cap
// and resolves the media type
func (h *ScanHandler) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, *multipart.Form, error) {
	maxBytes := h.cfg.Upload.MaxSizeBytes
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, "", nil, errors.New("invalid multipart body or file too large")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		r.MultipartForm.RemoveAll()
		return nil, "", nil, errors.New("file is required")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		r.MultipartForm.RemoveAll()
		return nil, "", nil, errors.New("failed to read file")
	}

	mediaType := services.ResolveMediaType(header.Header.Get("Content-Type"), header.Filename)
	return data, mediaType, r.MultipartForm, nil
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"elderguard/internal/config"
	"elderguard/internal/domain/services"
	"elderguard/internal/infrastructure/cache"
	"elderguard/internal/infrastructure/database"
	"elderguard/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health   *HealthHandler
	Sessions *SessionsHandler
	Scan     *ScanHandler
	Bait     *BaitHandler
	Report   *ReportHandler
	Handles  *HandlesHandler
	Admin    *AdminHandler
}

// Dependencies holds dependencies for handlers
type Dependencies struct {
	Protect  *services.ProtectService
	Warrant  *services.WarrantService
	QR       *services.QRService
	Bait     *services.BaitService
	Report   *services.ReportService
	Sessions services.SessionStore
	Cache    *cache.RedisCache
	DB       *database.PostgresDB
	Config   *config.Config
	Logger   *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(deps.Cache, deps.DB, deps.Logger),
		Sessions: NewSessionsHandler(deps.Sessions, deps.Logger),
		Scan:     NewScanHandler(deps.Protect, deps.Warrant, deps.QR, deps.Config, deps.Logger),
		Bait:     NewBaitHandler(deps.Bait, deps.Logger),
		Report:   NewReportHandler(deps.Report, deps.Logger),
		Handles:  NewHandlesHandler(deps.Logger),
		Admin:    NewAdminHandler(deps.Report, deps.Logger),
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// sessionID parses the {id} route parameter
func sessionID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

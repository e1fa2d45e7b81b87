// internal/api/status_handlers.go
package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"pcblab/internal/config"
	"pcblab/internal/scanner"
	"pcblab/internal/session"
)

// Version of the PCB Lab engine, overridden at build time
var Version = "dev"

// StatusHandler handles system status-related API endpoints
type StatusHandler struct {
	sim       *scanner.Simulator
	session   *session.Session
	cfg       *config.Config
	startTime time.Time
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(sim *scanner.Simulator, sess *session.Session, cfg *config.Config) *StatusHandler {
	return &StatusHandler{
		sim:       sim,
		session:   sess,
		cfg:       cfg,
		startTime: time.Now(),
	}
}

// RegisterRoutes registers the status routes
func (h *StatusHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/status", h.getSystemStatus).Methods("GET")
	r.HandleFunc("/api/status/health", h.getHealthCheck).Methods("GET")
}

// getSystemStatus returns the overall system status
func (h *StatusHandler) getSystemStatus(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "getSystemStatus").Logger()

	scanStatus := h.sim.Status()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	response := map[string]interface{}{
		"status":    "healthy",
		"version":   Version,
		"uptime":    time.Since(h.startTime).String(),
		"startTime": h.startTime,
		"system": map[string]interface{}{
			"goVersion":    runtime.Version(),
			"goArch":       runtime.GOARCH,
			"goOS":         runtime.GOOS,
			"numCPU":       runtime.NumCPU(),
			"numGoroutine": runtime.NumGoroutine(),
		},
		"memory": map[string]interface{}{
			"alloc": memStats.Alloc / 1024 / 1024, // MB
			"sys":   memStats.Sys / 1024 / 1024,   // MB
			"numGC": memStats.NumGC,
		},
		"config": map[string]interface{}{
			"serverPort":     h.cfg.Server.Port,
			"loggingLevel":   h.cfg.Logging.Level,
			"metricsEnabled": h.cfg.Advanced.MetricsEnabled,
			"captureDelay":   h.cfg.Simulator.CaptureDelay,
		},
		"scanner": map[string]interface{}{
			"state":         scanStatus.State,
			"currentScanID": scanStatus.ScanID,
		},
		"session": map[string]interface{}{
			"loggedIn": h.session.IsLoggedIn(),
		},
		"timestamp": time.Now(),
	}

	writeJSON(w, logger, http.StatusOK, response)
}

// getHealthCheck returns a simple health check response
func (h *StatusHandler) getHealthCheck(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "getHealthCheck").Logger()

	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(h.startTime).String(),
	}
	writeJSON(w, logger, http.StatusOK, response)
}

// Package api provides HTTP handlers for the PCB Lab REST API.
// It includes handlers for the scan simulator, the catalog, the tools panel,
// the website forms and system status.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"pcblab/internal/scanner"
)

// ScanHandler handles scan-related API endpoints
type ScanHandler struct {
	sim *scanner.Simulator
}

// NewScanHandler creates a new scan handler
func NewScanHandler(sim *scanner.Simulator) *ScanHandler {
	return &ScanHandler{
		sim: sim,
	}
}

// RegisterRoutes registers the scan routes
func (h *ScanHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/scans", h.startScan).Methods("POST")
	r.HandleFunc("/api/scans/status", h.GetScanStatus).Methods("GET")
	r.HandleFunc("/api/scans/reset", h.resetScan).Methods("POST")
	r.HandleFunc("/api/scans/cancel", h.cancelScan).Methods("POST")
}

// startScanResponse acknowledges a started scan
type startScanResponse struct {
	ScanID string        `json:"scanId"`
	State  scanner.State `json:"state"`
}

// startScan starts a capture or upload scan. The result is polled through
// the status endpoint.
func (h *ScanHandler) startScan(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "startScan").Logger()

	var trigger scanner.Trigger
	if err := decodeBody(r, &trigger); err != nil {
		writeError(w, logger, err)
		return
	}

	job, err := h.sim.Start(trigger)
	if err != nil {
		logger.Warn().Err(err).Msg("Scan not started")
		writeError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusAccepted, startScanResponse{
		ScanID: job.ID,
		State:  scanner.StateScanning,
	})
}

// GetScanStatus returns the current scan status
func (h *ScanHandler) GetScanStatus(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "getScanStatus").Logger()
	writeJSON(w, logger, http.StatusOK, h.sim.Status())
}

// resetScan discards a finished scan
func (h *ScanHandler) resetScan(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "resetScan").Logger()

	if err := h.sim.Reset(); err != nil {
		writeError(w, logger, err)
		return
	}
	writeJSON(w, logger, http.StatusOK, h.sim.Status())
}

// cancelScan abandons the running scan
func (h *ScanHandler) cancelScan(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "cancelScan").Logger()

	if err := h.sim.Cancel(); err != nil {
		writeError(w, logger, err)
		return
	}
	writeJSON(w, logger, http.StatusOK, h.sim.Status())
}

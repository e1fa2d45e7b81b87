// internal/api/tool_handlers.go
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"pcblab/internal/catalog"
	"pcblab/internal/ohm"
)

// ToolHandler handles the tools panel endpoints
type ToolHandler struct {
	catalog *catalog.Catalog
}

// NewToolHandler creates a new tool handler
func NewToolHandler(cat *catalog.Catalog) *ToolHandler {
	return &ToolHandler{
		catalog: cat,
	}
}

// RegisterRoutes registers the tool routes
func (h *ToolHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/tools", h.getTools).Methods("GET")
	r.HandleFunc("/api/tools/ohm", h.calculateOhm).Methods("POST")
	r.HandleFunc("/api/tools/{id}", h.getTool).Methods("GET")
}

// getTools lists tools, optionally filtered by category
func (h *ToolHandler) getTools(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "getTools").Logger()
	writeJSON(w, logger, http.StatusOK, h.catalog.ToolList(r.URL.Query().Get("category")))
}

// getTool returns the detail view of a tool
func (h *ToolHandler) getTool(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "getTool").Logger()

	detail, err := h.catalog.ToolDetail(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, logger, err)
		return
	}
	writeJSON(w, logger, http.StatusOK, detail)
}

type ohmRequest struct {
	Input string `json:"input"`
}

type ohmResponse struct {
	ohm.Solution
	Result string `json:"result"`
}

// calculateOhm solves Ohm's law for the missing quantity
func (h *ToolHandler) calculateOhm(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "calculateOhm").Logger()

	var req ohmRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, logger, err)
		return
	}

	solution, err := ohm.Calculate(req.Input)
	if err != nil {
		// every calculator failure is an input problem
		writeErrorStatus(w, logger, http.StatusBadRequest, err)
		return
	}

	logger.Debug().Str("input", req.Input).Str("solved", string(solution.Solved)).Msg("Ohm calculation")
	writeJSON(w, logger, http.StatusOK, ohmResponse{Solution: solution, Result: solution.String()})
}

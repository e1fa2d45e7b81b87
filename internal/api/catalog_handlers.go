// internal/api/catalog_handlers.go
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"pcblab/internal/catalog"
	"pcblab/internal/models"
)

// CatalogHandler handles the component, board, fault and website catalog endpoints
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
	}
}

// RegisterRoutes registers the catalog routes
func (h *CatalogHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/components", h.getComponents).Methods("GET")
	r.HandleFunc("/api/components/{id}", h.getComponent).Methods("GET")
	r.HandleFunc("/api/components/{id}/offers", h.getOffers).Methods("GET")
	r.HandleFunc("/api/pcbs", h.getPCBs).Methods("GET")
	r.HandleFunc("/api/faults", h.getFaults).Methods("GET")
	r.HandleFunc("/api/analysis/components", h.getAnalyses).Methods("GET")
	r.HandleFunc("/api/analysis/blocks", h.getBlocks).Methods("GET")
	r.HandleFunc("/api/plans", h.getPlans).Methods("GET")
	r.HandleFunc("/api/services", h.getServices).Methods("GET")
	r.HandleFunc("/api/contact", h.getContact).Methods("GET")
	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
}

// listingResponse is a component listing with its offer summary
type listingResponse struct {
	models.ComponentListing
	Summary catalog.Summary `json:"summary"`
}

func withSummary(listings []models.ComponentListing) []listingResponse {
	out := make([]listingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, listingResponse{ComponentListing: l, Summary: catalog.Summarize(l)})
	}
	return out
}

// getComponents searches components by text and category
func (h *CatalogHandler) getComponents(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "getComponents").Logger()

	q := r.URL.Query()
	listings := h.catalog.Components(q.Get("q"), q.Get("category"))
	writeJSON(w, logger, http.StatusOK, withSummary(listings))
}

// getComponent returns one component listing
func (h *CatalogHandler) getComponent(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "getComponent").Logger()

	listing, err := h.catalog.Component(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, logger, err)
		return
	}
	writeJSON(w, logger, http.StatusOK, withSummary([]models.ComponentListing{listing})[0])
}

// getOffers returns the sorted supplier offers of a component
func (h *CatalogHandler) getOffers(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "getOffers").Logger()

	key, err := catalog.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, logger, err)
		return
	}

	view, err := h.catalog.Offers(mux.Vars(r)["id"], key)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	writeJSON(w, logger, http.StatusOK, view)
}

// getPCBs searches the board database
func (h *CatalogHandler) getPCBs(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "getPCBs").Logger()

	q := r.URL.Query()
	writeJSON(w, logger, http.StatusOK, h.catalog.PCBs(q.Get("q"), q.Get("category")))
}

// getFaults searches the known fault patterns
func (h *CatalogHandler) getFaults(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "getFaults").Logger()
	writeJSON(w, logger, http.StatusOK, h.catalog.FaultPatterns(r.URL.Query().Get("q")))
}

// getAnalyses returns the identified components of the analysis dashboard
func (h *CatalogHandler) getAnalyses(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "getAnalyses").Logger()

	analyses, err := h.catalog.ComponentAnalyses(r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, logger, err)
		return
	}
	writeJSON(w, logger, http.StatusOK, analyses)
}

func (h *CatalogHandler) getBlocks(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "getBlocks").Logger()
	writeJSON(w, logger, http.StatusOK, h.catalog.FunctionalBlocks())
}

func (h *CatalogHandler) getPlans(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "getPlans").Logger()
	writeJSON(w, logger, http.StatusOK, h.catalog.PricingPlans())
}

func (h *CatalogHandler) getServices(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "getServices").Logger()
	writeJSON(w, logger, http.StatusOK, h.catalog.ServiceList())
}

// getContact returns the contact details with ready-made links
func (h *CatalogHandler) getContact(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "getContact").Logger()

	c := h.catalog.Contact
	response := map[string]interface{}{
		"email":    c.Email,
		"phone":    c.Phone,
		"website":  c.Website,
		"location": c.Location,
		"links": map[string]string{
			"email":   c.EmailURL(),
			"phone":   c.PhoneURL(),
			"website": c.Website,
		},
	}
	writeJSON(w, logger, http.StatusOK, response)
}

func (h *CatalogHandler) getCategories(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "getCategories").Logger()
	writeJSON(w, logger, http.StatusOK, h.catalog.Categories())
}

// internal/api/form_handlers.go
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pcblab/internal/forms"
	"pcblab/internal/models"
	"pcblab/internal/session"
)

// FormHandler handles authentication, plan selection, quotes and subscriptions
type FormHandler struct {
	forms   *forms.Submitter
	session *session.Session
}

// NewFormHandler creates a new form handler
func NewFormHandler(submitter *forms.Submitter, sess *session.Session) *FormHandler {
	return &FormHandler{
		forms:   submitter,
		session: sess,
	}
}

// RegisterRoutes registers the form routes
func (h *FormHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/auth/session", h.getSession).Methods("GET")
	r.HandleFunc("/api/plans/{id}/select", h.selectPlan).Methods("POST")
	r.HandleFunc("/api/quotes", h.submitQuote).Methods("POST")
	r.HandleFunc("/api/subscriptions", h.subscribe).Methods("POST")
}

// submit validates p, waits for the simulated delay and writes the outcome
func (h *FormHandler) submit(w http.ResponseWriter, r *http.Request, logger zerolog.Logger, p forms.Payload) {
	pending, err := h.forms.Submit(p)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	outcome := pending.Wait(r.Context())
	if outcome.Err != nil {
		if errors.Is(outcome.Err, context.Canceled) || errors.Is(outcome.Err, context.DeadlineExceeded) {
			logger.Warn().Err(outcome.Err).Msg("Client gave up before the submission resolved")
			return
		}
		writeError(w, logger, outcome.Err)
		return
	}
	writeJSON(w, logger, http.StatusOK, outcome)
}

func (h *FormHandler) login(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "login").Logger()

	var p forms.Login
	if err := decodeBody(r, &p); err != nil {
		writeError(w, logger, err)
		return
	}
	h.submit(w, r, logger, p)
}

func (h *FormHandler) register(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "register").Logger()

	var p forms.Register
	if err := decodeBody(r, &p); err != nil {
		writeError(w, logger, err)
		return
	}
	h.submit(w, r, logger, p)
}

func (h *FormHandler) logout(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "logout").Logger()
	writeJSON(w, logger, http.StatusOK, h.forms.Logout())
}

// sessionResponse describes the current session
type sessionResponse struct {
	LoggedIn bool                `json:"loggedIn"`
	User     *models.User        `json:"user,omitempty"`
	Plan     *models.PricingPlan `json:"plan,omitempty"`
}

func (h *FormHandler) getSession(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "getSession").Logger()

	var resp sessionResponse
	if u, ok := h.session.Current(); ok {
		resp.LoggedIn = true
		resp.User = &u
	}
	if p, ok := h.session.SelectedPlan(); ok {
		resp.Plan = &p
	}
	writeJSON(w, logger, http.StatusOK, resp)
}

// selectPlan picks a pricing plan for the signed-in user
func (h *FormHandler) selectPlan(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "selectPlan").Logger()

	plan, err := h.session.SelectPlan(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, logger, err)
		return
	}
	writeJSON(w, logger, http.StatusOK, plan)
}

func (h *FormHandler) submitQuote(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "submitQuote").Logger()

	var p forms.QuoteRequest
	if err := decodeBody(r, &p); err != nil {
		writeError(w, logger, err)
		return
	}
	h.submit(w, r, logger, p)
}

// subscribe confirms a plan. Without a planId in the body the plan chosen
// through selectPlan is used.
func (h *FormHandler) subscribe(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("handler", "subscribe").Logger()

	var p forms.Subscription
	if r.ContentLength != 0 {
		if err := decodeBody(r, &p); err != nil {
			writeError(w, logger, err)
			return
		}
	}
	if p.PlanID == "" {
		if plan, ok := h.session.SelectedPlan(); ok {
			p.PlanID = plan.ID
		}
	}
	h.submit(w, r, logger, p)
}

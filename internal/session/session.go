// Package session holds the signed-in user and the chosen pricing plan.
// A Session is shared by the form simulator, the HTTP layer and the CLI; it
// is safe for concurrent use and writes are last-write-wins.
package session

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pcblab/internal/apperrors"
	"pcblab/internal/metrics"
	"pcblab/internal/models"
)

// ErrLoginRequired is returned by operations that need a signed-in user
var ErrLoginRequired = apperrors.Unauthorized("login required")

// PlanLookup resolves a pricing plan id
type PlanLookup interface {
	Plan(id string) (models.PricingPlan, error)
}

// Session is the user slot of one running application
type Session struct {
	mu     sync.RWMutex
	user   *models.User
	plan   *models.PricingPlan
	plans  PlanLookup
	logger zerolog.Logger
}

// New creates an empty session. plans is consulted by SelectPlan.
func New(plans PlanLookup) *Session {
	return &Session{
		plans:  plans,
		logger: log.With().Str("component", "session").Logger(),
	}
}

// Login stores u as the current user, replacing any previous one.
// The selected plan survives only when the same account signs in again.
func (s *Session) Login(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		metrics.SessionStarted()
	} else if !sameAccount(*s.user, u) {
		s.plan = nil
	}
	s.user = &u
	s.logger.Info().Str("userID", u.ID).Str("email", u.Email).Msg("User signed in")
}

// Logout clears the user and the selected plan. It never fails.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		s.logger.Info().Str("userID", s.user.ID).Msg("User signed out")
		metrics.SessionEnded()
	}
	s.user = nil
	s.plan = nil
}

// sameAccount matches users by email; ids are minted anew on every login
func sameAccount(a, b models.User) bool {
	return strings.EqualFold(strings.TrimSpace(a.Email), strings.TrimSpace(b.Email))
}

// Current returns the signed-in user
func (s *Session) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// IsLoggedIn reports whether a user is signed in
func (s *Session) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// SelectPlan records the plan the signed-in user picked on the pricing page
func (s *Session) SelectPlan(planID string) (models.PricingPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.PricingPlan{}, ErrLoginRequired
	}
	plan, err := s.plans.Plan(planID)
	if err != nil {
		return models.PricingPlan{}, err
	}

	s.plan = &plan
	s.logger.Info().Str("userID", s.user.ID).Str("plan", plan.ID).Msg("Plan selected")
	return plan, nil
}

// SelectedPlan returns the plan picked by the current user, if any
func (s *Session) SelectedPlan() (models.PricingPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.plan == nil {
		return models.PricingPlan{}, false
	}
	return *s.plan, true
}

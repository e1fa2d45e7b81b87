// Package forms simulates the website's form submissions: login, account
// registration, quote requests and plan subscriptions. Payloads are validated
// synchronously; a valid submission completes after a configurable delay by
// calling a Backend, and successful logins and registrations update the
// session.
package forms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pcblab/internal/apperrors"
	"pcblab/internal/clock"
	"pcblab/internal/config"
	"pcblab/internal/metrics"
	"pcblab/internal/models"
	"pcblab/internal/session"
)

// Identity returned for every login by the mock backend
const (
	mockUserName    = "John Doe"
	mockUserCompany = "Tech Solutions"
)

// Backend processes a validated payload once its delay has elapsed
type Backend interface {
	Process(ctx context.Context, p Payload) error
}

// BackendFunc adapts a function to the Backend interface
type BackendFunc func(ctx context.Context, p Payload) error

// Process calls f
func (f BackendFunc) Process(ctx context.Context, p Payload) error {
	return f(ctx, p)
}

// MockBackend accepts every submission
type MockBackend struct{}

// Process always succeeds
func (MockBackend) Process(context.Context, Payload) error {
	return nil
}

// Receipt acknowledges a quote request or a subscription
type Receipt struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Outcome is the result of a submission. Data holds a models.User for login
// and register, and a Receipt otherwise.
type Outcome struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Err     error  `json:"-"`
}

// Pending is a submission waiting for its delay
type Pending struct {
	Kind Kind

	done    chan struct{}
	outcome Outcome
}

// Wait blocks until the submission resolves or ctx is done
func (p *Pending) Wait(ctx context.Context) Outcome {
	select {
	case <-p.done:
		return p.outcome
	case <-ctx.Done():
		return Outcome{Err: ctx.Err()}
	}
}

// Option configures a Submitter
type Option func(*Submitter)

// WithBackend replaces the mock backend
func WithBackend(b Backend) Option {
	return func(s *Submitter) {
		s.backend = b
	}
}

// Submitter runs form submissions against a session
type Submitter struct {
	clock   clock.Clock
	session *session.Session
	plans   session.PlanLookup
	backend Backend
	delays  map[Kind]time.Duration
	logger  zerolog.Logger
}

// New creates a Submitter writing to sess. plans validates subscriptions.
func New(cfg *config.Config, clk clock.Clock, sess *session.Session, plans session.PlanLookup, opts ...Option) *Submitter {
	s := &Submitter{
		clock:   clk,
		session: sess,
		plans:   plans,
		backend: MockBackend{},
		logger:  log.With().Str("component", "forms").Logger(),
	}

	d, err := cfg.GetDelays()
	if err != nil {
		s.logger.Error().Err(err).Msg("Invalid simulator delays in config, using defaults")
		d, _ = config.New().GetDelays()
	}
	s.delays = map[Kind]time.Duration{
		KindLogin:        d.Login,
		KindRegister:     d.Register,
		KindQuoteRequest: d.Quote,
		KindSubscription: d.Subscription,
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Submitter) validate(p Payload) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if sub, ok := p.(Subscription); ok {
		if _, err := s.plans.Plan(sub.PlanID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewValidationError("plan", apperrors.ReasonUnknown, "unknown plan "+sub.PlanID)
			}
			return err
		}
	}
	return nil
}

// Submit validates p and schedules its completion. Validation errors are
// returned immediately and leave the session untouched.
func (s *Submitter) Submit(p Payload) (*Pending, error) {
	kind := p.Kind()
	if err := s.validate(p); err != nil {
		s.logger.Debug().Err(err).Str("kind", string(kind)).Msg("Submission rejected")
		metrics.RecordSubmission(string(kind), metrics.OutcomeInvalid)
		return nil, err
	}

	pending := &Pending{Kind: kind, done: make(chan struct{})}
	timer := s.clock.After(s.delays[kind])
	go s.complete(p, pending, timer)

	s.logger.Info().Str("kind", string(kind)).Dur("delay", s.delays[kind]).Msg("Submission accepted")
	metrics.RecordSubmission(string(kind), metrics.OutcomeStarted)
	return pending, nil
}

func (s *Submitter) complete(p Payload, pending *Pending, timer <-chan time.Time) {
	<-timer

	outcome := s.process(p)
	if outcome.OK {
		metrics.RecordSubmission(string(pending.Kind), metrics.OutcomeCompleted)
	} else {
		s.logger.Error().Err(outcome.Err).Str("kind", string(pending.Kind)).Msg("Submission failed")
		metrics.RecordSubmission(string(pending.Kind), metrics.OutcomeFailed)
	}

	pending.outcome = outcome
	close(pending.done)
}

func (s *Submitter) process(p Payload) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = Outcome{Err: apperrors.NewSimulationFailure(string(p.Kind()), fmt.Errorf("backend panic: %v", r))}
		}
	}()

	if err := s.backend.Process(context.Background(), p); err != nil {
		return Outcome{Err: apperrors.NewSimulationFailure(string(p.Kind()), err)}
	}

	switch v := p.(type) {
	case Login:
		u := models.User{
			ID:      uuid.New().String(),
			Email:   v.Email,
			Name:    mockUserName,
			Company: mockUserCompany,
		}
		s.session.Login(u)
		return Outcome{OK: true, Message: "Welcome back!", Data: u}

	case Register:
		u := models.User{
			ID:      uuid.New().String(),
			Email:   v.Email,
			Name:    v.Name,
			Company: v.Company,
			Phone:   v.Phone,
		}
		s.session.Login(u)
		return Outcome{OK: true, Message: "Account created successfully!", Data: u}

	case QuoteRequest:
		msg := "Quote request submitted! We'll contact you within 24 hours."
		return Outcome{OK: true, Message: msg, Data: s.receipt(KindQuoteRequest, msg)}

	case Subscription:
		name := v.PlanID
		if plan, err := s.plans.Plan(v.PlanID); err == nil {
			name = plan.Name
		}
		msg := fmt.Sprintf("Successfully subscribed to %s!", name)
		return Outcome{OK: true, Message: msg, Data: s.receipt(KindSubscription, msg)}
	}

	return Outcome{Err: fmt.Errorf("unsupported form %q", p.Kind())}
}

func (s *Submitter) receipt(kind Kind, msg string) Receipt {
	return Receipt{
		ID:          uuid.New().String(),
		Kind:        kind,
		Message:     msg,
		SubmittedAt: s.clock.Now(),
	}
}

// Logout clears the session immediately
func (s *Submitter) Logout() Outcome {
	s.session.Logout()
	return Outcome{OK: true, Message: "Logged out successfully"}
}

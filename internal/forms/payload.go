package forms

import (
	"strings"

	"pcblab/internal/apperrors"
)

// Kind names a form
type Kind string

const (
	KindLogin        Kind = "login"
	KindRegister     Kind = "register"
	KindQuoteRequest Kind = "quoteRequest"
	KindSubscription Kind = "subscription"
)

// Urgency of a quote request
const (
	UrgencyNormal    = "normal"
	UrgencyUrgent    = "urgent"
	UrgencyEmergency = "emergency"
)

// Payload is the content of one form
type Payload interface {
	Kind() Kind
	// Validate reports the first invalid field, in form order.
	Validate() error
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func required(field string) error {
	return apperrors.NewValidationError(field, apperrors.ReasonRequired, "")
}

// requireAll returns a Required error for the first blank field
func requireAll(fields ...[2]string) error {
	for _, f := range fields {
		if blank(f[1]) {
			return required(f[0])
		}
	}
	return nil
}

// Login is the sign-in form
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (Login) Kind() Kind { return KindLogin }

func (p Login) Validate() error {
	return requireAll(
		[2]string{"email", p.Email},
		[2]string{"password", p.Password},
	)
}

// Register is the account creation form
type Register struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Company         string `json:"company,omitempty"`
	Phone           string `json:"phone,omitempty"`
}

func (Register) Kind() Kind { return KindRegister }

func (p Register) Validate() error {
	if err := requireAll(
		[2]string{"name", p.Name},
		[2]string{"email", p.Email},
		[2]string{"password", p.Password},
	); err != nil {
		return err
	}
	if p.Password != p.ConfirmPassword {
		return apperrors.NewValidationError("confirmPassword", apperrors.ReasonPasswordMismatch, "passwords do not match")
	}
	return nil
}

// QuoteRequest asks for a quote on one of the services
type QuoteRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Service     string `json:"service,omitempty"`
	Description string `json:"description"`
	Urgency     string `json:"urgency,omitempty"`
}

func (QuoteRequest) Kind() Kind { return KindQuoteRequest }

func (p QuoteRequest) Validate() error {
	if err := requireAll(
		[2]string{"name", p.Name},
		[2]string{"email", p.Email},
		[2]string{"description", p.Description},
	); err != nil {
		return err
	}
	switch p.urgency() {
	case UrgencyNormal, UrgencyUrgent, UrgencyEmergency:
		return nil
	}
	return apperrors.NewValidationError("urgency", apperrors.ReasonUnknown, "unknown urgency "+p.Urgency)
}

func (p QuoteRequest) urgency() string {
	if blank(p.Urgency) {
		return UrgencyNormal
	}
	return p.Urgency
}

// Subscription confirms a pricing plan
type Subscription struct {
	PlanID string `json:"planId"`
}

func (Subscription) Kind() Kind { return KindSubscription }

// Validate checks that a plan was chosen. Whether it exists is checked by the
// Submitter against the catalog.
func (p Subscription) Validate() error {
	return requireAll([2]string{"plan", p.PlanID})
}

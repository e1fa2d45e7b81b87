// Package ohm implements the resistance calculator: it parses readings such
// as "V=5 I=0.1" and solves Ohm's law for the missing quantity.
package ohm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/rotisserie/eris"

	"pcblab/internal/apperrors"
)

var (
	ErrUnderdetermined = eris.New("two of voltage, current and resistance are required")
	ErrOverdetermined  = eris.New("only two of voltage, current and resistance may be given")
	ErrZeroDivisor     = eris.New("division by zero")
)

// Quantity is one of the three Ohm's law quantities
type Quantity string

const (
	Voltage    Quantity = "voltage"
	Current    Quantity = "current"
	Resistance Quantity = "resistance"
)

var keys = map[string]Quantity{
	"v": Voltage,
	"i": Current,
	"r": Resistance,
}

// ParseError describes a token that could not be parsed
type ParseError struct {
	Token  string `json:"token"`
	Reason string `json:"reason"`
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return "parse error: " + e.Reason
	}
	return fmt.Sprintf("parse error at %q: %s", e.Token, e.Reason)
}

// Is reports the parse error as a validation failure
func (e *ParseError) Is(target error) bool {
	return target == apperrors.ErrValidation
}

// Reading is a partial set of known quantities
type Reading struct {
	Voltage    *float64 `json:"voltage,omitempty"`
	Current    *float64 `json:"current,omitempty"`
	Resistance *float64 `json:"resistance,omitempty"`
}

func (r *Reading) slot(q Quantity) **float64 {
	switch q {
	case Voltage:
		return &r.Voltage
	case Current:
		return &r.Current
	default:
		return &r.Resistance
	}
}

// Known returns how many quantities are set
func (r Reading) Known() int {
	n := 0
	for _, v := range []*float64{r.Voltage, r.Current, r.Resistance} {
		if v != nil {
			n++
		}
	}
	return n
}

func isSeparator(c rune) bool {
	return unicode.IsSpace(c) || c == ',' || c == ';'
}

// Parse reads key=value tokens separated by whitespace, commas or semicolons.
// Keys are v, i and r in any case; values are non-negative decimals.
func Parse(input string) (Reading, error) {
	var r Reading

	tokens := strings.FieldsFunc(input, isSeparator)
	if len(tokens) == 0 {
		return r, &ParseError{Reason: "empty input"}
	}

	for _, tok := range tokens {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			return Reading{}, &ParseError{Token: tok, Reason: "expected key=value"}
		}

		q, known := keys[strings.ToLower(strings.TrimSpace(key))]
		if !known {
			return Reading{}, &ParseError{Token: tok, Reason: "unknown quantity " + key}
		}

		v, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Reading{}, &ParseError{Token: tok, Reason: "malformed number"}
		}
		if v < 0 {
			return Reading{}, &ParseError{Token: tok, Reason: "value must not be negative"}
		}

		dst := r.slot(q)
		if *dst != nil {
			return Reading{}, &ParseError{Token: tok, Reason: "duplicate " + string(q)}
		}
		*dst = &v
	}
	return r, nil
}

// Solution holds all three quantities and the dissipated power
type Solution struct {
	Voltage    float64  `json:"voltage"`
	Current    float64  `json:"current"`
	Resistance float64  `json:"resistance"`
	Power      float64  `json:"power"`
	Solved     Quantity `json:"solved"`
}

// String formats the solved quantity
func (s Solution) String() string {
	switch s.Solved {
	case Resistance:
		return fmt.Sprintf("Resistance: %.2f Ω", s.Resistance)
	case Current:
		return fmt.Sprintf("Current: %.3f A", s.Current)
	default:
		return fmt.Sprintf("Voltage: %.2f V", s.Voltage)
	}
}

// Solve computes the missing quantity from exactly two known ones
func Solve(r Reading) (Solution, error) {
	switch n := r.Known(); {
	case n < 2:
		return Solution{}, ErrUnderdetermined
	case n > 2:
		return Solution{}, ErrOverdetermined
	}

	var s Solution
	switch {
	case r.Resistance == nil:
		if *r.Current == 0 {
			return Solution{}, ErrZeroDivisor
		}
		s = Solution{Voltage: *r.Voltage, Current: *r.Current, Resistance: *r.Voltage / *r.Current, Solved: Resistance}
	case r.Current == nil:
		if *r.Resistance == 0 {
			return Solution{}, ErrZeroDivisor
		}
		s = Solution{Voltage: *r.Voltage, Resistance: *r.Resistance, Current: *r.Voltage / *r.Resistance, Solved: Current}
	default:
		s = Solution{Current: *r.Current, Resistance: *r.Resistance, Voltage: *r.Current * *r.Resistance, Solved: Voltage}
	}
	s.Power = s.Voltage * s.Current
	return s, nil
}

// Calculate parses input and solves it
func Calculate(input string) (Solution, error) {
	r, err := Parse(input)
	if err != nil {
		return Solution{}, err
	}
	return Solve(r)
}

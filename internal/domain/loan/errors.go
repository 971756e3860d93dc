package loan

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds. Typed errors below unwrap to these so callers can
// branch with errors.Is without losing the attached detail.
var (
	ErrNotFound            = errors.New("loan not found")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidTransition   = errors.New("invalid state transition")
	ErrConflict            = errors.New("loan modified concurrently")
	ErrPlafondExceeded     = errors.New("plafond exceeded")
	ErrRiskRejected        = errors.New("risk rule violated")
	ErrDocumentsIncomplete = errors.New("required documents missing")
	ErrTermsOutOfBounds    = errors.New("amount or tenor outside product limits")
	ErrActiveLoanExists    = errors.New("customer already has an active loan")
)

type InvalidTransitionError struct {
	Action Action
	From   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("action %q not allowed from status %s", e.Action, e.From)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

type ForbiddenError struct {
	Actor  string
	Reason string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("actor %s: %s", e.Actor, e.Reason)
}

func (e *ForbiddenError) Unwrap() error { return ErrForbidden }

// PlafondExceededError carries the computed ceiling and the requested
// amount for caller display.
type PlafondExceededError struct {
	Available float64
	Requested float64
}

func (e *PlafondExceededError) Error() string {
	return fmt.Sprintf("requested %.2f exceeds available plafond %.2f", e.Requested, e.Available)
}

func (e *PlafondExceededError) Unwrap() error { return ErrPlafondExceeded }

// RiskRejectedError names the specific hard rule that fired.
type RiskRejectedError struct {
	Rule   string
	Detail string
}

func (e *RiskRejectedError) Error() string {
	return fmt.Sprintf("risk rule %s: %s", e.Rule, e.Detail)
}

func (e *RiskRejectedError) Unwrap() error { return ErrRiskRejected }

type DocumentsIncompleteError struct {
	Missing []string
}

func (e *DocumentsIncompleteError) Error() string {
	return "missing required documents: " + strings.Join(e.Missing, ", ")
}

func (e *DocumentsIncompleteError) Unwrap() error { return ErrDocumentsIncomplete }

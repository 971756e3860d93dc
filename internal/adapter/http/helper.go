package http

import (
	"errors"
	"fmt"
	stdhttp "net/http"
	"strings"

	"loanflow/internal/domain/customer"
	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/product"
	"loanflow/internal/domain/user"
)

// errorStatus maps domain error kinds to HTTP responses. Typed errors
// keep their detail; everything unrecognized becomes a 500 with a
// generic message.
func errorStatus(err error) (int, ErrorResponse) {
	var plafondErr *loan.PlafondExceededError
	var riskErr *loan.RiskRejectedError
	var docsErr *loan.DocumentsIncompleteError

	switch {
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, customer.ErrNotFound),
		errors.Is(err, product.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		return stdhttp.StatusNotFound, ErrorResponse{Error: err.Error()}
	case errors.Is(err, loan.ErrForbidden):
		return stdhttp.StatusForbidden, ErrorResponse{Error: err.Error()}
	case errors.As(err, &plafondErr):
		return stdhttp.StatusUnprocessableEntity, ErrorResponse{
			Error: "plafond exceeded",
			Details: []FieldError{{
				Field:   "amount",
				Message: fmt.Sprintf("requested %.2f, available %.2f", plafondErr.Requested, plafondErr.Available),
			}},
		}
	case errors.As(err, &riskErr):
		return stdhttp.StatusUnprocessableEntity, ErrorResponse{
			Error:   "risk rejected",
			Details: []FieldError{{Field: riskErr.Rule, Message: riskErr.Detail}},
		}
	case errors.As(err, &docsErr):
		return stdhttp.StatusUnprocessableEntity, ErrorResponse{
			Error:   "documents incomplete",
			Details: []FieldError{{Field: "documents", Message: "missing: " + strings.Join(docsErr.Missing, ", ")}},
		}
	case errors.Is(err, loan.ErrTermsOutOfBounds):
		return stdhttp.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()}
	case errors.Is(err, loan.ErrInvalidTransition):
		return stdhttp.StatusConflict, ErrorResponse{Error: err.Error()}
	case errors.Is(err, loan.ErrActiveLoanExists):
		return stdhttp.StatusConflict, ErrorResponse{Error: err.Error()}
	case errors.Is(err, loan.ErrConflict):
		return stdhttp.StatusConflict, ErrorResponse{Error: "loan was modified concurrently, retry with fresh state"}
	}
	return stdhttp.StatusInternalServerError, ErrorResponse{Error: "internal error"}
}

package uow

import (
	"context"

	"loanflow/internal/domain/customer"
	"loanflow/internal/domain/document"
	"loanflow/internal/domain/history"
	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/notification"
	"loanflow/internal/domain/product"
)

// Repos bundles the tx-bound repositories handed to a unit of work.
type Repos struct {
	Loans     loan.Repository
	Histories history.Repository
	Customers customer.Repository
	Products  product.Repository
	Documents document.Repository
	Outbox    notification.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn inside one database transaction.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row up-front, then runs fn. Returns
	// loan.ErrNotFound (wrapped) when the loan does not exist.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}

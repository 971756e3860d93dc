package loanmock

import (
	"context"

	domain "loanflow/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying loan.Repository. Fill in
// only the fields a test needs; unfilled getters return ErrNotFound.
type Repo struct {
	CreateFn                 func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn            func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn   func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListByCustomerIDFn       func(ctx context.Context, customerID string) ([]domain.Loan, error)
	ListActiveByCustomerIDFn func(ctx context.Context, customerID string) ([]domain.Loan, error)
	ListOpenByCustomerIDFn   func(ctx context.Context, customerID string) ([]domain.Loan, error)
	SaveFn                   func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByCustomerID(ctx context.Context, customerID string) ([]domain.Loan, error) {
	if m.ListByCustomerIDFn != nil {
		return m.ListByCustomerIDFn(ctx, customerID)
	}
	return nil, nil
}

func (m *Repo) ListActiveByCustomerID(ctx context.Context, customerID string) ([]domain.Loan, error) {
	if m.ListActiveByCustomerIDFn != nil {
		return m.ListActiveByCustomerIDFn(ctx, customerID)
	}
	return nil, nil
}

func (m *Repo) ListOpenByCustomerID(ctx context.Context, customerID string) ([]domain.Loan, error) {
	if m.ListOpenByCustomerIDFn != nil {
		return m.ListOpenByCustomerIDFn(ctx, customerID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

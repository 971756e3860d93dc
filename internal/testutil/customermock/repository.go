package customermock

import (
	"context"

	domain "loanflow/internal/domain/customer"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying customer.Repository.
type Repo struct {
	GetByCustomerIDFn          func(ctx context.Context, customerID string) (*domain.Customer, error)
	GetByCustomerIDForUpdateFn func(ctx context.Context, customerID string) (*domain.Customer, error)
}

func (m *Repo) GetByCustomerID(ctx context.Context, customerID string) (*domain.Customer, error) {
	if m.GetByCustomerIDFn != nil {
		return m.GetByCustomerIDFn(ctx, customerID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByCustomerIDForUpdate(ctx context.Context, customerID string) (*domain.Customer, error) {
	if m.GetByCustomerIDForUpdateFn != nil {
		return m.GetByCustomerIDForUpdateFn(ctx, customerID)
	}
	// Fall back to the plain getter; most tests don't care about locks.
	return m.GetByCustomerID(ctx, customerID)
}

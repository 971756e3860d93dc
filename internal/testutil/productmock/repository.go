package productmock

import (
	"context"

	domain "loanflow/internal/domain/product"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	GetByProductIDFn func(ctx context.Context, productID string) (*domain.Product, error)
}

func (m *Repo) GetByProductID(ctx context.Context, productID string) (*domain.Product, error) {
	if m.GetByProductIDFn != nil {
		return m.GetByProductIDFn(ctx, productID)
	}
	return nil, domain.ErrNotFound
}

package historymock

import (
	"context"

	domain "loanflow/internal/domain/history"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying history.Repository. It
// also records every appended entry for assertions.
type Repo struct {
	AppendFn       func(ctx context.Context, e *domain.Entry) error
	ListByLoanIDFn func(ctx context.Context, loanID uint64) ([]domain.Entry, error)

	Appended []domain.Entry
}

func (m *Repo) Append(ctx context.Context, e *domain.Entry) error {
	if m.AppendFn != nil {
		if err := m.AppendFn(ctx, e); err != nil {
			return err
		}
	}
	m.Appended = append(m.Appended, *e)
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Entry, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

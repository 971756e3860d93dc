package documentmock

import (
	"context"

	domain "loanflow/internal/domain/document"
)

var _ domain.Repository = (*Repo)(nil)

// Repo satisfies document.Repository. Counts holds per-type document
// counts; types not present count as zero. CountFn overrides when set.
type Repo struct {
	CountFn func(ctx context.Context, loanID uint64, t domain.Type) (int64, error)
	Counts  map[domain.Type]int64
}

func (m *Repo) CountByLoanAndType(ctx context.Context, loanID uint64, t domain.Type) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx, loanID, t)
	}
	return m.Counts[t], nil
}

// Complete returns a repo with one of every required document type.
func Complete() *Repo {
	counts := make(map[domain.Type]int64, len(domain.RequiredForSubmit))
	for _, t := range domain.RequiredForSubmit {
		counts[t] = 1
	}
	return &Repo{Counts: counts}
}

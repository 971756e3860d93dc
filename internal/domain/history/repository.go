package history

import "context"

type Repository interface {
	// Append writes a new entry. Value-level write, no conditional
	// logic; fails only if the store is unavailable.
	Append(ctx context.Context, e *Entry) error
	// ListByLoanID returns entries ordered by created_at ascending.
	ListByLoanID(ctx context.Context, loanID uint64) ([]Entry, error)
}

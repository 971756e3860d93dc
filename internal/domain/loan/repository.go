package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate takes a row lock; only valid inside a tx.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]Loan, error)
	// ListActiveByCustomerID returns APPROVED/DISBURSED loans, the set
	// that counts against the plafond.
	ListActiveByCustomerID(ctx context.Context, customerID string) ([]Loan, error)
	// ListOpenByCustomerID returns DRAFT/SUBMITTED/REVIEWED loans, the
	// set subject to cascade cancellation.
	ListOpenByCustomerID(ctx context.Context, customerID string) ([]Loan, error)
	// Save persists the loan if its stored version still matches
	// l.Version, bumping the version; returns ErrConflict otherwise.
	Save(ctx context.Context, l *Loan) error
}

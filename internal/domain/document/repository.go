package document

import "context"

type Repository interface {
	CountByLoanAndType(ctx context.Context, loanID uint64, t Type) (int64, error)
}

package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	loanDomain "loanflow/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) ListByCustomerID(ctx context.Context, customerID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListActiveByCustomerID(ctx context.Context, customerID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("customer_id = ? AND status IN ?", customerID,
			[]loanDomain.Status{loanDomain.StatusApproved, loanDomain.StatusDisbursed}).
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListOpenByCustomerID(ctx context.Context, customerID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("customer_id = ? AND status IN ?", customerID,
			[]loanDomain.Status{loanDomain.StatusDraft, loanDomain.StatusSubmitted, loanDomain.StatusReviewed}).
		Find(&out)
	return out, res.Error
}

// Save writes the loan if the stored version still matches l.Version,
// then bumps it. A stale version means another transition committed in
// between; the caller gets ErrConflict and must retry with fresh
// state.
func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	prev := l.Version
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("id = ? AND version = ?", l.ID, prev).
		Updates(map[string]any{
			"status":                 l.Status,
			"stage":                  l.Stage,
			"version":                prev + 1,
			"submitted_at":           l.SubmittedAt,
			"approved_at":            l.ApprovedAt,
			"rejected_at":            l.RejectedAt,
			"disbursed_at":           l.DisbursedAt,
			"disbursement_ref":       l.DisbursementRef,
			"last_status_changed_at": l.LastStatusChange,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return loanDomain.ErrConflict
	}
	l.Version = prev + 1
	return nil
}

package mysql

import (
	"context"

	"gorm.io/gorm"

	historyDomain "loanflow/internal/domain/history"
)

type HistoryRepository struct{ db *gorm.DB }

func NewHistoryRepository(db *gorm.DB) *HistoryRepository { return &HistoryRepository{db: db} }

// Append is the only write path; entries are never updated or deleted.
func (r *HistoryRepository) Append(ctx context.Context, e *historyDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *HistoryRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]historyDomain.Entry, error) {
	var out []historyDomain.Entry
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

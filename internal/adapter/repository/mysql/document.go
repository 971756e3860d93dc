package mysql

import (
	"context"

	"gorm.io/gorm"

	documentDomain "loanflow/internal/domain/document"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) CountByLoanAndType(ctx context.Context, loanID uint64, t documentDomain.Type) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&documentDomain.Document{}).
		Where("loan_id = ? AND doc_type = ?", loanID, t).
		Count(&n)
	return n, res.Error
}

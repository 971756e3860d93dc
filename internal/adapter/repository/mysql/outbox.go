package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	notificationDomain "loanflow/internal/domain/notification"
)

type OutboxRepository struct{ db *gorm.DB }

func NewOutboxRepository(db *gorm.DB) *OutboxRepository { return &OutboxRepository{db: db} }

func (r *OutboxRepository) Append(ctx context.Context, e *notificationDomain.OutboxEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *OutboxRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]notificationDomain.OutboxEntry, error) {
	var out []notificationDomain.OutboxEntry
	res := r.db.WithContext(ctx).
		Where("status = ? OR (status = ? AND next_retry_at <= ?)",
			notificationDomain.OutboxStatusPending,
			notificationDomain.OutboxStatusFailed, now).
		Order("id ASC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}

func (r *OutboxRepository) Update(ctx context.Context, e *notificationDomain.OutboxEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

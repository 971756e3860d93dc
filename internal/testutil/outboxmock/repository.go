package outboxmock

import (
	"context"
	"time"

	domain "loanflow/internal/domain/notification"
)

var _ domain.Repository = (*Repo)(nil)

// Repo satisfies notification.Repository, recording appends and
// updates for assertions.
type Repo struct {
	AppendFn  func(ctx context.Context, e *domain.OutboxEntry) error
	ListDueFn func(ctx context.Context, now time.Time, limit int) ([]domain.OutboxEntry, error)
	UpdateFn  func(ctx context.Context, e *domain.OutboxEntry) error

	Appended []domain.OutboxEntry
	Updated  []domain.OutboxEntry
}

func (m *Repo) Append(ctx context.Context, e *domain.OutboxEntry) error {
	if m.AppendFn != nil {
		if err := m.AppendFn(ctx, e); err != nil {
			return err
		}
	}
	m.Appended = append(m.Appended, *e)
	return nil
}

func (m *Repo) ListDue(ctx context.Context, now time.Time, limit int) ([]domain.OutboxEntry, error) {
	if m.ListDueFn != nil {
		return m.ListDueFn(ctx, now, limit)
	}
	return nil, nil
}

func (m *Repo) Update(ctx context.Context, e *domain.OutboxEntry) error {
	if m.UpdateFn != nil {
		if err := m.UpdateFn(ctx, e); err != nil {
			return err
		}
	}
	m.Updated = append(m.Updated, *e)
	return nil
}

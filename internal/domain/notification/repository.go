package notification

import (
	"context"
	"time"
)

type Repository interface {
	Append(ctx context.Context, e *OutboxEntry) error
	// ListDue returns PENDING entries plus FAILED entries whose
	// next_retry_at has passed, oldest first, up to limit.
	ListDue(ctx context.Context, now time.Time, limit int) ([]OutboxEntry, error)
	Update(ctx context.Context, e *OutboxEntry) error
}

// Port delivers a status-change notification to the customer. Delivery
// is fire-and-forget with at-least-once semantics; the lifecycle never
// consumes its result.
type Port interface {
	NotifyStatusChange(ctx context.Context, customerID, newStatus string) error
}

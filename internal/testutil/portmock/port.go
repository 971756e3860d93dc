package portmock

import (
	"context"

	domain "loanflow/internal/domain/notification"
)

var _ domain.Port = (*Port)(nil)

// Port satisfies notification.Port, recording every delivery.
type Port struct {
	NotifyFn func(ctx context.Context, customerID, newStatus string) error

	Delivered []Delivery
}

type Delivery struct {
	CustomerID string
	NewStatus  string
}

func (m *Port) NotifyStatusChange(ctx context.Context, customerID, newStatus string) error {
	if m.NotifyFn != nil {
		if err := m.NotifyFn(ctx, customerID, newStatus); err != nil {
			return err
		}
	}
	m.Delivered = append(m.Delivered, Delivery{CustomerID: customerID, NewStatus: newStatus})
	return nil
}

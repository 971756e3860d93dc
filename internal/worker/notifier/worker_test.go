package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loanflow/internal/domain/notification"
	"loanflow/internal/testutil/outboxmock"
	"loanflow/internal/testutil/portmock"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func pending(eventID string) notification.OutboxEntry {
	return notification.OutboxEntry{
		EventID:    eventID,
		CustomerID: "cus-1",
		LoanID:     "ln-a",
		NewStatus:  "APPROVED",
		Status:     notification.OutboxStatusPending,
		MaxRetries: notification.DefaultMaxRetries,
	}
}

func TestDrainOnce_DeliversAndMarksSent(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	outbox := &outboxmock.Repo{
		ListDueFn: func(context.Context, time.Time, int) ([]notification.OutboxEntry, error) {
			return []notification.OutboxEntry{pending("ev-1"), pending("ev-2")}, nil
		},
	}
	port := &portmock.Port{}
	w := New(outbox, port, nil, time.Second, 10)
	w.now = fixedClock(now)

	n, err := w.DrainOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, port.Delivered, 2)

	require.Len(t, outbox.Updated, 2)
	for _, e := range outbox.Updated {
		assert.Equal(t, notification.OutboxStatusSent, e.Status)
		require.NotNil(t, e.SentAt)
		assert.Equal(t, now, *e.SentAt)
		assert.Nil(t, e.NextRetry)
	}
}

func TestDrainOnce_DeliveryFailureSchedulesRetry(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	outbox := &outboxmock.Repo{
		ListDueFn: func(context.Context, time.Time, int) ([]notification.OutboxEntry, error) {
			return []notification.OutboxEntry{pending("ev-1")}, nil
		},
	}
	port := &portmock.Port{
		NotifyFn: func(context.Context, string, string) error {
			return errors.New("gateway timeout")
		},
	}
	w := New(outbox, port, nil, time.Second, 10)
	w.now = fixedClock(now)

	n, err := w.DrainOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.Len(t, outbox.Updated, 1)
	e := outbox.Updated[0]
	assert.Equal(t, notification.OutboxStatusFailed, e.Status)
	assert.Equal(t, 1, e.RetryCount)
	assert.Equal(t, "gateway timeout", e.LastError)
	require.NotNil(t, e.NextRetry)
	assert.Equal(t, now.Add(notification.DefaultBaseBackoff<<1), *e.NextRetry)
}

func TestDrainOnce_OneFailureDoesNotBlockOthers(t *testing.T) {
	outbox := &outboxmock.Repo{
		ListDueFn: func(context.Context, time.Time, int) ([]notification.OutboxEntry, error) {
			bad := pending("ev-bad")
			bad.CustomerID = "cus-broken"
			return []notification.OutboxEntry{bad, pending("ev-good")}, nil
		},
	}
	port := &portmock.Port{
		NotifyFn: func(_ context.Context, customerID, _ string) error {
			if customerID == "cus-broken" {
				return errors.New("unreachable")
			}
			return nil
		},
	}
	w := New(outbox, port, nil, time.Second, 10)

	n, err := w.DrainOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.Len(t, outbox.Updated, 2)
	assert.Equal(t, notification.OutboxStatusFailed, outbox.Updated[0].Status)
	assert.Equal(t, notification.OutboxStatusSent, outbox.Updated[1].Status)
}

func TestDrainOnce_ExhaustedRetriesGoDead(t *testing.T) {
	e := pending("ev-1")
	e.Status = notification.OutboxStatusFailed
	e.RetryCount = notification.DefaultMaxRetries - 1
	outbox := &outboxmock.Repo{
		ListDueFn: func(context.Context, time.Time, int) ([]notification.OutboxEntry, error) {
			return []notification.OutboxEntry{e}, nil
		},
	}
	port := &portmock.Port{
		NotifyFn: func(context.Context, string, string) error {
			return errors.New("still down")
		},
	}
	w := New(outbox, port, nil, time.Second, 10)

	_, err := w.DrainOnce(context.Background())
	require.NoError(t, err)

	require.Len(t, outbox.Updated, 1)
	dead := outbox.Updated[0]
	assert.Equal(t, notification.OutboxStatusDead, dead.Status)
	assert.Equal(t, notification.DefaultMaxRetries, dead.RetryCount)
	assert.Nil(t, dead.NextRetry)
}

func TestDrainOnce_StoreErrorAbortsBatch(t *testing.T) {
	listErr := errors.New("db gone")
	outbox := &outboxmock.Repo{
		ListDueFn: func(context.Context, time.Time, int) ([]notification.OutboxEntry, error) {
			return nil, listErr
		},
	}
	w := New(outbox, &portmock.Port{}, nil, time.Second, 10)

	_, err := w.DrainOnce(context.Background())
	assert.ErrorIs(t, err, listErr)
}

func TestMarkSent_ClearsFailureState(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	e := pending("ev-1")
	e.MarkFailed(now, errors.New("flaky"))
	require.Equal(t, notification.OutboxStatusFailed, e.Status)

	e.MarkSent(now.Add(time.Minute))
	assert.Equal(t, notification.OutboxStatusSent, e.Status)
	assert.Empty(t, e.LastError)
	assert.Nil(t, e.NextRetry)
}

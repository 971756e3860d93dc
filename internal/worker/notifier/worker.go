package notifier

import (
	"context"
	"time"

	"go.uber.org/zap"

	"loanflow/internal/domain/notification"
)

// Worker drains the notification outbox: pending intents are handed to
// the Port and marked sent or failed. Delivery errors are logged and
// swallowed; they never reach the transition that produced the intent.
type Worker struct {
	outbox   notification.Repository
	port     notification.Port
	log      *zap.Logger
	interval time.Duration
	batch    int
	now      func() time.Time
}

func New(outbox notification.Repository, port notification.Port, log *zap.Logger, interval time.Duration, batch int) *Worker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Worker{
		outbox:   outbox,
		port:     port,
		log:      log,
		interval: interval,
		batch:    batch,
		now:      time.Now,
	}
}

// Run polls until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	t := time.NewTicker(w.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n, err := w.DrainOnce(ctx); err != nil {
				w.log.Error("outbox drain failed", zap.Error(err))
			} else if n > 0 {
				w.log.Info("notifications delivered", zap.Int("count", n))
			}
		}
	}
}

// DrainOnce processes one batch of due entries and returns the number
// delivered. A store error aborts the batch; a delivery error only
// fails its own entry.
func (w *Worker) DrainOnce(ctx context.Context) (int, error) {
	now := w.now().UTC()
	due, err := w.outbox.ListDue(ctx, now, w.batch)
	if err != nil {
		return 0, err
	}
	sent := 0
	for i := range due {
		e := &due[i]
		if err := w.port.NotifyStatusChange(ctx, e.CustomerID, e.NewStatus); err != nil {
			e.MarkFailed(now, err)
			w.log.Warn("notification delivery failed",
				zap.String("event_id", e.EventID),
				zap.String("customer_id", e.CustomerID),
				zap.Int("retry_count", e.RetryCount),
				zap.Error(err),
			)
		} else {
			e.MarkSent(now)
			sent++
		}
		if err := w.outbox.Update(ctx, e); err != nil {
			return sent, err
		}
	}
	return sent, nil
}

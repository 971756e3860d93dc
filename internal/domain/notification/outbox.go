package notification

import (
	"time"

	"github.com/google/uuid"
)

type OutboxStatus string

const (
	OutboxStatusPending OutboxStatus = "PENDING"
	OutboxStatusSent    OutboxStatus = "SENT"
	OutboxStatusFailed  OutboxStatus = "FAILED"
	OutboxStatusDead    OutboxStatus = "DEAD"
)

const (
	DefaultMaxRetries  = 5
	DefaultBaseBackoff = time.Second
)

// OutboxEntry is a notification intent written in the same transaction
// as the status change it announces. A worker drains pending entries
// and calls the Port; delivery failure never touches the loan row.
type OutboxEntry struct {
	ID         uint64       `gorm:"column:id;primaryKey;autoIncrement"`
	EventID    string       `gorm:"column:event_id;type:char(36);not null;uniqueIndex:ux_outbox_event_id"`
	CustomerID string       `gorm:"column:customer_id;size:32;not null;index"`
	LoanID     string       `gorm:"column:loan_id;size:32;not null"`
	NewStatus  string       `gorm:"column:new_status;size:16;not null"`
	Status     OutboxStatus `gorm:"column:status;size:16;not null;default:'PENDING';index:idx_outbox_status_retry"`
	RetryCount int          `gorm:"column:retry_count;not null;default:0"`
	MaxRetries int          `gorm:"column:max_retries;not null;default:5"`
	LastError  string       `gorm:"column:last_error;type:text"`
	NextRetry  *time.Time   `gorm:"column:next_retry_at;index:idx_outbox_status_retry"`
	SentAt     *time.Time   `gorm:"column:sent_at"`
	CreatedAt  time.Time    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time    `gorm:"column:updated_at;autoUpdateTime"`
}

func (OutboxEntry) TableName() string { return "notification_outbox" }

// NewStatusChange builds a pending intent for a customer's loan
// reaching newStatus.
func NewStatusChange(customerID, loanID, newStatus string) *OutboxEntry {
	return &OutboxEntry{
		EventID:    uuid.NewString(),
		CustomerID: customerID,
		LoanID:     loanID,
		NewStatus:  newStatus,
		Status:     OutboxStatusPending,
		MaxRetries: DefaultMaxRetries,
	}
}

func (e *OutboxEntry) MarkSent(now time.Time) {
	e.Status = OutboxStatusSent
	e.SentAt = &now
	e.LastError = ""
	e.NextRetry = nil
}

// MarkFailed records the delivery error and schedules the next attempt
// with exponential backoff; after MaxRetries the entry goes DEAD.
func (e *OutboxEntry) MarkFailed(now time.Time, deliveryErr error) {
	e.RetryCount++
	e.LastError = deliveryErr.Error()
	if e.RetryCount >= e.MaxRetries {
		e.Status = OutboxStatusDead
		e.NextRetry = nil
		return
	}
	e.Status = OutboxStatusFailed
	next := now.Add(DefaultBaseBackoff << uint(e.RetryCount))
	e.NextRetry = &next
}

package history

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("history entry not found")

// ActionBySystem marks ledger entries written by the cascade
// canceller rather than a human actor.
const ActionBySystem = "SYSTEM"

// Entry is one immutable fact in the approval history ledger: a single
// status transition of a single loan. Entries are append-only and are
// the authoritative audit trail and SLA-timing source; they are never
// updated or deleted.
type Entry struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex).
	EntryID string `gorm:"column:entry_id;type:char(32);not null;uniqueIndex:ux_history_entry_id"`
	// FK to loans.id (numeric).
	LoanID uint64 `gorm:"column:loan_id;not null;index:idx_history_loan_created"`
	// Nil for the creation entry; the loan had no prior status.
	FromStatus *string   `gorm:"column:from_status;size:16"`
	ToStatus   string    `gorm:"column:to_status;size:16;not null"`
	ActionBy   string    `gorm:"column:action_by;size:64;not null"`
	Notes      string    `gorm:"column:notes;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;index:idx_history_loan_created"`
}

func (Entry) TableName() string { return "approval_histories" }

package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	historyDomain "loanflow/internal/domain/history"
	loanDomain "loanflow/internal/domain/loan"
	notificationDomain "loanflow/internal/domain/notification"
	"loanflow/internal/domain/uow"
	"loanflow/pkg/id"
)

// openUowTestDB migrates every table the transaction touches.
// WithinLoanTx itself needs MySQL row locks and is exercised against
// the real database, not here.
func openUowTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loanSQLite{}, &historyDomain.Entry{}, &notificationDomain.OutboxEntry{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	historyRepo := NewHistoryRepository(db)
	outboxRepo := NewOutboxRepository(db)

	loanID := id.NewID32()
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		l := makeLoan(loanID, "cus-1", loanDomain.StatusDraft)
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if l.ID == 0 {
			t.Fatalf("loan auto ID not set")
		}
		entry := &historyDomain.Entry{
			EntryID: id.NewID32(), LoanID: l.ID,
			ToStatus: string(loanDomain.StatusDraft), ActionBy: "andi",
			CreatedAt: time.Now().UTC(),
		}
		if err := r.Histories.Append(ctx, entry); err != nil {
			return err
		}
		return r.Outbox.Append(ctx, notificationDomain.NewStatusChange("cus-1", loanID, "DRAFT"))
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	// All three writes visible after commit.
	l, err := loanRepo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("loan not visible after commit: %v", err)
	}
	entries, err := historyRepo.ListByLoanID(ctx, l.ID)
	if err != nil || len(entries) != 1 {
		t.Fatalf("history after commit: entries=%d err=%v", len(entries), err)
	}
	due, err := outboxRepo.ListDue(ctx, time.Now().UTC(), 10)
	if err != nil || len(due) != 1 {
		t.Fatalf("outbox after commit: due=%d err=%v", len(due), err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	outboxRepo := NewOutboxRepository(db)

	sentinel := errors.New("boom")
	loanID := id.NewID32()

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		l := makeLoan(loanID, "cus-2", loanDomain.StatusDraft)
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if err := r.Outbox.Append(ctx, notificationDomain.NewStatusChange("cus-2", loanID, "DRAFT")); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	// Nothing survives the rollback.
	if _, err := loanRepo.GetByLoanID(ctx, loanID); !errors.Is(err, loanDomain.ErrNotFound) {
		t.Fatalf("expected loan absent after rollback, got %v", err)
	}
	due, err := outboxRepo.ListDue(ctx, time.Now().UTC(), 10)
	if err != nil || len(due) != 0 {
		t.Fatalf("outbox after rollback: due=%d err=%v", len(due), err)
	}
}

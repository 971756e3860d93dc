package mysql

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "loanflow/internal/domain/notification"
)

func openOutboxDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.OutboxEntry{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestOutboxListDue(t *testing.T) {
	db := openOutboxDB(t)
	repo := NewOutboxRepository(db)
	ctx := context.Background()

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)
	sentAt := now.Add(-time.Hour)

	seed := []*domain.OutboxEntry{
		{EventID: "ev-pending", CustomerID: "cus-1", LoanID: "ln-1", NewStatus: "APPROVED",
			Status: domain.OutboxStatusPending, MaxRetries: 5},
		{EventID: "ev-retry-due", CustomerID: "cus-1", LoanID: "ln-2", NewStatus: "CANCELLED",
			Status: domain.OutboxStatusFailed, RetryCount: 2, MaxRetries: 5, NextRetry: &past},
		{EventID: "ev-retry-later", CustomerID: "cus-1", LoanID: "ln-3", NewStatus: "REJECTED",
			Status: domain.OutboxStatusFailed, RetryCount: 1, MaxRetries: 5, NextRetry: &future},
		{EventID: "ev-sent", CustomerID: "cus-1", LoanID: "ln-4", NewStatus: "DISBURSED",
			Status: domain.OutboxStatusSent, MaxRetries: 5, SentAt: &sentAt},
		{EventID: "ev-dead", CustomerID: "cus-1", LoanID: "ln-5", NewStatus: "APPROVED",
			Status: domain.OutboxStatusDead, RetryCount: 5, MaxRetries: 5},
	}
	for _, e := range seed {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("Append %s: %v", e.EventID, err)
		}
	}

	due, err := repo.ListDue(ctx, now, 10)
	if err != nil {
		t.Fatalf("ListDue: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("due = %d entries, want 2: %+v", len(due), due)
	}
	if due[0].EventID != "ev-pending" || due[1].EventID != "ev-retry-due" {
		t.Fatalf("unexpected due set: %s, %s", due[0].EventID, due[1].EventID)
	}
}

func TestOutboxListDue_Limit(t *testing.T) {
	db := openOutboxDB(t)
	repo := NewOutboxRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		e := domain.NewStatusChange("cus-1", "ln-1", "APPROVED")
		if err := repo.Append(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	due, err := repo.ListDue(ctx, time.Now().UTC(), 3)
	if err != nil {
		t.Fatalf("ListDue: %v", err)
	}
	if len(due) != 3 {
		t.Fatalf("due = %d entries, want limit 3", len(due))
	}
}

func TestOutboxUpdatePersistsDeliveryState(t *testing.T) {
	db := openOutboxDB(t)
	repo := NewOutboxRepository(db)
	ctx := context.Background()

	e := domain.NewStatusChange("cus-1", "ln-1", "APPROVED")
	if err := repo.Append(ctx, e); err != nil {
		t.Fatalf("Append: %v", err)
	}

	now := time.Now().UTC()
	e.MarkSent(now)
	if err := repo.Update(ctx, e); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// A sent entry is no longer due.
	due, err := repo.ListDue(ctx, now.Add(time.Hour), 10)
	if err != nil {
		t.Fatalf("ListDue: %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("due = %d entries after send, want 0", len(due))
	}
}

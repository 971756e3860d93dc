package lifecycle

import (
	"context"
	"time"

	"loanflow/internal/domain/history"
	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/notification"
	"loanflow/internal/domain/uow"
	"loanflow/pkg/id"
)

// CascadeNote is the fixed ledger note written by the canceller.
const CascadeNote = "cancelled automatically: another loan for this customer was approved"

// cancelSiblings enforces the single-active-loan invariant: once one
// loan is approved, every other in-flight (DRAFT/SUBMITTED/REVIEWED)
// loan of the same customer is force-cancelled by SYSTEM. Runs inside
// the approval transaction; one ledger entry and one notification
// intent per cancelled loan.
func cancelSiblings(ctx context.Context, r uow.Repos, approved *loan.Loan, now time.Time) error {
	open, err := r.Loans.ListOpenByCustomerID(ctx, approved.CustomerID)
	if err != nil {
		return err
	}
	for i := range open {
		sib := &open[i]
		if sib.LoanID == approved.LoanID {
			continue
		}
		from := string(sib.Status)
		sib.Status = loan.StatusCancelled
		sib.LastStatusChange = now
		if err := r.Loans.Save(ctx, sib); err != nil {
			return err
		}
		entry := &history.Entry{
			EntryID:    id.NewID32(),
			LoanID:     sib.ID,
			FromStatus: &from,
			ToStatus:   string(loan.StatusCancelled),
			ActionBy:   history.ActionBySystem,
			Notes:      CascadeNote,
		}
		if err := r.Histories.Append(ctx, entry); err != nil {
			return err
		}
		intent := notification.NewStatusChange(sib.CustomerID, sib.LoanID, string(loan.StatusCancelled))
		if err := r.Outbox.Append(ctx, intent); err != nil {
			return err
		}
	}
	return nil
}

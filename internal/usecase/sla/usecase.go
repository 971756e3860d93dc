package sla

import (
	"context"
	"time"

	"loanflow/internal/domain/history"
	"loanflow/internal/domain/loan"
)

// Thresholds are the expected maximum waits per waiting status, keyed
// by the status the loan sits in while waiting.
type Thresholds struct {
	Review   time.Duration // waiting in SUBMITTED for review
	Approval time.Duration // waiting in REVIEWED for approval
	Disburse time.Duration // waiting in APPROVED for disbursement
}

// forWaiting returns the SLA for time spent in status, or 0 when no
// SLA applies.
func (t Thresholds) forWaiting(status string) time.Duration {
	switch loan.Status(status) {
	case loan.StatusSubmitted:
		return t.Review
	case loan.StatusReviewed:
		return t.Approval
	case loan.StatusApproved:
		return t.Disburse
	}
	return 0
}

type StageTiming struct {
	Status string `json:"status"`
	// Empty while the loan is still waiting in Status.
	ResolvedBy string        `json:"resolved_by,omitempty"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	Threshold  time.Duration `json:"threshold_ns"`
	Breached   bool          `json:"breached"`
}

type Report struct {
	LoanID   string        `json:"loan_id"`
	Items    []StageTiming `json:"items"`
	Breached bool          `json:"breached"`
}

// Usecase derives SLA timings purely from the approval history
// ledger; it never blocks or influences transitions.
type Usecase struct {
	loans      loan.Repository
	histories  history.Repository
	thresholds Thresholds
	now        func() time.Time
}

func NewUsecase(loans loan.Repository, histories history.Repository, th Thresholds) *Usecase {
	return &Usecase{loans: loans, histories: histories, thresholds: th, now: time.Now}
}

// WithClock overrides the clock; test hook.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Report computes elapsed time between consecutive ledger entries per
// waiting status, plus the still-open wait on the current status.
func (u *Usecase) Report(ctx context.Context, loanID string) (*Report, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	entries, err := u.histories.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}

	rep := &Report{LoanID: loanID}
	for i := 1; i < len(entries); i++ {
		waiting := entries[i-1].ToStatus
		th := u.thresholds.forWaiting(waiting)
		if th == 0 {
			continue
		}
		elapsed := entries[i].CreatedAt.Sub(entries[i-1].CreatedAt)
		item := StageTiming{
			Status:     waiting,
			ResolvedBy: entries[i].ToStatus,
			Elapsed:    elapsed,
			Threshold:  th,
			Breached:   elapsed > th,
		}
		rep.Items = append(rep.Items, item)
	}

	// Open wait on the current status, for non-terminal loans.
	if n := len(entries); n > 0 && !l.Status.Terminal() {
		waiting := entries[n-1].ToStatus
		if th := u.thresholds.forWaiting(waiting); th > 0 {
			elapsed := u.now().UTC().Sub(entries[n-1].CreatedAt)
			rep.Items = append(rep.Items, StageTiming{
				Status:    waiting,
				Elapsed:   elapsed,
				Threshold: th,
				Breached:  elapsed > th,
			})
		}
	}

	for _, it := range rep.Items {
		if it.Breached {
			rep.Breached = true
			break
		}
	}
	return rep, nil
}

package lifecycle

import (
	"time"

	"loanflow/internal/domain/loan"
)

type ApplyInput struct {
	CustomerID string
	ProductID  string
	Amount     float64
	Tenor      int
	Notes      string
}

type TransitionInput struct {
	LoanID string
	Action loan.Action
	Notes  string
	// Populated by the back office on disburse only.
	DisbursementRef string
}

type LoanDTO struct {
	LoanID          string     `json:"loan_id"`
	CustomerID      string     `json:"customer_id"`
	ProductID       string     `json:"product_id"`
	BranchID        string     `json:"branch_id"`
	Amount          float64    `json:"amount"`
	Tenor           int        `json:"tenor_months"`
	InterestRate    float64    `json:"interest_rate"`
	AdminFee        float64    `json:"admin_fee"`
	Status          string     `json:"status"`
	Stage           string     `json:"stage"`
	SubmittedAt     *time.Time `json:"submitted_at,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	DisbursedAt     *time.Time `json:"disbursed_at,omitempty"`
	DisbursementRef string     `json:"disbursement_ref,omitempty"`
	LastStatusAt    time.Time  `json:"last_status_changed_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

type HistoryDTO struct {
	FromStatus *string   `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ActionBy   string    `json:"action_by"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type PlafondDTO struct {
	CustomerID    string  `json:"customer_id"`
	ProductID     string  `json:"product_id"`
	MaxLoanAmount float64 `json:"max_loan_amount"`
	UsedAmount    float64 `json:"used_amount"`
	Available     float64 `json:"available"`
}

func toDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:          l.LoanID,
		CustomerID:      l.CustomerID,
		ProductID:       l.ProductID,
		BranchID:        l.BranchID,
		Amount:          l.Amount,
		Tenor:           l.Tenor,
		InterestRate:    l.InterestRate,
		AdminFee:        l.AdminFee,
		Status:          string(l.Status),
		Stage:           string(l.Stage),
		SubmittedAt:     l.SubmittedAt,
		ApprovedAt:      l.ApprovedAt,
		RejectedAt:      l.RejectedAt,
		DisbursedAt:     l.DisbursedAt,
		DisbursementRef: l.DisbursementRef,
		LastStatusAt:    l.LastStatusChange,
		CreatedAt:       l.CreatedAt,
	}
}

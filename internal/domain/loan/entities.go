package loan

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusReviewed  Status = "REVIEWED"
	StatusApproved  Status = "APPROVED"
	StatusDisbursed Status = "DISBURSED"
	StatusCompleted Status = "COMPLETED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusReviewed, StatusApproved,
		StatusDisbursed, StatusCompleted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses are final; no action is defined from them.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Active statuses count against the customer's plafond.
func (s Status) Active() bool {
	return s == StatusApproved || s == StatusDisbursed
}

// Open statuses are in-flight applications subject to cascade
// cancellation when a sibling loan gets approved.
func (s Status) Open() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusReviewed:
		return true
	}
	return false
}

// Stage is the party currently responsible for acting on the loan.
// Distinct from Status: SUBMITTED sits with marketing, REVIEWED with
// the branch manager, and so on.
type Stage string

const (
	StageCustomer      Stage = "CUSTOMER"
	StageMarketing     Stage = "MARKETING"
	StageBranchManager Stage = "BRANCH_MANAGER"
	StageBackoffice    Stage = "BACKOFFICE"
)

type Loan struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID     string `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	CustomerID string `gorm:"size:32;index:idx_loans_customer_active" json:"customer_id"`
	ProductID  string `gorm:"size:32;index" json:"product_id"`
	// Derived from the owning customer at creation time.
	BranchID string  `gorm:"size:32;index" json:"branch_id"`
	Amount   float64 `gorm:"type:decimal(18,2)" json:"amount"`
	Tenor    int     `gorm:"column:tenor_months" json:"tenor_months"`
	// Snapshots of the product terms at creation time. Later product
	// edits never retroactively change an existing loan.
	InterestRate float64 `gorm:"type:decimal(6,4)" json:"interest_rate"`
	AdminFee     float64 `gorm:"type:decimal(18,2)" json:"admin_fee"`

	Status Status `gorm:"type:enum('DRAFT','SUBMITTED','REVIEWED','APPROVED','DISBURSED','COMPLETED','REJECTED','CANCELLED');default:'DRAFT'" json:"status"`
	Stage  Stage  `gorm:"type:enum('CUSTOMER','MARKETING','BRANCH_MANAGER','BACKOFFICE');default:'CUSTOMER'" json:"stage"`
	// Bumped on every successful save; stale writes are rejected.
	Version uint64 `gorm:"not null;default:0" json:"-"`

	SubmittedAt      *time.Time `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	ApprovedAt       *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	RejectedAt       *time.Time `gorm:"column:rejected_at" json:"rejected_at,omitempty"`
	DisbursedAt      *time.Time `gorm:"column:disbursed_at" json:"disbursed_at,omitempty"`
	DisbursementRef  string     `gorm:"size:64" json:"disbursement_ref,omitempty"`
	LastStatusChange time.Time  `gorm:"column:last_status_changed_at" json:"last_status_changed_at"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

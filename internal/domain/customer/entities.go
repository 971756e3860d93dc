package customer

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("customer not found")

// Customer is a read-only input to loan transitions. The risk counters
// (overdue days, completed loans) are maintained by the collections
// side of the system and only consumed here.
type Customer struct {
	ID         uint64 `gorm:"primaryKey;column:id"`
	CustomerID string `gorm:"size:32;uniqueIndex:ux_customers_customer_id"`
	// Username in the user directory owning this customer record.
	Username      string  `gorm:"size:64;index"`
	FullName      string  `gorm:"size:255"`
	BranchID      string  `gorm:"size:32;index"`
	MonthlyIncome float64 `gorm:"type:decimal(18,2)"`
	// Cumulative overdue days across all past loans.
	OverdueDays        int            `gorm:"not null;default:0"`
	CompletedLoanCount int            `gorm:"not null;default:0"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (Customer) TableName() string { return "customers" }

package product

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("product not found")

type Product struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	ProductID     string         `gorm:"size:32;uniqueIndex:ux_products_product_id"`
	Name          string         `gorm:"size:128"`
	MinLoanAmount float64        `gorm:"type:decimal(18,2)"`
	MaxLoanAmount float64        `gorm:"type:decimal(18,2)"`
	MinTenor      int            `gorm:"column:min_tenor_months"`
	MaxTenor      int            `gorm:"column:max_tenor_months"`
	InterestRate  float64        `gorm:"type:decimal(6,4)"`
	AdminFee      float64        `gorm:"type:decimal(18,2)"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Product) TableName() string { return "products" }

// WithinBounds checks the product's amount and tenor limits.
func (p *Product) WithinBounds(amount float64, tenorMonths int) bool {
	if amount < p.MinLoanAmount || amount > p.MaxLoanAmount {
		return false
	}
	return tenorMonths >= p.MinTenor && tenorMonths <= p.MaxTenor
}

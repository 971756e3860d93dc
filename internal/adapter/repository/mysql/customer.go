package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	customerDomain "loanflow/internal/domain/customer"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) GetByCustomerID(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, customerDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *CustomerRepository) GetByCustomerIDForUpdate(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("customer_id = ?", customerID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, customerDomain.ErrNotFound
	}
	return &out, res.Error
}

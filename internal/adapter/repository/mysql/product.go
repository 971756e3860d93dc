package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	productDomain "loanflow/internal/domain/product"
)

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{db: db} }

func (r *ProductRepository) GetByProductID(ctx context.Context, productID string) (*productDomain.Product, error) {
	var out productDomain.Product
	res := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, productDomain.ErrNotFound
	}
	return &out, res.Error
}

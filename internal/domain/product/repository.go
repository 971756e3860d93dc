package product

import "context"

type Repository interface {
	GetByProductID(ctx context.Context, productID string) (*Product, error)
}

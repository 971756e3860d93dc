package customer

import "context"

type Repository interface {
	GetByCustomerID(ctx context.Context, customerID string) (*Customer, error)
	// GetByCustomerIDForUpdate takes a row lock on the customer,
	// serializing approvals per customer; only valid inside a tx.
	GetByCustomerIDForUpdate(ctx context.Context, customerID string) (*Customer, error)
}

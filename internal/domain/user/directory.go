package user

import "context"

// Directory resolves an acting username to its role and branch.
type Directory interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
}

package usermock

import (
	"context"

	domain "loanflow/internal/domain/user"
)

var _ domain.Directory = (*Directory)(nil)

// Directory satisfies user.Directory from a static username map.
// GetByUsernameFn overrides when set.
type Directory struct {
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	Users           map[string]*domain.User
}

func (m *Directory) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	if u, ok := m.Users[username]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

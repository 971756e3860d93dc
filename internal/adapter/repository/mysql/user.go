package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	userDomain "loanflow/internal/domain/user"
)

// UserDirectory resolves acting usernames against the users table.
type UserDirectory struct{ db *gorm.DB }

func NewUserDirectory(db *gorm.DB) *UserDirectory { return &UserDirectory{db: db} }

func (r *UserDirectory) GetByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("username = ?", username).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, userDomain.ErrNotFound
	}
	return &out, res.Error
}

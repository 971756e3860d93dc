package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("user not found")

type Role string

const (
	RoleCustomer      Role = "CUSTOMER"
	RoleMarketing     Role = "MARKETING"
	RoleBranchManager Role = "BRANCH_MANAGER"
	RoleBackoffice    Role = "BACKOFFICE"
	RoleAdmin         Role = "ADMIN"
	RoleSuperAdmin    Role = "SUPER_ADMIN"
)

// Global reports whether the role spans all branches.
func (r Role) Global() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// User is the directory's view of an acting principal. Authentication
// happens upstream; the lifecycle only consumes role and branch.
type User struct {
	ID       uint64 `gorm:"primaryKey;column:id"`
	Username string `gorm:"size:64;uniqueIndex:ux_users_username"`
	Email    string `gorm:"size:255;index"`
	Role     Role   `gorm:"size:32;not null"`
	BranchID string `gorm:"size:32;index"`
	// Set for RoleCustomer: the customer record this login owns.
	CustomerID string         `gorm:"size:32;index"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string { return "users" }

package lifecycle

import (
	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/user"
)

// Guard is one pure authorization/precondition check. Guards are
// composed in a fixed order and run before any mutating action.
type Guard func(actor *user.User, l *loan.Loan, action loan.Action) error

// actionRoles is the role-entitlement table per action.
var actionRoles = map[loan.Action][]user.Role{
	loan.ActionSubmit:   {user.RoleCustomer, user.RoleMarketing, user.RoleAdmin, user.RoleSuperAdmin},
	loan.ActionReview:   {user.RoleMarketing, user.RoleAdmin, user.RoleSuperAdmin},
	loan.ActionApprove:  {user.RoleBranchManager, user.RoleAdmin, user.RoleSuperAdmin},
	loan.ActionDisburse: {user.RoleBackoffice, user.RoleAdmin, user.RoleSuperAdmin},
	loan.ActionComplete: {user.RoleBackoffice, user.RoleAdmin, user.RoleSuperAdmin},
	loan.ActionReject:   {user.RoleMarketing, user.RoleBranchManager, user.RoleBackoffice, user.RoleAdmin, user.RoleSuperAdmin},
	loan.ActionCancel:   {user.RoleCustomer, user.RoleMarketing, user.RoleAdmin, user.RoleSuperAdmin},
	loan.ActionRollback: {user.RoleBranchManager, user.RoleBackoffice, user.RoleAdmin, user.RoleSuperAdmin},
}

// roleActionGuard checks the actor holds a role entitled to the
// action. Customers may only act on their own loans.
func roleActionGuard(actor *user.User, l *loan.Loan, action loan.Action) error {
	allowed, ok := actionRoles[action]
	if !ok {
		return &loan.InvalidTransitionError{Action: action, From: l.Status}
	}
	for _, r := range allowed {
		if actor.Role != r {
			continue
		}
		if actor.Role == user.RoleCustomer && actor.CustomerID != l.CustomerID {
			return &loan.ForbiddenError{Actor: actor.Username, Reason: "customers may only act on their own loans"}
		}
		return nil
	}
	return &loan.ForbiddenError{Actor: actor.Username, Reason: "role " + string(actor.Role) + " may not " + string(action)}
}

// branchAccessGuard confines non-global actors to loans of their own
// branch.
func branchAccessGuard(actor *user.User, l *loan.Loan, _ loan.Action) error {
	if actor.Role.Global() || actor.Role == user.RoleCustomer {
		return nil
	}
	if actor.BranchID != l.BranchID {
		return &loan.ForbiddenError{Actor: actor.Username, Reason: "loan belongs to another branch"}
	}
	return nil
}

// loanActionGuard re-checks status/action compatibility independently
// of the transition table lookup, catching races between read and
// lock.
func loanActionGuard(_ *user.User, l *loan.Loan, action loan.Action) error {
	if l.Status.Terminal() || !loan.CanApply(action, l.Status) {
		return &loan.InvalidTransitionError{Action: action, From: l.Status}
	}
	return nil
}

// guardChain runs in this fixed order: role, branch, action.
var guardChain = []Guard{roleActionGuard, branchAccessGuard, loanActionGuard}

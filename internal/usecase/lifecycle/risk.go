package lifecycle

import (
	"fmt"

	"loanflow/internal/domain/customer"
	"loanflow/internal/domain/loan"
)

// Hard risk rule identifiers, surfaced in RiskRejectedError.Rule.
const (
	RuleOverdueHistory = "OVERDUE_HISTORY"
	RuleIncomeRatio    = "INCOME_RATIO"
	RuleRepeatOverdue  = "REPEAT_OVERDUE"
	RuleMinimumIncome  = "MINIMUM_INCOME"
)

const (
	maxOverdueDays       = 30
	incomeRatioCeiling   = 10
	repeatLoanThreshold  = 5
	repeatOverdueCeiling = 10
)

// RiskRules holds the configurable part of the hard-stop rule set.
type RiskRules struct {
	MinMonthlyIncome float64
}

// Validate applies the hard rejection rules in order. Every violation
// is a hard stop, not a warning.
func (r RiskRules) Validate(c *customer.Customer, requested float64) error {
	if c.OverdueDays > maxOverdueDays {
		return &loan.RiskRejectedError{
			Rule:   RuleOverdueHistory,
			Detail: fmt.Sprintf("cumulative overdue %d days exceeds %d", c.OverdueDays, maxOverdueDays),
		}
	}
	if requested > float64(incomeRatioCeiling)*c.MonthlyIncome {
		return &loan.RiskRejectedError{
			Rule:   RuleIncomeRatio,
			Detail: fmt.Sprintf("requested %.2f exceeds %dx monthly income %.2f", requested, incomeRatioCeiling, c.MonthlyIncome),
		}
	}
	if c.CompletedLoanCount > repeatLoanThreshold && c.OverdueDays > repeatOverdueCeiling {
		return &loan.RiskRejectedError{
			Rule:   RuleRepeatOverdue,
			Detail: fmt.Sprintf("%d completed loans with %d overdue days", c.CompletedLoanCount, c.OverdueDays),
		}
	}
	if c.MonthlyIncome < r.MinMonthlyIncome {
		return &loan.RiskRejectedError{
			Rule:   RuleMinimumIncome,
			Detail: fmt.Sprintf("monthly income %.2f below minimum %.2f", c.MonthlyIncome, r.MinMonthlyIncome),
		}
	}
	return nil
}

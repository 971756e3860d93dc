package lifecycle

import "loanflow/internal/domain/loan"

// availablePlafond is the product ceiling minus the customer's
// APPROVED/DISBURSED exposure. excludeLoanID skips the loan currently
// under approval, which is not yet counted as approved.
func availablePlafond(maxLoanAmount float64, active []loan.Loan, excludeLoanID string) (avail, used float64) {
	for _, l := range active {
		if excludeLoanID != "" && l.LoanID == excludeLoanID {
			continue
		}
		used += l.Amount
	}
	avail = maxLoanAmount - used
	if avail < 0 {
		avail = 0
	}
	return avail, used
}

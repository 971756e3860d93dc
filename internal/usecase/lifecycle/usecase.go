package lifecycle

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"loanflow/internal/domain/customer"
	"loanflow/internal/domain/document"
	"loanflow/internal/domain/history"
	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/notification"
	"loanflow/internal/domain/product"
	"loanflow/internal/domain/uow"
	"loanflow/internal/domain/user"
	"loanflow/pkg/id"
)

// Usecase is the loan lifecycle state machine. Every mutating call
// runs guard chain → domain validators → atomic mutation + ledger
// append + notification intent, inside one transaction.
type Usecase struct {
	loans     loan.Repository
	histories history.Repository
	customers customer.Repository
	products  product.Repository
	users     user.Directory
	uow       uow.UnitOfWork
	rules     RiskRules
	log       *zap.Logger
}

type Deps struct {
	Loans     loan.Repository
	Histories history.Repository
	Customers customer.Repository
	Products  product.Repository
	Users     user.Directory
	UoW       uow.UnitOfWork
	Rules     RiskRules
	Log       *zap.Logger
}

func NewUsecase(d Deps) *Usecase {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	return &Usecase{
		loans:     d.Loans,
		histories: d.Histories,
		customers: d.Customers,
		products:  d.Products,
		users:     d.Users,
		uow:       d.UoW,
		rules:     d.Rules,
		log:       d.Log,
	}
}

// Apply creates a loan in DRAFT for a customer, by the customer
// themselves or by marketing on their behalf. Product terms are
// snapshotted onto the loan; risk rules and the plafond gate
// applications up-front.
func (u *Usecase) Apply(ctx context.Context, actorID string, in ApplyInput) (*LoanDTO, error) {
	actor, err := u.users.GetByUsername(ctx, actorID)
	if err != nil {
		return nil, err
	}
	switch actor.Role {
	case user.RoleCustomer:
		if actor.CustomerID != in.CustomerID {
			return nil, u.denied(actor, "", "apply", "customers may only apply for their own account")
		}
	case user.RoleMarketing, user.RoleAdmin, user.RoleSuperAdmin:
	default:
		return nil, u.denied(actor, "", "apply", "role "+string(actor.Role)+" may not apply")
	}

	var dto *LoanDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cust, err := r.Customers.GetByCustomerID(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		if actor.Role == user.RoleMarketing && actor.BranchID != cust.BranchID {
			return u.denied(actor, "", "apply", "customer belongs to another branch")
		}
		prod, err := r.Products.GetByProductID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if !prod.WithinBounds(in.Amount, in.Tenor) {
			return loan.ErrTermsOutOfBounds
		}
		if err := u.rules.Validate(cust, in.Amount); err != nil {
			return err
		}
		active, err := r.Loans.ListActiveByCustomerID(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		avail, _ := availablePlafond(prod.MaxLoanAmount, active, "")
		if in.Amount > avail {
			return &loan.PlafondExceededError{Available: avail, Requested: in.Amount}
		}

		now := time.Now().UTC()
		l := &loan.Loan{
			LoanID:           id.NewID32(),
			CustomerID:       cust.CustomerID,
			ProductID:        prod.ProductID,
			BranchID:         cust.BranchID,
			Amount:           in.Amount,
			Tenor:            in.Tenor,
			InterestRate:     prod.InterestRate,
			AdminFee:         prod.AdminFee,
			Status:           loan.StatusDraft,
			Stage:            loan.StageCustomer,
			LastStatusChange: now,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		entry := &history.Entry{
			EntryID:  id.NewID32(),
			LoanID:   l.ID,
			ToStatus: string(loan.StatusDraft),
			ActionBy: actor.Username,
			Notes:    in.Notes,
		}
		if err := r.Histories.Append(ctx, entry); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Transition performs one lifecycle action on a loan. The loan row is
// locked for the duration of the transaction; guard failures,
// validator failures, and stale writes all roll back atomically.
func (u *Usecase) Transition(ctx context.Context, actorID string, in TransitionInput) (*LoanDTO, error) {
	if u.uow == nil {
		return nil, loan.ErrInvalidTransition
	}
	actor, err := u.users.GetByUsername(ctx, actorID)
	if err != nil {
		return nil, err
	}

	var dto *LoanDTO
	err = u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		for _, g := range guardChain {
			if err := g(actor, l, in.Action); err != nil {
				if errors.Is(err, loan.ErrForbidden) {
					u.audit(actor, l.LoanID, in.Action, err)
				}
				return err
			}
		}
		edge, err := loan.Resolve(in.Action, l.Status)
		if err != nil {
			return err
		}

		switch in.Action {
		case loan.ActionSubmit:
			if err := u.checkDocuments(ctx, r.Documents, l.ID); err != nil {
				return err
			}
			cust, err := r.Customers.GetByCustomerID(ctx, l.CustomerID)
			if err != nil {
				return err
			}
			if err := u.rules.Validate(cust, l.Amount); err != nil {
				return err
			}
		case loan.ActionApprove:
			// Customer row lock serializes approvals per customer.
			if _, err := r.Customers.GetByCustomerIDForUpdate(ctx, l.CustomerID); err != nil {
				return err
			}
			prod, err := r.Products.GetByProductID(ctx, l.ProductID)
			if err != nil {
				return err
			}
			active, err := r.Loans.ListActiveByCustomerID(ctx, l.CustomerID)
			if err != nil {
				return err
			}
			for _, other := range active {
				if other.LoanID != l.LoanID {
					return loan.ErrActiveLoanExists
				}
			}
			avail, _ := availablePlafond(prod.MaxLoanAmount, active, l.LoanID)
			if l.Amount > avail {
				return &loan.PlafondExceededError{Available: avail, Requested: l.Amount}
			}
		case loan.ActionDisburse:
			l.DisbursementRef = in.DisbursementRef
		}

		now := time.Now().UTC()
		from := string(l.Status)
		l.Status = edge.To
		if edge.Stage != "" {
			l.Stage = edge.Stage
		}
		switch in.Action {
		case loan.ActionSubmit:
			l.SubmittedAt = &now
		case loan.ActionApprove:
			l.ApprovedAt = &now
		case loan.ActionReject:
			l.RejectedAt = &now
		case loan.ActionDisburse:
			l.DisbursedAt = &now
		}
		l.LastStatusChange = now

		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		entry := &history.Entry{
			EntryID:    id.NewID32(),
			LoanID:     l.ID,
			FromStatus: &from,
			ToStatus:   string(edge.To),
			ActionBy:   actor.Username,
			Notes:      in.Notes,
		}
		if err := r.Histories.Append(ctx, entry); err != nil {
			return err
		}
		intent := notification.NewStatusChange(l.CustomerID, l.LoanID, string(edge.To))
		if err := r.Outbox.Append(ctx, intent); err != nil {
			return err
		}

		if in.Action == loan.ActionApprove {
			if err := cancelSiblings(ctx, r, l, now); err != nil {
				return err
			}
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// checkDocuments requires at least one document of each mandatory
// type before submission.
func (u *Usecase) checkDocuments(ctx context.Context, docs document.Repository, loanPK uint64) error {
	var missing []string
	for _, t := range document.RequiredForSubmit {
		n, err := docs.CountByLoanAndType(ctx, loanPK, t)
		if err != nil {
			return err
		}
		if n == 0 {
			missing = append(missing, string(t))
		}
	}
	if len(missing) > 0 {
		return &loan.DocumentsIncompleteError{Missing: missing}
	}
	return nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) ListByCustomer(ctx context.Context, customerID string) ([]LoanDTO, error) {
	ls, err := u.loans.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out, nil
}

// History returns the loan's ledger entries, oldest first.
func (u *Usecase) History(ctx context.Context, loanID string) ([]HistoryDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	entries, err := u.histories.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	out := make([]HistoryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryDTO{
			FromStatus: e.FromStatus,
			ToStatus:   e.ToStatus,
			ActionBy:   e.ActionBy,
			Notes:      e.Notes,
			CreatedAt:  e.CreatedAt,
		})
	}
	return out, nil
}

// AvailablePlafond reports the customer's remaining ceiling on the
// given product, with no loan excluded.
func (u *Usecase) AvailablePlafond(ctx context.Context, customerID, productID string) (*PlafondDTO, error) {
	if _, err := u.customers.GetByCustomerID(ctx, customerID); err != nil {
		return nil, err
	}
	prod, err := u.products.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	active, err := u.loans.ListActiveByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	avail, used := availablePlafond(prod.MaxLoanAmount, active, "")
	return &PlafondDTO{
		CustomerID:    customerID,
		ProductID:     productID,
		MaxLoanAmount: prod.MaxLoanAmount,
		UsedAmount:    used,
		Available:     avail,
	}, nil
}

// audit writes the authorization-audit event for a guard denial,
// distinct from the approval ledger.
func (u *Usecase) audit(actor *user.User, loanID string, action loan.Action, err error) {
	u.log.Warn("authorization denied",
		zap.String("actor", actor.Username),
		zap.String("role", string(actor.Role)),
		zap.String("loan_id", loanID),
		zap.String("action", string(action)),
		zap.Error(err),
	)
}

func (u *Usecase) denied(actor *user.User, loanID string, action, reason string) error {
	err := &loan.ForbiddenError{Actor: actor.Username, Reason: reason}
	u.audit(actor, loanID, loan.Action(action), err)
	return err
}

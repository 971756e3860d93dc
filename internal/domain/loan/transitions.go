package loan

// Action is a lifecycle operation requested against a loan.
type Action string

const (
	ActionSubmit   Action = "submit"
	ActionReview   Action = "review"
	ActionApprove  Action = "approve"
	ActionDisburse Action = "disburse"
	ActionComplete Action = "complete"
	ActionReject   Action = "reject"
	ActionCancel   Action = "cancel"
	ActionRollback Action = "rollback"
)

func (a Action) IsValid() bool {
	_, ok := transitions[a]
	return ok
}

// Edge is the outcome of an action taken from a given status.
// A zero Stage means the stage is left unchanged.
type Edge struct {
	To    Status
	Stage Stage
}

// transitions is the authoritative (action, fromStatus) table.
// reject and cancel are enumerated for every non-terminal status
// rather than special-cased, so an undefined pair always misses.
var transitions = map[Action]map[Status]Edge{
	ActionSubmit: {
		StatusDraft: {To: StatusSubmitted, Stage: StageMarketing},
	},
	ActionReview: {
		StatusSubmitted: {To: StatusReviewed, Stage: StageBranchManager},
	},
	ActionApprove: {
		StatusReviewed: {To: StatusApproved, Stage: StageBackoffice},
	},
	ActionDisburse: {
		StatusApproved: {To: StatusDisbursed, Stage: StageBackoffice},
	},
	ActionComplete: {
		StatusDisbursed: {To: StatusCompleted},
	},
	ActionReject: {
		StatusDraft:     {To: StatusRejected},
		StatusSubmitted: {To: StatusRejected},
		StatusReviewed:  {To: StatusRejected},
		StatusApproved:  {To: StatusRejected},
		StatusDisbursed: {To: StatusRejected},
	},
	ActionCancel: {
		StatusDraft:     {To: StatusCancelled},
		StatusSubmitted: {To: StatusCancelled},
		StatusReviewed:  {To: StatusCancelled},
		StatusApproved:  {To: StatusCancelled},
		StatusDisbursed: {To: StatusCancelled},
	},
	ActionRollback: {
		StatusReviewed: {To: StatusSubmitted, Stage: StageMarketing},
		StatusApproved: {To: StatusReviewed, Stage: StageBranchManager},
	},
}

// CanApply reports whether action is defined from the given status.
func CanApply(action Action, from Status) bool {
	edges, ok := transitions[action]
	if !ok {
		return false
	}
	_, ok = edges[from]
	return ok
}

// Resolve returns the edge for (action, from), or ErrInvalidTransition
// wrapped with both sides of the pair when the table has no entry.
func Resolve(action Action, from Status) (Edge, error) {
	edges, ok := transitions[action]
	if !ok {
		return Edge{}, &InvalidTransitionError{Action: action, From: from}
	}
	e, ok := edges[from]
	if !ok {
		return Edge{}, &InvalidTransitionError{Action: action, From: from}
	}
	return e, nil
}

package valueobjects

import "fmt"

// Action is a staff action recorded against an application.
type Action string

const (
	ActionClaim      Action = "claim"
	ActionUnclaim    Action = "unclaim"
	ActionApprove    Action = "approve"
	ActionReject     Action = "reject"
	ActionNeedInfo   Action = "need_info"
	ActionKick       Action = "kick"
	ActionPermReject Action = "perm_reject"
	ActionCopyUID    Action = "copy_uid"
)

var validActions = map[Action]bool{
	ActionClaim:      true,
	ActionUnclaim:    true,
	ActionApprove:    true,
	ActionReject:     true,
	ActionNeedInfo:   true,
	ActionKick:       true,
	ActionPermReject: true,
	ActionCopyUID:    true,
}

// actionResults maps each mutating action to the status it produces.
// copy_uid is absent: it is a pure audit entry.
var actionResults = map[Action]Status{
	ActionClaim:      StatusClaimed,
	ActionUnclaim:    StatusPending,
	ActionApprove:    StatusApproved,
	ActionReject:     StatusRejected,
	ActionNeedInfo:   StatusNeedsInfo,
	ActionKick:       StatusKicked,
	ActionPermReject: StatusPermRejected,
}

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	return validActions[a]
}

// Mutates reports whether the action changes application status.
func (a Action) Mutates() bool {
	_, ok := actionResults[a]
	return ok
}

// IsDecision reports whether the action is a staff decision on a claimed
// application (as opposed to claim bookkeeping or an audit-only entry).
func (a Action) IsDecision() bool {
	switch a {
	case ActionApprove, ActionReject, ActionNeedInfo, ActionKick, ActionPermReject:
		return true
	}
	return false
}

// IsTerminalDecision reports whether the action closes the application.
func (a Action) IsTerminalDecision() bool {
	st, ok := actionResults[a]
	return ok && st.IsTerminal()
}

// ResultingStatus returns the status the action produces. The second return
// is false for non-mutating actions.
func (a Action) ResultingStatus() (Status, bool) {
	st, ok := actionResults[a]
	return st, ok
}

func NewAction(s string) (Action, error) {
	a := Action(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid review action: %s", s)
	}
	return a, nil
}

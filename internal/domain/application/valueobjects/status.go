package valueobjects

import "fmt"

// Status is the lifecycle state of a membership application.
type Status string

const (
	StatusPending      Status = "pending"
	StatusClaimed      Status = "claimed"
	StatusNeedsInfo    Status = "needs_info"
	StatusApproved     Status = "approved"
	StatusRejected     Status = "rejected"
	StatusPermRejected Status = "perm_rejected"
	StatusKicked       Status = "kicked"
)

var validStatuses = map[Status]bool{
	StatusPending:      true,
	StatusClaimed:      true,
	StatusNeedsInfo:    true,
	StatusApproved:     true,
	StatusRejected:     true,
	StatusPermRejected: true,
	StatusKicked:       true,
}

// statusTransitions is the full state machine. Terminal statuses have no
// outgoing edges; once reached an application is never reopened. A kick is
// only reachable from claimed, not from needs_info.
var statusTransitions = map[Status][]Status{
	StatusPending: {
		StatusClaimed,
	},
	StatusClaimed: {
		StatusPending,
		StatusApproved,
		StatusRejected,
		StatusNeedsInfo,
		StatusPermRejected,
		StatusKicked,
	},
	StatusNeedsInfo: {
		StatusApproved,
		StatusRejected,
		StatusNeedsInfo,
		StatusPermRejected,
	},
	StatusApproved:     {},
	StatusRejected:     {},
	StatusPermRejected: {},
	StatusKicked:       {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// CanTransitionTo reports whether the state machine permits moving from s
// to newStatus.
func (s Status) CanTransitionTo(newStatus Status) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}

	for _, a := range allowed {
		if a == newStatus {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status closes the application for good.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusPermRejected, StatusKicked:
		return true
	}
	return false
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsClaimed() bool {
	return s == StatusClaimed
}

func (s Status) IsNeedsInfo() bool {
	return s == StatusNeedsInfo
}

// HoldsClaim reports whether an application in this status has an active
// claim row. The claim row and the status must never disagree.
func (s Status) HoldsClaim() bool {
	return s == StatusClaimed || s == StatusNeedsInfo
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid application status: %s", s)
	}
	return st, nil
}

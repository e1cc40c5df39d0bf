package application

import (
	"context"

	vo "gatehouse/internal/domain/application/valueobjects"
)

// DecisionNotice is what gets delivered to the applicant after a decision
// commits.
type DecisionNotice struct {
	GuildID        string
	ApplicationID  uint
	ApplicantID    string
	ApplicantEmail string
	Action         vo.Action
	Reason         string
}

// Notifier delivers a decision notice to the applicant. Delivery is
// best-effort: it runs after the decision transaction has committed and a
// failure is reported as a warning, never as an operation failure.
type Notifier interface {
	NotifyDecision(ctx context.Context, notice DecisionNotice) error
}

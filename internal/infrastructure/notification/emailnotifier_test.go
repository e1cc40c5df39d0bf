package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"gatehouse/internal/domain/application"
	vo "gatehouse/internal/domain/application/valueobjects"
	"gatehouse/internal/shared/config"
)

func TestDecisionSubjectsCoverEveryDecision(t *testing.T) {
	for _, action := range []vo.Action{
		vo.ActionApprove,
		vo.ActionReject,
		vo.ActionNeedInfo,
		vo.ActionKick,
		vo.ActionPermReject,
	} {
		subject, ok := decisionSubjects[action]
		assert.True(t, ok, "decision %s has no notice subject", action)
		assert.NotEmpty(t, subject)
	}
}

func TestEmailNotifierRequiresAddress(t *testing.T) {
	n := NewEmailNotifier(config.NotifierConfig{})

	err := n.NotifyDecision(context.Background(), application.DecisionNotice{
		ApplicationID: 7,
		ApplicantID:   "applicant-1",
		Action:        vo.ActionApprove,
	})
	assert.Error(t, err)
}

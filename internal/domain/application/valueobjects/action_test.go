package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionResultingStatus(t *testing.T) {
	tests := []struct {
		action Action
		status Status
	}{
		{action: ActionClaim, status: StatusClaimed},
		{action: ActionUnclaim, status: StatusPending},
		{action: ActionApprove, status: StatusApproved},
		{action: ActionReject, status: StatusRejected},
		{action: ActionNeedInfo, status: StatusNeedsInfo},
		{action: ActionKick, status: StatusKicked},
		{action: ActionPermReject, status: StatusPermRejected},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			st, ok := tt.action.ResultingStatus()
			require.True(t, ok)
			assert.Equal(t, tt.status, st)
		})
	}

	_, ok := ActionCopyUID.ResultingStatus()
	assert.False(t, ok, "copy_uid never mutates status")
}

func TestActionClassification(t *testing.T) {
	assert.True(t, ActionApprove.IsDecision())
	assert.True(t, ActionNeedInfo.IsDecision())
	assert.False(t, ActionClaim.IsDecision())
	assert.False(t, ActionUnclaim.IsDecision())
	assert.False(t, ActionCopyUID.IsDecision())

	assert.True(t, ActionApprove.IsTerminalDecision())
	assert.True(t, ActionKick.IsTerminalDecision())
	assert.False(t, ActionNeedInfo.IsTerminalDecision())
	assert.False(t, ActionUnclaim.IsTerminalDecision())

	assert.True(t, ActionClaim.Mutates())
	assert.False(t, ActionCopyUID.Mutates())
}

func TestNewAction(t *testing.T) {
	a, err := NewAction("perm_reject")
	assert.NoError(t, err)
	assert.Equal(t, ActionPermReject, a)

	_, err = NewAction("ban")
	assert.Error(t, err)
}

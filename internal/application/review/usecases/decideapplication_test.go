package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatehouse/internal/domain/application"
	vo "gatehouse/internal/domain/application/valueobjects"
	"gatehouse/internal/shared/errors"
)

type decideFixture struct {
	appRepo   *mockAppRepository
	claimRepo *mockClaimRepository
	logRepo   *mockActionLogRepository
	notifier  *mockNotifier
	deleted   *bool
	statuses  *[]vo.Status
}

func newDecideFixture(status vo.Status, claimHolder string) *decideFixture {
	deleted := false
	var statuses []vo.Status

	f := &decideFixture{
		logRepo:  &mockActionLogRepository{},
		notifier: &mockNotifier{},
		deleted:  &deleted,
		statuses: &statuses,
	}
	f.appRepo = &mockAppRepository{
		GetByIDFunc: func(ctx context.Context, appID uint) (*application.Application, error) {
			return reconstructedApplication(appID, status), nil
		},
		UpdateStatusFunc: func(ctx context.Context, id uint, s vo.Status) error {
			statuses = append(statuses, s)
			return nil
		},
	}
	f.claimRepo = &mockClaimRepository{
		GetByApplicationIDFunc: func(ctx context.Context, applicationID uint) (*application.Claim, error) {
			if claimHolder == "" {
				return nil, errors.NewNotFoundError("claim not found")
			}
			return heldClaim(applicationID, claimHolder, 1100), nil
		},
		DeleteFunc: func(ctx context.Context, applicationID uint) error {
			deleted = true
			return nil
		},
	}
	return f
}

func (f *decideFixture) useCase() *DecideApplicationUseCase {
	return NewDecideApplicationUseCase(f.appRepo, f.claimRepo, f.logRepo, f.notifier, &mockTxManager{}, &mockLogger{})
}

func TestDecideApplicationApprove(t *testing.T) {
	score := 0.82
	f := newDecideFixture(vo.StatusClaimed, "staff-1")

	outcome, err := f.useCase().Execute(context.Background(), DecideApplicationCommand{
		ApplicationID: 7,
		StaffID:       "staff-1",
		Action:        vo.ActionApprove,
		Reason:        "solid answers",
		Scorer:        &ScorerSummary{Score: &score, SuccessCount: 3, FailureCount: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "approved", outcome.Status)
	assert.Equal(t, "claimed", outcome.PriorStatus)
	assert.True(t, outcome.Delivered)
	assert.Empty(t, outcome.DeliveryWarning)

	assert.Equal(t, []vo.Status{vo.StatusApproved}, *f.statuses)
	assert.True(t, *f.deleted, "terminal decision must release the claim")

	require.Len(t, f.logRepo.appended, 1)
	meta := f.logRepo.appended[0].Meta()
	assert.Equal(t, "claimed", meta[application.MetaKeyPriorStatus])
	assert.Equal(t, "solid answers", meta[application.MetaKeyReason])
	assert.Equal(t, ScorerSummary{Score: &score, SuccessCount: 3, FailureCount: 1}, meta[application.MetaKeyScore])

	require.Len(t, f.notifier.notices, 1)
	assert.Equal(t, vo.ActionApprove, f.notifier.notices[0].Action)
	assert.Equal(t, "applicant@example.com", f.notifier.notices[0].ApplicantEmail)
}

func TestDecideApplicationNeedsInfoKeepsClaim(t *testing.T) {
	f := newDecideFixture(vo.StatusClaimed, "staff-1")

	outcome, err := f.useCase().Execute(context.Background(), DecideApplicationCommand{
		ApplicationID: 7,
		StaffID:       "staff-1",
		Action:        vo.ActionNeedInfo,
	})
	require.NoError(t, err)

	assert.Equal(t, "needs_info", outcome.Status)
	assert.False(t, *f.deleted, "needs_info must not release the claim")
}

func TestDecideApplicationNotClaimant(t *testing.T) {
	f := newDecideFixture(vo.StatusClaimed, "staff-1")

	_, err := f.useCase().Execute(context.Background(), DecideApplicationCommand{
		ApplicationID: 7,
		StaffID:       "staff-2",
		Action:        vo.ActionApprove,
	})
	assert.True(t, errors.IsNotClaimantError(err))
	assert.Empty(t, f.logRepo.appended)
	assert.Empty(t, f.notifier.notices)
}

func TestDecideApplicationPendingApplication(t *testing.T) {
	// Deciding an application nobody has claimed yet is a state machine
	// violation, not an ownership failure.
	f := newDecideFixture(vo.StatusPending, "")

	_, err := f.useCase().Execute(context.Background(), DecideApplicationCommand{
		ApplicationID: 7,
		StaffID:       "staff-1",
		Action:        vo.ActionApprove,
	})
	assert.True(t, errors.IsInvalidTransitionError(err))
	assert.Empty(t, *f.statuses)
}

func TestDecideApplicationStaleState(t *testing.T) {
	f := newDecideFixture(vo.StatusNeedsInfo, "staff-1")

	_, err := f.useCase().Execute(context.Background(), DecideApplicationCommand{
		ApplicationID:  7,
		StaffID:        "staff-1",
		Action:         vo.ActionApprove,
		ExpectedStatus: vo.StatusClaimed,
	})
	assert.True(t, errors.IsStaleStateError(err))
	assert.Empty(t, *f.statuses, "a stale decision must not write")
}

func TestDecideApplicationDoubleDecision(t *testing.T) {
	// A terminal application holds no claim row, so the double decision has
	// to be refused on the transition itself.
	f := newDecideFixture(vo.StatusApproved, "")

	_, err := f.useCase().Execute(context.Background(), DecideApplicationCommand{
		ApplicationID: 7,
		StaffID:       "staff-1",
		Action:        vo.ActionReject,
	})
	assert.True(t, errors.IsInvalidTransitionError(err))
	assert.Empty(t, f.logRepo.appended, "a refused decision must not append an entry")
	assert.Empty(t, *f.statuses)
}

func TestDecideApplicationKickFromNeedsInfo(t *testing.T) {
	f := newDecideFixture(vo.StatusNeedsInfo, "staff-1")

	_, err := f.useCase().Execute(context.Background(), DecideApplicationCommand{
		ApplicationID: 7,
		StaffID:       "staff-1",
		Action:        vo.ActionKick,
	})
	assert.True(t, errors.IsInvalidTransitionError(err))
}

func TestDecideApplicationNotificationFailureIsNonFatal(t *testing.T) {
	f := newDecideFixture(vo.StatusClaimed, "staff-1")
	f.notifier.NotifyDecisionFunc = func(ctx context.Context, notice application.DecisionNotice) error {
		return assert.AnError
	}

	outcome, err := f.useCase().Execute(context.Background(), DecideApplicationCommand{
		ApplicationID: 7,
		StaffID:       "staff-1",
		Action:        vo.ActionReject,
	})
	require.NoError(t, err, "a failed delivery must not undo the decision")

	assert.Equal(t, "rejected", outcome.Status)
	assert.False(t, outcome.Delivered)
	assert.NotEmpty(t, outcome.DeliveryWarning)
	assert.Equal(t, []vo.Status{vo.StatusRejected}, *f.statuses)
}

func TestDecideApplicationCopyUID(t *testing.T) {
	// copy_uid is audit-only: no claim needed, nothing mutated, works on
	// terminal applications.
	f := newDecideFixture(vo.StatusApproved, "")

	outcome, err := f.useCase().Execute(context.Background(), DecideApplicationCommand{
		ApplicationID: 7,
		StaffID:       "staff-3",
		Action:        vo.ActionCopyUID,
	})
	require.NoError(t, err)

	assert.Equal(t, "approved", outcome.Status)
	assert.Equal(t, "approved", outcome.PriorStatus)
	assert.Empty(t, *f.statuses, "copy_uid must not touch status")
	assert.False(t, *f.deleted)

	require.Len(t, f.logRepo.appended, 1)
	assert.Equal(t, vo.ActionCopyUID, f.logRepo.appended[0].Action())
	assert.Empty(t, f.notifier.notices)
}

func TestDecideApplicationRejectsClaimAction(t *testing.T) {
	f := newDecideFixture(vo.StatusClaimed, "staff-1")

	_, err := f.useCase().Execute(context.Background(), DecideApplicationCommand{
		ApplicationID: 7,
		StaffID:       "staff-1",
		Action:        vo.ActionClaim,
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestDecideApplicationRollsBackOnAppendFailure(t *testing.T) {
	f := newDecideFixture(vo.StatusClaimed, "staff-1")
	f.logRepo.AppendFunc = func(ctx context.Context, entry *application.ActionLogEntry) error {
		return assert.AnError
	}

	_, err := f.useCase().Execute(context.Background(), DecideApplicationCommand{
		ApplicationID: 7,
		StaffID:       "staff-1",
		Action:        vo.ActionApprove,
	})
	require.Error(t, err)
	assert.Empty(t, f.notifier.notices, "nothing may be delivered for an uncommitted decision")
}

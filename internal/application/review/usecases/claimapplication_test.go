package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gatehouse/internal/domain/application"
	vo "gatehouse/internal/domain/application/valueobjects"
	"gatehouse/internal/shared/errors"
)

func TestClaimApplicationSuccess(t *testing.T) {
	appRepo := &mockAppRepository{
		GetByIDFunc: func(ctx context.Context, appID uint) (*application.Application, error) {
			return pendingApplication(appID), nil
		},
	}
	var inserted *application.Claim
	claimRepo := &mockClaimRepository{
		InsertFunc: func(ctx context.Context, claim *application.Claim) error {
			inserted = claim
			return nil
		},
	}
	logRepo := &mockActionLogRepository{}

	uc := NewClaimApplicationUseCase(appRepo, claimRepo, logRepo, &mockTxManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ClaimApplicationCommand{
		ApplicationID: 7,
		StaffID:       "staff-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "claimed", result.Status)
	assert.Equal(t, "staff-1", result.ClaimedBy)

	require.NotNil(t, inserted)
	assert.Equal(t, uint(7), inserted.ApplicationID())
	assert.True(t, inserted.HeldBy("staff-1"))

	require.Len(t, logRepo.appended, 1)
	entry := logRepo.appended[0]
	assert.Equal(t, vo.ActionClaim, entry.Action())
	assert.Equal(t, "staff-1", entry.ActorID())
	assert.Equal(t, "pending", entry.Meta()[application.MetaKeyPriorStatus])
}

func TestClaimApplicationAlreadyClaimedStatus(t *testing.T) {
	appRepo := &mockAppRepository{
		GetByIDFunc: func(ctx context.Context, appID uint) (*application.Application, error) {
			return claimedApplication(appID), nil
		},
	}

	uc := NewClaimApplicationUseCase(appRepo, &mockClaimRepository{}, &mockActionLogRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ClaimApplicationCommand{ApplicationID: 7, StaffID: "staff-2"})
	assert.True(t, errors.IsAlreadyClaimedError(err))
}

func TestClaimApplicationLosesInsertRace(t *testing.T) {
	// Both contenders observe pending; the loser's insert hits the
	// primary key on application_id. The constraint, not a read, decides.
	appRepo := &mockAppRepository{
		GetByIDFunc: func(ctx context.Context, appID uint) (*application.Application, error) {
			return pendingApplication(appID), nil
		},
	}
	claimRepo := &mockClaimRepository{
		InsertFunc: func(ctx context.Context, claim *application.Claim) error {
			return gorm.ErrDuplicatedKey
		},
	}
	logRepo := &mockActionLogRepository{}

	uc := NewClaimApplicationUseCase(appRepo, claimRepo, logRepo, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ClaimApplicationCommand{ApplicationID: 7, StaffID: "staff-2"})
	assert.True(t, errors.IsAlreadyClaimedError(err))
	assert.Empty(t, logRepo.appended, "a lost race must not leave a log entry")
}

func TestClaimApplicationTerminalStatus(t *testing.T) {
	appRepo := &mockAppRepository{
		GetByIDFunc: func(ctx context.Context, appID uint) (*application.Application, error) {
			return reconstructedApplication(appID, vo.StatusApproved), nil
		},
	}

	uc := NewClaimApplicationUseCase(appRepo, &mockClaimRepository{}, &mockActionLogRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ClaimApplicationCommand{ApplicationID: 7, StaffID: "staff-1"})
	assert.True(t, errors.IsInvalidTransitionError(err))
}

func TestClaimApplicationNotFound(t *testing.T) {
	uc := NewClaimApplicationUseCase(&mockAppRepository{}, &mockClaimRepository{}, &mockActionLogRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ClaimApplicationCommand{ApplicationID: 404, StaffID: "staff-1"})
	assert.True(t, errors.IsNotFoundError(err))
}

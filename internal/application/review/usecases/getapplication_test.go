package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatehouse/internal/domain/application"
	"gatehouse/internal/shared/errors"
)

func TestGetApplicationWithClaim(t *testing.T) {
	appRepo := &mockAppRepository{
		GetByIDFunc: func(ctx context.Context, appID uint) (*application.Application, error) {
			return claimedApplication(appID), nil
		},
	}
	claimRepo := &mockClaimRepository{
		GetByApplicationIDFunc: func(ctx context.Context, applicationID uint) (*application.Claim, error) {
			return heldClaim(applicationID, "staff-1", 1100), nil
		},
	}

	uc := NewGetApplicationUseCase(appRepo, claimRepo, &mockLogger{})

	dto, err := uc.Execute(context.Background(), GetApplicationQuery{ApplicationID: 7})
	require.NoError(t, err)

	assert.Equal(t, uint(7), dto.ID)
	assert.Equal(t, "claimed", dto.Status)
	assert.Equal(t, "staff-1", dto.ClaimedBy)
	assert.Len(t, dto.Answers, 1)
}

func TestGetApplicationWithoutClaim(t *testing.T) {
	appRepo := &mockAppRepository{
		GetByIDFunc: func(ctx context.Context, appID uint) (*application.Application, error) {
			return pendingApplication(appID), nil
		},
	}

	uc := NewGetApplicationUseCase(appRepo, &mockClaimRepository{}, &mockLogger{})

	dto, err := uc.Execute(context.Background(), GetApplicationQuery{ApplicationID: 7})
	require.NoError(t, err)

	assert.Empty(t, dto.ClaimedBy)
	assert.Zero(t, dto.ClaimedAtS)
}

func TestGetApplicationNotFound(t *testing.T) {
	uc := NewGetApplicationUseCase(&mockAppRepository{}, &mockClaimRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), GetApplicationQuery{ApplicationID: 404})
	assert.True(t, errors.IsNotFoundError(err))
}

package usecases

import (
	"context"

	"gatehouse/internal/domain/application"
	"gatehouse/internal/shared/errors"
	"gatehouse/internal/shared/logger"
)

type GetApplicationQuery struct {
	ApplicationID uint
}

type GetApplicationUseCase struct {
	appRepo   application.Repository
	claimRepo application.ClaimRepository
	logger    logger.Interface
}

func NewGetApplicationUseCase(
	appRepo application.Repository,
	claimRepo application.ClaimRepository,
	logger logger.Interface,
) *GetApplicationUseCase {
	return &GetApplicationUseCase{
		appRepo:   appRepo,
		claimRepo: claimRepo,
		logger:    logger,
	}
}

func (uc *GetApplicationUseCase) Execute(
	ctx context.Context,
	query GetApplicationQuery,
) (*ApplicationDTO, error) {
	if query.ApplicationID == 0 {
		return nil, errors.NewValidationError("application ID is required")
	}

	app, err := uc.appRepo.GetByID(ctx, query.ApplicationID)
	if err != nil {
		return nil, err
	}

	claim, err := uc.claimRepo.GetByApplicationID(ctx, app.ID())
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	return applicationToDTO(app, claim), nil
}

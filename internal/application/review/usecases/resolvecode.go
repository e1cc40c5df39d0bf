package usecases

import (
	"context"

	"gatehouse/internal/domain/application"
	"gatehouse/internal/shared/errors"
	"gatehouse/internal/shared/id"
	"gatehouse/internal/shared/logger"
)

type ResolveCodeQuery struct {
	Code string
}

// ResolveCodeUseCase resolves a six-character short code straight through
// the code index. It never scans the application table.
type ResolveCodeUseCase struct {
	appRepo   application.Repository
	claimRepo application.ClaimRepository
	codeRepo  application.ShortCodeRepository
	logger    logger.Interface
}

func NewResolveCodeUseCase(
	appRepo application.Repository,
	claimRepo application.ClaimRepository,
	codeRepo application.ShortCodeRepository,
	logger logger.Interface,
) *ResolveCodeUseCase {
	return &ResolveCodeUseCase{
		appRepo:   appRepo,
		claimRepo: claimRepo,
		codeRepo:  codeRepo,
		logger:    logger,
	}
}

func (uc *ResolveCodeUseCase) Execute(
	ctx context.Context,
	query ResolveCodeQuery,
) (*ApplicationDTO, error) {
	code := id.NormalizeCode(query.Code)
	if !id.IsValidCode(code) {
		return nil, errors.NewValidationError("malformed short code")
	}

	applicationID, err := uc.codeRepo.Resolve(ctx, code)
	if err != nil {
		return nil, err
	}

	app, err := uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	claim, err := uc.claimRepo.GetByApplicationID(ctx, app.ID())
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	return applicationToDTO(app, claim), nil
}

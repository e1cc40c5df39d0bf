package usecases

import (
	"context"
	"time"

	"gatehouse/internal/domain/application"
	vo "gatehouse/internal/domain/application/valueobjects"
	"gatehouse/internal/shared/db"
	"gatehouse/internal/shared/errors"
	"gatehouse/internal/shared/logger"
)

type ClaimApplicationCommand struct {
	ApplicationID uint
	StaffID       string
}

type ClaimApplicationResult struct {
	ApplicationID uint   `json:"application_id"`
	Status        string `json:"status"`
	ClaimedBy     string `json:"claimed_by"`
	ClaimedAtS    int64  `json:"claimed_at_s"`
}

// ClaimApplicationUseCase is the claim guard. The claim row's primary key
// on application_id is the mutual-exclusion mechanism: two racing claims
// both reach Insert, and exactly one loses on the constraint. There is no
// check-then-act read deciding the winner.
type ClaimApplicationUseCase struct {
	appRepo   application.Repository
	claimRepo application.ClaimRepository
	logRepo   application.ActionLogRepository
	txMgr     db.TxManager
	logger    logger.Interface
}

func NewClaimApplicationUseCase(
	appRepo application.Repository,
	claimRepo application.ClaimRepository,
	logRepo application.ActionLogRepository,
	txMgr db.TxManager,
	logger logger.Interface,
) *ClaimApplicationUseCase {
	return &ClaimApplicationUseCase{
		appRepo:   appRepo,
		claimRepo: claimRepo,
		logRepo:   logRepo,
		txMgr:     txMgr,
		logger:    logger,
	}
}

func (uc *ClaimApplicationUseCase) Execute(
	ctx context.Context,
	cmd ClaimApplicationCommand,
) (*ClaimApplicationResult, error) {
	uc.logger.Infow("executing claim application use case",
		"application_id", cmd.ApplicationID,
		"staff_id", cmd.StaffID)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	var result *ClaimApplicationResult

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		app, err := uc.appRepo.GetByID(txCtx, cmd.ApplicationID)
		if err != nil {
			return err
		}

		if app.Status().HoldsClaim() {
			return errors.NewAlreadyClaimedError("application is already claimed")
		}

		if _, err := app.ApplyAction(vo.ActionClaim); err != nil {
			return errors.NewInvalidTransitionError(err.Error())
		}

		claim, err := application.NewClaim(app.ID(), cmd.StaffID, now)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.claimRepo.Insert(txCtx, claim); err != nil {
			if errors.IsDuplicateError(err) {
				// Lost the race: someone else's insert committed first.
				return errors.NewAlreadyClaimedError("application was claimed by someone else")
			}
			uc.logger.Errorw("failed to insert claim", "error", err)
			return errors.NewInternalError("failed to insert claim")
		}

		if err := uc.appRepo.UpdateStatus(txCtx, app.ID(), app.Status()); err != nil {
			uc.logger.Errorw("failed to update application status", "error", err)
			return errors.NewInternalError("failed to update application status")
		}

		entry, err := application.NewActionLogEntry(
			app.GuildID(), app.ID(), cmd.StaffID, vo.ActionClaim, now,
			application.ActionMeta{application.MetaKeyPriorStatus: vo.StatusPending.String()})
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		if err := uc.logRepo.Append(txCtx, entry); err != nil {
			uc.logger.Errorw("failed to append claim log entry", "error", err)
			return errors.NewInternalError("failed to append action log entry")
		}

		result = &ClaimApplicationResult{
			ApplicationID: app.ID(),
			Status:        app.Status().String(),
			ClaimedBy:     cmd.StaffID,
			ClaimedAtS:    now,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("application claimed",
		"application_id", cmd.ApplicationID,
		"staff_id", cmd.StaffID)

	return result, nil
}

func (uc *ClaimApplicationUseCase) validateCommand(cmd ClaimApplicationCommand) error {
	if cmd.ApplicationID == 0 {
		return errors.NewValidationError("application ID is required")
	}
	if len(cmd.StaffID) == 0 {
		return errors.NewValidationError("staff ID is required")
	}
	return nil
}

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

type UnclaimApplicationCommand struct {
	ApplicationID uint
	StaffID       string
}

type UnclaimApplicationResult struct {
	ApplicationID uint   `json:"application_id"`
	Status        string `json:"status"`
}

type UnclaimApplicationUseCase struct {
	appRepo   application.Repository
	claimRepo application.ClaimRepository
	logRepo   application.ActionLogRepository
	txMgr     db.TxManager
	logger    logger.Interface
}

func NewUnclaimApplicationUseCase(
	appRepo application.Repository,
	claimRepo application.ClaimRepository,
	logRepo application.ActionLogRepository,
	txMgr db.TxManager,
	logger logger.Interface,
) *UnclaimApplicationUseCase {
	return &UnclaimApplicationUseCase{
		appRepo:   appRepo,
		claimRepo: claimRepo,
		logRepo:   logRepo,
		txMgr:     txMgr,
		logger:    logger,
	}
}

func (uc *UnclaimApplicationUseCase) Execute(
	ctx context.Context,
	cmd UnclaimApplicationCommand,
) (*UnclaimApplicationResult, error) {
	uc.logger.Infow("executing unclaim application use case",
		"application_id", cmd.ApplicationID,
		"staff_id", cmd.StaffID)

	if cmd.ApplicationID == 0 {
		return nil, errors.NewValidationError("application ID is required")
	}
	if len(cmd.StaffID) == 0 {
		return nil, errors.NewValidationError("staff ID is required")
	}

	now := time.Now().Unix()
	var result *UnclaimApplicationResult

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		app, err := uc.appRepo.GetByID(txCtx, cmd.ApplicationID)
		if err != nil {
			return err
		}

		claim, err := uc.claimRepo.GetByApplicationID(txCtx, app.ID())
		if err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewInvalidTransitionError("application is not claimed")
			}
			return err
		}
		if !claim.HeldBy(cmd.StaffID) {
			return errors.NewNotClaimantError("only the claim holder can unclaim")
		}

		prior, err := app.ApplyAction(vo.ActionUnclaim)
		if err != nil {
			return errors.NewInvalidTransitionError(err.Error())
		}

		if err := uc.claimRepo.Delete(txCtx, app.ID()); err != nil {
			uc.logger.Errorw("failed to delete claim", "error", err)
			return errors.NewInternalError("failed to delete claim")
		}
		if err := uc.appRepo.UpdateStatus(txCtx, app.ID(), app.Status()); err != nil {
			uc.logger.Errorw("failed to update application status", "error", err)
			return errors.NewInternalError("failed to update application status")
		}

		entry, err := application.NewActionLogEntry(
			app.GuildID(), app.ID(), cmd.StaffID, vo.ActionUnclaim, now,
			application.ActionMeta{application.MetaKeyPriorStatus: prior.String()})
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		if err := uc.logRepo.Append(txCtx, entry); err != nil {
			uc.logger.Errorw("failed to append unclaim log entry", "error", err)
			return errors.NewInternalError("failed to append action log entry")
		}

		result = &UnclaimApplicationResult{
			ApplicationID: app.ID(),
			Status:        app.Status().String(),
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("application unclaimed",
		"application_id", cmd.ApplicationID,
		"staff_id", cmd.StaffID)

	return result, nil
}

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

// ScorerSummary is the aggregate produced by the external image scorers,
// recorded opaquely in the action log meta when the caller supplies it.
type ScorerSummary struct {
	Score        *float64 `json:"score"`
	SuccessCount int      `json:"success_count"`
	FailureCount int      `json:"failure_count"`
}

type DecideApplicationCommand struct {
	ApplicationID uint
	StaffID       string
	Action        vo.Action
	// ExpectedStatus is the status the caller last observed. When set, a
	// mismatch on the in-transaction re-read fails with StaleState instead
	// of silently deciding on top of someone else's change.
	ExpectedStatus vo.Status
	Reason         string
	Scorer         *ScorerSummary
}

// DecisionOutcome reports a committed decision. Delivered/DeliveryWarning
// describe the post-commit notification attempt; a failed delivery never
// undoes the decision.
type DecisionOutcome struct {
	ApplicationID   uint   `json:"application_id"`
	Action          string `json:"action"`
	PriorStatus     string `json:"prior_status"`
	Status          string `json:"status"`
	EntryID         uint   `json:"entry_id"`
	Delivered       bool   `json:"delivered"`
	DeliveryWarning string `json:"delivery_warning,omitempty"`
}

// DecideApplicationUseCase applies a staff decision as one atomic unit:
// re-read, claim check, status transition, claim release, audit entry.
// All five commit or none do.
type DecideApplicationUseCase struct {
	appRepo   application.Repository
	claimRepo application.ClaimRepository
	logRepo   application.ActionLogRepository
	notifier  application.Notifier
	txMgr     db.TxManager
	logger    logger.Interface
}

func NewDecideApplicationUseCase(
	appRepo application.Repository,
	claimRepo application.ClaimRepository,
	logRepo application.ActionLogRepository,
	notifier application.Notifier,
	txMgr db.TxManager,
	logger logger.Interface,
) *DecideApplicationUseCase {
	return &DecideApplicationUseCase{
		appRepo:   appRepo,
		claimRepo: claimRepo,
		logRepo:   logRepo,
		notifier:  notifier,
		txMgr:     txMgr,
		logger:    logger,
	}
}

func (uc *DecideApplicationUseCase) Execute(
	ctx context.Context,
	cmd DecideApplicationCommand,
) (*DecisionOutcome, error) {
	uc.logger.Infow("executing decide application use case",
		"application_id", cmd.ApplicationID,
		"staff_id", cmd.StaffID,
		"action", cmd.Action)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	if cmd.Action == vo.ActionCopyUID {
		return uc.executeCopyUID(ctx, cmd)
	}

	now := time.Now().Unix()
	var outcome *DecisionOutcome
	var notice application.DecisionNotice

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Re-read inside the transaction: the claim serializes writers,
		// but a caller may have cached state across an await.
		app, err := uc.appRepo.GetByID(txCtx, cmd.ApplicationID)
		if err != nil {
			return err
		}

		if cmd.ExpectedStatus != "" && app.Status() != cmd.ExpectedStatus {
			return errors.NewStaleStateError("application status changed since it was last read",
				"current status: "+app.Status().String())
		}

		// Transition legality is checked before claim ownership: a second
		// decision on a closed application must read as the state machine
		// violation it is, not as a missing claim. The claim row is already
		// gone on a terminal application, and NotClaimant would invite a
		// retry where none is appropriate.
		if target, ok := cmd.Action.ResultingStatus(); ok && !app.Status().CanTransitionTo(target) {
			return errors.NewInvalidTransitionError(
				"cannot "+cmd.Action.String()+" an application in status "+app.Status().String(),
				"resulting status "+target.String()+" is not reachable")
		}

		claim, err := uc.claimRepo.GetByApplicationID(txCtx, app.ID())
		if err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewNotClaimantError("application is not claimed")
			}
			return err
		}
		if !claim.HeldBy(cmd.StaffID) {
			return errors.NewNotClaimantError("application is claimed by someone else")
		}

		prior, err := app.ApplyAction(cmd.Action)
		if err != nil {
			return errors.NewInvalidTransitionError(err.Error())
		}

		if err := uc.appRepo.UpdateStatus(txCtx, app.ID(), app.Status()); err != nil {
			uc.logger.Errorw("failed to update application status", "error", err)
			return errors.NewInternalError("failed to update application status")
		}

		// The claim lives on through needs_info; it is released the moment
		// the application leaves the claim-holding states.
		if !app.Status().HoldsClaim() {
			if err := uc.claimRepo.Delete(txCtx, app.ID()); err != nil {
				uc.logger.Errorw("failed to delete claim", "error", err)
				return errors.NewInternalError("failed to delete claim")
			}
		}

		entry, err := application.NewActionLogEntry(
			app.GuildID(), app.ID(), cmd.StaffID, cmd.Action, now, uc.buildMeta(cmd, prior))
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		if err := uc.logRepo.Append(txCtx, entry); err != nil {
			uc.logger.Errorw("failed to append decision log entry", "error", err)
			return errors.NewInternalError("failed to append action log entry")
		}

		outcome = &DecisionOutcome{
			ApplicationID: app.ID(),
			Action:        cmd.Action.String(),
			PriorStatus:   prior.String(),
			Status:        app.Status().String(),
			EntryID:       entry.ID(),
		}
		notice = application.DecisionNotice{
			GuildID:        app.GuildID(),
			ApplicationID:  app.ID(),
			ApplicantID:    app.ApplicantID(),
			ApplicantEmail: app.ApplicantEmail(),
			Action:         cmd.Action,
			Reason:         cmd.Reason,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Best-effort delivery outside the transaction boundary. The decision
	// is committed; an unreachable notification channel must never undo it.
	if err := uc.notifier.NotifyDecision(ctx, notice); err != nil {
		uc.logger.Warnw("decision notification failed",
			"application_id", cmd.ApplicationID,
			"action", cmd.Action,
			"error", err)
		outcome.Delivered = false
		outcome.DeliveryWarning = err.Error()
	} else {
		outcome.Delivered = true
	}

	uc.logger.Infow("decision committed",
		"application_id", cmd.ApplicationID,
		"staff_id", cmd.StaffID,
		"action", cmd.Action,
		"status", outcome.Status,
		"delivered", outcome.Delivered)

	return outcome, nil
}

// executeCopyUID records an audit-only entry. It bypasses the claim
// precondition and never touches status or the claim row.
func (uc *DecideApplicationUseCase) executeCopyUID(
	ctx context.Context,
	cmd DecideApplicationCommand,
) (*DecisionOutcome, error) {
	now := time.Now().Unix()
	var outcome *DecisionOutcome

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		app, err := uc.appRepo.GetByID(txCtx, cmd.ApplicationID)
		if err != nil {
			return err
		}

		entry, err := application.NewActionLogEntry(
			app.GuildID(), app.ID(), cmd.StaffID, vo.ActionCopyUID, now, nil)
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		if err := uc.logRepo.Append(txCtx, entry); err != nil {
			uc.logger.Errorw("failed to append copy_uid log entry", "error", err)
			return errors.NewInternalError("failed to append action log entry")
		}

		outcome = &DecisionOutcome{
			ApplicationID: app.ID(),
			Action:        vo.ActionCopyUID.String(),
			PriorStatus:   app.Status().String(),
			Status:        app.Status().String(),
			EntryID:       entry.ID(),
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return outcome, nil
}

func (uc *DecideApplicationUseCase) buildMeta(
	cmd DecideApplicationCommand,
	prior vo.Status,
) application.ActionMeta {
	meta := application.ActionMeta{
		application.MetaKeyPriorStatus: prior.String(),
	}
	if cmd.Reason != "" {
		meta[application.MetaKeyReason] = cmd.Reason
	}
	if cmd.Scorer != nil {
		meta[application.MetaKeyScore] = *cmd.Scorer
	}
	return meta
}

func (uc *DecideApplicationUseCase) validateCommand(cmd DecideApplicationCommand) error {
	if cmd.ApplicationID == 0 {
		return errors.NewValidationError("application ID is required")
	}
	if len(cmd.StaffID) == 0 {
		return errors.NewValidationError("staff ID is required")
	}
	if !cmd.Action.IsValid() {
		return errors.NewValidationError("invalid action: " + cmd.Action.String())
	}
	if !cmd.Action.IsDecision() && cmd.Action != vo.ActionCopyUID {
		return errors.NewValidationError("action is not a decision: " + cmd.Action.String())
	}
	if cmd.ExpectedStatus != "" && !cmd.ExpectedStatus.IsValid() {
		return errors.NewValidationError("invalid expected status: " + cmd.ExpectedStatus.String())
	}
	return nil
}

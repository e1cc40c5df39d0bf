package usecases

import (
	"context"
	"time"

	"gatehouse/internal/domain/application"
	"gatehouse/internal/shared/db"
	"gatehouse/internal/shared/errors"
	"gatehouse/internal/shared/id"
	"gatehouse/internal/shared/logger"
)

// DefaultShortCodeAttempts bounds the regenerate-on-collision loop when the
// configured value is missing or nonsense.
const DefaultShortCodeAttempts = 5

type SubmitApplicationCommand struct {
	GuildID        string
	ApplicantID    string
	ApplicantEmail string
	Answers        []application.Answer
	// SubmittedAtS is optional; zero means "now".
	SubmittedAtS int64
}

type SubmitApplicationResult struct {
	ApplicationID uint   `json:"application_id"`
	Status        string `json:"status"`
	ShortCode     string `json:"short_code"`
	SubmittedAtS  int64  `json:"submitted_at_s"`
}

type SubmitApplicationUseCase struct {
	appRepo      application.Repository
	codeRepo     application.ShortCodeRepository
	txMgr        db.TxManager
	codeAttempts int
	logger       logger.Interface
}

func NewSubmitApplicationUseCase(
	appRepo application.Repository,
	codeRepo application.ShortCodeRepository,
	txMgr db.TxManager,
	codeAttempts int,
	logger logger.Interface,
) *SubmitApplicationUseCase {
	if codeAttempts <= 0 {
		codeAttempts = DefaultShortCodeAttempts
	}
	return &SubmitApplicationUseCase{
		appRepo:      appRepo,
		codeRepo:     codeRepo,
		txMgr:        txMgr,
		codeAttempts: codeAttempts,
		logger:       logger,
	}
}

func (uc *SubmitApplicationUseCase) Execute(
	ctx context.Context,
	cmd SubmitApplicationCommand,
) (*SubmitApplicationResult, error) {
	uc.logger.Infow("executing submit application use case",
		"guild_id", cmd.GuildID,
		"applicant_id", cmd.ApplicantID)

	submittedAt := cmd.SubmittedAtS
	if submittedAt <= 0 {
		submittedAt = time.Now().Unix()
	}

	app, err := application.NewApplication(
		cmd.GuildID, cmd.ApplicantID, cmd.ApplicantEmail, cmd.Answers, submittedAt)
	if err != nil {
		uc.logger.Warnw("invalid submit application command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.appRepo.Save(txCtx, app); err != nil {
			uc.logger.Errorw("failed to save application", "error", err)
			return errors.NewInternalError("failed to save application")
		}

		code, err := uc.assignShortCode(txCtx, app.ID(), app.GuildID())
		if err != nil {
			return err
		}
		if err := app.SetShortCode(code); err != nil {
			return errors.NewInternalError(err.Error())
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("application submitted",
		"application_id", app.ID(),
		"guild_id", app.GuildID(),
		"short_code", app.ShortCode())

	return &SubmitApplicationResult{
		ApplicationID: app.ID(),
		Status:        app.Status().String(),
		ShortCode:     app.ShortCode(),
		SubmittedAtS:  app.SubmittedAtS(),
	}, nil
}

// assignShortCode inserts a freshly generated code, retrying on the unique
// constraint until it lands a free one or runs out of attempts.
func (uc *SubmitApplicationUseCase) assignShortCode(
	ctx context.Context,
	applicationID uint,
	guildID string,
) (string, error) {
	for attempt := 0; attempt < uc.codeAttempts; attempt++ {
		code, err := id.GenerateCode()
		if err != nil {
			return "", errors.NewInternalError("failed to generate short code", err.Error())
		}

		insertErr := uc.codeRepo.Insert(ctx, applicationID, guildID, code)
		if insertErr == nil {
			return code, nil
		}
		if !errors.IsDuplicateError(insertErr) {
			uc.logger.Errorw("failed to insert short code", "error", insertErr)
			return "", errors.NewInternalError("failed to assign short code")
		}

		uc.logger.Debugw("short code collision, retrying",
			"application_id", applicationID,
			"attempt", attempt+1)
	}

	return "", errors.NewCodeSpaceExhaustedError("short code generation exhausted retries")
}

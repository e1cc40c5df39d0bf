package usecases

import (
	"context"

	"gatehouse/internal/domain/application"
	"gatehouse/internal/shared/errors"
	"gatehouse/internal/shared/logger"
)

const defaultRecentActionsLimit = 50

type RecentActionsQuery struct {
	ApplicationID uint
	Limit         int
}

type RecentActionsResult struct {
	ApplicationID uint                `json:"application_id"`
	Entries       []ActionLogEntryDTO `json:"entries"`
}

type RecentActionsUseCase struct {
	appRepo application.Repository
	logRepo application.ActionLogRepository
	logger  logger.Interface
}

func NewRecentActionsUseCase(
	appRepo application.Repository,
	logRepo application.ActionLogRepository,
	logger logger.Interface,
) *RecentActionsUseCase {
	return &RecentActionsUseCase{
		appRepo: appRepo,
		logRepo: logRepo,
		logger:  logger,
	}
}

func (uc *RecentActionsUseCase) Execute(
	ctx context.Context,
	query RecentActionsQuery,
) (*RecentActionsResult, error) {
	if query.ApplicationID == 0 {
		return nil, errors.NewValidationError("application ID is required")
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultRecentActionsLimit
	}

	// Existence check so an unknown application reads as not found rather
	// than an empty history.
	if _, err := uc.appRepo.GetByID(ctx, query.ApplicationID); err != nil {
		return nil, err
	}

	entries, err := uc.logRepo.RecentForApplication(ctx, query.ApplicationID, limit)
	if err != nil {
		uc.logger.Errorw("failed to load action log", "error", err,
			"application_id", query.ApplicationID)
		return nil, errors.NewInternalError("failed to load action log")
	}

	dtos := make([]ActionLogEntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, entryToDTO(e))
	}

	return &RecentActionsResult{
		ApplicationID: query.ApplicationID,
		Entries:       dtos,
	}, nil
}

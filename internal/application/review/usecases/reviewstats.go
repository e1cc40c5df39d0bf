package usecases

import (
	"context"
	"sort"

	"gatehouse/internal/domain/application"
	vo "gatehouse/internal/domain/application/valueobjects"
	"gatehouse/internal/shared/errors"
	"gatehouse/internal/shared/logger"
)

type ReviewStatsQuery struct {
	GuildID string
	// StaffID scopes the claim-to-decision metric to one reviewer. When
	// empty that metric is omitted.
	StaffID      string
	WindowStartS int64
}

// ReviewStatsResult carries the derived timing metrics. Averages are nil,
// not zero, when no qualifying samples exist in the window: an empty window
// must never read as instant performance.
type ReviewStatsResult struct {
	GuildID                  string `json:"guild_id"`
	WindowStartS             int64  `json:"window_start_s"`
	AvgClaimToDecisionS      *int64 `json:"avg_claim_to_decision_s"`
	AvgClaimToDecisionMin    *int64 `json:"avg_claim_to_decision_min"`
	ClaimToDecisionSamples   int    `json:"claim_to_decision_samples"`
	AvgSubmitToFirstClaimS   *int64 `json:"avg_submit_to_first_claim_s"`
	AvgSubmitToFirstClaimMin *int64 `json:"avg_submit_to_first_claim_min"`
	SubmitToClaimSamples     int    `json:"submit_to_claim_samples"`
}

// ReviewStatsUseCase derives timing metrics from the action log, which is
// the source of truth for everything that ever happened to an application.
type ReviewStatsUseCase struct {
	appRepo application.Repository
	logRepo application.ActionLogRepository
	logger  logger.Interface
}

func NewReviewStatsUseCase(
	appRepo application.Repository,
	logRepo application.ActionLogRepository,
	logger logger.Interface,
) *ReviewStatsUseCase {
	return &ReviewStatsUseCase{
		appRepo: appRepo,
		logRepo: logRepo,
		logger:  logger,
	}
}

func (uc *ReviewStatsUseCase) Execute(
	ctx context.Context,
	query ReviewStatsQuery,
) (*ReviewStatsResult, error) {
	if len(query.GuildID) == 0 {
		return nil, errors.NewValidationError("guild ID is required")
	}
	if query.WindowStartS <= 0 {
		return nil, errors.NewValidationError("window start is required")
	}

	entries, err := uc.logRepo.ListByGuildSince(ctx, query.GuildID, query.WindowStartS)
	if err != nil {
		uc.logger.Errorw("failed to load action log window", "error", err,
			"guild_id", query.GuildID)
		return nil, errors.NewInternalError("failed to load action log")
	}

	result := &ReviewStatsResult{
		GuildID:      query.GuildID,
		WindowStartS: query.WindowStartS,
	}

	if query.StaffID != "" {
		avg, samples := claimToDecision(entries, query.StaffID)
		result.AvgClaimToDecisionS = avg
		result.ClaimToDecisionSamples = samples
		result.AvgClaimToDecisionMin = truncateToMinutes(avg)
	}

	avg, samples, err := uc.submitToFirstClaim(ctx, entries)
	if err != nil {
		return nil, err
	}
	result.AvgSubmitToFirstClaimS = avg
	result.SubmitToClaimSamples = samples
	result.AvgSubmitToFirstClaimMin = truncateToMinutes(avg)

	return result, nil
}

// claimToDecision pairs each claim by the given actor with that actor's
// next terminal decision on the same application. Claims without a matching
// decision in the window are excluded, not counted as zero.
func claimToDecision(entries []*application.ActionLogEntry, staffID string) (*int64, int) {
	perApp := groupByApplication(entries)

	var sum int64
	var count int

	for _, appEntries := range perApp {
		var pendingClaimAt int64 = -1
		for _, e := range appEntries {
			if e.ActorID() != staffID {
				continue
			}
			switch {
			case e.Action() == vo.ActionClaim:
				pendingClaimAt = e.CreatedAtS()
			case e.Action().IsTerminalDecision() && pendingClaimAt >= 0:
				sum += e.CreatedAtS() - pendingClaimAt
				count++
				pendingClaimAt = -1
			}
		}
	}

	if count == 0 {
		return nil, 0
	}
	avg := sum / int64(count)
	return &avg, count
}

// submitToFirstClaim averages the gap between submission and the first
// claim entry per application, guild-wide.
func (uc *ReviewStatsUseCase) submitToFirstClaim(
	ctx context.Context,
	entries []*application.ActionLogEntry,
) (*int64, int, error) {
	firstClaim := make(map[uint]int64)
	for _, e := range entries {
		if e.Action() != vo.ActionClaim {
			continue
		}
		at, ok := firstClaim[e.ApplicationID()]
		if !ok || e.CreatedAtS() < at {
			firstClaim[e.ApplicationID()] = e.CreatedAtS()
		}
	}

	if len(firstClaim) == 0 {
		return nil, 0, nil
	}

	ids := make([]uint, 0, len(firstClaim))
	for appID := range firstClaim {
		ids = append(ids, appID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	apps, err := uc.appRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load applications for stats", "error", err)
		return nil, 0, errors.NewInternalError("failed to load applications")
	}

	var sum int64
	var count int
	for _, app := range apps {
		claimedAt, ok := firstClaim[app.ID()]
		if !ok {
			continue
		}
		sum += claimedAt - app.SubmittedAtS()
		count++
	}

	if count == 0 {
		return nil, 0, nil
	}
	avg := sum / int64(count)
	return &avg, count, nil
}

func groupByApplication(entries []*application.ActionLogEntry) map[uint][]*application.ActionLogEntry {
	perApp := make(map[uint][]*application.ActionLogEntry)
	for _, e := range entries {
		perApp[e.ApplicationID()] = append(perApp[e.ApplicationID()], e)
	}
	return perApp
}

// truncateToMinutes converts an average in seconds to displayed minutes,
// truncating rather than rounding.
func truncateToMinutes(seconds *int64) *int64 {
	if seconds == nil {
		return nil
	}
	m := *seconds / 60
	return &m
}

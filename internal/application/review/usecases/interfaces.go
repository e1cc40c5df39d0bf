package usecases

import "context"

type SubmitApplicationExecutor interface {
	Execute(ctx context.Context, cmd SubmitApplicationCommand) (*SubmitApplicationResult, error)
}

type ClaimApplicationExecutor interface {
	Execute(ctx context.Context, cmd ClaimApplicationCommand) (*ClaimApplicationResult, error)
}

type UnclaimApplicationExecutor interface {
	Execute(ctx context.Context, cmd UnclaimApplicationCommand) (*UnclaimApplicationResult, error)
}

type DecideApplicationExecutor interface {
	Execute(ctx context.Context, cmd DecideApplicationCommand) (*DecisionOutcome, error)
}

type GetApplicationExecutor interface {
	Execute(ctx context.Context, query GetApplicationQuery) (*ApplicationDTO, error)
}

type ResolveCodeExecutor interface {
	Execute(ctx context.Context, query ResolveCodeQuery) (*ApplicationDTO, error)
}

type RecentActionsExecutor interface {
	Execute(ctx context.Context, query RecentActionsQuery) (*RecentActionsResult, error)
}

type ReviewStatsExecutor interface {
	Execute(ctx context.Context, query ReviewStatsQuery) (*ReviewStatsResult, error)
}

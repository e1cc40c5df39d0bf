package application

import (
	"context"

	vo "gatehouse/internal/domain/application/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id uint) (*Application, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Application, error)
	// UpdateStatus persists a status already validated by the aggregate.
	UpdateStatus(ctx context.Context, id uint, status vo.Status) error
}

type ClaimRepository interface {
	// Insert creates the claim row. A duplicate-key error from the driver
	// means another staff member holds the claim; callers translate it,
	// they never pre-check.
	Insert(ctx context.Context, claim *Claim) error
	GetByApplicationID(ctx context.Context, applicationID uint) (*Claim, error)
	Delete(ctx context.Context, applicationID uint) error
}

type ActionLogRepository interface {
	Append(ctx context.Context, entry *ActionLogEntry) error
	// RecentForApplication returns entries newest first, all action types.
	RecentForApplication(ctx context.Context, applicationID uint, limit int) ([]*ActionLogEntry, error)
	// ListByGuildSince returns entries for a guild with created_at_s >= sinceS,
	// ordered by (application_id, created_at_s, id).
	ListByGuildSince(ctx context.Context, guildID string, sinceS int64) ([]*ActionLogEntry, error)
	// BackfillMeta replaces the meta snapshot of an existing entry. Action,
	// actor and timestamp are immutable.
	BackfillMeta(ctx context.Context, entryID uint, meta ActionMeta) error
}

type ShortCodeRepository interface {
	// Insert maps an application to its code. The code column carries a
	// global unique constraint; a duplicate-key error means the code is
	// taken and the caller should retry with a fresh one.
	Insert(ctx context.Context, applicationID uint, guildID string, code string) error
	// Resolve returns the application ID for a code.
	Resolve(ctx context.Context, code string) (uint, error)
}

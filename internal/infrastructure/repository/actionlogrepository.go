package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"gatehouse/internal/domain/application"
	"gatehouse/internal/infrastructure/persistence/mappers"
	"gatehouse/internal/infrastructure/persistence/models"
	"gatehouse/internal/shared/db"
	"gatehouse/internal/shared/errors"
)

// ActionLogRepository persists the append-only review ledger. Rows are
// never deleted; BackfillMeta is the single permitted update.
type ActionLogRepository struct {
	db     *gorm.DB
	mapper mappers.ActionLogMapper
}

func NewActionLogRepository(db *gorm.DB) *ActionLogRepository {
	return &ActionLogRepository{
		db:     db,
		mapper: mappers.NewActionLogMapper(),
	}
}

func (r *ActionLogRepository) Append(ctx context.Context, entry *application.ActionLogEntry) error {
	model, err := r.mapper.ToModel(entry)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append action log entry: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *ActionLogRepository) RecentForApplication(
	ctx context.Context,
	applicationID uint,
	limit int,
) ([]*application.ActionLogEntry, error) {
	var modelList []models.ActionLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Where("application_id = ?", applicationID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list action log entries: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *ActionLogRepository) ListByGuildSince(
	ctx context.Context,
	guildID string,
	sinceS int64,
) ([]*application.ActionLogEntry, error) {
	var modelList []models.ActionLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("guild_id = ? AND created_at >= ?", guildID, sinceS).
		Order("application_id ASC, created_at ASC, id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list action log entries: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *ActionLogRepository) BackfillMeta(ctx context.Context, entryID uint, meta application.ActionMeta) error {
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal action log meta: %w", err)
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ActionLogModel{}).
		Where("id = ?", entryID).
		Update("meta", string(metaJSON))

	if result.Error != nil {
		return fmt.Errorf("failed to backfill action log meta: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("action log entry not found")
	}

	return nil
}

func (r *ActionLogRepository) toDomainList(modelList []models.ActionLogModel) ([]*application.ActionLogEntry, error) {
	entries := make([]*application.ActionLogEntry, 0, len(modelList))
	for i := range modelList {
		entry, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gatehouse/internal/domain/modmail"
	"gatehouse/internal/infrastructure/persistence/mappers"
	"gatehouse/internal/infrastructure/persistence/models"
	"gatehouse/internal/shared/db"
	"gatehouse/internal/shared/errors"
)

type ModmailThreadRepository struct {
	db     *gorm.DB
	mapper mappers.ModmailThreadMapper
}

func NewModmailThreadRepository(db *gorm.DB) *ModmailThreadRepository {
	return &ModmailThreadRepository{
		db:     db,
		mapper: mappers.NewModmailThreadMapper(),
	}
}

func (r *ModmailThreadRepository) Save(ctx context.Context, thread *modmail.Thread) error {
	model := r.mapper.ToModel(thread)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save modmail thread: %w", err)
	}

	return nil
}

func (r *ModmailThreadRepository) GetByID(ctx context.Context, threadID string) (*modmail.Thread, error) {
	var model models.ModmailThreadModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("thread_id = ?", threadID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("modmail thread not found")
		}
		return nil, fmt.Errorf("failed to find modmail thread: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ModmailThreadRepository) UpdateStatus(ctx context.Context, threadID string, status modmail.ThreadStatus) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ModmailThreadModel{}).
		Where("thread_id = ?", threadID).
		Update("status", string(status))

	if result.Error != nil {
		return fmt.Errorf("failed to update modmail thread status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("modmail thread not found")
	}

	return nil
}

func (r *ModmailThreadRepository) ListOpenIDs(ctx context.Context) ([]string, error) {
	var ids []string
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.ModmailThreadModel{}).
		Where("status = ?", string(modmail.ThreadOpen)).
		Pluck("thread_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list open modmail threads: %w", err)
	}

	return ids, nil
}

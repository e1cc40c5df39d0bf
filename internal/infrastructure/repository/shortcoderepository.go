package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gatehouse/internal/infrastructure/persistence/models"
	"gatehouse/internal/shared/db"
	"gatehouse/internal/shared/errors"
)

// ShortCodeRepository maintains the code-to-application index. Resolution
// is a primary key lookup on the code, never a scan of the applications
// table.
type ShortCodeRepository struct {
	db *gorm.DB
}

func NewShortCodeRepository(db *gorm.DB) *ShortCodeRepository {
	return &ShortCodeRepository{db: db}
}

// Insert maps an application to its code. A duplicate-key error means the
// code is taken; it is passed through so the caller can regenerate.
func (r *ShortCodeRepository) Insert(ctx context.Context, applicationID uint, guildID string, code string) error {
	model := &models.ShortCodeModel{
		Code:          code,
		ApplicationID: applicationID,
		GuildID:       guildID,
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return err
		}
		return fmt.Errorf("failed to insert short code: %w", err)
	}

	return nil
}

func (r *ShortCodeRepository) Resolve(ctx context.Context, code string) (uint, error) {
	var model models.ShortCodeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, errors.NewNotFoundError("short code not found")
		}
		return 0, fmt.Errorf("failed to resolve short code: %w", err)
	}

	return model.ApplicationID, nil
}

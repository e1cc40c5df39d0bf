package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gatehouse/internal/domain/application"
	"gatehouse/internal/infrastructure/persistence/mappers"
	"gatehouse/internal/infrastructure/persistence/models"
	"gatehouse/internal/shared/db"
	"gatehouse/internal/shared/errors"
)

// ClaimRepository persists the per-application claim rows. The table's
// primary key is the application ID, so concurrent claims on the same
// application serialize at the constraint rather than at a read.
type ClaimRepository struct {
	db     *gorm.DB
	mapper mappers.ApplicationMapper
}

func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{
		db:     db,
		mapper: mappers.NewApplicationMapper(),
	}
}

// Insert creates the claim row. A duplicate-key error is passed through
// untranslated so the caller can map it to its own conflict semantics.
func (r *ClaimRepository) Insert(ctx context.Context, claim *application.Claim) error {
	model := r.mapper.ClaimToModel(claim)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return err
		}
		return fmt.Errorf("failed to insert claim: %w", err)
	}

	return nil
}

func (r *ClaimRepository) GetByApplicationID(ctx context.Context, applicationID uint) (*application.Claim, error) {
	var model models.ClaimModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("application_id = ?", applicationID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("claim not found")
		}
		return nil, fmt.Errorf("failed to find claim: %w", err)
	}

	return r.mapper.ClaimToDomain(&model)
}

func (r *ClaimRepository) Delete(ctx context.Context, applicationID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ClaimModel{}, "application_id = ?", applicationID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete claim: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("claim not found")
	}

	return nil
}

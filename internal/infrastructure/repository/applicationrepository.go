package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gatehouse/internal/domain/application"
	vo "gatehouse/internal/domain/application/valueobjects"
	"gatehouse/internal/infrastructure/persistence/mappers"
	"gatehouse/internal/infrastructure/persistence/models"
	"gatehouse/internal/shared/db"
	"gatehouse/internal/shared/errors"
)

type ApplicationRepository struct {
	db     *gorm.DB
	mapper mappers.ApplicationMapper
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{
		db:     db,
		mapper: mappers.NewApplicationMapper(),
	}
}

func (r *ApplicationRepository) Save(ctx context.Context, app *application.Application) error {
	model, err := r.mapper.ToModel(app)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save application: %w", err)
	}

	return app.SetID(model.ID)
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uint) (*application.Application, error) {
	var model models.ApplicationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("application not found")
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}

	code, err := r.shortCodeFor(ctx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, code)
}

func (r *ApplicationRepository) GetByIDs(ctx context.Context, ids []uint) ([]*application.Application, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var modelList []models.ApplicationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to find applications: %w", err)
	}

	codes, err := r.shortCodesFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	apps := make([]*application.Application, 0, len(modelList))
	for i := range modelList {
		app, err := r.mapper.ToDomain(&modelList[i], codes[modelList[i].ID])
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	return apps, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uint, status vo.Status) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ApplicationModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return fmt.Errorf("failed to update application status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("application not found")
	}

	return nil
}

func (r *ApplicationRepository) shortCodeFor(ctx context.Context, applicationID uint) (string, error) {
	var codeModel models.ShortCodeModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("application_id = ?", applicationID).First(&codeModel).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load short code: %w", err)
	}

	return codeModel.Code, nil
}

func (r *ApplicationRepository) shortCodesFor(ctx context.Context, applicationIDs []uint) (map[uint]string, error) {
	var codeModels []models.ShortCodeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("application_id IN ?", applicationIDs).Find(&codeModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load short codes: %w", err)
	}

	codes := make(map[uint]string, len(codeModels))
	for i := range codeModels {
		codes[codeModels[i].ApplicationID] = codeModels[i].Code
	}

	return codes, nil
}

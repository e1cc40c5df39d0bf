package mappers

import (
	"encoding/json"
	"fmt"

	"gatehouse/internal/domain/application"
	vo "gatehouse/internal/domain/application/valueobjects"
	"gatehouse/internal/infrastructure/persistence/models"
)

// ApplicationMapper handles the conversion between Application domain
// entities and persistence models.
type ApplicationMapper interface {
	// ToModel converts an application domain entity to a persistence model.
	ToModel(app *application.Application) (*models.ApplicationModel, error)

	// ToDomain converts a persistence model to a domain entity. The short
	// code lives in its own table and is passed in by the repository.
	ToDomain(model *models.ApplicationModel, shortCode string) (*application.Application, error)

	// ClaimToModel converts a claim domain entity to a persistence model.
	ClaimToModel(claim *application.Claim) *models.ClaimModel

	// ClaimToDomain converts a claim persistence model to a domain entity.
	ClaimToDomain(model *models.ClaimModel) (*application.Claim, error)
}

// ApplicationMapperImpl is the concrete implementation of ApplicationMapper.
type ApplicationMapperImpl struct{}

// NewApplicationMapper creates a new ApplicationMapper.
func NewApplicationMapper() ApplicationMapper {
	return &ApplicationMapperImpl{}
}

// ToModel converts an application domain entity to a persistence model.
func (m *ApplicationMapperImpl) ToModel(app *application.Application) (*models.ApplicationModel, error) {
	answersJSON, err := json.Marshal(app.Answers())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal application answers: %w", err)
	}

	return &models.ApplicationModel{
		ID:             app.ID(),
		GuildID:        app.GuildID(),
		ApplicantID:    app.ApplicantID(),
		ApplicantEmail: app.ApplicantEmail(),
		Answers:        string(answersJSON),
		Status:         app.Status().String(),
		SubmittedAt:    app.SubmittedAtS(),
	}, nil
}

// ToDomain converts a persistence model to a domain entity.
func (m *ApplicationMapperImpl) ToDomain(model *models.ApplicationModel, shortCode string) (*application.Application, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid application status (id=%d): %w", model.ID, err)
	}

	var answers []application.Answer
	if model.Answers != "" {
		if err := json.Unmarshal([]byte(model.Answers), &answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal application answers (id=%d): %w", model.ID, err)
		}
	}

	return application.ReconstructApplication(
		model.ID,
		model.GuildID,
		model.ApplicantID,
		model.ApplicantEmail,
		answers,
		status,
		model.SubmittedAt,
		shortCode,
	)
}

// ClaimToModel converts a claim domain entity to a persistence model.
func (m *ApplicationMapperImpl) ClaimToModel(claim *application.Claim) *models.ClaimModel {
	return &models.ClaimModel{
		ApplicationID: claim.ApplicationID(),
		StaffID:       claim.StaffID(),
		ClaimedAt:     claim.ClaimedAtS(),
	}
}

// ClaimToDomain converts a claim persistence model to a domain entity.
func (m *ApplicationMapperImpl) ClaimToDomain(model *models.ClaimModel) (*application.Claim, error) {
	return application.NewClaim(model.ApplicationID, model.StaffID, model.ClaimedAt)
}

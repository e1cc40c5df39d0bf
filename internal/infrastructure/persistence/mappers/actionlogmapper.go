package mappers

import (
	"encoding/json"
	"fmt"

	"gatehouse/internal/domain/application"
	vo "gatehouse/internal/domain/application/valueobjects"
	"gatehouse/internal/infrastructure/persistence/models"
)

// ActionLogMapper handles the conversion between action log entries and
// persistence models.
type ActionLogMapper interface {
	ToModel(entry *application.ActionLogEntry) (*models.ActionLogModel, error)
	ToDomain(model *models.ActionLogModel) (*application.ActionLogEntry, error)
}

type ActionLogMapperImpl struct{}

func NewActionLogMapper() ActionLogMapper {
	return &ActionLogMapperImpl{}
}

func (m *ActionLogMapperImpl) ToModel(entry *application.ActionLogEntry) (*models.ActionLogModel, error) {
	metaJSON, err := json.Marshal(entry.Meta())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal action log meta: %w", err)
	}

	return &models.ActionLogModel{
		ID:            entry.ID(),
		GuildID:       entry.GuildID(),
		ApplicationID: entry.ApplicationID(),
		ActorID:       entry.ActorID(),
		Action:        entry.Action().String(),
		Meta:          string(metaJSON),
		CreatedAt:     entry.CreatedAtS(),
	}, nil
}

func (m *ActionLogMapperImpl) ToDomain(model *models.ActionLogModel) (*application.ActionLogEntry, error) {
	action, err := vo.NewAction(model.Action)
	if err != nil {
		return nil, fmt.Errorf("invalid logged action (id=%d): %w", model.ID, err)
	}

	var meta application.ActionMeta
	if model.Meta != "" {
		if err := json.Unmarshal([]byte(model.Meta), &meta); err != nil {
			return nil, fmt.Errorf("failed to unmarshal action log meta (id=%d): %w", model.ID, err)
		}
	}

	return application.ReconstructActionLogEntry(
		model.ID,
		model.GuildID,
		model.ApplicationID,
		model.ActorID,
		action,
		model.CreatedAt,
		meta,
	)
}

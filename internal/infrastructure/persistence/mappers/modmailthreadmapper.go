package mappers

import (
	"fmt"

	"gatehouse/internal/domain/modmail"
	"gatehouse/internal/infrastructure/persistence/models"
)

// ModmailThreadMapper handles the conversion between modmail threads and
// persistence models.
type ModmailThreadMapper interface {
	ToModel(thread *modmail.Thread) *models.ModmailThreadModel
	ToDomain(model *models.ModmailThreadModel) (*modmail.Thread, error)
}

type ModmailThreadMapperImpl struct{}

func NewModmailThreadMapper() ModmailThreadMapper {
	return &ModmailThreadMapperImpl{}
}

func (m *ModmailThreadMapperImpl) ToModel(thread *modmail.Thread) *models.ModmailThreadModel {
	return &models.ModmailThreadModel{
		ThreadID:      thread.ThreadID(),
		ApplicationID: thread.ApplicationID(),
		Status:        string(thread.Status()),
	}
}

func (m *ModmailThreadMapperImpl) ToDomain(model *models.ModmailThreadModel) (*modmail.Thread, error) {
	status := modmail.ThreadStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid thread status (thread_id=%s): %s", model.ThreadID, model.Status)
	}

	return modmail.ReconstructThread(model.ThreadID, model.ApplicationID, status)
}

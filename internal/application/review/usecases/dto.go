package usecases

import (
	"gatehouse/internal/domain/application"
)

// ApplicationDTO is the read model returned by query use cases.
type ApplicationDTO struct {
	ID           uint                 `json:"id"`
	GuildID      string               `json:"guild_id"`
	ApplicantID  string               `json:"applicant_id"`
	Status       string               `json:"status"`
	Answers      []application.Answer `json:"answers"`
	SubmittedAtS int64                `json:"submitted_at_s"`
	ShortCode    string               `json:"short_code"`
	// ClaimedBy is set when a claim row exists for the application.
	ClaimedBy  string `json:"claimed_by,omitempty"`
	ClaimedAtS int64  `json:"claimed_at_s,omitempty"`
}

// ActionLogEntryDTO is one audit entry in a history response.
type ActionLogEntryDTO struct {
	ID            uint                   `json:"id"`
	ApplicationID uint                   `json:"application_id"`
	ActorID       string                 `json:"actor_id"`
	Action        string                 `json:"action"`
	CreatedAtS    int64                  `json:"created_at_s"`
	Meta          application.ActionMeta `json:"meta,omitempty"`
}

func applicationToDTO(app *application.Application, claim *application.Claim) *ApplicationDTO {
	dto := &ApplicationDTO{
		ID:           app.ID(),
		GuildID:      app.GuildID(),
		ApplicantID:  app.ApplicantID(),
		Status:       app.Status().String(),
		Answers:      app.Answers(),
		SubmittedAtS: app.SubmittedAtS(),
		ShortCode:    app.ShortCode(),
	}
	if claim != nil {
		dto.ClaimedBy = claim.StaffID()
		dto.ClaimedAtS = claim.ClaimedAtS()
	}
	return dto
}

func entryToDTO(e *application.ActionLogEntry) ActionLogEntryDTO {
	return ActionLogEntryDTO{
		ID:            e.ID(),
		ApplicationID: e.ApplicationID(),
		ActorID:       e.ActorID(),
		Action:        e.Action().String(),
		CreatedAtS:    e.CreatedAtS(),
		Meta:          e.Meta(),
	}
}

package application

import (
	"fmt"

	vo "gatehouse/internal/domain/application/valueobjects"
)

// ActionMeta is the opaque structured snapshot stored with a log entry:
// reason text, prior status, scorer aggregates, whatever the caller attaches.
type ActionMeta map[string]interface{}

// Standard meta keys written by the review use cases.
const (
	MetaKeyReason      = "reason"
	MetaKeyPriorStatus = "prior_status"
	MetaKeyScore       = "score"
)

// ActionLogEntry is one row of the append-only audit ledger. Entries are
// never deleted; the only permitted update is backfilling meta.
type ActionLogEntry struct {
	id            uint
	guildID       string
	applicationID uint
	actorID       string
	action        vo.Action
	createdAtS    int64
	meta          ActionMeta
}

func NewActionLogEntry(
	guildID string,
	applicationID uint,
	actorID string,
	action vo.Action,
	createdAtS int64,
	meta ActionMeta,
) (*ActionLogEntry, error) {
	if len(guildID) == 0 {
		return nil, fmt.Errorf("guild ID is required")
	}
	if applicationID == 0 {
		return nil, fmt.Errorf("application ID is required")
	}
	if len(actorID) == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid action: %s", action)
	}
	if createdAtS <= 0 {
		return nil, fmt.Errorf("entry timestamp is required")
	}

	if meta == nil {
		meta = ActionMeta{}
	}

	return &ActionLogEntry{
		guildID:       guildID,
		applicationID: applicationID,
		actorID:       actorID,
		action:        action,
		createdAtS:    createdAtS,
		meta:          meta,
	}, nil
}

func ReconstructActionLogEntry(
	id uint,
	guildID string,
	applicationID uint,
	actorID string,
	action vo.Action,
	createdAtS int64,
	meta ActionMeta,
) (*ActionLogEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if meta == nil {
		meta = ActionMeta{}
	}

	return &ActionLogEntry{
		id:            id,
		guildID:       guildID,
		applicationID: applicationID,
		actorID:       actorID,
		action:        action,
		createdAtS:    createdAtS,
		meta:          meta,
	}, nil
}

func (e *ActionLogEntry) ID() uint {
	return e.id
}

func (e *ActionLogEntry) GuildID() string {
	return e.guildID
}

func (e *ActionLogEntry) ApplicationID() uint {
	return e.applicationID
}

func (e *ActionLogEntry) ActorID() string {
	return e.actorID
}

func (e *ActionLogEntry) Action() vo.Action {
	return e.action
}

func (e *ActionLogEntry) CreatedAtS() int64 {
	return e.createdAtS
}

func (e *ActionLogEntry) Meta() ActionMeta {
	metaCopy := make(ActionMeta, len(e.meta))
	for k, v := range e.meta {
		metaCopy[k] = v
	}
	return metaCopy
}

func (e *ActionLogEntry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}

package application

import (
	"fmt"

	vo "gatehouse/internal/domain/application/valueobjects"
)

// Answer is one question/answer pair from the submitted form. Answers are
// immutable once the application exists.
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Application is the aggregate root for one membership request. Status is
// only ever mutated through ApplyAction, which enforces the state machine.
type Application struct {
	id             uint
	guildID        string
	applicantID    string
	applicantEmail string
	answers        []Answer
	status         vo.Status
	submittedAtS   int64
	shortCode      string
}

func NewApplication(
	guildID string,
	applicantID string,
	applicantEmail string,
	answers []Answer,
	submittedAtS int64,
) (*Application, error) {
	if len(guildID) == 0 {
		return nil, fmt.Errorf("guild ID is required")
	}
	if len(applicantID) == 0 {
		return nil, fmt.Errorf("applicant ID is required")
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("at least one answer is required")
	}
	if submittedAtS <= 0 {
		return nil, fmt.Errorf("submission timestamp is required")
	}

	answersCopy := make([]Answer, len(answers))
	copy(answersCopy, answers)

	return &Application{
		guildID:        guildID,
		applicantID:    applicantID,
		applicantEmail: applicantEmail,
		answers:        answersCopy,
		status:         vo.StatusPending,
		submittedAtS:   submittedAtS,
	}, nil
}

func ReconstructApplication(
	id uint,
	guildID string,
	applicantID string,
	applicantEmail string,
	answers []Answer,
	status vo.Status,
	submittedAtS int64,
	shortCode string,
) (*Application, error) {
	if id == 0 {
		return nil, fmt.Errorf("application ID cannot be zero")
	}
	if len(guildID) == 0 {
		return nil, fmt.Errorf("guild ID is required")
	}
	if len(applicantID) == 0 {
		return nil, fmt.Errorf("applicant ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	if answers == nil {
		answers = []Answer{}
	}

	return &Application{
		id:             id,
		guildID:        guildID,
		applicantID:    applicantID,
		applicantEmail: applicantEmail,
		answers:        answers,
		status:         status,
		submittedAtS:   submittedAtS,
		shortCode:      shortCode,
	}, nil
}

func (a *Application) ID() uint {
	return a.id
}

func (a *Application) GuildID() string {
	return a.guildID
}

func (a *Application) ApplicantID() string {
	return a.applicantID
}

func (a *Application) ApplicantEmail() string {
	return a.applicantEmail
}

func (a *Application) Answers() []Answer {
	answersCopy := make([]Answer, len(a.answers))
	copy(answersCopy, a.answers)
	return answersCopy
}

func (a *Application) Status() vo.Status {
	return a.status
}

func (a *Application) SubmittedAtS() int64 {
	return a.submittedAtS
}

func (a *Application) ShortCode() string {
	return a.shortCode
}

func (a *Application) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("application ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("application ID cannot be zero")
	}
	a.id = id
	return nil
}

// SetShortCode assigns the lookup code. A code is immutable once set.
func (a *Application) SetShortCode(code string) error {
	if len(a.shortCode) > 0 {
		return fmt.Errorf("short code is already set")
	}
	if len(code) == 0 {
		return fmt.Errorf("short code cannot be empty")
	}
	a.shortCode = code
	return nil
}

// ApplyAction advances the status according to the state machine and
// returns the prior status. It is the only code path permitted to mutate
// status; a disallowed transition leaves the aggregate untouched.
func (a *Application) ApplyAction(action vo.Action) (vo.Status, error) {
	if !action.IsValid() {
		return a.status, fmt.Errorf("invalid action: %s", action)
	}

	newStatus, mutates := action.ResultingStatus()
	if !mutates {
		return a.status, nil
	}

	if !a.status.CanTransitionTo(newStatus) {
		return a.status, fmt.Errorf("cannot %s an application in status %s", action, a.status)
	}

	prior := a.status
	a.status = newStatus
	return prior, nil
}

package review

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gatehouse/internal/application/review/usecases"
	"gatehouse/internal/domain/application"
	vo "gatehouse/internal/domain/application/valueobjects"
	"gatehouse/internal/shared/errors"
)

type AnswerRequest struct {
	Question string `json:"question" binding:"required,max=500"`
	Answer   string `json:"answer" binding:"required,max=5000"`
}

type SubmitApplicationRequest struct {
	GuildID        string          `json:"guild_id" binding:"required,max=32"`
	ApplicantID    string          `json:"applicant_id" binding:"required,max=32"`
	ApplicantEmail string          `json:"applicant_email" binding:"omitempty,email"`
	Answers        []AnswerRequest `json:"answers" binding:"required,min=1,dive"`
}

func (r *SubmitApplicationRequest) ToCommand() usecases.SubmitApplicationCommand {
	answers := make([]application.Answer, len(r.Answers))
	for i, a := range r.Answers {
		answers[i] = application.Answer{Question: a.Question, Answer: a.Answer}
	}

	return usecases.SubmitApplicationCommand{
		GuildID:        r.GuildID,
		ApplicantID:    r.ApplicantID,
		ApplicantEmail: r.ApplicantEmail,
		Answers:        answers,
	}
}

type ScorerRequest struct {
	Score        *float64 `json:"score"`
	SuccessCount int      `json:"success_count" binding:"min=0"`
	FailureCount int      `json:"failure_count" binding:"min=0"`
}

type DecisionRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject perm_reject kick need_info copy_uid"`
	// ExpectedStatus, when present, makes the decision fail on a stale
	// read instead of overriding a concurrent change.
	ExpectedStatus string         `json:"expected_status" binding:"omitempty,oneof=pending claimed needs_info"`
	Reason         string         `json:"reason" binding:"max=2000"`
	Scorer         *ScorerRequest `json:"scorer"`
}

func (r *DecisionRequest) ToCommand(applicationID uint, staffID string) usecases.DecideApplicationCommand {
	cmd := usecases.DecideApplicationCommand{
		ApplicationID:  applicationID,
		StaffID:        staffID,
		Action:         vo.Action(r.Action),
		ExpectedStatus: vo.Status(r.ExpectedStatus),
		Reason:         r.Reason,
	}

	if r.Scorer != nil {
		cmd.Scorer = &usecases.ScorerSummary{
			Score:        r.Scorer.Score,
			SuccessCount: r.Scorer.SuccessCount,
			FailureCount: r.Scorer.FailureCount,
		}
	}

	return cmd
}

func parseApplicationID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid application ID")
	}
	return uint(id), nil
}

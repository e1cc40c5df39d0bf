package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gatehouse/internal/domain/application"
	"gatehouse/internal/shared/errors"
	"gatehouse/internal/shared/id"
)

func submitCommand() SubmitApplicationCommand {
	return SubmitApplicationCommand{
		GuildID:     "guild-1",
		ApplicantID: "applicant-1",
		Answers:     []application.Answer{{Question: "Why join?", Answer: "Because."}},
	}
}

func TestSubmitApplicationAssignsShortCode(t *testing.T) {
	var insertedCode string
	codeRepo := &mockShortCodeRepository{
		InsertFunc: func(ctx context.Context, applicationID uint, guildID string, code string) error {
			insertedCode = code
			return nil
		},
	}

	uc := NewSubmitApplicationUseCase(&mockAppRepository{}, codeRepo, &mockTxManager{}, 5, &mockLogger{})

	result, err := uc.Execute(context.Background(), submitCommand())
	require.NoError(t, err)

	assert.Equal(t, uint(1), result.ApplicationID)
	assert.Equal(t, "pending", result.Status)
	assert.Equal(t, insertedCode, result.ShortCode)
	assert.True(t, id.IsValidCode(result.ShortCode))
	assert.Greater(t, result.SubmittedAtS, int64(0))
}

func TestSubmitApplicationRetriesOnCodeCollision(t *testing.T) {
	attempts := 0
	codeRepo := &mockShortCodeRepository{
		InsertFunc: func(ctx context.Context, applicationID uint, guildID string, code string) error {
			attempts++
			if attempts < 3 {
				return gorm.ErrDuplicatedKey
			}
			return nil
		},
	}

	uc := NewSubmitApplicationUseCase(&mockAppRepository{}, codeRepo, &mockTxManager{}, 5, &mockLogger{})

	result, err := uc.Execute(context.Background(), submitCommand())
	require.NoError(t, err)

	assert.Equal(t, 3, attempts)
	assert.NotEmpty(t, result.ShortCode)
}

func TestSubmitApplicationCodeSpaceExhausted(t *testing.T) {
	attempts := 0
	codeRepo := &mockShortCodeRepository{
		InsertFunc: func(ctx context.Context, applicationID uint, guildID string, code string) error {
			attempts++
			return gorm.ErrDuplicatedKey
		},
	}

	uc := NewSubmitApplicationUseCase(&mockAppRepository{}, codeRepo, &mockTxManager{}, 3, &mockLogger{})

	_, err := uc.Execute(context.Background(), submitCommand())
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeCodeSpaceExhausted, appErr.Type)
	assert.Equal(t, 3, attempts)
}

func TestSubmitApplicationRejectsEmptyAnswers(t *testing.T) {
	uc := NewSubmitApplicationUseCase(&mockAppRepository{}, &mockShortCodeRepository{}, &mockTxManager{}, 5, &mockLogger{})

	cmd := submitCommand()
	cmd.Answers = nil

	_, err := uc.Execute(context.Background(), cmd)
	assert.True(t, errors.IsValidationError(err))
}

func TestSubmitApplicationRollsBackOnSaveFailure(t *testing.T) {
	appRepo := &mockAppRepository{
		SaveFunc: func(ctx context.Context, app *application.Application) error {
			return assert.AnError
		},
	}
	codeInserted := false
	codeRepo := &mockShortCodeRepository{
		InsertFunc: func(ctx context.Context, applicationID uint, guildID string, code string) error {
			codeInserted = true
			return nil
		},
	}

	uc := NewSubmitApplicationUseCase(appRepo, codeRepo, &mockTxManager{}, 5, &mockLogger{})

	_, err := uc.Execute(context.Background(), submitCommand())
	require.Error(t, err)
	assert.False(t, codeInserted, "short code must not be assigned when the save fails")
}

func TestSubmitApplicationWrapsShortCodeConflict(t *testing.T) {
	// Forcing a code onto the aggregate during the save makes the later
	// assignment hit the immutability guard; the failure must surface as an
	// internal error, not a bare one.
	appRepo := &mockAppRepository{
		SaveFunc: func(ctx context.Context, app *application.Application) error {
			if err := app.SetID(1); err != nil {
				return err
			}
			return app.SetShortCode("abc123")
		},
	}

	uc := NewSubmitApplicationUseCase(appRepo, &mockShortCodeRepository{}, &mockTxManager{}, 5, &mockLogger{})

	_, err := uc.Execute(context.Background(), submitCommand())
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}

package usecases

import (
	"context"

	"gatehouse/internal/domain/application"
	vo "gatehouse/internal/domain/application/valueobjects"
	"gatehouse/internal/shared/errors"
	"gatehouse/internal/shared/logger"
)

type mockAppRepository struct {
	SaveFunc         func(ctx context.Context, app *application.Application) error
	GetByIDFunc      func(ctx context.Context, id uint) (*application.Application, error)
	GetByIDsFunc     func(ctx context.Context, ids []uint) ([]*application.Application, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status vo.Status) error
}

func (m *mockAppRepository) Save(ctx context.Context, app *application.Application) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, app)
	}
	return app.SetID(1)
}

func (m *mockAppRepository) GetByID(ctx context.Context, id uint) (*application.Application, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("application not found")
}

func (m *mockAppRepository) GetByIDs(ctx context.Context, ids []uint) ([]*application.Application, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockAppRepository) UpdateStatus(ctx context.Context, id uint, status vo.Status) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

type mockClaimRepository struct {
	InsertFunc             func(ctx context.Context, claim *application.Claim) error
	GetByApplicationIDFunc func(ctx context.Context, applicationID uint) (*application.Claim, error)
	DeleteFunc             func(ctx context.Context, applicationID uint) error
}

func (m *mockClaimRepository) Insert(ctx context.Context, claim *application.Claim) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, claim)
	}
	return nil
}

func (m *mockClaimRepository) GetByApplicationID(ctx context.Context, applicationID uint) (*application.Claim, error) {
	if m.GetByApplicationIDFunc != nil {
		return m.GetByApplicationIDFunc(ctx, applicationID)
	}
	return nil, errors.NewNotFoundError("claim not found")
}

func (m *mockClaimRepository) Delete(ctx context.Context, applicationID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, applicationID)
	}
	return nil
}

type mockActionLogRepository struct {
	AppendFunc               func(ctx context.Context, entry *application.ActionLogEntry) error
	RecentForApplicationFunc func(ctx context.Context, applicationID uint, limit int) ([]*application.ActionLogEntry, error)
	ListByGuildSinceFunc     func(ctx context.Context, guildID string, sinceS int64) ([]*application.ActionLogEntry, error)
	BackfillMetaFunc         func(ctx context.Context, entryID uint, meta application.ActionMeta) error

	appended []*application.ActionLogEntry
}

func (m *mockActionLogRepository) Append(ctx context.Context, entry *application.ActionLogEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	if entry.ID() == 0 {
		if err := entry.SetID(uint(len(m.appended) + 1)); err != nil {
			return err
		}
	}
	m.appended = append(m.appended, entry)
	return nil
}

func (m *mockActionLogRepository) RecentForApplication(ctx context.Context, applicationID uint, limit int) ([]*application.ActionLogEntry, error) {
	if m.RecentForApplicationFunc != nil {
		return m.RecentForApplicationFunc(ctx, applicationID, limit)
	}
	return nil, nil
}

func (m *mockActionLogRepository) ListByGuildSince(ctx context.Context, guildID string, sinceS int64) ([]*application.ActionLogEntry, error) {
	if m.ListByGuildSinceFunc != nil {
		return m.ListByGuildSinceFunc(ctx, guildID, sinceS)
	}
	return nil, nil
}

func (m *mockActionLogRepository) BackfillMeta(ctx context.Context, entryID uint, meta application.ActionMeta) error {
	if m.BackfillMetaFunc != nil {
		return m.BackfillMetaFunc(ctx, entryID, meta)
	}
	return nil
}

type mockShortCodeRepository struct {
	InsertFunc  func(ctx context.Context, applicationID uint, guildID string, code string) error
	ResolveFunc func(ctx context.Context, code string) (uint, error)
}

func (m *mockShortCodeRepository) Insert(ctx context.Context, applicationID uint, guildID string, code string) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, applicationID, guildID, code)
	}
	return nil
}

func (m *mockShortCodeRepository) Resolve(ctx context.Context, code string) (uint, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, code)
	}
	return 0, errors.NewNotFoundError("short code not found")
}

type mockNotifier struct {
	NotifyDecisionFunc func(ctx context.Context, notice application.DecisionNotice) error

	notices []application.DecisionNotice
}

func (m *mockNotifier) NotifyDecision(ctx context.Context, notice application.DecisionNotice) error {
	m.notices = append(m.notices, notice)
	if m.NotifyDecisionFunc != nil {
		return m.NotifyDecisionFunc(ctx, notice)
	}
	return nil
}

// mockTxManager runs the transactional function directly. The rollback
// property is exercised by making a repository call inside fail and
// asserting nothing after it took effect.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields ...any)  {}
func (m *mockLogger) Info(msg string, fields ...any)   {}
func (m *mockLogger) Warn(msg string, fields ...any)   {}
func (m *mockLogger) Error(msg string, fields ...any)  {}
func (m *mockLogger) Debugw(msg string, fields ...any) {}
func (m *mockLogger) Infow(msg string, fields ...any)  {}
func (m *mockLogger) Warnw(msg string, fields ...any)  {}
func (m *mockLogger) Errorw(msg string, fields ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func pendingApplication(id uint) *application.Application {
	return reconstructedApplication(id, vo.StatusPending)
}

func claimedApplication(id uint) *application.Application {
	return reconstructedApplication(id, vo.StatusClaimed)
}

func reconstructedApplication(id uint, status vo.Status) *application.Application {
	app, err := application.ReconstructApplication(
		id,
		"guild-1",
		"applicant-1",
		"applicant@example.com",
		[]application.Answer{{Question: "Why join?", Answer: "Because."}},
		status,
		1000,
		"abc123",
	)
	if err != nil {
		panic(err)
	}
	return app
}

func heldClaim(applicationID uint, staffID string, atS int64) *application.Claim {
	claim, err := application.NewClaim(applicationID, staffID, atS)
	if err != nil {
		panic(err)
	}
	return claim
}

func logEntry(id uint, applicationID uint, actorID string, action vo.Action, atS int64) *application.ActionLogEntry {
	entry, err := application.ReconstructActionLogEntry(
		id, "guild-1", applicationID, actorID, action, atS, nil)
	if err != nil {
		panic(err)
	}
	return entry
}

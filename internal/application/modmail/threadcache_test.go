package modmail

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatehouse/internal/domain/modmail"
	"gatehouse/internal/shared/errors"
	"gatehouse/internal/shared/logger"
)

type mockThreadRepository struct {
	SaveFunc         func(ctx context.Context, thread *modmail.Thread) error
	GetByIDFunc      func(ctx context.Context, threadID string) (*modmail.Thread, error)
	UpdateStatusFunc func(ctx context.Context, threadID string, status modmail.ThreadStatus) error
	ListOpenIDsFunc  func(ctx context.Context) ([]string, error)
}

func (m *mockThreadRepository) Save(ctx context.Context, thread *modmail.Thread) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, thread)
	}
	return nil
}

func (m *mockThreadRepository) GetByID(ctx context.Context, threadID string) (*modmail.Thread, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, threadID)
	}
	thread, _ := modmail.ReconstructThread(threadID, 1, modmail.ThreadOpen)
	return thread, nil
}

func (m *mockThreadRepository) UpdateStatus(ctx context.Context, threadID string, status modmail.ThreadStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, threadID, status)
	}
	return nil
}

func (m *mockThreadRepository) ListOpenIDs(ctx context.Context) ([]string, error) {
	if m.ListOpenIDsFunc != nil {
		return m.ListOpenIDsFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any) {}
func (m *mockLogger) Warn(msg string, args ...any) {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newTestCache(repo *mockThreadRepository) *ThreadCache {
	return NewThreadCache(repo, &mockLogger{})
}

func TestThreadCacheHydrate(t *testing.T) {
	repo := &mockThreadRepository{
		ListOpenIDsFunc: func(ctx context.Context) ([]string, error) {
			return []string{"t1", "t2"}, nil
		},
	}
	cache := newTestCache(repo)

	require.NoError(t, cache.Hydrate(context.Background()))

	assert.True(t, cache.IsOpen("t1"))
	assert.True(t, cache.IsOpen("t2"))
	assert.False(t, cache.IsOpen("t3"))
	assert.Equal(t, 2, cache.OpenCount())
}

func TestThreadCacheHydrateReplacesStaleEntries(t *testing.T) {
	repo := &mockThreadRepository{
		ListOpenIDsFunc: func(ctx context.Context) ([]string, error) {
			return []string{"fresh"}, nil
		},
	}
	cache := newTestCache(repo)

	// Simulate a stale entry surviving an unclean shutdown.
	require.NoError(t, cache.Open(context.Background(), "stale", 1))
	require.NoError(t, cache.Hydrate(context.Background()))

	assert.False(t, cache.IsOpen("stale"))
	assert.True(t, cache.IsOpen("fresh"))
}

func TestThreadCacheOpenClose(t *testing.T) {
	cache := newTestCache(&mockThreadRepository{})
	ctx := context.Background()

	require.NoError(t, cache.Open(ctx, "t1", 42))
	assert.True(t, cache.IsOpen("t1"))

	require.NoError(t, cache.Close(ctx, "t1"))
	assert.False(t, cache.IsOpen("t1"))
}

func TestThreadCacheOpenPersistFailureLeavesCacheUntouched(t *testing.T) {
	repo := &mockThreadRepository{
		SaveFunc: func(ctx context.Context, thread *modmail.Thread) error {
			return fmt.Errorf("disk full")
		},
	}
	cache := newTestCache(repo)

	err := cache.Open(context.Background(), "t1", 42)
	require.Error(t, err)
	assert.False(t, cache.IsOpen("t1"), "cache must not claim a thread the store rejected")
}

func TestThreadCacheCloseUnknownThread(t *testing.T) {
	repo := &mockThreadRepository{
		GetByIDFunc: func(ctx context.Context, threadID string) (*modmail.Thread, error) {
			return nil, errors.NewNotFoundError("thread not found")
		},
	}
	cache := newTestCache(repo)

	err := cache.Close(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

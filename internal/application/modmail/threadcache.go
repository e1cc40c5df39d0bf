// Package modmail keeps the hot-path routing check for inbound messages off
// the database: an in-memory set of open thread IDs, rebuilt from the
// persisted thread table on every start.
package modmail

import (
	"context"

	gocache "github.com/patrickmn/go-cache"

	"gatehouse/internal/domain/modmail"
	"gatehouse/internal/shared/errors"
	"gatehouse/internal/shared/logger"
)

// ThreadCache is the process-wide set of currently open modmail threads.
// The persisted store is ground truth; the cache is an accelerator and
// tolerates any divergence left by an unclean shutdown, because Hydrate
// rebuilds it wholesale.
type ThreadCache struct {
	threadRepo modmail.ThreadRepository
	open       *gocache.Cache
	logger     logger.Interface
}

func NewThreadCache(threadRepo modmail.ThreadRepository, logger logger.Interface) *ThreadCache {
	return &ThreadCache{
		threadRepo: threadRepo,
		open:       gocache.New(gocache.NoExpiration, 0),
		logger:     logger,
	}
}

// Hydrate loads every persisted open thread into the set. It must complete
// before any IsOpen check is trusted.
func (c *ThreadCache) Hydrate(ctx context.Context) error {
	ids, err := c.threadRepo.ListOpenIDs(ctx)
	if err != nil {
		return errors.NewInternalError("failed to load open modmail threads", err.Error())
	}

	c.open.Flush()
	for _, threadID := range ids {
		c.open.Set(threadID, struct{}{}, gocache.NoExpiration)
	}

	c.logger.Infow("modmail thread cache hydrated", "open_threads", len(ids))
	return nil
}

// Open persists a new open thread and adds it to the set.
func (c *ThreadCache) Open(ctx context.Context, threadID string, applicationID uint) error {
	thread, err := modmail.NewThread(threadID, applicationID)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := c.threadRepo.Save(ctx, thread); err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("thread already exists")
		}
		c.logger.Errorw("failed to persist modmail thread", "error", err, "thread_id", threadID)
		return errors.NewInternalError("failed to persist modmail thread")
	}

	c.open.Set(threadID, struct{}{}, gocache.NoExpiration)
	return nil
}

// Close marks the persisted thread closed, then drops it from the set. The
// two writes are not atomic with each other; the store wins on restart.
func (c *ThreadCache) Close(ctx context.Context, threadID string) error {
	if _, err := c.threadRepo.GetByID(ctx, threadID); err != nil {
		return err
	}

	if err := c.threadRepo.UpdateStatus(ctx, threadID, modmail.ThreadClosed); err != nil {
		c.logger.Errorw("failed to close modmail thread", "error", err, "thread_id", threadID)
		return errors.NewInternalError("failed to close modmail thread")
	}

	c.open.Delete(threadID)
	return nil
}

// IsOpen is the O(1) membership test used as a pre-filter on the inbound
// message path.
func (c *ThreadCache) IsOpen(threadID string) bool {
	_, found := c.open.Get(threadID)
	return found
}

// OpenCount reports the current size of the set.
func (c *ThreadCache) OpenCount() int {
	return c.open.ItemCount()
}

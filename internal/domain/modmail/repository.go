package modmail

import "context"

type ThreadRepository interface {
	Save(ctx context.Context, thread *Thread) error
	GetByID(ctx context.Context, threadID string) (*Thread, error)
	UpdateStatus(ctx context.Context, threadID string, status ThreadStatus) error
	// ListOpenIDs returns the IDs of every thread persisted as open. Used
	// to hydrate the routing cache at startup.
	ListOpenIDs(ctx context.Context) ([]string, error)
}

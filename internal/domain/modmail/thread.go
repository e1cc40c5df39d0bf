package modmail

import "fmt"

// ThreadStatus is the persisted open/closed flag on a conversation thread.
type ThreadStatus string

const (
	ThreadOpen   ThreadStatus = "open"
	ThreadClosed ThreadStatus = "closed"
)

func (s ThreadStatus) IsValid() bool {
	return s == ThreadOpen || s == ThreadClosed
}

// Thread is one modmail conversation attached to an application. The
// persisted row is ground truth; the in-memory routing cache is rebuilt
// from it on every start.
type Thread struct {
	threadID      string
	applicationID uint
	status        ThreadStatus
}

func NewThread(threadID string, applicationID uint) (*Thread, error) {
	if len(threadID) == 0 {
		return nil, fmt.Errorf("thread ID is required")
	}
	if applicationID == 0 {
		return nil, fmt.Errorf("application ID is required")
	}

	return &Thread{
		threadID:      threadID,
		applicationID: applicationID,
		status:        ThreadOpen,
	}, nil
}

func ReconstructThread(threadID string, applicationID uint, status ThreadStatus) (*Thread, error) {
	if len(threadID) == 0 {
		return nil, fmt.Errorf("thread ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid thread status: %s", status)
	}

	return &Thread{
		threadID:      threadID,
		applicationID: applicationID,
		status:        status,
	}, nil
}

func (t *Thread) ThreadID() string {
	return t.threadID
}

func (t *Thread) ApplicationID() uint {
	return t.applicationID
}

func (t *Thread) Status() ThreadStatus {
	return t.status
}

func (t *Thread) IsOpen() bool {
	return t.status == ThreadOpen
}

package application

import "fmt"

// Claim is the exclusive-handling lock one staff member holds on one
// application. Keyed by application ID in storage, which is what makes a
// second concurrent claim fail at the constraint instead of at a racy read.
type Claim struct {
	applicationID uint
	staffID       string
	claimedAtS    int64
}

func NewClaim(applicationID uint, staffID string, claimedAtS int64) (*Claim, error) {
	if applicationID == 0 {
		return nil, fmt.Errorf("application ID is required")
	}
	if len(staffID) == 0 {
		return nil, fmt.Errorf("staff ID is required")
	}
	if claimedAtS <= 0 {
		return nil, fmt.Errorf("claim timestamp is required")
	}

	return &Claim{
		applicationID: applicationID,
		staffID:       staffID,
		claimedAtS:    claimedAtS,
	}, nil
}

func (c *Claim) ApplicationID() uint {
	return c.applicationID
}

func (c *Claim) StaffID() string {
	return c.staffID
}

func (c *Claim) ClaimedAtS() int64 {
	return c.claimedAtS
}

// HeldBy reports whether the given staff member owns this claim.
func (c *Claim) HeldBy(staffID string) bool {
	return c.staffID == staffID
}

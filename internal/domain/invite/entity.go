package invite

import "time"

// Status represents the lifecycle state of a worker invite.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRevoked  Status = "revoked"
)

// Invite is an SMS magic-link invitation for a worker to activate their
// clock-in account. The token is single-use and expires.
type Invite struct {
	ID          string
	CompanyID   string
	WorkerID    string
	PhoneNumber string
	Token       string
	Status      Status
	ExpiresAt   time.Time
	AcceptedAt  *time.Time
	RevokedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InviteWithDetails carries the joined names the accept page shows.
type InviteWithDetails struct {
	Invite
	WorkerName  string
	CompanyName string
}

// IsExpired is a query-time check; expiry is never persisted as a status.
func (i *Invite) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}

func (i *Invite) CanBeAccepted() bool {
	return i.Status == StatusPending && !i.IsExpired()
}

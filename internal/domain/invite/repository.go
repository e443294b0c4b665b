package invite

import (
	"context"
	"time"
)

type InviteRepository interface {
	Create(ctx context.Context, inv Invite) (Invite, error)

	// GetByTokenWithDetails joins worker and company names for the accept page.
	GetByTokenWithDetails(ctx context.Context, token string) (InviteWithDetails, error)

	// GetPendingByWorkerID retrieves the latest pending invite for a worker.
	GetPendingByWorkerID(ctx context.Context, workerID, companyID string) (Invite, error)

	// ExistsPendingByWorkerID checks for a pending non-expired invite.
	ExistsPendingByWorkerID(ctx context.Context, workerID, companyID string) (bool, error)

	ListByCompanyID(ctx context.Context, companyID string) ([]InviteWithDetails, error)

	MarkAccepted(ctx context.Context, id string) error
	MarkRevoked(ctx context.Context, id string) error

	// UpdateToken rotates the token and expiry for a resend.
	UpdateToken(ctx context.Context, id, newToken string, expiresAt time.Time) error
}

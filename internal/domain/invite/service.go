package invite

import "context"

type InviteService interface {
	// CreateAndSend creates an invite for a worker and texts the magic link.
	CreateAndSend(ctx context.Context, req CreateInviteRequest) (InviteResponse, error)

	List(ctx context.Context) ([]InviteResponse, error)

	// Accept redeems a magic-link token and returns worker credentials.
	Accept(ctx context.Context, req AcceptInviteRequest) (AcceptInviteResponse, error)

	// Resend rotates the token and texts the link again.
	Resend(ctx context.Context, workerID string) error

	Revoke(ctx context.Context, workerID string) error
}

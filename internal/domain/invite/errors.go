package invite

import "errors"

var (
	ErrInviteNotFound       = errors.New("invite not found")
	ErrInviteExpired        = errors.New("invite has expired")
	ErrInviteAlreadyUsed    = errors.New("invite has already been used")
	ErrInviteRevoked        = errors.New("invite has been revoked")
	ErrWorkerAlreadyInvited = errors.New("worker already has a pending invite")
	ErrWorkerAlreadyLinked  = errors.New("worker already has an account")
	ErrCannotRevokeAccepted = errors.New("cannot revoke an accepted invite")
	ErrNoPendingInvite      = errors.New("no pending invite found for this worker")
)

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/invite"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type inviteRepositoryImpl struct {
	db *database.DB
}

func NewInviteRepository(db *database.DB) invite.InviteRepository {
	return &inviteRepositoryImpl{db: db}
}

const inviteColumns = `id, company_id, worker_id, phone_number, token, status, expires_at,
	   accepted_at, revoked_at, created_at, updated_at`

func scanInvite(row pgx.Row) (invite.Invite, error) {
	var inv invite.Invite
	err := row.Scan(
		&inv.ID,
		&inv.CompanyID,
		&inv.WorkerID,
		&inv.PhoneNumber,
		&inv.Token,
		&inv.Status,
		&inv.ExpiresAt,
		&inv.AcceptedAt,
		&inv.RevokedAt,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	return inv, err
}

// Create implements invite.InviteRepository.
func (r *inviteRepositoryImpl) Create(ctx context.Context, inv invite.Invite) (invite.Invite, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invites (company_id, worker_id, phone_number, token, status, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + inviteColumns + `
	`

	created, err := scanInvite(q.QueryRow(ctx, query,
		inv.CompanyID,
		inv.WorkerID,
		inv.PhoneNumber,
		inv.Token,
		inv.Status,
		inv.ExpiresAt,
	))
	if err != nil {
		return invite.Invite{}, fmt.Errorf("failed to create invite: %w", err)
	}
	return created, nil
}

// GetByTokenWithDetails implements invite.InviteRepository.
func (r *inviteRepositoryImpl) GetByTokenWithDetails(ctx context.Context, token string) (invite.InviteWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.company_id, i.worker_id, i.phone_number, i.token, i.status, i.expires_at,
			   i.accepted_at, i.revoked_at, i.created_at, i.updated_at,
			   w.full_name, c.name
		FROM invites i
		JOIN workers w ON w.id = i.worker_id
		JOIN companies c ON c.id = i.company_id
		WHERE i.token = $1
	`

	var detail invite.InviteWithDetails
	err := q.QueryRow(ctx, query, token).Scan(
		&detail.ID,
		&detail.CompanyID,
		&detail.WorkerID,
		&detail.PhoneNumber,
		&detail.Token,
		&detail.Status,
		&detail.ExpiresAt,
		&detail.AcceptedAt,
		&detail.RevokedAt,
		&detail.CreatedAt,
		&detail.UpdatedAt,
		&detail.WorkerName,
		&detail.CompanyName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invite.InviteWithDetails{}, invite.ErrInviteNotFound
		}
		return invite.InviteWithDetails{}, fmt.Errorf("failed to get invite by token: %w", err)
	}
	return detail, nil
}

// GetPendingByWorkerID implements invite.InviteRepository.
func (r *inviteRepositoryImpl) GetPendingByWorkerID(ctx context.Context, workerID, companyID string) (invite.Invite, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + inviteColumns + `
		FROM invites
		WHERE worker_id = $1 AND company_id = $2 AND status = 'pending'
		ORDER BY created_at DESC
		LIMIT 1
	`

	inv, err := scanInvite(q.QueryRow(ctx, query, workerID, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return invite.Invite{}, invite.ErrNoPendingInvite
		}
		return invite.Invite{}, fmt.Errorf("failed to get pending invite: %w", err)
	}
	return inv, nil
}

// ExistsPendingByWorkerID implements invite.InviteRepository.
func (r *inviteRepositoryImpl) ExistsPendingByWorkerID(ctx context.Context, workerID, companyID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM invites
			WHERE worker_id = $1 AND company_id = $2 AND status = 'pending' AND expires_at > NOW()
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, workerID, companyID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListByCompanyID implements invite.InviteRepository.
func (r *inviteRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string) ([]invite.InviteWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.company_id, i.worker_id, i.phone_number, i.token, i.status, i.expires_at,
			   i.accepted_at, i.revoked_at, i.created_at, i.updated_at,
			   w.full_name, c.name
		FROM invites i
		JOIN workers w ON w.id = i.worker_id
		JOIN companies c ON c.id = i.company_id
		WHERE i.company_id = $1
		ORDER BY i.created_at DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	defer rows.Close()

	var invites []invite.InviteWithDetails
	for rows.Next() {
		var detail invite.InviteWithDetails
		err := rows.Scan(
			&detail.ID,
			&detail.CompanyID,
			&detail.WorkerID,
			&detail.PhoneNumber,
			&detail.Token,
			&detail.Status,
			&detail.ExpiresAt,
			&detail.AcceptedAt,
			&detail.RevokedAt,
			&detail.CreatedAt,
			&detail.UpdatedAt,
			&detail.WorkerName,
			&detail.CompanyName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return invites, nil
}

// MarkAccepted implements invite.InviteRepository.
func (r *inviteRepositoryImpl) MarkAccepted(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invites
		SET status = 'accepted', accepted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return invite.ErrInviteNotFound
		}
		return fmt.Errorf("failed to mark invite %s accepted: %w", id, err)
	}
	return nil
}

// MarkRevoked implements invite.InviteRepository.
func (r *inviteRepositoryImpl) MarkRevoked(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invites
		SET status = 'revoked', revoked_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return invite.ErrInviteNotFound
		}
		return fmt.Errorf("failed to mark invite %s revoked: %w", id, err)
	}
	return nil
}

// UpdateToken implements invite.InviteRepository.
func (r *inviteRepositoryImpl) UpdateToken(ctx context.Context, id, newToken string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invites
		SET token = $1, expires_at = $2, updated_at = NOW()
		WHERE id = $3 AND status = 'pending'
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, newToken, expiresAt, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return invite.ErrInviteNotFound
		}
		return fmt.Errorf("failed to rotate invite token for %s: %w", id, err)
	}
	return nil
}

package invite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/config"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/company"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/invite"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/user"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/database"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/jwt"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/sms"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InviteServiceImpl struct {
	cfg         *config.Config
	db          *database.DB
	inviteRepo  invite.InviteRepository
	workerRepo  worker.WorkerRepository
	companyRepo company.CompanyRepository
	userRepo    user.UserRepository
	jwtService  jwt.Service
	jwtRepo     postgresql.JWTRepository
	smsService  sms.SMSService
}

func NewInviteService(
	cfg *config.Config,
	db *database.DB,
	inviteRepo invite.InviteRepository,
	workerRepo worker.WorkerRepository,
	companyRepo company.CompanyRepository,
	userRepo user.UserRepository,
	jwtService jwt.Service,
	jwtRepo postgresql.JWTRepository,
	smsService sms.SMSService,
) invite.InviteService {
	return &InviteServiceImpl{
		cfg:         cfg,
		db:          db,
		inviteRepo:  inviteRepo,
		workerRepo:  workerRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		jwtService:  jwtService,
		jwtRepo:     jwtRepo,
		smsService:  smsService,
	}
}

// getCompanyID extracts company_id from JWT claims
func (s *InviteServiceImpl) getCompanyID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id not found in claims")
	}
	return companyID, nil
}

func (s *InviteServiceImpl) inviteLink(token string) string {
	return fmt.Sprintf("%s/invite/%s", s.cfg.App.BaseURL, token)
}

func (s *InviteServiceImpl) expiresAt() time.Time {
	return time.Now().Add(time.Duration(s.cfg.Invite.ExpirationHours) * time.Hour)
}

func toInviteResponse(inv invite.InviteWithDetails) invite.InviteResponse {
	return invite.InviteResponse{
		ID:          inv.ID,
		WorkerID:    inv.WorkerID,
		WorkerName:  inv.WorkerName,
		PhoneNumber: inv.PhoneNumber,
		Status:      inv.Status,
		ExpiresAt:   inv.ExpiresAt,
		AcceptedAt:  inv.AcceptedAt,
		CreatedAt:   inv.CreatedAt,
	}
}

// CreateAndSend implements invite.InviteService. The token is a single-use
// UUID; the worker receives it as an SMS magic link.
func (s *InviteServiceImpl) CreateAndSend(ctx context.Context, req invite.CreateInviteRequest) (invite.InviteResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return invite.InviteResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return invite.InviteResponse{}, err
	}

	workerData, err := s.workerRepo.GetByID(ctx, req.WorkerID, companyID)
	if err != nil {
		return invite.InviteResponse{}, err
	}
	if workerData.Status == worker.StatusActive {
		return invite.InviteResponse{}, invite.ErrWorkerAlreadyLinked
	}

	pending, err := s.inviteRepo.ExistsPendingByWorkerID(ctx, req.WorkerID, companyID)
	if err != nil {
		return invite.InviteResponse{}, fmt.Errorf("failed to check pending invites: %w", err)
	}
	if pending {
		return invite.InviteResponse{}, invite.ErrWorkerAlreadyInvited
	}

	companyData, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return invite.InviteResponse{}, err
	}

	created, err := s.inviteRepo.Create(ctx, invite.Invite{
		CompanyID:   companyID,
		WorkerID:    workerData.ID,
		PhoneNumber: workerData.PhoneNumber,
		Token:       uuid.NewString(),
		Status:      invite.StatusPending,
		ExpiresAt:   s.expiresAt(),
	})
	if err != nil {
		return invite.InviteResponse{}, err
	}

	if err := s.smsService.SendInviteLink(
		workerData.PhoneNumber,
		workerData.FullName,
		companyData.Name,
		s.inviteLink(created.Token),
		created.ExpiresAt.Format("Jan 2, 3:04 PM"),
	); err != nil {
		return invite.InviteResponse{}, fmt.Errorf("failed to send invite sms: %w", err)
	}

	return toInviteResponse(invite.InviteWithDetails{
		Invite:      created,
		WorkerName:  workerData.FullName,
		CompanyName: companyData.Name,
	}), nil
}

// List implements invite.InviteService.
func (s *InviteServiceImpl) List(ctx context.Context) ([]invite.InviteResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	invites, err := s.inviteRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]invite.InviteResponse, 0, len(invites))
	for _, inv := range invites {
		responses = append(responses, toInviteResponse(inv))
	}
	return responses, nil
}

// Accept implements invite.InviteService. This is a public endpoint; the
// token alone authenticates the worker. Accepting creates the worker's user
// account, activates the worker and issues a session in one transaction.
func (s *InviteServiceImpl) Accept(ctx context.Context, req invite.AcceptInviteRequest) (invite.AcceptInviteResponse, error) {
	var response invite.AcceptInviteResponse

	if err := req.Validate(); err != nil {
		return invite.AcceptInviteResponse{}, err
	}

	inv, err := s.inviteRepo.GetByTokenWithDetails(ctx, req.Token)
	if err != nil {
		return invite.AcceptInviteResponse{}, err
	}

	switch {
	case inv.Status == invite.StatusAccepted:
		return invite.AcceptInviteResponse{}, invite.ErrInviteAlreadyUsed
	case inv.Status == invite.StatusRevoked:
		return invite.AcceptInviteResponse{}, invite.ErrInviteRevoked
	case inv.IsExpired():
		return invite.AcceptInviteResponse{}, invite.ErrInviteExpired
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.inviteRepo.MarkAccepted(txCtx, inv.ID); err != nil {
			return fmt.Errorf("failed to mark invite accepted: %w", err)
		}

		activeStatus := string(worker.StatusActive)
		if err := s.workerRepo.Update(txCtx, inv.WorkerID, inv.CompanyID, worker.UpdateWorkerRequest{
			Status: &activeStatus,
		}); err != nil {
			return fmt.Errorf("failed to activate worker: %w", err)
		}

		workerUser, err := s.userRepo.Create(txCtx, user.User{
			CompanyID:   inv.CompanyID,
			PhoneNumber: &inv.PhoneNumber,
			Role:        user.RoleWorker,
			WorkerID:    &inv.WorkerID,
		})
		if err != nil {
			return fmt.Errorf("failed to create worker user: %w", err)
		}

		response.AccessToken, response.AccessTokenExpiresIn, err =
			s.jwtService.GenerateAccessToken(workerUser.ID, workerUser.CompanyID, workerUser.WorkerID, workerUser.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		response.RefreshToken, response.RefreshTokenExpiresIn, err =
			s.jwtService.GenerateRefreshToken(workerUser.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := s.jwtRepo.CreateRefreshToken(txCtx, workerUser.ID, response.RefreshToken, response.RefreshTokenExpiresIn); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return invite.AcceptInviteResponse{}, err
	}

	response.WorkerName = inv.WorkerName
	response.CompanyName = inv.CompanyName
	return response, nil
}

// Resend implements invite.InviteService. Rotating the token invalidates any
// previously texted link.
func (s *InviteServiceImpl) Resend(ctx context.Context, workerID string) error {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return err
	}

	inv, err := s.inviteRepo.GetPendingByWorkerID(ctx, workerID, companyID)
	if err != nil {
		if errors.Is(err, invite.ErrInviteNotFound) {
			return invite.ErrNoPendingInvite
		}
		return err
	}

	workerData, err := s.workerRepo.GetByID(ctx, workerID, companyID)
	if err != nil {
		return err
	}
	companyData, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return err
	}

	newToken := uuid.NewString()
	newExpiry := s.expiresAt()
	if err := s.inviteRepo.UpdateToken(ctx, inv.ID, newToken, newExpiry); err != nil {
		return err
	}

	if err := s.smsService.SendInviteLink(
		workerData.PhoneNumber,
		workerData.FullName,
		companyData.Name,
		s.inviteLink(newToken),
		newExpiry.Format("Jan 2, 3:04 PM"),
	); err != nil {
		return fmt.Errorf("failed to send invite sms: %w", err)
	}
	return nil
}

// Revoke implements invite.InviteService.
func (s *InviteServiceImpl) Revoke(ctx context.Context, workerID string) error {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return err
	}

	inv, err := s.inviteRepo.GetPendingByWorkerID(ctx, workerID, companyID)
	if err != nil {
		if errors.Is(err, invite.ErrInviteNotFound) {
			return invite.ErrNoPendingInvite
		}
		return err
	}

	return s.inviteRepo.MarkRevoked(ctx, inv.ID)
}

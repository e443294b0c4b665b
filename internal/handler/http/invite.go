package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/invite"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type InviteHandler interface {
	CreateInvite(w http.ResponseWriter, r *http.Request)
	ListInvites(w http.ResponseWriter, r *http.Request)
	AcceptInvite(w http.ResponseWriter, r *http.Request)
	ResendInvite(w http.ResponseWriter, r *http.Request)
	RevokeInvite(w http.ResponseWriter, r *http.Request)
}

type InviteHandlerImpl struct {
	inviteService invite.InviteService
}

func NewInviteHandler(inviteService invite.InviteService) InviteHandler {
	return &InviteHandlerImpl{inviteService: inviteService}
}

// CreateInvite implements InviteHandler.
func (h *InviteHandlerImpl) CreateInvite(w http.ResponseWriter, r *http.Request) {
	var createReq invite.CreateInviteRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateInvite decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	inviteResponse, err := h.inviteService.CreateAndSend(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateInvite service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Invite sent", "invite_id", inviteResponse.ID, "worker_id", inviteResponse.WorkerID)
	response.Created(w, "Invite sent", inviteResponse)
}

// ListInvites implements InviteHandler.
func (h *InviteHandlerImpl) ListInvites(w http.ResponseWriter, r *http.Request) {
	invites, err := h.inviteService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, invites)
}

// AcceptInvite implements InviteHandler. Public endpoint: the magic-link
// token is the only credential.
func (h *InviteHandlerImpl) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	var acceptReq invite.AcceptInviteRequest

	if err := json.NewDecoder(r.Body).Decode(&acceptReq); err != nil {
		slog.Error("AcceptInvite decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	acceptResponse, err := h.inviteService.Accept(r.Context(), acceptReq)
	if err != nil {
		slog.Error("AcceptInvite service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Invite accepted")
	response.Success(w, acceptResponse)
}

// ResendInvite implements InviteHandler.
func (h *InviteHandlerImpl) ResendInvite(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")

	if err := h.inviteService.Resend(r.Context(), workerID); err != nil {
		slog.Error("ResendInvite service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Invite resent", nil)
}

// RevokeInvite implements InviteHandler.
func (h *InviteHandlerImpl) RevokeInvite(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")

	if err := h.inviteService.Revoke(r.Context(), workerID); err != nil {
		slog.Error("RevokeInvite service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Invite revoked", nil)
}

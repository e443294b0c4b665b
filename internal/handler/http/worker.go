package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkerHandler interface {
	GetWorker(w http.ResponseWriter, r *http.Request)
	CreateWorker(w http.ResponseWriter, r *http.Request)
	UpdateWorker(w http.ResponseWriter, r *http.Request)
	DeleteWorker(w http.ResponseWriter, r *http.Request)
	ListWorkers(w http.ResponseWriter, r *http.Request)
}

type WorkerHandlerImpl struct {
	workerService worker.WorkerService
}

func NewWorkerHandler(workerService worker.WorkerService) WorkerHandler {
	return &WorkerHandlerImpl{workerService: workerService}
}

// GetWorker implements WorkerHandler.
func (h *WorkerHandlerImpl) GetWorker(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	workerResponse, err := h.workerService.GetWorker(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, workerResponse)
}

// CreateWorker implements WorkerHandler.
func (h *WorkerHandlerImpl) CreateWorker(w http.ResponseWriter, r *http.Request) {
	var createReq worker.CreateWorkerRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateWorker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	workerResponse, err := h.workerService.CreateWorker(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateWorker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Worker created successfully", "worker_id", workerResponse.ID)
	response.Created(w, "Worker created successfully", workerResponse)
}

// UpdateWorker implements WorkerHandler.
func (h *WorkerHandlerImpl) UpdateWorker(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq worker.UpdateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateWorker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	workerResponse, err := h.workerService.UpdateWorker(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("UpdateWorker service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, workerResponse)
}

// DeleteWorker implements WorkerHandler.
func (h *WorkerHandlerImpl) DeleteWorker(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.workerService.DeleteWorker(r.Context(), id); err != nil {
		slog.Error("DeleteWorker service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}

// ListWorkers implements WorkerHandler.
func (h *WorkerHandlerImpl) ListWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.workerService.ListWorkers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, workers)
}

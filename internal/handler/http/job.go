package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/job"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type JobHandler interface {
	GetJob(w http.ResponseWriter, r *http.Request)
	CreateJob(w http.ResponseWriter, r *http.Request)
	UpdateJob(w http.ResponseWriter, r *http.Request)
	DeleteJob(w http.ResponseWriter, r *http.Request)
	ListJobs(w http.ResponseWriter, r *http.Request)
	CreateJobType(w http.ResponseWriter, r *http.Request)
	ListJobTypes(w http.ResponseWriter, r *http.Request)
}

type JobHandlerImpl struct {
	jobService job.JobService
}

func NewJobHandler(jobService job.JobService) JobHandler {
	return &JobHandlerImpl{jobService: jobService}
}

// GetJob implements JobHandler.
func (h *JobHandlerImpl) GetJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	jobResponse, err := h.jobService.GetJob(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, jobResponse)
}

// CreateJob implements JobHandler.
func (h *JobHandlerImpl) CreateJob(w http.ResponseWriter, r *http.Request) {
	var createReq job.CreateJobRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateJob decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	jobResponse, err := h.jobService.CreateJob(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateJob service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Job created successfully", "job_id", jobResponse.ID)
	response.Created(w, "Job created successfully", jobResponse)
}

// UpdateJob implements JobHandler.
func (h *JobHandlerImpl) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq job.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateJob decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	jobResponse, err := h.jobService.UpdateJob(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("UpdateJob service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, jobResponse)
}

// DeleteJob implements JobHandler.
func (h *JobHandlerImpl) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.jobService.DeleteJob(r.Context(), id); err != nil {
		slog.Error("DeleteJob service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}

// ListJobs implements JobHandler.
func (h *JobHandlerImpl) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.ListJobs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, jobs)
}

// CreateJobType implements JobHandler.
func (h *JobHandlerImpl) CreateJobType(w http.ResponseWriter, r *http.Request) {
	var createReq job.CreateJobTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateJobType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	jobTypeResponse, err := h.jobService.CreateJobType(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateJobType service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Job type created successfully", jobTypeResponse)
}

// ListJobTypes implements JobHandler.
func (h *JobHandlerImpl) ListJobTypes(w http.ResponseWriter, r *http.Request) {
	jobTypes, err := h.jobService.ListJobTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, jobTypes)
}

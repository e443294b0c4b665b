package job

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/job"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

type JobServiceImpl struct {
	jobRepo     job.JobRepository
	jobTypeRepo job.JobTypeRepository
}

func NewJobService(jobRepo job.JobRepository, jobTypeRepo job.JobTypeRepository) job.JobService {
	return &JobServiceImpl{jobRepo: jobRepo, jobTypeRepo: jobTypeRepo}
}

// getCompanyID extracts company_id from JWT claims
func (s *JobServiceImpl) getCompanyID(ctx context.Context) (string, error) {
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

func toJobResponse(j job.Job) job.JobResponse {
	resp := job.JobResponse{
		ID:             j.ID,
		CompanyID:      j.CompanyID,
		ProjectID:      j.ProjectID,
		JobTypeID:      j.JobTypeID,
		Title:          j.Title,
		Status:         string(j.Status),
		EstimatedHours: j.EstimatedHours,
		EstimatedCost:  j.EstimatedCost,
		Revenue:        j.Revenue,
	}
	if j.DueDate != nil {
		due := j.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	if j.CompletedAt != nil {
		completed := j.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completed
	}
	return resp
}

// GetJob implements job.JobService.
func (s *JobServiceImpl) GetJob(ctx context.Context, id string) (job.JobResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return job.JobResponse{}, err
	}

	j, err := s.jobRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return job.JobResponse{}, err
	}
	return toJobResponse(j), nil
}

// CreateJob implements job.JobService. New jobs start scheduled; the first
// clock-in moves them to in_progress.
func (s *JobServiceImpl) CreateJob(ctx context.Context, req job.CreateJobRequest) (job.JobResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return job.JobResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	if req.JobTypeID != nil {
		if _, err := s.jobTypeRepo.GetByID(ctx, *req.JobTypeID, companyID); err != nil {
			return job.JobResponse{}, err
		}
	}

	newJob := job.Job{
		CompanyID:      companyID,
		ProjectID:      req.ProjectID,
		JobTypeID:      req.JobTypeID,
		Title:          req.Title,
		Status:         job.StatusScheduled,
		EstimatedHours: req.EstimatedHours,
	}
	if req.EstimatedCost != nil {
		newJob.EstimatedCost = decimal.NewFromFloat(*req.EstimatedCost)
	}
	if req.Revenue != nil {
		newJob.Revenue = decimal.NewFromFloat(*req.Revenue)
	}
	if req.DueDate != nil {
		due, err := time.ParseInLocation("2006-01-02", *req.DueDate, time.Local)
		if err != nil {
			return job.JobResponse{}, fmt.Errorf("invalid due_date: %w", err)
		}
		newJob.DueDate = &due
	}

	created, err := s.jobRepo.Create(ctx, newJob)
	if err != nil {
		return job.JobResponse{}, err
	}
	return toJobResponse(created), nil
}

// UpdateJob implements job.JobService.
func (s *JobServiceImpl) UpdateJob(ctx context.Context, id string, req job.UpdateJobRequest) (job.JobResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return job.JobResponse{}, err
	}

	if req.Status != nil {
		valid := []string{
			string(job.StatusScheduled), string(job.StatusInProgress),
			string(job.StatusCompleted), string(job.StatusOverdue),
		}
		if !contains(valid, *req.Status) {
			return job.JobResponse{}, job.ErrInvalidStatus
		}
	}
	if req.EstimatedHours != nil && *req.EstimatedHours < 0 {
		return job.JobResponse{}, job.ErrNegativeEstimatedHours
	}

	if err := s.jobRepo.Update(ctx, id, companyID, req); err != nil {
		return job.JobResponse{}, err
	}

	updated, err := s.jobRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return job.JobResponse{}, err
	}
	return toJobResponse(updated), nil
}

// DeleteJob implements job.JobService.
func (s *JobServiceImpl) DeleteJob(ctx context.Context, id string) error {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return err
	}
	return s.jobRepo.Delete(ctx, id, companyID)
}

// ListJobs implements job.JobService.
func (s *JobServiceImpl) ListJobs(ctx context.Context) ([]job.JobResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]job.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		responses = append(responses, toJobResponse(j))
	}
	return responses, nil
}

// CreateJobType implements job.JobService.
func (s *JobServiceImpl) CreateJobType(ctx context.Context, req job.CreateJobTypeRequest) (job.JobTypeResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return job.JobTypeResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return job.JobTypeResponse{}, err
	}

	created, err := s.jobTypeRepo.Create(ctx, job.JobType{
		CompanyID:         companyID,
		Name:              req.Name,
		DefaultHourlyRate: decimal.NewFromFloat(req.DefaultHourlyRate),
	})
	if err != nil {
		return job.JobTypeResponse{}, err
	}

	return job.JobTypeResponse{
		ID:                created.ID,
		Name:              created.Name,
		DefaultHourlyRate: created.DefaultHourlyRate,
	}, nil
}

// ListJobTypes implements job.JobService.
func (s *JobServiceImpl) ListJobTypes(ctx context.Context) ([]job.JobTypeResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	jobTypes, err := s.jobTypeRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]job.JobTypeResponse, 0, len(jobTypes))
	for _, jt := range jobTypes {
		responses = append(responses, job.JobTypeResponse{
			ID:                jt.ID,
			Name:              jt.Name,
			DefaultHourlyRate: jt.DefaultHourlyRate,
		})
	}
	return responses, nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

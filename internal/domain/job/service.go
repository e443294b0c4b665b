package job

import "context"

// JobService defines business logic for job operations (companyID from JWT)
type JobService interface {
	GetJob(ctx context.Context, id string) (JobResponse, error)
	CreateJob(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	UpdateJob(ctx context.Context, id string, req UpdateJobRequest) (JobResponse, error)
	DeleteJob(ctx context.Context, id string) error
	ListJobs(ctx context.Context) ([]JobResponse, error)

	CreateJobType(ctx context.Context, req CreateJobTypeRequest) (JobTypeResponse, error)
	ListJobTypes(ctx context.Context) ([]JobTypeResponse, error)
}

package job

import "context"

type JobRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Job, error)
	Create(ctx context.Context, newJob Job) (Job, error)
	Update(ctx context.Context, id string, companyID string, req UpdateJobRequest) error
	Delete(ctx context.Context, id string, companyID string) error
	GetByCompanyID(ctx context.Context, companyID string) ([]Job, error)
}

type JobTypeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (JobType, error)
	Create(ctx context.Context, newJobType JobType) (JobType, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]JobType, error)
}

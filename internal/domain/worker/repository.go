package worker

import "context"

type WorkerRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Worker, error)
	GetByPhoneNumber(ctx context.Context, companyID string, phoneNumber string) (Worker, error)
	Create(ctx context.Context, newWorker Worker) (Worker, error)
	Update(ctx context.Context, id string, companyID string, req UpdateWorkerRequest) error
	Delete(ctx context.Context, id string, companyID string) error
	// GetByCompanyID lists all non-deleted workers, invited included.
	GetByCompanyID(ctx context.Context, companyID string) ([]Worker, error)
	// GetActiveByCompanyID lists only active workers; payroll and analytics
	// aggregate over these.
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Worker, error)
}

package worker

import "context"

// WorkerService defines business logic for worker operations (companyID from JWT)
type WorkerService interface {
	GetWorker(ctx context.Context, id string) (WorkerResponse, error)
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	UpdateWorker(ctx context.Context, id string, req UpdateWorkerRequest) (WorkerResponse, error)
	DeleteWorker(ctx context.Context, id string) error
	ListWorkers(ctx context.Context) ([]WorkerResponse, error)
}

package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

type WorkerServiceImpl struct {
	workerRepo worker.WorkerRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{workerRepo: workerRepo}
}

// getCompanyID extracts company_id from JWT claims
func (s *WorkerServiceImpl) getCompanyID(ctx context.Context) (string, error) {
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

func toWorkerResponse(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:          w.ID,
		CompanyID:   w.CompanyID,
		FullName:    w.FullName,
		PhoneNumber: w.PhoneNumber,
		Role:        string(w.Role),
		HourlyWage:  w.HourlyWage,
		Status:      string(w.Status),
	}
}

// GetWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id string) (worker.WorkerResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return toWorkerResponse(w), nil
}

// CreateWorker implements worker.WorkerService. New workers start as
// invited; accepting the SMS invite flips them to active.
func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	_, err = s.workerRepo.GetByPhoneNumber(ctx, companyID, req.PhoneNumber)
	if err == nil {
		return worker.WorkerResponse{}, worker.ErrPhoneNumberExists
	}
	if !errors.Is(err, worker.ErrWorkerNotFound) {
		return worker.WorkerResponse{}, err
	}

	created, err := s.workerRepo.Create(ctx, worker.Worker{
		CompanyID:   companyID,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Role:        worker.Role(req.Role),
		HourlyWage:  decimal.NewFromFloat(req.HourlyWage),
		Status:      worker.StatusInvited,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return toWorkerResponse(created), nil
}

// UpdateWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, id string, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.Role != nil {
		valid := []string{string(worker.RoleTechnician), string(worker.RoleApprentice), string(worker.RoleOffice)}
		if !contains(valid, *req.Role) {
			return worker.WorkerResponse{}, worker.ErrInvalidRole
		}
	}
	if req.HourlyWage != nil && *req.HourlyWage < 0 {
		return worker.WorkerResponse{}, worker.ErrNegativeHourlyWage
	}

	if err := s.workerRepo.Update(ctx, id, companyID, req); err != nil {
		return worker.WorkerResponse{}, err
	}

	updated, err := s.workerRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return toWorkerResponse(updated), nil
}

// DeleteWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) DeleteWorker(ctx context.Context, id string) error {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return err
	}
	return s.workerRepo.Delete(ctx, id, companyID)
}

// ListWorkers implements worker.WorkerService.
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context) ([]worker.WorkerResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	workers, err := s.workerRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, toWorkerResponse(w))
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

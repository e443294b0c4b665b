package timeentry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/job"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
	"github.com/go-chi/jwtauth/v5"
)

type TimeEntryServiceImpl struct {
	timeEntryRepo timeentry.TimeEntryRepository
	workerRepo    worker.WorkerRepository
	jobRepo       job.JobRepository
}

func NewTimeEntryService(
	timeEntryRepo timeentry.TimeEntryRepository,
	workerRepo worker.WorkerRepository,
	jobRepo job.JobRepository,
) timeentry.TimeEntryService {
	return &TimeEntryServiceImpl{
		timeEntryRepo: timeEntryRepo,
		workerRepo:    workerRepo,
		jobRepo:       jobRepo,
	}
}

// getCompanyID extracts company_id from JWT claims
func (s *TimeEntryServiceImpl) getCompanyID(ctx context.Context) (string, error) {
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

func toTimeEntryResponse(e timeentry.TimeEntry) timeentry.TimeEntryResponse {
	resp := timeentry.TimeEntryResponse{
		ID:       e.ID,
		WorkerID: e.WorkerID,
		JobID:    e.JobID,
		ClockIn:  e.ClockIn.Format(time.RFC3339),
		Category: string(e.EffectiveCategory()),
		Hours:    e.Hours(),
		Notes:    e.Notes,
	}
	if e.ClockOut != nil {
		out := e.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &out
	}
	return resp
}

// ClockIn implements timeentry.TimeEntryService. One open shift per worker:
// a second clock-in is rejected until the first is closed.
func (s *TimeEntryServiceImpl) ClockIn(ctx context.Context, req timeentry.ClockInRequest) (timeentry.TimeEntryResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID, companyID); err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return timeentry.TimeEntryResponse{}, timeentry.ErrWorkerNotInCompany
		}
		return timeentry.TimeEntryResponse{}, err
	}

	if req.JobID != nil {
		j, err := s.jobRepo.GetByID(ctx, *req.JobID, companyID)
		if err != nil {
			if errors.Is(err, job.ErrJobNotFound) {
				return timeentry.TimeEntryResponse{}, timeentry.ErrJobNotInCompany
			}
			return timeentry.TimeEntryResponse{}, err
		}
		// First clock-in against a scheduled job starts it.
		if j.Status == job.StatusScheduled {
			inProgress := string(job.StatusInProgress)
			if err := s.jobRepo.Update(ctx, j.ID, companyID, job.UpdateJobRequest{Status: &inProgress}); err != nil {
				return timeentry.TimeEntryResponse{}, err
			}
		}
	}

	_, err = s.timeEntryRepo.GetOpenByWorkerID(ctx, req.WorkerID, companyID)
	if err == nil {
		return timeentry.TimeEntryResponse{}, timeentry.ErrShiftAlreadyOpen
	}
	if !errors.Is(err, timeentry.ErrTimeEntryNotFound) {
		return timeentry.TimeEntryResponse{}, err
	}

	clockIn := time.Now()
	if req.ClockIn != "" {
		clockIn, err = time.Parse(time.RFC3339, req.ClockIn)
		if err != nil {
			return timeentry.TimeEntryResponse{}, fmt.Errorf("invalid clock_in: %w", err)
		}
	}

	category := timeentry.Category(req.Category)
	if req.Category == "" {
		category = timeentry.CategoryBillable
	}

	created, err := s.timeEntryRepo.Create(ctx, timeentry.TimeEntry{
		CompanyID: companyID,
		WorkerID:  req.WorkerID,
		JobID:     req.JobID,
		ClockIn:   clockIn,
		Category:  category,
		Notes:     req.Notes,
	})
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	return toTimeEntryResponse(created), nil
}

// ClockOut implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ClockOut(ctx context.Context, id string, req timeentry.ClockOutRequest) (timeentry.TimeEntryResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.timeEntryRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	if entry.ClockOut != nil {
		return timeentry.TimeEntryResponse{}, timeentry.ErrShiftAlreadyClosed
	}

	clockOut := time.Now()
	if req.ClockOut != "" {
		clockOut, err = time.Parse(time.RFC3339, req.ClockOut)
		if err != nil {
			return timeentry.TimeEntryResponse{}, fmt.Errorf("invalid clock_out: %w", err)
		}
	}
	if clockOut.Before(entry.ClockIn) {
		return timeentry.TimeEntryResponse{}, timeentry.ErrClockOutBeforeIn
	}

	if err := s.timeEntryRepo.CloseShift(ctx, id, companyID, clockOut); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	closed, err := s.timeEntryRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	return toTimeEntryResponse(closed), nil
}

// GetTimeEntry implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) GetTimeEntry(ctx context.Context, id string) (timeentry.TimeEntryResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.timeEntryRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	return toTimeEntryResponse(entry), nil
}

// ListTimeEntries implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ListTimeEntries(ctx context.Context, rangeDays int) ([]timeentry.TimeEntryResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}
	if rangeDays <= 0 {
		rangeDays = 7
	}

	end := time.Now()
	start := end.AddDate(0, 0, -rangeDays)

	entries, err := s.timeEntryRepo.GetByCompanyIDInRange(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, toTimeEntryResponse(e))
	}
	return responses, nil
}

package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/analytics"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/job"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"
)

// DefaultTrendCurrency is fixed; FieldCrew does no currency conversion.
const DefaultTrendCurrency = "USD"

type AnalyticsServiceImpl struct {
	workerRepo    worker.WorkerRepository
	jobRepo       job.JobRepository
	jobTypeRepo   job.JobTypeRepository
	timeEntryRepo timeentry.TimeEntryRepository
}

func NewAnalyticsService(
	workerRepo worker.WorkerRepository,
	jobRepo job.JobRepository,
	jobTypeRepo job.JobTypeRepository,
	timeEntryRepo timeentry.TimeEntryRepository,
) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		workerRepo:    workerRepo,
		jobRepo:       jobRepo,
		jobTypeRepo:   jobTypeRepo,
		timeEntryRepo: timeEntryRepo,
	}
}

// getCompanyID extracts company_id from JWT claims
func (s *AnalyticsServiceImpl) getCompanyID(ctx context.Context) (string, error) {
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

// fetchSnapshot loads the company-scoped collections the pure calculators
// consume, with entries windowed to [start, end). The three fetches run in
// parallel; the calculators themselves stay ignorant of that concurrency.
func (s *AnalyticsServiceImpl) fetchSnapshot(ctx context.Context, companyID string, start, end time.Time) (
	[]worker.Worker, []job.Job, []timeentry.TimeEntry, error,
) {
	var (
		workers []worker.Worker
		jobs    []job.Job
		entries []timeentry.TimeEntry
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		workers, err = s.workerRepo.GetActiveByCompanyID(gCtx, companyID)
		return err
	})

	g.Go(func() error {
		var err error
		jobs, err = s.jobRepo.GetByCompanyID(gCtx, companyID)
		return err
	})

	g.Go(func() error {
		var err error
		entries, err = s.timeEntryRepo.GetByCompanyIDInRange(gCtx, companyID, start, end)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return workers, jobs, entries, nil
}

// GetRecoveryDashboard returns the combined current-week recovery view.
func (s *AnalyticsServiceImpl) GetRecoveryDashboard(ctx context.Context) (*analytics.RecoveryDashboardResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	currentWeek := CurrentWeekRange(now)
	lastWeek := LastWeekRange(now)

	// One fetch spanning both weeks covers the current figures and the
	// week-over-week delta.
	workers, jobs, entries, err := s.fetchSnapshot(ctx, companyID, lastWeek.Start, currentWeek.End)
	if err != nil {
		return nil, err
	}

	blended := CalculateBlendedHourlyRate(workers)
	overtime := CalculateOvertime(entries, workers, currentWeek)
	overruns := CalculateOverruns(jobs, entries, workers, blended, currentWeek)
	allocation := CalculateTimeAllocation(entries, currentWeek)
	recoverable := RecoverableProfitBreakdown(overtime.Cost, overruns.EstimatedCostOverrun, allocation.Idle, blended)

	currentRPLH := CalculateRPLH(jobs, entries, currentWeek)
	previousRPLH := CalculateRPLH(jobs, entries, lastWeek)

	return &analytics.RecoveryDashboardResponse{
		BlendedHourlyRate: blended,
		Overtime:          overtime,
		Overruns:          overruns,
		TimeAllocation:    allocation,
		Recoverable:       recoverable,
		CurrentRPLH:       currentRPLH,
		RPLHTarget:        RPLHTarget,
		RPLHDeltaPct:      WeekOverWeekDelta(currentRPLH, previousRPLH),
	}, nil
}

// GetLabourCostTrend snaps rangeDays to the nearest allowed window and
// builds the labour-cost-per-job series.
func (s *AnalyticsServiceImpl) GetLabourCostTrend(ctx context.Context, rangeDays int, targetLabourCostPerJob *float64) (*analytics.LabourCostTrendPayload, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}
	if targetLabourCostPerJob != nil && *targetLabourCostPerJob < 0 {
		return nil, analytics.ErrInvalidTarget
	}

	snapped := SnapRangeDays(rangeDays)
	now := time.Now()
	rng, err := LastNDaysRange(now, snapped)
	if err != nil {
		return nil, err
	}

	var jobTypes []job.JobType
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobTypes, err = s.jobTypeRepo.GetByCompanyID(gCtx, companyID)
		return err
	})

	workers, jobs, entries, err := s.fetchSnapshot(ctx, companyID, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return BuildLabourCostTrendPayload(jobs, workers, entries, jobTypes, TrendConfig{
		RangeDays:              snapped,
		Currency:               DefaultTrendCurrency,
		TargetLabourCostPerJob: targetLabourCostPerJob,
	}, now)
}

// GetRPLHTrend returns revenue-per-labour-hour for the trailing weeks.
func (s *AnalyticsServiceImpl) GetRPLHTrend(ctx context.Context, weeks int) (*analytics.RPLHTrendResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}
	if weeks <= 0 {
		return nil, analytics.ErrInvalidRangeDays
	}

	now := time.Now()
	start := weekStart(now).AddDate(0, 0, -7*(weeks-1))

	_, jobs, entries, err := s.fetchSnapshot(ctx, companyID, start, weekStart(now).AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	return &analytics.RPLHTrendResponse{
		Target: RPLHTarget,
		Points: RPLHTrend(jobs, entries, now, weeks),
	}, nil
}

// GetTimeAllocation buckets hours logged in the last rangeDays days.
func (s *AnalyticsServiceImpl) GetTimeAllocation(ctx context.Context, rangeDays int) (*analytics.TimeAllocation, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	rng, err := LastNDaysRange(time.Now(), rangeDays)
	if err != nil {
		return nil, err
	}

	entries, err := s.timeEntryRepo.GetByCompanyIDInRange(ctx, companyID, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}

	allocation := CalculateTimeAllocation(entries, rng)
	return &allocation, nil
}

package payroll

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/payroll"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/service/analytics"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

// overtimeMultiplier is full time-and-a-half pay. This is distinct from the
// dashboard's premium-only overtime cost, which counts just the extra half.
var overtimeMultiplier = decimal.NewFromFloat(1.5)

type PayrollServiceImpl struct {
	workerRepo    worker.WorkerRepository
	timeEntryRepo timeentry.TimeEntryRepository
}

func NewPayrollService(
	workerRepo worker.WorkerRepository,
	timeEntryRepo timeentry.TimeEntryRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		workerRepo:    workerRepo,
		timeEntryRepo: timeEntryRepo,
	}
}

// getCompanyID extracts company_id from JWT claims
func (s *PayrollServiceImpl) getCompanyID(ctx context.Context) (string, error) {
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

// ExportWeek implements payroll.PayrollService. weekOf may be any day in the
// target week; the export always covers that week's Monday through Sunday.
func (s *PayrollServiceImpl) ExportWeek(ctx context.Context, weekOf time.Time) (payroll.WeeklyExport, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return payroll.WeeklyExport{}, err
	}

	rng := analytics.CurrentWeekRange(weekOf)

	workers, err := s.workerRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return payroll.WeeklyExport{}, fmt.Errorf("failed to fetch workers: %w", err)
	}
	entries, err := s.timeEntryRepo.GetByCompanyIDInRange(ctx, companyID, rng.Start, rng.End)
	if err != nil {
		return payroll.WeeklyExport{}, fmt.Errorf("failed to fetch time entries: %w", err)
	}

	export := payroll.WeeklyExport{
		CompanyID: companyID,
		WeekStart: rng.Start,
		WeekEnd:   rng.End,
	}

	hoursByWorker := splitHours(entries, rng.Start, rng.End)
	for _, w := range workers {
		split, worked := hoursByWorker[w.ID]
		if !worked {
			continue
		}
		export.Lines = append(export.Lines, buildLine(w, split))
	}

	sort.Slice(export.Lines, func(i, j int) bool {
		return export.Lines[i].WorkerName < export.Lines[j].WorkerName
	})
	return export, nil
}

type hoursSplit struct {
	regular  float64
	overtime float64
}

// splitHours classifies each worker's hours in [start, end) into regular and
// overtime. Overtime is the larger of the daily (past 8h in a day) and
// weekly (past 40h) classifications, same as the dashboard, so the payroll
// CSV and the recovery numbers never disagree about what counts as overtime.
func splitHours(entries []timeentry.TimeEntry, start, end time.Time) map[string]hoursSplit {
	perDay := make(map[string]map[string]float64)
	totals := make(map[string]float64)

	for _, e := range entries {
		if e.ClockIn.Before(start) || !e.ClockIn.Before(end) {
			continue
		}
		h := e.Hours()
		if h == 0 {
			continue
		}
		day := e.ClockIn.Format("2006-01-02")
		if perDay[e.WorkerID] == nil {
			perDay[e.WorkerID] = make(map[string]float64)
		}
		perDay[e.WorkerID][day] += h
		totals[e.WorkerID] += h
	}

	splits := make(map[string]hoursSplit, len(totals))
	for workerID, total := range totals {
		var dailyOT float64
		for _, dayHours := range perDay[workerID] {
			if dayHours > analytics.DailyOvertimeThresholdHours {
				dailyOT += dayHours - analytics.DailyOvertimeThresholdHours
			}
		}
		weeklyOT := total - analytics.WeeklyOvertimeThresholdHours
		if weeklyOT < 0 {
			weeklyOT = 0
		}

		ot := dailyOT
		if weeklyOT > ot {
			ot = weeklyOT
		}
		splits[workerID] = hoursSplit{regular: total - ot, overtime: ot}
	}
	return splits
}

func buildLine(w worker.Worker, split hoursSplit) payroll.Line {
	regularHours := decimal.NewFromFloat(split.regular).Round(2)
	overtimeHours := decimal.NewFromFloat(split.overtime).Round(2)

	regularPay := regularHours.Mul(w.HourlyWage).Round(2)
	overtimePay := overtimeHours.Mul(w.HourlyWage).Mul(overtimeMultiplier).Round(2)

	return payroll.Line{
		WorkerID:      w.ID,
		WorkerName:    w.FullName,
		HourlyWage:    w.HourlyWage,
		RegularHours:  regularHours,
		OvertimeHours: overtimeHours,
		RegularPay:    regularPay,
		OvertimePay:   overtimePay,
		TotalPay:      regularPay.Add(overtimePay),
	}
}

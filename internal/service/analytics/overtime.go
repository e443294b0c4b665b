package analytics

import (
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/analytics"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
)

// CalculateOvertime computes overtime hours and their premium-only cost for
// all workers over rng.
//
// Both thresholds apply: hours past 8 in a calendar day are daily overtime,
// hours past 40 across the range are weekly overtime. A worker's overtime
// for the range is the larger of the two classifications, never the sum, so
// the same hour is not counted twice.
//
// Cost is overtime hours x wage x premium (the extra 0.5x portion only, not
// full overtime pay). Entries referencing unknown workers are skipped, and
// open shifts contribute zero hours.
func CalculateOvertime(entries []timeentry.TimeEntry, workers []worker.Worker, rng analytics.DateRange) analytics.OvertimeResult {
	wages := wageByWorkerID(workers)

	perDay := make(map[string]map[string]float64) // workerID -> day -> hours
	totals := make(map[string]float64)            // workerID -> hours in range

	for _, e := range entries {
		if !rng.Contains(e.ClockIn) {
			continue
		}
		if _, known := wages[e.WorkerID]; !known {
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

	var result analytics.OvertimeResult
	for workerID, total := range totals {
		var dailyOT float64
		for _, dayHours := range perDay[workerID] {
			if dayHours > DailyOvertimeThresholdHours {
				dailyOT += dayHours - DailyOvertimeThresholdHours
			}
		}

		weeklyOT := total - WeeklyOvertimeThresholdHours
		if weeklyOT < 0 {
			weeklyOT = 0
		}

		ot := dailyOT
		if weeklyOT > ot {
			ot = weeklyOT
		}
		if ot == 0 {
			continue
		}

		result.Hours += ot
		result.Cost += ot * wages[workerID] * OvertimePremium
	}
	return result
}

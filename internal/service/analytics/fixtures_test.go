package analytics

import (
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/job"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

// ===== SHARED TEST FIXTURES =====

func testWorker(id string, wage float64) worker.Worker {
	return worker.Worker{
		ID:         id,
		CompanyID:  "company-1",
		FullName:   "Worker " + id,
		Role:       worker.RoleTechnician,
		HourlyWage: decimal.NewFromFloat(wage),
		Status:     worker.StatusActive,
	}
}

func testJob(id string, status job.Status, estimatedHours float64) job.Job {
	return job.Job{
		ID:             id,
		CompanyID:      "company-1",
		Title:          "Job " + id,
		Status:         status,
		EstimatedHours: estimatedHours,
	}
}

func completedJob(id string, revenue float64, completedAt time.Time) job.Job {
	j := testJob(id, job.StatusCompleted, 0)
	j.Revenue = decimal.NewFromFloat(revenue)
	j.CompletedAt = &completedAt
	return j
}

// closedEntry returns a finished shift of the given length in hours.
func closedEntry(workerID string, jobID *string, clockIn time.Time, hours float64, category timeentry.Category) timeentry.TimeEntry {
	clockOut := clockIn.Add(time.Duration(hours * float64(time.Hour)))
	return timeentry.TimeEntry{
		ID:        "entry-" + workerID + clockIn.Format("20060102T1504"),
		CompanyID: "company-1",
		WorkerID:  workerID,
		JobID:     jobID,
		ClockIn:   clockIn,
		ClockOut:  &clockOut,
		Category:  category,
	}
}

func openEntry(workerID string, clockIn time.Time) timeentry.TimeEntry {
	return timeentry.TimeEntry{
		ID:        "open-" + workerID,
		CompanyID: "company-1",
		WorkerID:  workerID,
		ClockIn:   clockIn,
		Category:  timeentry.CategoryBillable,
	}
}

func jobRef(id string) *string { return &id }

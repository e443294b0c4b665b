package job

import (
	"time"

	"github.com/shopspring/decimal"
)

type Job struct {
	ID             string
	CompanyID      string
	ProjectID      *string
	JobTypeID      *string
	Title          string
	Status         Status
	EstimatedHours float64
	EstimatedCost  decimal.Decimal
	Revenue        decimal.Decimal
	DueDate        *time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOverdue    Status = "overdue"
)

// JobType classifies jobs and carries a default hourly rate used as a
// costing fallback when a time entry's worker cannot be resolved.
type JobType struct {
	ID                string
	CompanyID         string
	Name              string
	DefaultHourlyRate decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RevenueFloat returns the job revenue as a float64 for the analytics core.
func (j Job) RevenueFloat() float64 {
	return j.Revenue.InexactFloat64()
}

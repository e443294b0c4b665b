package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

type Worker struct {
	ID          string
	CompanyID   string
	FullName    string
	PhoneNumber string
	Role        Role
	HourlyWage  decimal.Decimal
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

type Role string

const (
	RoleTechnician Role = "technician"
	RoleApprentice Role = "apprentice"
	RoleOffice     Role = "office"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInvited  Status = "invited"
	StatusInactive Status = "inactive"
)

// WageFloat returns the hourly wage as a float64 for the analytics core,
// which works in plain numbers and rounds only at presentation time.
func (w Worker) WageFloat() float64 {
	return w.HourlyWage.InexactFloat64()
}

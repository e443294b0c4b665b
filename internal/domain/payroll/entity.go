package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is one worker's pay for a single week. Hours are split by the same
// overtime engine the dashboard uses; pay is computed in decimal so the CSV
// a bookkeeper imports never carries float noise.
type Line struct {
	WorkerID      string
	WorkerName    string
	HourlyWage    decimal.Decimal
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	RegularPay    decimal.Decimal
	OvertimePay   decimal.Decimal // time-and-a-half on overtime hours
	TotalPay      decimal.Decimal
}

// WeeklyExport is a company's payroll for one Monday-to-Sunday week.
type WeeklyExport struct {
	CompanyID string
	WeekStart time.Time
	WeekEnd   time.Time
	Lines     []Line
}

// Totals sums the export's pay columns.
func (e WeeklyExport) Totals() (regular, overtime, total decimal.Decimal) {
	for _, l := range e.Lines {
		regular = regular.Add(l.RegularPay)
		overtime = overtime.Add(l.OvertimePay)
		total = total.Add(l.TotalPay)
	}
	return regular, overtime, total
}

package payroll

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/payroll"
)

var csvHeader = []string{
	"worker_name", "hourly_wage",
	"regular_hours", "overtime_hours",
	"regular_pay", "overtime_pay", "total_pay",
}

// RenderCSV renders a weekly export in the column layout bookkeeping tools
// import. A totals row closes the file.
func RenderCSV(export payroll.WeeklyExport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, line := range export.Lines {
		record := []string{
			line.WorkerName,
			line.HourlyWage.StringFixed(2),
			line.RegularHours.StringFixed(2),
			line.OvertimeHours.StringFixed(2),
			line.RegularPay.StringFixed(2),
			line.OvertimePay.StringFixed(2),
			line.TotalPay.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	regular, overtime, total := export.Totals()
	totalsRow := []string{
		"TOTAL", "",
		"", "",
		regular.StringFixed(2),
		overtime.StringFixed(2),
		total.StringFixed(2),
	}
	if err := w.Write(totalsRow); err != nil {
		return nil, fmt.Errorf("failed to write csv totals: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename names the download after the week it covers.
func Filename(export payroll.WeeklyExport) string {
	return fmt.Sprintf("payroll_week_%s.csv", export.WeekStart.Format("2006-01-02"))
}

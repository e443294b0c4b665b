package payroll

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/payroll"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2025-06-02 00:00 local.
var testWeekStart = time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)

func entry(workerID string, day int, startHour, hours float64) timeentry.TimeEntry {
	clockIn := testWeekStart.AddDate(0, 0, day).Add(time.Duration(startHour * float64(time.Hour)))
	clockOut := clockIn.Add(time.Duration(hours * float64(time.Hour)))
	return timeentry.TimeEntry{
		WorkerID: workerID,
		ClockIn:  clockIn,
		ClockOut: &clockOut,
		Category: timeentry.CategoryBillable,
	}
}

func TestSplitHours_NoOvertime(t *testing.T) {
	var entries []timeentry.TimeEntry
	for day := 0; day < 3; day++ {
		entries = append(entries, entry("w1", day, 8, 8))
	}

	splits := splitHours(entries, testWeekStart, testWeekStart.AddDate(0, 0, 7))

	require.Contains(t, splits, "w1")
	assert.InDelta(t, 24.0, splits["w1"].regular, 1e-9)
	assert.Zero(t, splits["w1"].overtime)
}

func TestSplitHours_DailyAndWeeklyAgree(t *testing.T) {
	// Five 9-hour days: daily overtime is 5x1h, weekly is 45-40. Either
	// classification gives 5h; it must not be double counted to 10.
	var entries []timeentry.TimeEntry
	for day := 0; day < 5; day++ {
		entries = append(entries, entry("w1", day, 7, 9))
	}

	splits := splitHours(entries, testWeekStart, testWeekStart.AddDate(0, 0, 7))

	assert.InDelta(t, 5.0, splits["w1"].overtime, 1e-9)
	assert.InDelta(t, 40.0, splits["w1"].regular, 1e-9)
}

func TestSplitHours_DailyOvertimeUnderForty(t *testing.T) {
	// One 12-hour day. Weekly total is far under 40 but the day itself
	// crossed 8h, so 4h are overtime.
	entries := []timeentry.TimeEntry{entry("w1", 0, 6, 12)}

	splits := splitHours(entries, testWeekStart, testWeekStart.AddDate(0, 0, 7))

	assert.InDelta(t, 4.0, splits["w1"].overtime, 1e-9)
	assert.InDelta(t, 8.0, splits["w1"].regular, 1e-9)
}

func TestSplitHours_ExcludesEntriesOutsideWeek(t *testing.T) {
	entries := []timeentry.TimeEntry{
		entry("w1", -1, 8, 8), // Sunday before
		entry("w1", 7, 8, 8),  // Monday after
		entry("w1", 2, 8, 4),
	}

	splits := splitHours(entries, testWeekStart, testWeekStart.AddDate(0, 0, 7))

	assert.InDelta(t, 4.0, splits["w1"].regular, 1e-9)
}

func TestSplitHours_OpenShiftContributesNothing(t *testing.T) {
	open := timeentry.TimeEntry{WorkerID: "w1", ClockIn: testWeekStart.Add(9 * time.Hour)}
	splits := splitHours([]timeentry.TimeEntry{open}, testWeekStart, testWeekStart.AddDate(0, 0, 7))

	assert.NotContains(t, splits, "w1")
}

func TestBuildLine_TimeAndAHalf(t *testing.T) {
	w := worker.Worker{
		ID:         "w1",
		FullName:   "Maria Lopez",
		HourlyWage: decimal.NewFromInt(20),
	}

	line := buildLine(w, hoursSplit{regular: 40, overtime: 5})

	assert.True(t, line.RegularPay.Equal(decimal.NewFromInt(800)), "regular pay: %s", line.RegularPay)
	assert.True(t, line.OvertimePay.Equal(decimal.NewFromInt(150)), "overtime pay: %s", line.OvertimePay)
	assert.True(t, line.TotalPay.Equal(decimal.NewFromInt(950)), "total pay: %s", line.TotalPay)
}

func TestRenderCSV(t *testing.T) {
	export := payroll.WeeklyExport{
		CompanyID: "c1",
		WeekStart: testWeekStart,
		WeekEnd:   testWeekStart.AddDate(0, 0, 7),
		Lines: []payroll.Line{
			{
				WorkerName:    "Maria Lopez",
				HourlyWage:    decimal.NewFromInt(20),
				RegularHours:  decimal.NewFromInt(40),
				OvertimeHours: decimal.NewFromInt(5),
				RegularPay:    decimal.NewFromInt(800),
				OvertimePay:   decimal.NewFromInt(150),
				TotalPay:      decimal.NewFromInt(950),
			},
			{
				WorkerName:    "Sam Ortiz",
				HourlyWage:    decimal.NewFromInt(30),
				RegularHours:  decimal.NewFromInt(10),
				OvertimeHours: decimal.Zero,
				RegularPay:    decimal.NewFromInt(300),
				OvertimePay:   decimal.Zero,
				TotalPay:      decimal.NewFromInt(300),
			},
		},
	}

	out, err := RenderCSV(export)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4) // header + 2 lines + totals

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, "Maria Lopez", records[1][0])
	assert.Equal(t, "950.00", records[1][6])

	totals := records[3]
	assert.Equal(t, "TOTAL", totals[0])
	assert.Equal(t, "1100.00", totals[4])
	assert.Equal(t, "150.00", totals[5])
	assert.Equal(t, "1250.00", totals[6])
}

func TestFilename(t *testing.T) {
	export := payroll.WeeklyExport{WeekStart: testWeekStart}
	assert.Equal(t, "payroll_week_2025-06-02.csv", Filename(export))
}

package analytics

import (
	"errors"
	"testing"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/analytics"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/job"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapRangeDays(t *testing.T) {
	cases := []struct {
		requested int
		want      int
	}{
		{30, 30},
		{90, 90},
		{180, 180},
		{365, 365},
		{1, 30},     // clamped to 7, nearest 30
		{-10, 30},   // clamped to 7
		{45, 30},    // nearer to 30
		{75, 90},    // nearer to 90
		{60, 30},    // equidistant: smaller wins
		{135, 90},   // equidistant: smaller wins
		{272, 180},  // nearer to 180
		{273, 365},  // nearer to 365
		{9999, 365}, // clamped to 365
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SnapRangeDays(c.requested), "requested=%d", c.requested)
	}
}

func TestBuildLabourCostTrendPayload_InvalidRange(t *testing.T) {
	_, err := BuildLabourCostTrendPayload(nil, nil, nil, nil, TrendConfig{RangeDays: 60, Currency: "USD"}, testNow)
	assert.True(t, errors.Is(err, analytics.ErrInvalidTrendRange))
}

func TestBuildLabourCostTrendPayload_NegativeTarget(t *testing.T) {
	target := -1.0
	_, err := BuildLabourCostTrendPayload(nil, nil, nil, nil, TrendConfig{
		RangeDays: 30, Currency: "USD", TargetLabourCostPerJob: &target,
	}, testNow)
	assert.True(t, errors.Is(err, analytics.ErrInvalidTarget))
}

// Empty fixtures still produce a full, zero-filled series: stable chart
// lengths are part of the contract.
func TestBuildLabourCostTrendPayload_EmptyFixtures(t *testing.T) {
	for _, rangeDays := range AllowedTrendRangeDays {
		payload, err := BuildLabourCostTrendPayload(nil, nil, nil, nil, TrendConfig{
			RangeDays: rangeDays, Currency: "USD",
		}, testNow)
		require.NoError(t, err)

		bucketLen := bucketLengthDays(rangeDays)
		wantBuckets := (rangeDays + bucketLen - 1) / bucketLen
		assert.Len(t, payload.Series, wantBuckets, "rangeDays=%d", rangeDays)
		for _, bucket := range payload.Series {
			assert.Equal(t, 0.0, bucket.AvgLabourCostPerJob)
			assert.NotEmpty(t, bucket.PeriodLabel)
		}
		assert.Equal(t, rangeDays, payload.RangeDays)
		assert.Nil(t, payload.TargetLabourCostPerJob)
	}
}

func TestBuildLabourCostTrendPayload_AveragesPerBucket(t *testing.T) {
	workers := []worker.Worker{testWorker("w1", 30)}
	jobs := []job.Job{
		testJob("j1", job.StatusInProgress, 10),
		testJob("j2", job.StatusCompleted, 10),
	}
	// Two jobs worked in the most recent bucket: 10h and 4h at $30.
	entries := []timeentry.TimeEntry{
		closedEntry("w1", jobRef("j1"), testNow.AddDate(0, 0, -2), 10, timeentry.CategoryBillable),
		closedEntry("w1", jobRef("j2"), testNow.AddDate(0, 0, -1), 4, timeentry.CategoryBillable),
	}

	payload, err := BuildLabourCostTrendPayload(jobs, workers, entries, nil, TrendConfig{
		RangeDays: 30, Currency: "USD",
	}, testNow)
	require.NoError(t, err)

	last := payload.Series[len(payload.Series)-1]
	assert.InDelta(t, (10*30.0+4*30.0)/2, last.AvgLabourCostPerJob, 1e-9)

	// Earlier buckets had no jobs and stay zero.
	for _, bucket := range payload.Series[:len(payload.Series)-1] {
		assert.Equal(t, 0.0, bucket.AvgLabourCostPerJob)
	}
}

func TestBuildLabourCostTrendPayload_JobTypeRateFallback(t *testing.T) {
	jobTypeID := "jt-1"
	j := testJob("j1", job.StatusInProgress, 10)
	j.JobTypeID = &jobTypeID

	jobTypes := []job.JobType{{
		ID:                jobTypeID,
		CompanyID:         "company-1",
		Name:              "Install",
		DefaultHourlyRate: decimal.NewFromInt(55),
	}}

	// Entry from a worker missing from the snapshot: wage unresolvable, so
	// the job type's default rate prices the hours.
	entries := []timeentry.TimeEntry{
		closedEntry("ghost", jobRef("j1"), testNow.AddDate(0, 0, -1), 2, timeentry.CategoryBillable),
	}

	payload, err := BuildLabourCostTrendPayload([]job.Job{j}, nil, entries, jobTypes, TrendConfig{
		RangeDays: 30, Currency: "USD",
	}, testNow)
	require.NoError(t, err)

	last := payload.Series[len(payload.Series)-1]
	assert.InDelta(t, 2*55.0, last.AvgLabourCostPerJob, 1e-9)
}

func TestBuildLabourCostTrendPayload_TargetEchoed(t *testing.T) {
	target := 425.0
	payload, err := BuildLabourCostTrendPayload(nil, nil, nil, nil, TrendConfig{
		RangeDays: 90, Currency: "USD", TargetLabourCostPerJob: &target,
	}, testNow)
	require.NoError(t, err)

	require.NotNil(t, payload.TargetLabourCostPerJob)
	assert.Equal(t, 425.0, *payload.TargetLabourCostPerJob)
}

// Random-ish fixtures never produce NaN or undefined buckets.
func TestBuildLabourCostTrendPayload_NoNaNBuckets(t *testing.T) {
	workers := []worker.Worker{testWorker("w1", 0)} // zero wage is legal
	jobs := []job.Job{testJob("j1", job.StatusInProgress, 0)}
	var entries []timeentry.TimeEntry
	for day := 1; day < 90; day += 7 {
		entries = append(entries, closedEntry("w1", jobRef("j1"), testNow.AddDate(0, 0, -day), float64(day%5), timeentry.CategoryBillable))
	}

	payload, err := BuildLabourCostTrendPayload(jobs, workers, entries, nil, TrendConfig{
		RangeDays: 90, Currency: "USD",
	}, testNow)
	require.NoError(t, err)

	for _, bucket := range payload.Series {
		assert.False(t, bucket.AvgLabourCostPerJob != bucket.AvgLabourCostPerJob, "NaN bucket")
		assert.GreaterOrEqual(t, bucket.AvgLabourCostPerJob, 0.0)
	}
}

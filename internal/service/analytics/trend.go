package analytics

import (
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/analytics"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/job"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
)

// AllowedTrendRangeDays are the historical windows the trend dashboard
// supports. Arbitrary requested values are snapped with SnapRangeDays.
var AllowedTrendRangeDays = []int{30, 90, 180, 365}

// TrendConfig configures BuildLabourCostTrendPayload. RangeDays must be one
// of AllowedTrendRangeDays; TargetLabourCostPerJob, when set, must be >= 0
// and is echoed in the payload for client-side reference-line rendering.
type TrendConfig struct {
	RangeDays              int
	Currency               string
	TargetLabourCostPerJob *float64
}

// SnapRangeDays maps an arbitrary requested range to the nearest allowed
// value. The request is first clamped to [7, 365]; when two allowed values
// are equidistant the smaller wins, keeping the mapping deterministic.
func SnapRangeDays(requested int) int {
	if requested < 7 {
		requested = 7
	}
	if requested > 365 {
		requested = 365
	}

	best := AllowedTrendRangeDays[0]
	for _, candidate := range AllowedTrendRangeDays[1:] {
		if abs(candidate-requested) < abs(best-requested) {
			best = candidate
		}
	}
	return best
}

// bucketLengthDays picks the bucket granularity for a window: weekly for
// the short windows, fortnightly and monthly for the long ones, so every
// series stays around a dozen points.
func bucketLengthDays(rangeDays int) int {
	switch {
	case rangeDays <= 90:
		return 7
	case rangeDays <= 180:
		return 14
	default:
		return 30
	}
}

// BuildLabourCostTrendPayload produces a chronological, fixed-length series
// of average labour cost per job covering cfg.RangeDays back from now.
//
// A job belongs to a bucket when at least one of its time entries was
// clocked in during that bucket; the bucket value is the total labour cost
// of those entries divided by the number of such jobs. Entry cost uses the
// worker's wage, falling back to the job type's default hourly rate and
// then to the blended rate when the worker cannot be resolved. Buckets with
// zero jobs emit value 0 rather than being omitted.
func BuildLabourCostTrendPayload(
	jobs []job.Job,
	workers []worker.Worker,
	entries []timeentry.TimeEntry,
	jobTypes []job.JobType,
	cfg TrendConfig,
	now time.Time,
) (*analytics.LabourCostTrendPayload, error) {
	if !containsInt(AllowedTrendRangeDays, cfg.RangeDays) {
		return nil, analytics.ErrInvalidTrendRange
	}
	if cfg.TargetLabourCostPerJob != nil && *cfg.TargetLabourCostPerJob < 0 {
		return nil, analytics.ErrInvalidTarget
	}

	wages := wageByWorkerID(workers)
	blended := CalculateBlendedHourlyRate(workers)

	typeRates := make(map[string]float64, len(jobTypes))
	for _, jt := range jobTypes {
		typeRates[jt.ID] = jt.DefaultHourlyRate.InexactFloat64()
	}
	jobsByID := make(map[string]job.Job, len(jobs))
	for _, j := range jobs {
		jobsByID[j.ID] = j
	}

	bucketLen := bucketLengthDays(cfg.RangeDays)
	bucketCount := (cfg.RangeDays + bucketLen - 1) / bucketLen

	series := make([]analytics.TrendBucket, 0, bucketCount)
	for i := bucketCount - 1; i >= 0; i-- {
		end := now.AddDate(0, 0, -bucketLen*i)
		start := end.AddDate(0, 0, -bucketLen)
		rng := analytics.DateRange{Start: start, End: end}

		var cost float64
		bucketJobs := make(map[string]struct{})
		for _, e := range entries {
			if e.JobID == nil || !rng.Contains(e.ClockIn) {
				continue
			}
			h := e.Hours()
			if h == 0 {
				continue
			}
			j, found := jobsByID[*e.JobID]
			if !found {
				continue
			}

			rate, known := wages[e.WorkerID]
			if !known {
				rate = blended
				if j.JobTypeID != nil {
					if typeRate, ok := typeRates[*j.JobTypeID]; ok {
						rate = typeRate
					}
				}
			}

			cost += h * rate
			bucketJobs[j.ID] = struct{}{}
		}

		var avg float64
		if len(bucketJobs) > 0 {
			avg = cost / float64(len(bucketJobs))
		}
		series = append(series, analytics.TrendBucket{
			PeriodLabel:         start.Format("Jan 2"),
			AvgLabourCostPerJob: avg,
		})
	}

	return &analytics.LabourCostTrendPayload{
		Currency:               cfg.Currency,
		RangeDays:              cfg.RangeDays,
		TargetLabourCostPerJob: cfg.TargetLabourCostPerJob,
		Series:                 series,
	}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func containsInt(values []int, v int) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

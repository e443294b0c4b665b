package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepositoryImpl{db: db}
}

const timeEntryColumns = `id, company_id, worker_id, job_id, clock_in, clock_out, category, notes,
	   created_at, updated_at`

func scanTimeEntry(row pgx.Row) (timeentry.TimeEntry, error) {
	var e timeentry.TimeEntry
	err := row.Scan(
		&e.ID,
		&e.CompanyID,
		&e.WorkerID,
		&e.JobID,
		&e.ClockIn,
		&e.ClockOut,
		&e.Category,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// GetByID implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE id = $1 AND company_id = $2
	`

	e, err := scanTimeEntry(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get time entry: %w", err)
	}
	return e, nil
}

// Create implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (company_id, worker_id, job_id, clock_in, clock_out, category, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + timeEntryColumns + `
	`

	e, err := scanTimeEntry(q.QueryRow(ctx, query,
		entry.CompanyID,
		entry.WorkerID,
		entry.JobID,
		entry.ClockIn,
		entry.ClockOut,
		entry.Category,
		entry.Notes,
	))
	if err != nil {
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}
	return e, nil
}

// CloseShift implements timeentry.TimeEntryRepository. Only open entries
// match; closing twice surfaces as ErrTimeEntryNotFound to the service.
func (r *timeEntryRepositoryImpl) CloseShift(ctx context.Context, id string, companyID string, clockOut time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET clock_out = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3 AND clock_out IS NULL
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, clockOut, id, companyID).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.ErrTimeEntryNotFound
		}
		return fmt.Errorf("failed to close shift %s: %w", id, err)
	}
	return nil
}

// GetOpenByWorkerID implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) GetOpenByWorkerID(ctx context.Context, workerID string, companyID string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE worker_id = $1 AND company_id = $2 AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	e, err := scanTimeEntry(q.QueryRow(ctx, query, workerID, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get open shift: %w", err)
	}
	return e, nil
}

// GetByCompanyIDInRange implements timeentry.TimeEntryRepository. The range
// is half-open [start, end) on clock_in, matching the analytics engine.
func (r *timeEntryRepositoryImpl) GetByCompanyIDInRange(ctx context.Context, companyID string, start, end time.Time) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE company_id = $1 AND clock_in >= $2 AND clock_in < $3
		ORDER BY clock_in
	`

	rows, err := q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

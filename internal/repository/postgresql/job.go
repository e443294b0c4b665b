package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/job"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type jobRepositoryImpl struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepositoryImpl{db: db}
}

const jobColumns = `id, company_id, project_id, job_type_id, title, status, estimated_hours,
	   estimated_cost, revenue, due_date, completed_at, created_at, updated_at, deleted_at`

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID,
		&j.CompanyID,
		&j.ProjectID,
		&j.JobTypeID,
		&j.Title,
		&j.Status,
		&j.EstimatedHours,
		&j.EstimatedCost,
		&j.Revenue,
		&j.DueDate,
		&j.CompletedAt,
		&j.CreatedAt,
		&j.UpdatedAt,
		&j.DeletedAt,
	)
	return j, err
}

// GetByID implements job.JobRepository.
func (r *jobRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	j, err := scanJob(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// Create implements job.JobRepository.
func (r *jobRepositoryImpl) Create(ctx context.Context, newJob job.Job) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO jobs (
			company_id, project_id, job_type_id, title, status,
			estimated_hours, estimated_cost, revenue, due_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + jobColumns + `
	`

	j, err := scanJob(q.QueryRow(ctx, query,
		newJob.CompanyID,
		newJob.ProjectID,
		newJob.JobTypeID,
		newJob.Title,
		newJob.Status,
		newJob.EstimatedHours,
		newJob.EstimatedCost,
		newJob.Revenue,
		newJob.DueDate,
	))
	if err != nil {
		return job.Job{}, fmt.Errorf("failed to create job: %w", err)
	}
	return j, nil
}

// Update implements job.JobRepository. Setting status to completed stamps
// completed_at; the analytics engine keys revenue recognition off it.
func (r *jobRepositoryImpl) Update(ctx context.Context, id string, companyID string, req job.UpdateJobRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Status != nil {
		updates["status"] = *req.Status
		if *req.Status == string(job.StatusCompleted) {
			updates["completed_at"] = time.Now()
		}
	}
	if req.EstimatedHours != nil {
		updates["estimated_hours"] = *req.EstimatedHours
	}
	if req.Revenue != nil {
		updates["revenue"] = *req.Revenue
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for job update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+2)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE jobs SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND company_id = $%d AND deleted_at IS NULL RETURNING id", i, i+1)
	args = append(args, id, companyID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return job.ErrJobNotFound
		}
		return fmt.Errorf("failed to update job with id %s: %w", id, err)
	}
	return nil
}

// Delete implements job.JobRepository.
func (r *jobRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE jobs
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, id, companyID).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return job.ErrJobNotFound
		}
		return fmt.Errorf("failed to delete job with id %s: %w", id, err)
	}
	return nil
}

// GetByCompanyID implements job.JobRepository.
func (r *jobRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

type jobTypeRepositoryImpl struct {
	db *database.DB
}

func NewJobTypeRepository(db *database.DB) job.JobTypeRepository {
	return &jobTypeRepositoryImpl{db: db}
}

// GetByID implements job.JobTypeRepository.
func (r *jobTypeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (job.JobType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, default_hourly_rate, created_at, updated_at
		FROM job_types
		WHERE id = $1 AND company_id = $2
	`

	var jt job.JobType
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&jt.ID, &jt.CompanyID, &jt.Name, &jt.DefaultHourlyRate, &jt.CreatedAt, &jt.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return job.JobType{}, job.ErrJobTypeNotFound
		}
		return job.JobType{}, fmt.Errorf("failed to get job type: %w", err)
	}
	return jt, nil
}

// Create implements job.JobTypeRepository.
func (r *jobTypeRepositoryImpl) Create(ctx context.Context, newJobType job.JobType) (job.JobType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_types (company_id, name, default_hourly_rate)
		VALUES ($1, $2, $3)
		RETURNING id, company_id, name, default_hourly_rate, created_at, updated_at
	`

	var created job.JobType
	err := q.QueryRow(ctx, query, newJobType.CompanyID, newJobType.Name, newJobType.DefaultHourlyRate).Scan(
		&created.ID, &created.CompanyID, &created.Name, &created.DefaultHourlyRate,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return job.JobType{}, fmt.Errorf("failed to create job type: %w", err)
	}
	return created, nil
}

// GetByCompanyID implements job.JobTypeRepository.
func (r *jobTypeRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) ([]job.JobType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, default_hourly_rate, created_at, updated_at
		FROM job_types
		WHERE company_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list job types: %w", err)
	}
	defer rows.Close()

	var jobTypes []job.JobType
	for rows.Next() {
		var jt job.JobType
		if err := rows.Scan(&jt.ID, &jt.CompanyID, &jt.Name, &jt.DefaultHourlyRate, &jt.CreatedAt, &jt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job type: %w", err)
		}
		jobTypes = append(jobTypes, jt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobTypes, nil
}

package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

const workerColumns = `id, company_id, full_name, phone_number, role, hourly_wage, status,
	   created_at, updated_at, deleted_at`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID,
		&w.CompanyID,
		&w.FullName,
		&w.PhoneNumber,
		&w.Role,
		&w.HourlyWage,
		&w.Status,
		&w.CreatedAt,
		&w.UpdatedAt,
		&w.DeletedAt,
	)
	return w, err
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `
		FROM workers
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	w, err := scanWorker(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}
	return w, nil
}

// GetByPhoneNumber implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByPhoneNumber(ctx context.Context, companyID string, phoneNumber string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `
		FROM workers
		WHERE company_id = $1 AND phone_number = $2 AND deleted_at IS NULL
	`

	w, err := scanWorker(q.QueryRow(ctx, query, companyID, phoneNumber))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by phone: %w", err)
	}
	return w, nil
}

// Create implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Create(ctx context.Context, newWorker worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (company_id, full_name, phone_number, role, hourly_wage, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + workerColumns + `
	`

	w, err := scanWorker(q.QueryRow(ctx, query,
		newWorker.CompanyID,
		newWorker.FullName,
		newWorker.PhoneNumber,
		newWorker.Role,
		newWorker.HourlyWage,
		newWorker.Status,
	))
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}
	return w, nil
}

// Update implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Update(ctx context.Context, id string, companyID string, req worker.UpdateWorkerRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.HourlyWage != nil {
		updates["hourly_wage"] = *req.HourlyWage
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for worker update")
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

	sql := "UPDATE workers SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND company_id = $%d AND deleted_at IS NULL RETURNING id", i, i+1)
	args = append(args, id, companyID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return worker.ErrWorkerNotFound
		}
		return fmt.Errorf("failed to update worker with id %s: %w", id, err)
	}
	return nil
}

// Delete implements worker.WorkerRepository. Soft delete keeps historical
// time entries attributable.
func (r *workerRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET deleted_at = NOW(), status = 'inactive', updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, id, companyID).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return worker.ErrWorkerNotFound
		}
		return fmt.Errorf("failed to delete worker with id %s: %w", id, err)
	}
	return nil
}

// GetByCompanyID implements worker.WorkerRepository. All non-deleted
// workers regardless of status, so invited workers show up in the roster.
func (r *workerRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `
		FROM workers
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}

// GetActiveByCompanyID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetActiveByCompanyID(ctx context.Context, companyID string) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `
		FROM workers
		WHERE company_id = $1 AND status = 'active' AND deleted_at IS NULL
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}

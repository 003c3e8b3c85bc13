package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/opportunity-service/internal/domain"
)

// JobRepository defines persistence access for job listings.
type JobRepository interface {
	Create(ctx context.Context, j *domain.Job) error
	Update(ctx context.Context, j *domain.Job) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
	ListActive(ctx context.Context) ([]domain.Job, error)
	Search(ctx context.Context, term string) ([]domain.Job, error)
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository returns a Postgres-backed implementation.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

const jobColumns = `id, title, description, company, location, salary, is_active, created_by, created_at, updated_at`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	if err := row.Scan(
		&j.ID,
		&j.Title,
		&j.Description,
		&j.Company,
		&j.Location,
		&j.Salary,
		&j.IsActive,
		&j.CreatedBy,
		&j.CreatedAt,
		&j.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &j, nil
}

func scanJobRows(rows pgx.Rows) ([]domain.Job, error) {
	defer rows.Close()
	items := make([]domain.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *j)
	}
	return items, rows.Err()
}

func (r *jobRepository) Create(ctx context.Context, j *domain.Job) error {
	const query = `
        INSERT INTO jobs (title, description, company, location, salary, is_active, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		j.Title,
		j.Description,
		j.Company,
		j.Location,
		j.Salary,
		j.IsActive,
		j.CreatedBy,
	).Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt)
}

func (r *jobRepository) Update(ctx context.Context, j *domain.Job) error {
	const query = `
        UPDATE jobs SET title=$1, description=$2, company=$3, location=$4,
            salary=$5, is_active=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		j.Title,
		j.Description,
		j.Company,
		j.Location,
		j.Salary,
		j.IsActive,
		j.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id=$1`, id)
	return err
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	return scanJob(r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id=$1`, id))
}

func (r *jobRepository) List(ctx context.Context) ([]domain.Job, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanJobRows(rows)
}

func (r *jobRepository) ListActive(ctx context.Context) ([]domain.Job, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE is_active = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanJobRows(rows)
}

func (r *jobRepository) Search(ctx context.Context, term string) ([]domain.Job, error) {
	const query = `
        SELECT ` + jobColumns + ` FROM jobs
        WHERE is_active = TRUE AND (
            title ILIKE '%' || $1 || '%'
            OR description ILIKE '%' || $1 || '%'
            OR company ILIKE '%' || $1 || '%'
            OR location ILIKE '%' || $1 || '%'
        )
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, term)
	if err != nil {
		return nil, err
	}
	return scanJobRows(rows)
}

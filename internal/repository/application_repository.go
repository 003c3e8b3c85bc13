package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/opportunity-service/internal/domain"
)

// ApplicationRepository defines persistence access for applications.
type ApplicationRepository interface {
	Create(ctx context.Context, a *domain.Application) error
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Application, error)
	List(ctx context.Context) ([]domain.Application, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository returns a Postgres-backed implementation.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationColumns = `id, user_id, scholarship_id, job_id, status, submitted_at, updated_at`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var a domain.Application
	if err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.ScholarshipID,
		&a.JobID,
		&a.Status,
		&a.SubmittedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func scanApplicationRows(rows pgx.Rows) ([]domain.Application, error) {
	defer rows.Close()
	items := make([]domain.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

func (r *applicationRepository) Create(ctx context.Context, a *domain.Application) error {
	const query = `
        INSERT INTO applications (user_id, scholarship_id, job_id, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, submitted_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		a.UserID,
		a.ScholarshipID,
		a.JobID,
		a.Status,
	).Scan(&a.ID, &a.SubmittedAt, &a.UpdatedAt)
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	const query = `
        UPDATE applications SET status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING ` + applicationColumns

	return scanApplication(r.pool.QueryRow(ctx, query, status, id))
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id=$1`, id)
	return err
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	return scanApplication(r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id=$1`, id))
}

func (r *applicationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE user_id=$1 ORDER BY submitted_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return scanApplicationRows(rows)
}

func (r *applicationRepository) List(ctx context.Context) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+applicationColumns+` FROM applications ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanApplicationRows(rows)
}

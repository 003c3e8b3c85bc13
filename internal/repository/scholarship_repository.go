package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/opportunity-service/internal/domain"
)

// ScholarshipRepository defines persistence access for scholarships.
type ScholarshipRepository interface {
	Create(ctx context.Context, s *domain.Scholarship) error
	Update(ctx context.Context, s *domain.Scholarship) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Scholarship, error)
	List(ctx context.Context) ([]domain.Scholarship, error)
	ListActive(ctx context.Context) ([]domain.Scholarship, error)
	Search(ctx context.Context, term string) ([]domain.Scholarship, error)
}

type scholarshipRepository struct {
	pool *pgxpool.Pool
}

// NewScholarshipRepository returns a Postgres-backed implementation.
func NewScholarshipRepository(pool *pgxpool.Pool) ScholarshipRepository {
	return &scholarshipRepository{pool: pool}
}

const scholarshipColumns = `id, title, description, institution, country, amount, deadline, is_active, created_by, created_at, updated_at`

func scanScholarship(row pgx.Row) (*domain.Scholarship, error) {
	var s domain.Scholarship
	if err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Description,
		&s.Institution,
		&s.Country,
		&s.Amount,
		&s.Deadline,
		&s.IsActive,
		&s.CreatedBy,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanScholarshipRows(rows pgx.Rows) ([]domain.Scholarship, error) {
	defer rows.Close()
	items := make([]domain.Scholarship, 0)
	for rows.Next() {
		s, err := scanScholarship(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	return items, rows.Err()
}

func (r *scholarshipRepository) Create(ctx context.Context, s *domain.Scholarship) error {
	const query = `
        INSERT INTO scholarships (title, description, institution, country, amount, deadline, is_active, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		s.Title,
		s.Description,
		s.Institution,
		s.Country,
		s.Amount,
		s.Deadline,
		s.IsActive,
		s.CreatedBy,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *scholarshipRepository) Update(ctx context.Context, s *domain.Scholarship) error {
	const query = `
        UPDATE scholarships SET title=$1, description=$2, institution=$3, country=$4,
            amount=$5, deadline=$6, is_active=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		s.Title,
		s.Description,
		s.Institution,
		s.Country,
		s.Amount,
		s.Deadline,
		s.IsActive,
		s.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *scholarshipRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM scholarships WHERE id=$1`, id)
	return err
}

func (r *scholarshipRepository) GetByID(ctx context.Context, id string) (*domain.Scholarship, error) {
	return scanScholarship(r.pool.QueryRow(ctx, `SELECT `+scholarshipColumns+` FROM scholarships WHERE id=$1`, id))
}

func (r *scholarshipRepository) List(ctx context.Context) ([]domain.Scholarship, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+scholarshipColumns+` FROM scholarships ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanScholarshipRows(rows)
}

func (r *scholarshipRepository) ListActive(ctx context.Context) ([]domain.Scholarship, error) {
	const query = `
        SELECT ` + scholarshipColumns + ` FROM scholarships
        WHERE is_active = TRUE AND deadline > NOW()
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanScholarshipRows(rows)
}

func (r *scholarshipRepository) Search(ctx context.Context, term string) ([]domain.Scholarship, error) {
	const query = `
        SELECT ` + scholarshipColumns + ` FROM scholarships
        WHERE is_active = TRUE AND (
            title ILIKE '%' || $1 || '%'
            OR description ILIKE '%' || $1 || '%'
            OR institution ILIKE '%' || $1 || '%'
            OR country ILIKE '%' || $1 || '%'
        )
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, term)
	if err != nil {
		return nil, err
	}
	return scanScholarshipRows(rows)
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/opportunity-service/internal/domain"
)

// TestimonialRepository defines persistence access for testimonials.
type TestimonialRepository interface {
	Create(ctx context.Context, t *domain.Testimonial) error
	Update(ctx context.Context, t *domain.Testimonial) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Testimonial, error)
	List(ctx context.Context) ([]domain.Testimonial, error)
	ListApproved(ctx context.Context) ([]domain.Testimonial, error)
}

type testimonialRepository struct {
	pool *pgxpool.Pool
}

// NewTestimonialRepository returns a Postgres-backed implementation.
func NewTestimonialRepository(pool *pgxpool.Pool) TestimonialRepository {
	return &testimonialRepository{pool: pool}
}

const testimonialColumns = `id, name, content, is_approved, created_at, updated_at`

func scanTestimonial(row pgx.Row) (*domain.Testimonial, error) {
	var t domain.Testimonial
	if err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Content,
		&t.IsApproved,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTestimonialRows(rows pgx.Rows) ([]domain.Testimonial, error) {
	defer rows.Close()
	items := make([]domain.Testimonial, 0)
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

func (r *testimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	const query = `
        INSERT INTO testimonials (name, content, is_approved)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query, t.Name, t.Content, t.IsApproved).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *testimonialRepository) Update(ctx context.Context, t *domain.Testimonial) error {
	const query = `
        UPDATE testimonials SET name=$1, content=$2, is_approved=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query, t.Name, t.Content, t.IsApproved, t.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id=$1`, id)
	return err
}

func (r *testimonialRepository) GetByID(ctx context.Context, id string) (*domain.Testimonial, error) {
	return scanTestimonial(r.pool.QueryRow(ctx, `SELECT `+testimonialColumns+` FROM testimonials WHERE id=$1`, id))
}

func (r *testimonialRepository) List(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+testimonialColumns+` FROM testimonials ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanTestimonialRows(rows)
}

func (r *testimonialRepository) ListApproved(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE is_approved = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanTestimonialRows(rows)
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/opportunity-service/internal/domain"
)

// BlogPostRepository defines persistence access for blog posts.
type BlogPostRepository interface {
	Create(ctx context.Context, p *domain.BlogPost) error
	Update(ctx context.Context, p *domain.BlogPost) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	List(ctx context.Context) ([]domain.BlogPost, error)
	ListPublished(ctx context.Context) ([]domain.BlogPost, error)
}

type blogPostRepository struct {
	pool *pgxpool.Pool
}

// NewBlogPostRepository returns a Postgres-backed implementation.
func NewBlogPostRepository(pool *pgxpool.Pool) BlogPostRepository {
	return &blogPostRepository{pool: pool}
}

const blogPostColumns = `id, title, content, is_published, created_by, created_at, updated_at`

func scanBlogPost(row pgx.Row) (*domain.BlogPost, error) {
	var p domain.BlogPost
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.IsPublished,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanBlogPostRows(rows pgx.Rows) ([]domain.BlogPost, error) {
	defer rows.Close()
	items := make([]domain.BlogPost, 0)
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

func (r *blogPostRepository) Create(ctx context.Context, p *domain.BlogPost) error {
	const query = `
        INSERT INTO blog_posts (title, content, is_published, created_by)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		p.Title,
		p.Content,
		p.IsPublished,
		p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *blogPostRepository) Update(ctx context.Context, p *domain.BlogPost) error {
	const query = `
        UPDATE blog_posts SET title=$1, content=$2, is_published=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query, p.Title, p.Content, p.IsPublished, p.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *blogPostRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id=$1`, id)
	return err
}

func (r *blogPostRepository) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	return scanBlogPost(r.pool.QueryRow(ctx, `SELECT `+blogPostColumns+` FROM blog_posts WHERE id=$1`, id))
}

func (r *blogPostRepository) List(ctx context.Context) ([]domain.BlogPost, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+blogPostColumns+` FROM blog_posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanBlogPostRows(rows)
}

func (r *blogPostRepository) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+blogPostColumns+` FROM blog_posts WHERE is_published = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanBlogPostRows(rows)
}

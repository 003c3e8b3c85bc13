package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/opportunity-service/internal/domain"
)

// ActivityRepository defines persistence access for the analytics log.
type ActivityRepository interface {
	Log(ctx context.Context, rec *domain.ActivityRecord) error
	List(ctx context.Context, from, to *time.Time) ([]domain.ActivityRecord, error)
	Summary(ctx context.Context) (*domain.ActivitySummary, error)
}

type activityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository returns a Postgres-backed implementation.
func NewActivityRepository(pool *pgxpool.Pool) ActivityRepository {
	return &activityRepository{pool: pool}
}

func (r *activityRepository) Log(ctx context.Context, rec *domain.ActivityRecord) error {
	var metadata []byte
	if rec.Metadata != nil {
		encoded, err := json.Marshal(rec.Metadata)
		if err != nil {
			return err
		}
		metadata = encoded
	}

	const query = `
        INSERT INTO activity_log (event, user_id, metadata)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query, rec.Event, rec.UserID, metadata).
		Scan(&rec.ID, &rec.CreatedAt)
}

func (r *activityRepository) List(ctx context.Context, from, to *time.Time) ([]domain.ActivityRecord, error) {
	query := `SELECT id, event, user_id, metadata, created_at FROM activity_log`
	args := []any{}
	if from != nil && to != nil {
		query += ` WHERE created_at >= $1 AND created_at <= $2`
		args = append(args, *from, *to)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.ActivityRecord, 0)
	for rows.Next() {
		var rec domain.ActivityRecord
		var metadata []byte
		if err := rows.Scan(&rec.ID, &rec.Event, &rec.UserID, &metadata, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &rec.Metadata); err != nil {
				return nil, err
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *activityRepository) Summary(ctx context.Context) (*domain.ActivitySummary, error) {
	const query = `
        SELECT
            (SELECT COUNT(*) FROM users),
            (SELECT COUNT(*) FROM scholarships),
            (SELECT COUNT(*) FROM jobs),
            (SELECT COUNT(*) FROM applications),
            (SELECT COUNT(*) FROM testimonials WHERE is_approved = TRUE),
            (SELECT COUNT(*) FROM blog_posts WHERE is_published = TRUE)`

	var s domain.ActivitySummary
	if err := r.pool.QueryRow(ctx, query).Scan(
		&s.TotalUsers,
		&s.TotalScholarships,
		&s.TotalJobs,
		&s.TotalApplications,
		&s.ApprovedTestimonial,
		&s.PublishedBlogPosts,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

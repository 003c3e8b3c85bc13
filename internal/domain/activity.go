package domain

import "time"

// ActivityRecord is an append-only analytics entry for notable actions.
type ActivityRecord struct {
	ID        string         `json:"id"`
	Event     string         `json:"event"`
	UserID    *string        `json:"userId,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// ActivitySummary aggregates row counts for the admin dashboard.
type ActivitySummary struct {
	TotalUsers          int64 `json:"totalUsers"`
	TotalScholarships   int64 `json:"totalScholarships"`
	TotalJobs           int64 `json:"totalJobs"`
	TotalApplications   int64 `json:"totalApplications"`
	ApprovedTestimonial int64 `json:"approvedTestimonials"`
	PublishedBlogPosts  int64 `json:"publishedBlogPosts"`
}

package domain

import "time"

// Scholarship is a funding opportunity published by admins.
type Scholarship struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Institution string    `json:"institution"`
	Country     string    `json:"country"`
	Amount      string    `json:"amount"`
	Deadline    time.Time `json:"deadline"`
	IsActive    bool      `json:"isActive"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

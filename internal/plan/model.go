package plan

import "time"

// Plan is a catalog entry. Price is stored in cents.
type Plan struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Description    *string   `db:"description" json:"description,omitempty"`
	PriceCents     int64     `db:"price_cents" json:"price_cents"`
	DurationMonths int       `db:"duration_months" json:"duration_months"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type CreatePlanRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    *string `json:"description"`
	PriceCents     int64   `json:"price_cents" binding:"required,gte=0"`
	DurationMonths int     `json:"duration_months" binding:"required,min=1"`
}

type UpdatePlanRequest struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	PriceCents     *int64  `json:"price_cents" binding:"omitempty,gte=0"`
	DurationMonths *int    `json:"duration_months" binding:"omitempty,min=1"`
	IsActive       *bool   `json:"is_active"`
}

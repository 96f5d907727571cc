package plan

import "context"

type Repository interface {
	Create(ctx context.Context, name string, description *string, priceCents int64, durationMonths int) (*Plan, error)
	GetByID(ctx context.Context, id int) (*Plan, error)
	List(ctx context.Context, onlyActive bool) ([]Plan, error)
	Update(ctx context.Context, id int, req UpdatePlanRequest) (*Plan, error)
	Delete(ctx context.Context, id int) error
	CountActiveMemberships(ctx context.Context, planID int) (int, error)
}

package plan

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("plan not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name string, description *string, priceCents int64, durationMonths int) (*Plan, error) {
	query := `
		INSERT INTO plans (name, description, price_cents, duration_months)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, price_cents, duration_months, is_active, created_at, updated_at
	`

	var p Plan
	err := r.db.GetContext(ctx, &p, query, name, description, priceCents, durationMonths)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Plan, error) {
	query := `
		SELECT id, name, description, price_cents, duration_months, is_active, created_at, updated_at
		FROM plans
		WHERE id = $1
	`

	var p Plan
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *repository) List(ctx context.Context, onlyActive bool) ([]Plan, error) {
	query := `
		SELECT id, name, description, price_cents, duration_months, is_active, created_at, updated_at
		FROM plans
	`
	if onlyActive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY price_cents ASC`

	plans := []Plan{}
	err := r.db.SelectContext(ctx, &plans, query)
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *repository) Update(ctx context.Context, id int, req UpdatePlanRequest) (*Plan, error) {
	query := `
		UPDATE plans
		SET name            = COALESCE($2, name),
		    description     = COALESCE($3, description),
		    price_cents     = COALESCE($4, price_cents),
		    duration_months = COALESCE($5, duration_months),
		    is_active       = COALESCE($6, is_active),
		    updated_at      = NOW()
		WHERE id = $1
		RETURNING id, name, description, price_cents, duration_months, is_active, created_at, updated_at
	`

	var p Plan
	err := r.db.GetContext(ctx, &p, query, id, req.Name, req.Description, req.PriceCents, req.DurationMonths, req.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &p, nil
}

// Delete removes the plan together with the student_plans rows that still
// reference it. The service layer refuses while any reference is active, so
// only inactive/expired history is swept here; without the sweep the FK on
// student_plans.plan_id would reject the delete.
func (r *repository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM student_plans WHERE plan_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

func (r *repository) CountActiveMemberships(ctx context.Context, planID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM student_plans WHERE plan_id = $1 AND status = 'active'`,
		planID,
	)
	if err != nil {
		return 0, err
	}

	return count, nil
}

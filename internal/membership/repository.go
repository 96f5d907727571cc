package membership

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound        = errors.New("membership not found")
	ErrNoActiveForUser = errors.New("no active membership for student")
)

const membershipColumns = `id, student_id, plan_id, start_date, end_date, status, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, studentID, planID int, startDate, endDate time.Time) (*Membership, error) {
	query := `
		INSERT INTO student_plans (student_id, plan_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, 'active')
		RETURNING ` + membershipColumns

	var m Membership
	err := r.db.GetContext(ctx, &m, query, studentID, planID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM student_plans WHERE id = $1`

	var m Membership
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &m, nil
}

// GetActiveByStudent returns the single membership flagged 'active'.
// Historical rows are ignored regardless of their dates.
func (r *repository) GetActiveByStudent(ctx context.Context, studentID int) (*MembershipWithPlan, error) {
	query := `
		SELECT sp.id, sp.student_id, sp.plan_id, sp.start_date, sp.end_date, sp.status,
		       sp.created_at, sp.updated_at,
		       p.name AS plan_name, p.duration_months, p.price_cents
		FROM student_plans sp
		JOIN plans p ON p.id = sp.plan_id
		WHERE sp.student_id = $1 AND sp.status = 'active'
		ORDER BY sp.created_at DESC
		LIMIT 1
	`

	var m MembershipWithPlan
	err := r.db.GetContext(ctx, &m, query, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoActiveForUser
		}
		return nil, err
	}

	return &m, nil
}

func (r *repository) ListByStudent(ctx context.Context, studentID int) ([]MembershipWithPlan, error) {
	query := `
		SELECT sp.id, sp.student_id, sp.plan_id, sp.start_date, sp.end_date, sp.status,
		       sp.created_at, sp.updated_at,
		       p.name AS plan_name, p.duration_months, p.price_cents
		FROM student_plans sp
		JOIN plans p ON p.id = sp.plan_id
		WHERE sp.student_id = $1
		ORDER BY sp.start_date DESC
	`

	memberships := []MembershipWithPlan{}
	err := r.db.SelectContext(ctx, &memberships, query, studentID)
	if err != nil {
		return nil, err
	}

	return memberships, nil
}

func (r *repository) ListAll(ctx context.Context) ([]MembershipWithDetails, error) {
	query := `
		SELECT sp.id, sp.student_id, sp.plan_id, sp.start_date, sp.end_date, sp.status,
		       sp.created_at, sp.updated_at,
		       p.name AS plan_name, p.duration_months, p.price_cents,
		       pr.full_name AS student_name
		FROM student_plans sp
		JOIN plans p ON p.id = sp.plan_id
		JOIN profiles pr ON pr.id = sp.student_id
		ORDER BY sp.created_at DESC
	`

	memberships := []MembershipWithDetails{}
	err := r.db.SelectContext(ctx, &memberships, query)
	if err != nil {
		return nil, err
	}

	return memberships, nil
}

func (r *repository) Update(ctx context.Context, id int, startDate, endDate *time.Time, status *string) (*Membership, error) {
	query := `
		UPDATE student_plans
		SET start_date = COALESCE($2, start_date),
		    end_date   = COALESCE($3, end_date),
		    status     = COALESCE($4, status),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + membershipColumns

	var m Membership
	err := r.db.GetContext(ctx, &m, query, id, startDate, endDate, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &m, nil
}

func (r *repository) BulkUpdateStatus(ctx context.Context, ids []int, status string) (int64, error) {
	query, args, err := sqlx.In(
		`UPDATE student_plans SET status = ?, updated_at = NOW() WHERE id IN (?)`,
		status, ids,
	)
	if err != nil {
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// DeactivateForStudent flips any currently active membership to 'inactive'
// so a new assignment keeps at most one active row per student.
func (r *repository) DeactivateForStudent(ctx context.Context, studentID int) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE student_plans
		SET status = 'inactive', updated_at = NOW()
		WHERE student_id = $1 AND status = 'active'
	`, studentID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *repository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM student_plans WHERE status = $1`, status)
	if err != nil {
		return 0, err
	}

	return count, nil
}

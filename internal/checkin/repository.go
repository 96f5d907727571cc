package checkin

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("check-in not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, studentID int, at time.Time) (*CheckIn, error) {
	query := `
		INSERT INTO check_ins (student_id, checked_in_at)
		VALUES ($1, $2)
		RETURNING id, student_id, checked_in_at, created_at
	`

	var ci CheckIn
	err := r.db.GetContext(ctx, &ci, query, studentID, at)
	if err != nil {
		return nil, err
	}

	return &ci, nil
}

func (r *repository) ListByStudent(ctx context.Context, studentID int) ([]CheckIn, error) {
	query := `
		SELECT id, student_id, checked_in_at, created_at
		FROM check_ins
		WHERE student_id = $1
		ORDER BY checked_in_at DESC
	`

	checkins := []CheckIn{}
	err := r.db.SelectContext(ctx, &checkins, query, studentID)
	if err != nil {
		return nil, err
	}

	return checkins, nil
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]CheckInWithStudent, error) {
	query := `
		SELECT c.id, c.student_id, c.checked_in_at, c.created_at,
		       p.full_name AS student_name
		FROM check_ins c
		JOIN profiles p ON p.id = c.student_id
		ORDER BY c.checked_in_at DESC
		LIMIT $1
	`

	checkins := []CheckInWithStudent{}
	err := r.db.SelectContext(ctx, &checkins, query, limit)
	if err != nil {
		return nil, err
	}

	return checkins, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM check_ins WHERE id = $1`, id)
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

	return nil
}

func (r *repository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM check_ins WHERE checked_in_at >= $1`, since)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) StatsByDay(ctx context.Context, from, to time.Time) ([]DailyCount, error) {
	query := `
		SELECT DATE(checked_in_at) AS day, COUNT(*) AS count
		FROM check_ins
		WHERE checked_in_at BETWEEN $1 AND $2
		GROUP BY DATE(checked_in_at)
		ORDER BY day
	`

	stats := []DailyCount{}
	err := r.db.SelectContext(ctx, &stats, query, from, to)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

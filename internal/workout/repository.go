package workout

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrSheetNotFound    = errors.New("workout sheet not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)

const sheetColumns = `id, student_id, created_by, name, description, is_active, created_at, updated_at`

const exerciseColumns = `id, workout_sheet_id, name, muscle_group, sets, reps, weight, rest_time, instructions, order_index`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateSheet(ctx context.Context, studentID, createdBy int, name string, description *string) (*WorkoutSheet, error) {
	query := `
		INSERT INTO workout_sheets (student_id, created_by, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + sheetColumns

	var s WorkoutSheet
	err := r.db.GetContext(ctx, &s, query, studentID, createdBy, name, description)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) GetSheet(ctx context.Context, id int) (*WorkoutSheet, error) {
	query := `SELECT ` + sheetColumns + ` FROM workout_sheets WHERE id = $1`

	var s WorkoutSheet
	err := r.db.GetContext(ctx, &s, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSheetNotFound
		}
		return nil, err
	}

	return &s, nil
}

func (r *repository) ListSheetsByStudent(ctx context.Context, studentID int) ([]WorkoutSheet, error) {
	query := `
		SELECT ` + sheetColumns + `
		FROM workout_sheets
		WHERE student_id = $1
		ORDER BY created_at DESC
	`

	sheets := []WorkoutSheet{}
	err := r.db.SelectContext(ctx, &sheets, query, studentID)
	if err != nil {
		return nil, err
	}

	return sheets, nil
}

func (r *repository) ListSheets(ctx context.Context) ([]WorkoutSheet, error) {
	query := `SELECT ` + sheetColumns + ` FROM workout_sheets ORDER BY created_at DESC`

	sheets := []WorkoutSheet{}
	err := r.db.SelectContext(ctx, &sheets, query)
	if err != nil {
		return nil, err
	}

	return sheets, nil
}

func (r *repository) UpdateSheet(ctx context.Context, id int, req UpdateSheetRequest) (*WorkoutSheet, error) {
	query := `
		UPDATE workout_sheets
		SET name        = COALESCE($2, name),
		    description = COALESCE($3, description),
		    is_active   = COALESCE($4, is_active),
		    updated_at  = NOW()
		WHERE id = $1
		RETURNING ` + sheetColumns

	var s WorkoutSheet
	err := r.db.GetContext(ctx, &s, query, id, req.Name, req.Description, req.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSheetNotFound
		}
		return nil, err
	}

	return &s, nil
}

// DeleteSheet removes the sheet; its exercises go with it via ON DELETE CASCADE.
func (r *repository) DeleteSheet(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM workout_sheets WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSheetNotFound
	}

	return nil
}

func (r *repository) CreateExercise(ctx context.Context, sheetID int, req CreateExerciseRequest, orderIndex int) (*Exercise, error) {
	query := `
		INSERT INTO exercises (workout_sheet_id, name, muscle_group, sets, reps, weight, rest_time, instructions, order_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + exerciseColumns

	var e Exercise
	err := r.db.GetContext(ctx, &e, query,
		sheetID, req.Name, req.MuscleGroup, req.Sets, req.Reps, req.Weight, req.RestTime, req.Instructions, orderIndex)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *repository) GetExercise(ctx context.Context, id int) (*Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE id = $1`

	var e Exercise
	err := r.db.GetContext(ctx, &e, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	return &e, nil
}

func (r *repository) ListExercises(ctx context.Context, sheetID int) ([]Exercise, error) {
	query := `
		SELECT ` + exerciseColumns + `
		FROM exercises
		WHERE workout_sheet_id = $1
		ORDER BY order_index ASC, id ASC
	`

	exercises := []Exercise{}
	err := r.db.SelectContext(ctx, &exercises, query, sheetID)
	if err != nil {
		return nil, err
	}

	return exercises, nil
}

func (r *repository) UpdateExercise(ctx context.Context, id int, req UpdateExerciseRequest) (*Exercise, error) {
	query := `
		UPDATE exercises
		SET name         = COALESCE($2, name),
		    muscle_group = COALESCE($3, muscle_group),
		    sets         = COALESCE($4, sets),
		    reps         = COALESCE($5, reps),
		    weight       = COALESCE($6, weight),
		    rest_time    = COALESCE($7, rest_time),
		    instructions = COALESCE($8, instructions),
		    order_index  = COALESCE($9, order_index)
		WHERE id = $1
		RETURNING ` + exerciseColumns

	var e Exercise
	err := r.db.GetContext(ctx, &e, query,
		id, req.Name, req.MuscleGroup, req.Sets, req.Reps, req.Weight, req.RestTime, req.Instructions, req.OrderIndex)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	return &e, nil
}

func (r *repository) DeleteExercise(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM exercises WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrExerciseNotFound
	}

	return nil
}

func (r *repository) NextOrderIndex(ctx context.Context, sheetID int) (int, error) {
	var next int
	err := r.db.GetContext(ctx, &next,
		`SELECT COALESCE(MAX(order_index), -1) + 1 FROM exercises WHERE workout_sheet_id = $1`, sheetID)
	if err != nil {
		return 0, err
	}

	return next, nil
}

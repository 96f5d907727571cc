package workout

import "time"

type WorkoutSheet struct {
	ID          int       `db:"id" json:"id"`
	StudentID   int       `db:"student_id" json:"student_id"`
	CreatedBy   int       `db:"created_by" json:"created_by"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Exercise rows are ordered within a sheet by OrderIndex; the prescription
// fields are free-form text so admins can write "3x12" or "até a falha".
type Exercise struct {
	ID             int     `db:"id" json:"id"`
	WorkoutSheetID int     `db:"workout_sheet_id" json:"workout_sheet_id"`
	Name           string  `db:"name" json:"name"`
	MuscleGroup    *string `db:"muscle_group" json:"muscle_group,omitempty"`
	Sets           *int    `db:"sets" json:"sets,omitempty"`
	Reps           *string `db:"reps" json:"reps,omitempty"`
	Weight         *string `db:"weight" json:"weight,omitempty"`
	RestTime       *string `db:"rest_time" json:"rest_time,omitempty"`
	Instructions   *string `db:"instructions" json:"instructions,omitempty"`
	OrderIndex     int     `db:"order_index" json:"order_index"`
}

type SheetWithExercises struct {
	WorkoutSheet
	Exercises []Exercise `json:"exercises"`
}

type CreateSheetRequest struct {
	StudentID   int     `json:"student_id" binding:"required"`
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Description *string `json:"description"`
}

type UpdateSheetRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type CreateExerciseRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=100"`
	MuscleGroup  *string `json:"muscle_group"`
	Sets         *int    `json:"sets" binding:"omitempty,min=1"`
	Reps         *string `json:"reps"`
	Weight       *string `json:"weight"`
	RestTime     *string `json:"rest_time"`
	Instructions *string `json:"instructions"`
	OrderIndex   *int    `json:"order_index" binding:"omitempty,min=0"`
}

type UpdateExerciseRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=2,max=100"`
	MuscleGroup  *string `json:"muscle_group"`
	Sets         *int    `json:"sets" binding:"omitempty,min=1"`
	Reps         *string `json:"reps"`
	Weight       *string `json:"weight"`
	RestTime     *string `json:"rest_time"`
	Instructions *string `json:"instructions"`
	OrderIndex   *int    `json:"order_index" binding:"omitempty,min=0"`
}

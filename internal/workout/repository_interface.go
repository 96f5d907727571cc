package workout

import "context"

type Repository interface {
	CreateSheet(ctx context.Context, studentID, createdBy int, name string, description *string) (*WorkoutSheet, error)
	GetSheet(ctx context.Context, id int) (*WorkoutSheet, error)
	ListSheetsByStudent(ctx context.Context, studentID int) ([]WorkoutSheet, error)
	ListSheets(ctx context.Context) ([]WorkoutSheet, error)
	UpdateSheet(ctx context.Context, id int, req UpdateSheetRequest) (*WorkoutSheet, error)
	DeleteSheet(ctx context.Context, id int) error

	CreateExercise(ctx context.Context, sheetID int, req CreateExerciseRequest, orderIndex int) (*Exercise, error)
	GetExercise(ctx context.Context, id int) (*Exercise, error)
	ListExercises(ctx context.Context, sheetID int) ([]Exercise, error)
	UpdateExercise(ctx context.Context, id int, req UpdateExerciseRequest) (*Exercise, error)
	DeleteExercise(ctx context.Context, id int) error
	NextOrderIndex(ctx context.Context, sheetID int) (int, error)
}

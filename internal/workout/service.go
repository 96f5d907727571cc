package workout

import (
	"context"
	"errors"

	"github.com/kalebesantos/kgym/internal/profile"
)

var ErrStudentNotFound = errors.New("student not found")

type Service interface {
	CreateSheet(ctx context.Context, createdBy int, req CreateSheetRequest) (*WorkoutSheet, error)
	GetSheet(ctx context.Context, id int) (*SheetWithExercises, error)
	ListSheets(ctx context.Context) ([]WorkoutSheet, error)
	ListForStudent(ctx context.Context, studentID int) ([]SheetWithExercises, error)
	UpdateSheet(ctx context.Context, id int, req UpdateSheetRequest) (*WorkoutSheet, error)
	DeleteSheet(ctx context.Context, id int) error

	AddExercise(ctx context.Context, sheetID int, req CreateExerciseRequest) (*Exercise, error)
	UpdateExercise(ctx context.Context, id int, req UpdateExerciseRequest) (*Exercise, error)
	DeleteExercise(ctx context.Context, id int) error
}

type service struct {
	repo        Repository
	profileRepo profile.Repository
}

func NewService(repo Repository, profileRepo profile.Repository) Service {
	return &service{repo: repo, profileRepo: profileRepo}
}

func (s *service) CreateSheet(ctx context.Context, createdBy int, req CreateSheetRequest) (*WorkoutSheet, error) {
	student, err := s.profileRepo.FindByID(ctx, req.StudentID)
	if err != nil || student.Role != profile.RoleStudent {
		return nil, ErrStudentNotFound
	}

	return s.repo.CreateSheet(ctx, req.StudentID, createdBy, req.Name, req.Description)
}

func (s *service) GetSheet(ctx context.Context, id int) (*SheetWithExercises, error) {
	sheet, err := s.repo.GetSheet(ctx, id)
	if err != nil {
		return nil, err
	}

	exercises, err := s.repo.ListExercises(ctx, id)
	if err != nil {
		return nil, err
	}

	return &SheetWithExercises{WorkoutSheet: *sheet, Exercises: exercises}, nil
}

func (s *service) ListSheets(ctx context.Context) ([]WorkoutSheet, error) {
	return s.repo.ListSheets(ctx)
}

func (s *service) ListForStudent(ctx context.Context, studentID int) ([]SheetWithExercises, error) {
	sheets, err := s.repo.ListSheetsByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	result := make([]SheetWithExercises, 0, len(sheets))
	for _, sheet := range sheets {
		exercises, err := s.repo.ListExercises(ctx, sheet.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, SheetWithExercises{WorkoutSheet: sheet, Exercises: exercises})
	}

	return result, nil
}

func (s *service) UpdateSheet(ctx context.Context, id int, req UpdateSheetRequest) (*WorkoutSheet, error) {
	return s.repo.UpdateSheet(ctx, id, req)
}

func (s *service) DeleteSheet(ctx context.Context, id int) error {
	return s.repo.DeleteSheet(ctx, id)
}

// AddExercise appends to the end of the sheet unless the request pins an
// explicit order index.
func (s *service) AddExercise(ctx context.Context, sheetID int, req CreateExerciseRequest) (*Exercise, error) {
	if _, err := s.repo.GetSheet(ctx, sheetID); err != nil {
		return nil, err
	}

	orderIndex := 0
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	} else {
		next, err := s.repo.NextOrderIndex(ctx, sheetID)
		if err != nil {
			return nil, err
		}
		orderIndex = next
	}

	return s.repo.CreateExercise(ctx, sheetID, req, orderIndex)
}

func (s *service) UpdateExercise(ctx context.Context, id int, req UpdateExerciseRequest) (*Exercise, error) {
	return s.repo.UpdateExercise(ctx, id, req)
}

func (s *service) DeleteExercise(ctx context.Context, id int) error {
	return s.repo.DeleteExercise(ctx, id)
}

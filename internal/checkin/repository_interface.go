package checkin

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, studentID int, at time.Time) (*CheckIn, error)
	ListByStudent(ctx context.Context, studentID int) ([]CheckIn, error)
	ListRecent(ctx context.Context, limit int) ([]CheckInWithStudent, error)
	Delete(ctx context.Context, id int) error
	CountSince(ctx context.Context, since time.Time) (int, error)
	StatsByDay(ctx context.Context, from, to time.Time) ([]DailyCount, error)
}

package checkin

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dbx := sqlx.NewDb(db, "sqlmock")
	return NewRepository(dbx), mock, func() { db.Close() }
}

func checkinCols() []string {
	return []string{"id", "student_id", "checked_in_at", "created_at"}
}

func TestRepositoryCreate(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	at := time.Date(2024, 2, 5, 18, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO check_ins.*RETURNING id, student_id, checked_in_at, created_at`).
		WithArgs(5, at).
		WillReturnRows(sqlmock.NewRows(checkinCols()).AddRow(1, 5, at, at))

	ci, err := repo.Create(context.Background(), 5, at)
	assert.NoError(t, err)
	assert.Equal(t, 1, ci.ID)
	assert.Equal(t, 5, ci.StudentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListByStudent(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM check_ins.*WHERE student_id = \$1.*ORDER BY checked_in_at DESC`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(checkinCols()).
			AddRow(2, 5, now, now).
			AddRow(1, 5, now.Add(-24*time.Hour), now))

	checkins, err := repo.ListByStudent(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, checkins, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListRecent(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	now := time.Now()
	cols := append(checkinCols(), "student_name")
	mock.ExpectQuery(`SELECT .* FROM check_ins c.*JOIN profiles p.*LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(1, 5, now, now, "Maria Silva"))

	checkins, err := repo.ListRecent(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, checkins, 1)
	assert.Equal(t, "Maria Silva", checkins[0].StudentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDelete_NotFound(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectExec(`DELETE FROM check_ins WHERE id = \$1`).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCountSince(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	since := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM check_ins WHERE checked_in_at >= \$1`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountSince(context.Background(), since)
	assert.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryStatsByDay(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT DATE\(checked_in_at\) AS day, COUNT\(\*\) AS count.*GROUP BY DATE\(checked_in_at\).*ORDER BY day`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"day", "count"}).
			AddRow(from, 3).
			AddRow(from.AddDate(0, 0, 1), 5))

	stats, err := repo.StatsByDay(context.Background(), from, to)
	assert.NoError(t, err)
	assert.Len(t, stats, 2)
	assert.Equal(t, 3, stats[0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

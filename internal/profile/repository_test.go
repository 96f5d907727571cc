package profile

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

func userColumns() []string {
	return []string{"id", "email", "password_hash", "created_at"}
}

func profileColumns() []string {
	return []string{"id", "user_id", "full_name", "phone", "cpf", "role", "face_encoding", "photo_url", "created_at", "updated_at"}
}

func TestCreateUser(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`INSERT INTO users.*`).
		WithArgs("maria@example.com", "hash").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "maria@example.com", "hash", time.Now()))

	user, err := repo.CreateUser(context.Background(), "maria@example.com", "hash")
	assert.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailExists(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM users WHERE email = \$1\)`).
		WithArgs("maria@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "maria@example.com")
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProfile(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	cpf := "12345678900"
	mock.ExpectQuery(`INSERT INTO profiles.*`).
		WithArgs(1, "Maria Silva", "student", nil, cpf, nil).
		WillReturnRows(sqlmock.NewRows(profileColumns()).
			AddRow(5, 1, "Maria Silva", nil, cpf, "student", nil, nil, time.Now(), time.Now()))

	p, err := repo.CreateProfile(context.Background(), 1, "Maria Silva", "student", nil, &cpf, nil)
	assert.NoError(t, err)
	assert.Equal(t, 5, p.ID)
	assert.Equal(t, "student", p.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT .* FROM profiles WHERE id = \$1`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(profileColumns()))

	p, err := repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, p)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStudents_WithSearch(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	cols := append(profileColumns(), "email")
	mock.ExpectQuery(`SELECT .* FROM profiles p.*JOIN users u.*`).
		WithArgs("%Maria%").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(5, 1, "Maria Silva", nil, "12345678900", "student", nil, nil, time.Now(), time.Now(), "maria@example.com"))

	students, err := repo.ListStudents(context.Background(), "Maria")
	assert.NoError(t, err)
	assert.Len(t, students, 1)
	assert.Equal(t, "maria@example.com", students[0].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUser(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountStudents(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM profiles WHERE role = 'student'`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountStudents(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 12, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

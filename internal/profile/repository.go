package profile

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("profile not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateUser(ctx context.Context, email, passwordHash string) (*User, error) {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, email, password_hash, created_at
	`

	var user User
	err := r.db.GetContext(ctx, &user, query, email, passwordHash)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *repository) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *repository) FindUserByID(ctx context.Context, id int) (*User, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// DeleteUser removes the account row; profiles, memberships and check-ins
// follow through ON DELETE CASCADE.
func (r *repository) DeleteUser(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
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

func (r *repository) CreateProfile(ctx context.Context, userID int, fullName, role string, phone, cpf, photoURL *string) (*Profile, error) {
	query := `
		INSERT INTO profiles (user_id, full_name, role, phone, cpf, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, full_name, phone, cpf, role, face_encoding, photo_url, created_at, updated_at
	`

	var p Profile
	err := r.db.GetContext(ctx, &p, query, userID, fullName, role, phone, cpf, photoURL)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Profile, error) {
	query := `
		SELECT id, user_id, full_name, phone, cpf, role, face_encoding, photo_url, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var p Profile
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *repository) FindByUserID(ctx context.Context, userID int) (*Profile, error) {
	query := `
		SELECT id, user_id, full_name, phone, cpf, role, face_encoding, photo_url, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var p Profile
	err := r.db.GetContext(ctx, &p, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *repository) ListStudents(ctx context.Context, search string) ([]StudentRow, error) {
	query := `
		SELECT p.id, p.user_id, p.full_name, p.phone, p.cpf, p.role, p.face_encoding,
		       p.photo_url, p.created_at, p.updated_at, u.email
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.role = 'student'
	`
	args := []interface{}{}

	if search != "" {
		query += ` AND (p.full_name ILIKE $1 OR p.cpf LIKE $1)`
		args = append(args, "%"+search+"%")
	}

	query += ` ORDER BY p.full_name ASC`

	students := []StudentRow{}
	err := r.db.SelectContext(ctx, &students, query, args...)
	if err != nil {
		return nil, err
	}

	return students, nil
}

func (r *repository) UpdateProfile(ctx context.Context, id int, fullName *string, phone, photoURL, faceEncoding *string) (*Profile, error) {
	query := `
		UPDATE profiles
		SET full_name     = COALESCE($2, full_name),
		    phone         = COALESCE($3, phone),
		    photo_url     = COALESCE($4, photo_url),
		    face_encoding = COALESCE($5, face_encoding),
		    updated_at    = NOW()
		WHERE id = $1
		RETURNING id, user_id, full_name, phone, cpf, role, face_encoding, photo_url, created_at, updated_at
	`

	var p Profile
	err := r.db.GetContext(ctx, &p, query, id, fullName, phone, photoURL, faceEncoding)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *repository) CountStudents(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM profiles WHERE role = 'student'`)
	if err != nil {
		return 0, err
	}

	return count, nil
}

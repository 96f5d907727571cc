package profile

import "context"

type Repository interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	FindUserByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	DeleteUser(ctx context.Context, id int) error

	CreateProfile(ctx context.Context, userID int, fullName, role string, phone, cpf, photoURL *string) (*Profile, error)
	FindByID(ctx context.Context, id int) (*Profile, error)
	FindByUserID(ctx context.Context, userID int) (*Profile, error)
	ListStudents(ctx context.Context, search string) ([]StudentRow, error)
	UpdateProfile(ctx context.Context, id int, fullName *string, phone, photoURL, faceEncoding *string) (*Profile, error)
	CountStudents(ctx context.Context) (int, error)
}

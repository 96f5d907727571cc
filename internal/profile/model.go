package profile

import "time"

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User is the authentication account backing a profile.
type User struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Profile struct {
	ID           int       `db:"id" json:"id"`
	UserID       int       `db:"user_id" json:"user_id"`
	FullName     string    `db:"full_name" json:"full_name"`
	Phone        *string   `db:"phone" json:"phone,omitempty"`
	CPF          *string   `db:"cpf" json:"cpf,omitempty"`
	Role         string    `db:"role" json:"role"`
	FaceEncoding *string   `db:"face_encoding" json:"-"`
	PhotoURL     *string   `db:"photo_url" json:"photo_url,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// StudentRow is a student profile joined with its account email for listings.
type StudentRow struct {
	Profile
	Email string `db:"email" json:"email"`
}

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	Profile      Profile `json:"profile"`
}

type CreateStudentRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	CPF      string  `json:"cpf" binding:"required"`
	Phone    *string `json:"phone"`
	PhotoURL *string `json:"photo_url"`
}

type UpdateStudentRequest struct {
	FullName     *string `json:"full_name"`
	Phone        *string `json:"phone"`
	PhotoURL     *string `json:"photo_url"`
	FaceEncoding *string `json:"face_encoding"`
}

package profile

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/kalebesantos/kgym/internal/auth"
	"github.com/kalebesantos/kgym/internal/logger"
	"github.com/kalebesantos/kgym/internal/metrics"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStudentNotFound    = errors.New("student not found")
	ErrInvalidCPF         = errors.New("cpf must contain at least 6 digits")
)

// Notifier queues outbound email. Satisfied by email.Service.
type Notifier interface {
	SendWelcome(ctx context.Context, to, name string) error
}

type Service interface {
	RegisterAdmin(ctx context.Context, req RegisterRequest) (*Profile, string, string, error)
	Login(ctx context.Context, req LoginRequest) (*Profile, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, *Profile, error)
	GetByUserID(ctx context.Context, userID int) (*Profile, error)

	CreateStudent(ctx context.Context, req CreateStudentRequest) (*StudentRow, error)
	GetStudent(ctx context.Context, id int) (*Profile, error)
	ListStudents(ctx context.Context, search string) ([]StudentRow, error)
	UpdateStudent(ctx context.Context, id int, req UpdateStudentRequest) (*Profile, error)
	DeleteStudent(ctx context.Context, id int) error
	CountStudents(ctx context.Context) (int, error)
}

type service struct {
	repo      Repository
	notifier  Notifier
	jwtSecret string
}

func NewService(repo Repository, notifier Notifier, jwtSecret string) Service {
	return &service{
		repo:      repo,
		notifier:  notifier,
		jwtSecret: jwtSecret,
	}
}

func (s *service) RegisterAdmin(ctx context.Context, req RegisterRequest) (*Profile, string, string, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", "", err
	}
	if exists {
		return nil, "", "", ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	user, err := s.repo.CreateUser(ctx, req.Email, passwordHash)
	if err != nil {
		return nil, "", "", err
	}

	p, err := s.repo.CreateProfile(ctx, user.ID, req.FullName, RoleAdmin, nil, nil, nil)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := auth.GenerateTokens(user.ID, user.Email, p.Role, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return p, accessToken, refreshToken, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Profile, string, string, error) {
	user, err := s.repo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	p, err := s.repo.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := auth.GenerateTokens(user.ID, user.Email, p.Role, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return p, accessToken, refreshToken, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (string, *Profile, error) {
	newAccessToken, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	p, err := s.repo.FindByUserID(ctx, claims.UserID)
	if err != nil {
		return "", nil, err
	}

	return newAccessToken, p, nil
}

func (s *service) GetByUserID(ctx context.Context, userID int) (*Profile, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// CreateStudent provisions the account and profile in one step. The initial
// password is the first six digits of the student's CPF.
func (s *service) CreateStudent(ctx context.Context, req CreateStudentRequest) (*StudentRow, error) {
	initialPassword, err := initialPasswordFromCPF(req.CPF)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(initialPassword)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, req.Email, passwordHash)
	if err != nil {
		return nil, err
	}

	cpf := req.CPF
	p, err := s.repo.CreateProfile(ctx, user.ID, req.FullName, RoleStudent, req.Phone, &cpf, req.PhotoURL)
	if err != nil {
		return nil, err
	}

	metrics.RecordStudentCreated()

	if err := s.notifier.SendWelcome(ctx, user.Email, p.FullName); err != nil {
		logger.Error("Failed to queue welcome email", "student_id", p.ID, "error", err)
	}

	return &StudentRow{Profile: *p, Email: user.Email}, nil
}

func (s *service) GetStudent(ctx context.Context, id int) (*Profile, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrStudentNotFound
	}
	if p.Role != RoleStudent {
		return nil, ErrStudentNotFound
	}
	return p, nil
}

func (s *service) ListStudents(ctx context.Context, search string) ([]StudentRow, error) {
	return s.repo.ListStudents(ctx, search)
}

func (s *service) UpdateStudent(ctx context.Context, id int, req UpdateStudentRequest) (*Profile, error) {
	if _, err := s.GetStudent(ctx, id); err != nil {
		return nil, err
	}

	return s.repo.UpdateProfile(ctx, id, req.FullName, req.Phone, req.PhotoURL, req.FaceEncoding)
}

func (s *service) DeleteStudent(ctx context.Context, id int) error {
	p, err := s.GetStudent(ctx, id)
	if err != nil {
		return err
	}

	return s.repo.DeleteUser(ctx, p.UserID)
}

func (s *service) CountStudents(ctx context.Context) (int, error) {
	return s.repo.CountStudents(ctx)
}

func initialPasswordFromCPF(cpf string) (string, error) {
	var b strings.Builder
	for _, r := range cpf {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
			if b.Len() == 6 {
				return b.String(), nil
			}
		}
	}
	return "", ErrInvalidCPF
}

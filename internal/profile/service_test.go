package profile

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kalebesantos/kgym/internal/auth"
	"github.com/kalebesantos/kgym/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUser(ctx context.Context, email, passwordHash string) (*User, error) {
	args := m.Called(ctx, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindUserByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) DeleteUser(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) CreateProfile(ctx context.Context, userID int, fullName, role string, phone, cpf, photoURL *string) (*Profile, error) {
	args := m.Called(ctx, userID, fullName, role, phone, cpf, photoURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Profile), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Profile), args.Error(1)
}

func (m *MockRepository) FindByUserID(ctx context.Context, userID int) (*Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Profile), args.Error(1)
}

func (m *MockRepository) ListStudents(ctx context.Context, search string) ([]StudentRow, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]StudentRow), args.Error(1)
}

func (m *MockRepository) UpdateProfile(ctx context.Context, id int, fullName *string, phone, photoURL, faceEncoding *string) (*Profile, error) {
	args := m.Called(ctx, id, fullName, phone, photoURL, faceEncoding)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Profile), args.Error(1)
}

func (m *MockRepository) CountStudents(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendWelcome(ctx context.Context, to, name string) error {
	return m.Called(ctx, to, name).Error(0)
}

const testSecret = "test-secret"

func TestService_CreateStudent(t *testing.T) {
	mockRepo := new(MockRepository)
	notifier := new(MockNotifier)
	svc := NewService(mockRepo, notifier, testSecret)

	cpf := "123.456.789-00"
	req := CreateStudentRequest{
		FullName: "Maria Silva",
		Email:    "maria@example.com",
		CPF:      cpf,
	}

	var capturedHash string
	mockRepo.On("EmailExists", mock.Anything, "maria@example.com").Return(false, nil)
	mockRepo.On("CreateUser", mock.Anything, "maria@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			capturedHash = args.String(2)
		}).
		Return(&User{ID: 10, Email: "maria@example.com"}, nil)
	mockRepo.On("CreateProfile", mock.Anything, 10, "Maria Silva", RoleStudent, (*string)(nil), &cpf, (*string)(nil)).
		Return(&Profile{ID: 5, UserID: 10, FullName: "Maria Silva", Role: RoleStudent, CPF: &cpf}, nil)
	notifier.On("SendWelcome", mock.Anything, "maria@example.com", "Maria Silva").Return(nil)

	student, err := svc.CreateStudent(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 5, student.ID)
	assert.Equal(t, "maria@example.com", student.Email)
	// Initial password is the first 6 digits of the CPF.
	assert.True(t, auth.CheckPassword(capturedHash, "123456"))
	mockRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestService_CreateStudent_EmailExists(t *testing.T) {
	mockRepo := new(MockRepository)
	notifier := new(MockNotifier)
	svc := NewService(mockRepo, notifier, testSecret)

	mockRepo.On("EmailExists", mock.Anything, "maria@example.com").Return(true, nil)

	student, err := svc.CreateStudent(context.Background(), CreateStudentRequest{
		FullName: "Maria Silva",
		Email:    "maria@example.com",
		CPF:      "12345678900",
	})

	assert.ErrorIs(t, err, ErrEmailExists)
	assert.Nil(t, student)
	mockRepo.AssertNotCalled(t, "CreateUser")
}

func TestService_CreateStudent_ShortCPF(t *testing.T) {
	mockRepo := new(MockRepository)
	notifier := new(MockNotifier)
	svc := NewService(mockRepo, notifier, testSecret)

	student, err := svc.CreateStudent(context.Background(), CreateStudentRequest{
		FullName: "Maria Silva",
		Email:    "maria@example.com",
		CPF:      "123-45",
	})

	assert.ErrorIs(t, err, ErrInvalidCPF)
	assert.Nil(t, student)
	mockRepo.AssertNotCalled(t, "EmailExists")
}

func TestService_CreateStudent_WelcomeEmailFailureIsNotFatal(t *testing.T) {
	mockRepo := new(MockRepository)
	notifier := new(MockNotifier)
	svc := NewService(mockRepo, notifier, testSecret)

	cpf := "98765432100"
	mockRepo.On("EmailExists", mock.Anything, mock.Anything).Return(false, nil)
	mockRepo.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).
		Return(&User{ID: 11, Email: "joao@example.com"}, nil)
	mockRepo.On("CreateProfile", mock.Anything, 11, "Joao Souza", RoleStudent, (*string)(nil), &cpf, (*string)(nil)).
		Return(&Profile{ID: 6, UserID: 11, FullName: "Joao Souza", Role: RoleStudent}, nil)
	notifier.On("SendWelcome", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("queue down"))

	student, err := svc.CreateStudent(context.Background(), CreateStudentRequest{
		FullName: "Joao Souza",
		Email:    "joao@example.com",
		CPF:      cpf,
	})

	assert.NoError(t, err)
	assert.NotNil(t, student)
}

func TestService_Login(t *testing.T) {
	mockRepo := new(MockRepository)
	notifier := new(MockNotifier)
	svc := NewService(mockRepo, notifier, testSecret)

	hash, _ := auth.HashPassword("123456")
	mockRepo.On("FindUserByEmail", mock.Anything, "maria@example.com").
		Return(&User{ID: 10, Email: "maria@example.com", PasswordHash: hash}, nil)
	mockRepo.On("FindByUserID", mock.Anything, 10).
		Return(&Profile{ID: 5, UserID: 10, Role: RoleStudent}, nil)

	p, access, refresh, err := svc.Login(context.Background(), LoginRequest{
		Email:    "maria@example.com",
		Password: "123456",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, 5, p.ID)
}

func TestService_Login_WrongPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	notifier := new(MockNotifier)
	svc := NewService(mockRepo, notifier, testSecret)

	hash, _ := auth.HashPassword("123456")
	mockRepo.On("FindUserByEmail", mock.Anything, "maria@example.com").
		Return(&User{ID: 10, PasswordHash: hash}, nil)

	_, _, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "maria@example.com",
		Password: "654321",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_DeleteStudent_RejectsAdmin(t *testing.T) {
	mockRepo := new(MockRepository)
	notifier := new(MockNotifier)
	svc := NewService(mockRepo, notifier, testSecret)

	mockRepo.On("FindByID", mock.Anything, 3).
		Return(&Profile{ID: 3, UserID: 2, Role: RoleAdmin}, nil)

	err := svc.DeleteStudent(context.Background(), 3)

	assert.ErrorIs(t, err, ErrStudentNotFound)
	mockRepo.AssertNotCalled(t, "DeleteUser")
}

func TestInitialPasswordFromCPF(t *testing.T) {
	tests := []struct {
		name    string
		cpf     string
		want    string
		wantErr bool
	}{
		{name: "plain digits", cpf: "12345678900", want: "123456"},
		{name: "formatted", cpf: "987.654.321-00", want: "987654"},
		{name: "exactly six digits", cpf: "112233", want: "112233"},
		{name: "too few digits", cpf: "12-34", wantErr: true},
		{name: "empty", cpf: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := initialPasswordFromCPF(tt.cpf)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCPF)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

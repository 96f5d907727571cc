package checkin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kalebesantos/kgym/internal/membership"
	"github.com/kalebesantos/kgym/internal/profile"
)

type MockRepo struct{ mock.Mock }

func (m *MockRepo) Create(ctx context.Context, studentID int, at time.Time) (*CheckIn, error) {
	args := m.Called(ctx, studentID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CheckIn), args.Error(1)
}

func (m *MockRepo) ListByStudent(ctx context.Context, studentID int) ([]CheckIn, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CheckIn), args.Error(1)
}

func (m *MockRepo) ListRecent(ctx context.Context, limit int) ([]CheckInWithStudent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CheckInWithStudent), args.Error(1)
}

func (m *MockRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

func (m *MockRepo) StatsByDay(ctx context.Context, from, to time.Time) ([]DailyCount, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DailyCount), args.Error(1)
}

type MockProfileRepo struct{ mock.Mock }

func (m *MockProfileRepo) CreateUser(ctx context.Context, email, passwordHash string) (*profile.User, error) {
	args := m.Called(ctx, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.User), args.Error(1)
}

func (m *MockProfileRepo) FindUserByEmail(ctx context.Context, email string) (*profile.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.User), args.Error(1)
}

func (m *MockProfileRepo) FindUserByID(ctx context.Context, id int) (*profile.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.User), args.Error(1)
}

func (m *MockProfileRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepo) DeleteUser(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProfileRepo) CreateProfile(ctx context.Context, userID int, fullName, role string, phone, cpf, photoURL *string) (*profile.Profile, error) {
	args := m.Called(ctx, userID, fullName, role, phone, cpf, photoURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockProfileRepo) FindByID(ctx context.Context, id int) (*profile.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockProfileRepo) FindByUserID(ctx context.Context, userID int) (*profile.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockProfileRepo) ListStudents(ctx context.Context, search string) ([]profile.StudentRow, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]profile.StudentRow), args.Error(1)
}

func (m *MockProfileRepo) UpdateProfile(ctx context.Context, id int, fullName *string, phone, photoURL, faceEncoding *string) (*profile.Profile, error) {
	args := m.Called(ctx, id, fullName, phone, photoURL, faceEncoding)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockProfileRepo) CountStudents(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockMembershipRepo struct{ mock.Mock }

func (m *MockMembershipRepo) Create(ctx context.Context, studentID, planID int, startDate, endDate time.Time) (*membership.Membership, error) {
	args := m.Called(ctx, studentID, planID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Membership), args.Error(1)
}

func (m *MockMembershipRepo) GetByID(ctx context.Context, id int) (*membership.Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Membership), args.Error(1)
}

func (m *MockMembershipRepo) GetActiveByStudent(ctx context.Context, studentID int) (*membership.MembershipWithPlan, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.MembershipWithPlan), args.Error(1)
}

func (m *MockMembershipRepo) ListByStudent(ctx context.Context, studentID int) ([]membership.MembershipWithPlan, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]membership.MembershipWithPlan), args.Error(1)
}

func (m *MockMembershipRepo) ListAll(ctx context.Context) ([]membership.MembershipWithDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]membership.MembershipWithDetails), args.Error(1)
}

func (m *MockMembershipRepo) Update(ctx context.Context, id int, startDate, endDate *time.Time, status *string) (*membership.Membership, error) {
	args := m.Called(ctx, id, startDate, endDate, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Membership), args.Error(1)
}

func (m *MockMembershipRepo) BulkUpdateStatus(ctx context.Context, ids []int, status string) (int64, error) {
	args := m.Called(ctx, ids, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMembershipRepo) DeactivateForStudent(ctx context.Context, studentID int) (int64, error) {
	args := m.Called(ctx, studentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMembershipRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func activeMembershipEnding(end time.Time) *membership.MembershipWithPlan {
	return &membership.MembershipWithPlan{
		Membership: membership.Membership{
			ID:        1,
			StudentID: 5,
			PlanID:    2,
			StartDate: end.AddDate(0, -1, 0),
			EndDate:   end,
			Status:    membership.StatusActive,
		},
		PlanName:       "Mensal",
		DurationMonths: 1,
	}
}

func TestAttemptCheckin_Success(t *testing.T) {
	repo := new(MockRepo)
	profileRepo := new(MockProfileRepo)
	membershipRepo := new(MockMembershipRepo)
	svc := NewService(repo, profileRepo, membershipRepo, "KGYM")

	profileRepo.On("FindByID", mock.Anything, 5).
		Return(&profile.Profile{ID: 5, FullName: "Maria Silva", Role: profile.RoleStudent}, nil)
	membershipRepo.On("GetActiveByStudent", mock.Anything, 5).
		Return(activeMembershipEnding(time.Now().AddDate(0, 0, 10)), nil)
	repo.On("Create", mock.Anything, 5, mock.AnythingOfType("time.Time")).
		Return(&CheckIn{ID: 100, StudentID: 5, CheckedInAt: time.Now()}, nil)

	ci, err := svc.AttemptCheckin(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, 5, ci.StudentID)
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestAttemptCheckin_EndsToday_StillAllowed(t *testing.T) {
	repo := new(MockRepo)
	profileRepo := new(MockProfileRepo)
	membershipRepo := new(MockMembershipRepo)
	svc := NewService(repo, profileRepo, membershipRepo, "KGYM")

	profileRepo.On("FindByID", mock.Anything, 5).
		Return(&profile.Profile{ID: 5, Role: profile.RoleStudent}, nil)
	membershipRepo.On("GetActiveByStudent", mock.Anything, 5).
		Return(activeMembershipEnding(time.Now()), nil)
	repo.On("Create", mock.Anything, 5, mock.AnythingOfType("time.Time")).
		Return(&CheckIn{ID: 101, StudentID: 5}, nil)

	_, err := svc.AttemptCheckin(context.Background(), 5)

	assert.NoError(t, err)
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestAttemptCheckin_Failures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(prof *MockProfileRepo, mem *MockMembershipRepo)
		wantErr error
	}{
		{
			name: "unknown student",
			setup: func(prof *MockProfileRepo, mem *MockMembershipRepo) {
				prof.On("FindByID", mock.Anything, 5).Return(nil, profile.ErrNotFound)
			},
			wantErr: ErrStudentNotFound,
		},
		{
			name: "admin profile is not a student",
			setup: func(prof *MockProfileRepo, mem *MockMembershipRepo) {
				prof.On("FindByID", mock.Anything, 5).
					Return(&profile.Profile{ID: 5, Role: profile.RoleAdmin}, nil)
			},
			wantErr: ErrStudentNotFound,
		},
		{
			name: "no active plan",
			setup: func(prof *MockProfileRepo, mem *MockMembershipRepo) {
				prof.On("FindByID", mock.Anything, 5).
					Return(&profile.Profile{ID: 5, Role: profile.RoleStudent}, nil)
				mem.On("GetActiveByStudent", mock.Anything, 5).
					Return(nil, membership.ErrNoActiveForUser)
			},
			wantErr: ErrNoActivePlan,
		},
		{
			name: "plan ended yesterday",
			setup: func(prof *MockProfileRepo, mem *MockMembershipRepo) {
				prof.On("FindByID", mock.Anything, 5).
					Return(&profile.Profile{ID: 5, Role: profile.RoleStudent}, nil)
				mem.On("GetActiveByStudent", mock.Anything, 5).
					Return(activeMembershipEnding(time.Now().AddDate(0, 0, -1)), nil)
			},
			wantErr: ErrPlanExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepo)
			profileRepo := new(MockProfileRepo)
			membershipRepo := new(MockMembershipRepo)
			svc := NewService(repo, profileRepo, membershipRepo, "KGYM")

			tt.setup(profileRepo, membershipRepo)

			ci, err := svc.AttemptCheckin(context.Background(), 5)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, ci)
			repo.AssertNotCalled(t, "Create")
		})
	}
}

func TestCheckInByCode(t *testing.T) {
	repo := new(MockRepo)
	profileRepo := new(MockProfileRepo)
	membershipRepo := new(MockMembershipRepo)
	svc := NewService(repo, profileRepo, membershipRepo, "KGYM")

	profileRepo.On("FindByID", mock.Anything, 7).
		Return(&profile.Profile{ID: 7, Role: profile.RoleStudent}, nil)
	membershipRepo.On("GetActiveByStudent", mock.Anything, 7).
		Return(activeMembershipEnding(time.Now().AddDate(0, 1, 0)), nil)
	repo.On("Create", mock.Anything, 7, mock.AnythingOfType("time.Time")).
		Return(&CheckIn{ID: 102, StudentID: 7}, nil)

	ci, err := svc.CheckInByCode(context.Background(), "KGYM-CHECKIN-7")

	assert.NoError(t, err)
	assert.Equal(t, 7, ci.StudentID)
}

func TestCheckInByCode_InvalidCode(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, new(MockProfileRepo), new(MockMembershipRepo), "KGYM")

	ci, err := svc.CheckInByCode(context.Background(), "OTHER-CHECKIN-7")

	assert.ErrorIs(t, err, ErrInvalidCode)
	assert.Nil(t, ci)
	repo.AssertNotCalled(t, "Create")
}

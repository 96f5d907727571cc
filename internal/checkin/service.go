package checkin

import (
	"context"
	"errors"
	"time"

	"github.com/kalebesantos/kgym/internal/membership"
	"github.com/kalebesantos/kgym/internal/metrics"
	"github.com/kalebesantos/kgym/internal/profile"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrNoActivePlan    = errors.New("no active plan")
	ErrPlanExpired     = errors.New("plan expired")
)

type Service interface {
	CheckInByCode(ctx context.Context, code string) (*CheckIn, error)
	AttemptCheckin(ctx context.Context, studentID int) (*CheckIn, error)
	ListByStudent(ctx context.Context, studentID int) ([]CheckIn, error)
	ListRecent(ctx context.Context, limit int) ([]CheckInWithStudent, error)
	Delete(ctx context.Context, id int) error
	CountToday(ctx context.Context) (int, error)
	StatsByDay(ctx context.Context, from, to time.Time) ([]DailyCount, error)
}

type service struct {
	repo           Repository
	profileRepo    profile.Repository
	membershipRepo membership.Repository
	codePrefix     string
}

func NewService(repo Repository, profileRepo profile.Repository, membershipRepo membership.Repository, codePrefix string) Service {
	return &service{
		repo:           repo,
		profileRepo:    profileRepo,
		membershipRepo: membershipRepo,
		codePrefix:     codePrefix,
	}
}

func (s *service) CheckInByCode(ctx context.Context, code string) (*CheckIn, error) {
	studentID, err := DecodeCode(s.codePrefix, code)
	if err != nil {
		metrics.RecordCheckin("invalid_code")
		return nil, err
	}

	return s.AttemptCheckin(ctx, studentID)
}

// AttemptCheckin runs the eligibility gate: known student, active-flagged
// membership, end date not passed. A pass appends exactly one row; nothing
// on the membership is mutated even when the stored status is stale.
func (s *service) AttemptCheckin(ctx context.Context, studentID int) (*CheckIn, error) {
	p, err := s.profileRepo.FindByID(ctx, studentID)
	if err != nil || p.Role != profile.RoleStudent {
		metrics.RecordCheckin("student_not_found")
		return nil, ErrStudentNotFound
	}

	m, err := s.membershipRepo.GetActiveByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, membership.ErrNoActiveForUser) {
			metrics.RecordCheckin("no_active_plan")
			return nil, ErrNoActivePlan
		}
		return nil, err
	}

	now := time.Now()
	if membership.DaysRemaining(m.EndDate, now) < 0 {
		metrics.RecordCheckin("plan_expired")
		return nil, ErrPlanExpired
	}

	ci, err := s.repo.Create(ctx, studentID, now)
	if err != nil {
		return nil, err
	}

	metrics.RecordCheckin("success")
	return ci, nil
}

func (s *service) ListByStudent(ctx context.Context, studentID int) ([]CheckIn, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

func (s *service) ListRecent(ctx context.Context, limit int) ([]CheckInWithStudent, error) {
	return s.repo.ListRecent(ctx, limit)
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) CountToday(ctx context.Context) (int, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.repo.CountSince(ctx, startOfDay)
}

func (s *service) StatsByDay(ctx context.Context, from, to time.Time) ([]DailyCount, error) {
	return s.repo.StatsByDay(ctx, from, to)
}

package membership

import (
	"context"
	"errors"
	"time"

	"github.com/kalebesantos/kgym/internal/logger"
	"github.com/kalebesantos/kgym/internal/metrics"
	"github.com/kalebesantos/kgym/internal/plan"
	"github.com/kalebesantos/kgym/internal/profile"
)

const dateLayout = "2006-01-02"

var (
	ErrMembershipNotFound = errors.New("membership not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrPlanInactive       = errors.New("plan is not active")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
)

// Notifier queues outbound email. Satisfied by email.Service.
type Notifier interface {
	SendPlanAssigned(ctx context.Context, to, name, planName string, endDate time.Time) error
}

type Service interface {
	AssignPlan(ctx context.Context, req AssignRequest) (*Membership, error)
	GetStudentStatus(ctx context.Context, studentID int) (*StatusInfo, error)
	ListByStudent(ctx context.Context, studentID int) ([]MembershipWithPlan, error)
	ListAll(ctx context.Context) ([]MembershipWithDetails, error)
	Update(ctx context.Context, id int, req UpdateMembershipRequest) (*Membership, error)
	BulkSetStatus(ctx context.Context, req BulkStatusRequest) (int64, error)
	CountActive(ctx context.Context) (int, error)
}

type service struct {
	repo        Repository
	planRepo    plan.Repository
	profileRepo profile.Repository
	notifier    Notifier
}

func NewService(repo Repository, planRepo plan.Repository, profileRepo profile.Repository, notifier Notifier) Service {
	return &service{
		repo:        repo,
		planRepo:    planRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
	}
}

// AssignPlan creates a new active membership. The end date defaults to
// start + plan duration in calendar months; a manual override is accepted
// as-is and not re-validated. Any previously active membership for the
// student is flipped to inactive first.
func (s *service) AssignPlan(ctx context.Context, req AssignRequest) (*Membership, error) {
	student, err := s.profileRepo.FindByID(ctx, req.StudentID)
	if err != nil || student.Role != profile.RoleStudent {
		return nil, ErrStudentNotFound
	}

	p, err := s.planRepo.GetByID(ctx, req.PlanID)
	if err != nil {
		return nil, ErrPlanNotFound
	}
	if !p.IsActive {
		return nil, ErrPlanInactive
	}

	startDate, err := time.ParseInLocation(dateLayout, req.StartDate, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}

	endDate := ComputeEndDate(startDate, p.DurationMonths)
	if req.EndDate != nil {
		endDate, err = time.ParseInLocation(dateLayout, *req.EndDate, time.Local)
		if err != nil {
			return nil, ErrInvalidDate
		}
	}

	if _, err := s.repo.DeactivateForStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}

	m, err := s.repo.Create(ctx, req.StudentID, req.PlanID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	metrics.RecordMembershipAssigned(p.Name)

	user, err := s.profileRepo.FindUserByID(ctx, student.UserID)
	if err == nil {
		if err := s.notifier.SendPlanAssigned(ctx, user.Email, student.FullName, p.Name, endDate); err != nil {
			logger.Error("Failed to queue plan-assigned email", "student_id", student.ID, "error", err)
		}
	}

	return m, nil
}

// GetStudentStatus resolves the display status for the student's membership.
// Students with no active-flagged row report 'inactive' even when an old
// row's end date has not passed.
func (s *service) GetStudentStatus(ctx context.Context, studentID int) (*StatusInfo, error) {
	m, err := s.repo.GetActiveByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, ErrNoActiveForUser) {
			return &StatusInfo{Status: DisplayInactive}, nil
		}
		return nil, err
	}

	today := time.Now()
	days := DaysRemaining(m.EndDate, today)

	return &StatusInfo{
		Status:        ResolveStatus(&m.Membership, today),
		DaysRemaining: &days,
		Membership:    m,
	}, nil
}

func (s *service) ListByStudent(ctx context.Context, studentID int) ([]MembershipWithPlan, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

func (s *service) ListAll(ctx context.Context) ([]MembershipWithDetails, error) {
	return s.repo.ListAll(ctx)
}

// Update applies direct edits. Dates are taken verbatim: the end date is not
// re-derived from the plan duration here.
func (s *service) Update(ctx context.Context, id int, req UpdateMembershipRequest) (*Membership, error) {
	var startDate, endDate *time.Time

	if req.StartDate != nil {
		t, err := time.ParseInLocation(dateLayout, *req.StartDate, time.Local)
		if err != nil {
			return nil, ErrInvalidDate
		}
		startDate = &t
	}

	if req.EndDate != nil {
		t, err := time.ParseInLocation(dateLayout, *req.EndDate, time.Local)
		if err != nil {
			return nil, ErrInvalidDate
		}
		endDate = &t
	}

	m, err := s.repo.Update(ctx, id, startDate, endDate, req.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}

	return m, nil
}

func (s *service) BulkSetStatus(ctx context.Context, req BulkStatusRequest) (int64, error) {
	return s.repo.BulkUpdateStatus(ctx, req.IDs, req.Status)
}

func (s *service) CountActive(ctx context.Context) (int, error) {
	return s.repo.CountByStatus(ctx, StatusActive)
}

package membership

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, studentID, planID int, startDate, endDate time.Time) (*Membership, error)
	GetByID(ctx context.Context, id int) (*Membership, error)
	GetActiveByStudent(ctx context.Context, studentID int) (*MembershipWithPlan, error)
	ListByStudent(ctx context.Context, studentID int) ([]MembershipWithPlan, error)
	ListAll(ctx context.Context) ([]MembershipWithDetails, error)
	Update(ctx context.Context, id int, startDate, endDate *time.Time, status *string) (*Membership, error)
	BulkUpdateStatus(ctx context.Context, ids []int, status string) (int64, error)
	DeactivateForStudent(ctx context.Context, studentID int) (int64, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

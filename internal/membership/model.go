package membership

import "time"

// Stored membership status. Expiry is NOT applied automatically: labels are
// derived at read time by ResolveStatus, the stored column only changes
// through explicit admin edits.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusExpired  = "expired"
)

// DisplayStatus is the label derived from the stored status and the end date.
type DisplayStatus string

const (
	DisplayActive   DisplayStatus = "active"
	DisplayExpiring DisplayStatus = "expiring"
	DisplayExpired  DisplayStatus = "expired"
	DisplayInactive DisplayStatus = "inactive"
)

// expiringWindowDays is the "expiring soon" threshold.
const expiringWindowDays = 7

type Membership struct {
	ID        int       `db:"id" json:"id"`
	StudentID int       `db:"student_id" json:"student_id"`
	PlanID    int       `db:"plan_id" json:"plan_id"`
	StartDate time.Time `db:"start_date" json:"start_date"`
	EndDate   time.Time `db:"end_date" json:"end_date"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type MembershipWithPlan struct {
	Membership
	PlanName       string `db:"plan_name" json:"plan_name"`
	DurationMonths int    `db:"duration_months" json:"duration_months"`
	PriceCents     int64  `db:"price_cents" json:"price_cents"`
}

type MembershipWithDetails struct {
	MembershipWithPlan
	StudentName string `db:"student_name" json:"student_name"`
}

// StatusInfo is what status badges and the student dashboard render.
type StatusInfo struct {
	Status        DisplayStatus       `json:"status"`
	DaysRemaining *int                `json:"days_remaining,omitempty"`
	Membership    *MembershipWithPlan `json:"membership,omitempty"`
}

type AssignRequest struct {
	StudentID int     `json:"student_id" binding:"required"`
	PlanID    int     `json:"plan_id" binding:"required"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   *string `json:"end_date"`
}

type UpdateMembershipRequest struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Status    *string `json:"status" binding:"omitempty,oneof=active inactive expired"`
}

type BulkStatusRequest struct {
	IDs    []int  `json:"ids" binding:"required,min=1"`
	Status string `json:"status" binding:"required,oneof=active inactive expired"`
}

// DaysRemaining counts whole calendar days from today until end.
// Both values are reduced to their civil date first, so the result is
// independent of clock time and DST; the caller chooses the reference
// timezone by passing "today" (handlers use server-local time).
func DaysRemaining(end, today time.Time) int {
	ey, em, ed := end.Date()
	ty, tm, td := today.Date()

	endDay := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	toDay := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)

	return int(endDay.Sub(toDay) / (24 * time.Hour))
}

// ResolveStatus derives the display label for a student's membership.
// Pass nil when the student has no active-flagged membership at all.
func ResolveStatus(m *Membership, today time.Time) DisplayStatus {
	if m == nil {
		return DisplayInactive
	}
	if m.Status != StatusActive {
		return DisplayExpired
	}

	days := DaysRemaining(m.EndDate, today)
	switch {
	case days < 0:
		return DisplayExpired
	case days <= expiringWindowDays:
		return DisplayExpiring
	default:
		return DisplayActive
	}
}

// ComputeEndDate advances start by months calendar months, clamping the day
// to the last valid day of the target month (Jan 31 + 1 month = Feb 28/29).
func ComputeEndDate(start time.Time, months int) time.Time {
	y, m, d := start.Date()

	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, start.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, start.Location())
}

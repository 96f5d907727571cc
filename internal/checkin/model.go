package checkin

import "time"

// CheckIn rows are append-only attendance records. They are inserted on a
// successful gate pass and only ever removed by an admin, never updated.
type CheckIn struct {
	ID          int       `db:"id" json:"id"`
	StudentID   int       `db:"student_id" json:"student_id"`
	CheckedInAt time.Time `db:"checked_in_at" json:"checked_in_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CheckInWithStudent struct {
	CheckIn
	StudentName string `db:"student_name" json:"student_name"`
}

type CheckinRequest struct {
	Code string `json:"code" binding:"required"`
}

type DailyCount struct {
	Day   time.Time `db:"day" json:"day"`
	Count int       `db:"count" json:"count"`
}

type ReportResponse struct {
	TotalStudents     int          `json:"total_students"`
	ActiveMemberships int          `json:"active_memberships"`
	CheckinsToday     int          `json:"checkins_today"`
	CheckinsByDay     []DailyCount `json:"checkins_by_day"`
}

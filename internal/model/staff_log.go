package model

import "time"

// StaffLog is one duty session: a login-to-logout interval for a staff
// member under a given role. TimeOut stays nil while the session is open;
// DutyDurationMinutes is filled in exactly once when the session closes.
// Rows are never deleted, they form the duty audit trail.
type StaffLog struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	StaffID             uint       `gorm:"not null;index:idx_staff_role" json:"staff_id"`
	Role                string     `gorm:"size:20;not null;index:idx_staff_role" json:"role"`
	Action              string     `gorm:"size:20;not null" json:"action"`
	Activity            string     `gorm:"type:text" json:"activity"`
	TimeIn              time.Time  `gorm:"not null;index" json:"time_in"`
	TimeOut             *time.Time `json:"time_out"`
	DutyDurationMinutes *int       `json:"duty_duration_minutes"`
	CreatedAt           time.Time  `json:"created_at"`
}

func (StaffLog) TableName() string { return "staff_logs" }

// Open reports whether the staff member is still clocked in on this row.
func (l *StaffLog) Open() bool { return l.TimeOut == nil }

// StaffLogRow is a log row joined with the staff member's name, resolved
// against whichever directory table the role belongs to.
type StaffLogRow struct {
	StaffLog
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// StaffOption is a distinct (staff, role) pair for the admin dropdown.
type StaffOption struct {
	StaffID   uint   `json:"staff_id"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

package service

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"cjpowerhouse-backend/internal/model"
	"cjpowerhouse-backend/internal/repository"
)

// RequiredMinutes returns the daily duty requirement for a role. Every role
// currently carries the same 8-hour requirement; the switch is kept so a
// per-role requirement only needs a branch changed.
func RequiredMinutes(role string) int {
	switch role {
	case model.RoleCashier:
		return 480
	case model.RoleMechanic:
		return 480
	case model.RoleRider:
		return 480
	case model.RoleAdmin:
		return 480
	default:
		return 480
	}
}

// DutyStatus is the aggregated duty picture for one staff member on one day.
type DutyStatus struct {
	CompletedMinutes      int  `json:"completed_minutes"`
	CurrentSessionMinutes int  `json:"current_session_minutes"`
	TotalWorkedMinutes    int  `json:"total_worked_minutes"`
	RequiredMinutes       int  `json:"required_minutes"`
	RemainingMinutes      int  `json:"remaining_minutes"`
	RemainingHours        int  `json:"remaining_hours"`
	RemainingMinutesOnly  int  `json:"remaining_minutes_only"`
	IsComplete            bool `json:"is_complete"`
}

// LogoutStatus describes the open session a staff member is about to close.
// Unlike DutyStatus it looks at the raw elapsed time of that one session,
// which is what the logout confirmation dialog needs.
type LogoutStatus struct {
	HasSession       bool       `json:"has_session"`
	LogID            uint       `json:"log_id"`
	TimeIn           *time.Time `json:"time_in"`
	Minutes          int        `json:"minutes"`
	RequiredMinutes  int        `json:"required_minutes"`
	MetRequirement   bool       `json:"met_requirement"`
	MissingMinutes   int        `json:"missing_minutes"`
	RemainingHours   int        `json:"remaining_hours"`
	RemainingMinutes int        `json:"remaining_minutes"`
	Role             string     `json:"role"`
}

type DutyService struct {
	logs   repository.StaffLogRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewDutyService(logs repository.StaffLogRepository, logger *zap.Logger) *DutyService {
	return &DutyService{logs: logs, logger: logger, now: time.Now}
}

// dayWindow is the 00:00:00 - 23:59:59 span of the day containing t.
func dayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
	return start, end
}

// overlapMinutes is the length in minutes of the intersection of [inA, outA]
// and [inB, outB], floored at zero.
func overlapMinutes(inA, outA, inB, outB time.Time) int {
	start := inA
	if inB.After(start) {
		start = inB
	}
	end := outA
	if outB.Before(end) {
		end = outB
	}
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start).Minutes())
}

// Status computes worked and remaining duty minutes for a staff member on
// the given reference day (zero day means today). Closed sessions contribute
// their overlap with the day window; the latest open session contributes its
// live minutes up to now. The total is capped at the daily requirement:
// overtime belongs to the pay calculator, not here.
//
// Query failures degrade to zero components so a dashboard still renders;
// the error is returned alongside for callers that want to surface it.
func (s *DutyService) Status(staffID uint, role string, day time.Time) (DutyStatus, error) {
	required := RequiredMinutes(role)
	now := s.now()
	if day.IsZero() {
		day = now
	}
	dayStart, dayEnd := dayWindow(day)

	var firstErr error

	completed, err := s.logs.CompletedMinutes(staffID, role, dayStart, dayEnd)
	if err != nil {
		s.logger.Warn("completed-minutes query failed",
			zap.Uint("staff_id", staffID), zap.String("role", role), zap.Error(err))
		completed = 0
		firstErr = err
	}

	active := 0
	open, err := s.logs.LatestOpen(staffID, role)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warn("latest-open query failed",
			zap.Uint("staff_id", staffID), zap.String("role", role), zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	}
	if open != nil {
		active = overlapMinutes(open.TimeIn, now, dayStart, dayEnd)
	}

	worked := completed + active
	if worked < 0 {
		worked = 0
	}
	if worked > required {
		worked = required
	}
	remaining := required - worked
	if remaining < 0 {
		remaining = 0
	}

	return DutyStatus{
		CompletedMinutes:      completed,
		CurrentSessionMinutes: active,
		TotalWorkedMinutes:    worked,
		RequiredMinutes:       required,
		RemainingMinutes:      remaining,
		RemainingHours:        remaining / 60,
		RemainingMinutesOnly:  remaining % 60,
		IsComplete:            worked >= required,
	}, firstErr
}

// StatusForLogout reports the elapsed time of the latest open session
// against the daily requirement, for the logout confirmation flow.
func (s *DutyService) StatusForLogout(staffID uint, role string) (LogoutStatus, error) {
	required := RequiredMinutes(role)
	status := LogoutStatus{
		RequiredMinutes: required,
		MissingMinutes:  required,
		Role:            role,
	}

	open, err := s.logs.LatestOpen(staffID, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return status, nil
		}
		return status, err
	}

	elapsed := int(s.now().Sub(open.TimeIn).Minutes())
	if elapsed < 0 {
		elapsed = 0
	}
	missing := required - elapsed
	if missing < 0 {
		missing = 0
	}

	status.HasSession = true
	status.LogID = open.ID
	status.TimeIn = &open.TimeIn
	status.Minutes = elapsed
	status.MetRequirement = elapsed >= required
	status.MissingMinutes = missing
	status.RemainingHours = missing / 60
	status.RemainingMinutes = missing % 60
	return status, nil
}

// IsOnline reflects session state only: an open 'login' session means the
// staff member shows as online, whether or not the duty requirement is met.
func (s *DutyService) IsOnline(staffID uint, role string) bool {
	online, err := s.logs.HasOpenLoginSession(staffID, role)
	if err != nil {
		s.logger.Warn("online check failed",
			zap.Uint("staff_id", staffID), zap.String("role", role), zap.Error(err))
		return false
	}
	return online
}

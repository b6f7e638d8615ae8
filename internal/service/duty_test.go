package service

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"cjpowerhouse-backend/internal/model"
	"cjpowerhouse-backend/internal/repository"
)

// fakeStaffLogRepo drives the services without a database. Only the methods
// a test configures do anything useful; the rest return zero values.
type fakeStaffLogRepo struct {
	completedMinutes int
	completedErr     error

	open    *model.StaffLog
	openErr error

	overdue     []model.StaffLog
	overdueErr  error
	overdueArg  time.Time
	sweptIDs    []uint
	sweptMins   []int
	closeErrFor map[uint]error

	hasOpenLogin    bool
	hasOpenLoginErr error
}

func (f *fakeStaffLogRepo) Open(staffID uint, role, action string, timeIn time.Time) (*model.StaffLog, error) {
	return &model.StaffLog{StaffID: staffID, Role: role, Action: action, TimeIn: timeIn}, nil
}

func (f *fakeStaffLogRepo) LatestOpen(staffID uint, role string) (*model.StaffLog, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	if f.open == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.open, nil
}

func (f *fakeStaffLogRepo) CloseLatestOpen(staffID uint, role string) error { return nil }
func (f *fakeStaffLogRepo) CloseByID(id uint) error                         { return nil }

func (f *fakeStaffLogRepo) CloseSwept(id uint, timeOut time.Time, dutyMinutes int) error {
	if err := f.closeErrFor[id]; err != nil {
		return err
	}
	f.sweptIDs = append(f.sweptIDs, id)
	f.sweptMins = append(f.sweptMins, dutyMinutes)
	return nil
}

func (f *fakeStaffLogRepo) OverdueOpen(openedBefore time.Time) ([]model.StaffLog, error) {
	f.overdueArg = openedBefore
	return f.overdue, f.overdueErr
}

func (f *fakeStaffLogRepo) CompletedMinutes(staffID uint, role string, dayStart, dayEnd time.Time) (int, error) {
	return f.completedMinutes, f.completedErr
}

func (f *fakeStaffLogRepo) List(lf repository.LogFilter, limit, offset int) ([]model.StaffLogRow, error) {
	return nil, nil
}
func (f *fakeStaffLogRepo) Count(lf repository.LogFilter) (int64, error) { return 0, nil }
func (f *fakeStaffLogRepo) SumDutyMinutes(df repository.DutyHoursFilter) (int, error) {
	return 0, nil
}
func (f *fakeStaffLogRepo) StaffOptions() ([]model.StaffOption, error) { return nil, nil }

func (f *fakeStaffLogRepo) HasOpenLoginSession(staffID uint, role string) (bool, error) {
	return f.hasOpenLogin, f.hasOpenLoginErr
}

func newTestDutyService(repo *fakeStaffLogRepo, now time.Time) *DutyService {
	s := NewDutyService(repo, zap.NewNop())
	s.now = func() time.Time { return now }
	return s
}

func at(hour, min int) time.Time {
	return time.Date(2026, time.August, 26, hour, min, 0, 0, time.Local)
}

func TestRequiredMinutes(t *testing.T) {
	for _, role := range model.AccountedRoles {
		if got := RequiredMinutes(role); got != 480 {
			t.Errorf("RequiredMinutes(%q) = %d, want 480", role, got)
		}
	}
}

func TestOverlapMinutes(t *testing.T) {
	dayStart, dayEnd := dayWindow(at(12, 0))
	nextStart, nextEnd := dayWindow(at(12, 0).AddDate(0, 0, 1))

	tests := []struct {
		name         string
		sIn, sOut    time.Time
		wStart, wEnd time.Time
		want         int
	}{
		{"fully inside the window", at(9, 0), at(17, 0), dayStart, dayEnd, 480},
		{"clipped at window start", at(9, 0).AddDate(0, 0, -1), at(2, 0), dayStart, dayEnd, 120},
		{"no overlap", at(9, 0), at(17, 0), nextStart, nextEnd, 0},
		// A session spanning midnight splits across the two day windows.
		{"midnight span, first day", at(22, 0), at(4, 0).AddDate(0, 0, 1), dayStart, dayEnd, 119},
		{"midnight span, second day", at(22, 0), at(4, 0).AddDate(0, 0, 1), nextStart, nextEnd, 240},
		{"inverted interval yields zero", at(17, 0), at(9, 0), dayStart, dayEnd, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlapMinutes(tt.sIn, tt.sOut, tt.wStart, tt.wEnd); got != tt.want {
				t.Errorf("overlapMinutes = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDutyStatusCombinesClosedAndActive(t *testing.T) {
	repo := &fakeStaffLogRepo{
		completedMinutes: 300,
		open:             &model.StaffLog{ID: 7, StaffID: 3, Role: model.RoleCashier, TimeIn: at(12, 0)},
	}
	svc := newTestDutyService(repo, at(14, 0))

	status, err := svc.Status(3, model.RoleCashier, time.Time{})
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if status.CompletedMinutes != 300 {
		t.Errorf("completed = %d, want 300", status.CompletedMinutes)
	}
	if status.CurrentSessionMinutes != 120 {
		t.Errorf("current session = %d, want 120", status.CurrentSessionMinutes)
	}
	if status.TotalWorkedMinutes != 420 {
		t.Errorf("total worked = %d, want 420", status.TotalWorkedMinutes)
	}
	if status.RemainingMinutes != 60 || status.RemainingHours != 1 || status.RemainingMinutesOnly != 0 {
		t.Errorf("remaining = %d (%dh %dm), want 60 (1h 0m)",
			status.RemainingMinutes, status.RemainingHours, status.RemainingMinutesOnly)
	}
	if status.IsComplete {
		t.Error("420 of 480 minutes must not be complete")
	}
}

func TestDutyStatusCapsAtRequirement(t *testing.T) {
	repo := &fakeStaffLogRepo{
		completedMinutes: 400,
		open:             &model.StaffLog{ID: 8, StaffID: 3, Role: model.RoleRider, TimeIn: at(10, 0)},
	}
	svc := newTestDutyService(repo, at(18, 0))

	status, err := svc.Status(3, model.RoleRider, time.Time{})
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if status.TotalWorkedMinutes != 480 {
		t.Errorf("total worked = %d, want cap of 480", status.TotalWorkedMinutes)
	}
	if !status.IsComplete || status.RemainingMinutes != 0 {
		t.Errorf("capped day must be complete with 0 remaining, got complete=%v remaining=%d",
			status.IsComplete, status.RemainingMinutes)
	}
}

func TestDutyStatusNoSessions(t *testing.T) {
	svc := newTestDutyService(&fakeStaffLogRepo{}, at(14, 0))

	status, err := svc.Status(3, model.RoleMechanic, time.Time{})
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if status.TotalWorkedMinutes != 0 {
		t.Errorf("total worked = %d, want 0", status.TotalWorkedMinutes)
	}
	if status.RemainingMinutes != 480 || status.IsComplete {
		t.Errorf("empty day must leave the full requirement, got remaining=%d complete=%v",
			status.RemainingMinutes, status.IsComplete)
	}
}

func TestDutyStatusDegradesOnQueryError(t *testing.T) {
	queryErr := errors.New("connection refused")
	repo := &fakeStaffLogRepo{completedErr: queryErr, openErr: queryErr}
	svc := newTestDutyService(repo, at(14, 0))

	status, err := svc.Status(3, model.RoleCashier, time.Time{})
	if !errors.Is(err, queryErr) {
		t.Fatalf("expected the query error back, got %v", err)
	}
	// The status must still render as an empty day rather than garbage.
	if status.TotalWorkedMinutes != 0 || status.RemainingMinutes != 480 {
		t.Errorf("degraded status = worked %d / remaining %d, want 0 / 480",
			status.TotalWorkedMinutes, status.RemainingMinutes)
	}
}

func TestStatusForLogout(t *testing.T) {
	in := at(9, 0)
	repo := &fakeStaffLogRepo{
		open: &model.StaffLog{ID: 12, StaffID: 5, Role: model.RoleCashier, TimeIn: in},
	}
	svc := newTestDutyService(repo, at(16, 30))

	status, err := svc.StatusForLogout(5, model.RoleCashier)
	if err != nil {
		t.Fatalf("StatusForLogout returned error: %v", err)
	}
	if !status.HasSession || status.LogID != 12 {
		t.Fatalf("expected session 12, got has=%v id=%d", status.HasSession, status.LogID)
	}
	if status.Minutes != 450 {
		t.Errorf("elapsed = %d, want 450", status.Minutes)
	}
	if status.MetRequirement {
		t.Error("450 of 480 minutes must not meet the requirement")
	}
	if status.MissingMinutes != 30 || status.RemainingHours != 0 || status.RemainingMinutes != 30 {
		t.Errorf("missing = %d (%dh %dm), want 30 (0h 30m)",
			status.MissingMinutes, status.RemainingHours, status.RemainingMinutes)
	}
}

func TestStatusForLogoutOvertimeSession(t *testing.T) {
	repo := &fakeStaffLogRepo{
		open: &model.StaffLog{ID: 13, StaffID: 5, Role: model.RoleCashier, TimeIn: at(9, 0)},
	}
	svc := newTestDutyService(repo, at(18, 10))

	status, err := svc.StatusForLogout(5, model.RoleCashier)
	if err != nil {
		t.Fatalf("StatusForLogout returned error: %v", err)
	}
	if status.Minutes != 550 {
		t.Errorf("elapsed = %d, want 550 (uncapped)", status.Minutes)
	}
	if !status.MetRequirement || status.MissingMinutes != 0 {
		t.Errorf("550 minutes must meet the requirement with 0 missing, got met=%v missing=%d",
			status.MetRequirement, status.MissingMinutes)
	}
}

func TestStatusForLogoutNoSession(t *testing.T) {
	svc := newTestDutyService(&fakeStaffLogRepo{}, at(16, 30))

	status, err := svc.StatusForLogout(5, model.RoleCashier)
	if err != nil {
		t.Fatalf("no open session is not an error, got %v", err)
	}
	if status.HasSession {
		t.Error("expected no session")
	}
	if status.MissingMinutes != 480 {
		t.Errorf("missing = %d, want the full requirement", status.MissingMinutes)
	}
}

func TestIsOnline(t *testing.T) {
	svc := newTestDutyService(&fakeStaffLogRepo{hasOpenLogin: true}, at(12, 0))
	if !svc.IsOnline(3, model.RoleRider) {
		t.Error("open login session must report online")
	}

	svc = newTestDutyService(&fakeStaffLogRepo{hasOpenLoginErr: errors.New("timeout")}, at(12, 0))
	if svc.IsOnline(3, model.RoleRider) {
		t.Error("query failure must report offline")
	}
}

package service

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"cjpowerhouse-backend/internal/model"
)

func newTestSweeper(repo *fakeStaffLogRepo, now time.Time) *Sweeper {
	s := NewSweeper(repo, zap.NewNop())
	s.now = func() time.Time { return now }
	return s
}

func TestSweepClosesOverdueSessionsCapped(t *testing.T) {
	now := at(19, 0)
	repo := &fakeStaffLogRepo{
		overdue: []model.StaffLog{
			{ID: 1, StaffID: 3, Role: model.RoleRider, TimeIn: now.Add(-10 * time.Hour)},
			{ID: 2, StaffID: 4, Role: model.RoleMechanic, TimeIn: now.Add(-9 * time.Hour)},
		},
	}
	s := newTestSweeper(repo, now)

	if closed := s.Sweep(); closed != 2 {
		t.Fatalf("Sweep closed %d sessions, want 2", closed)
	}
	wantCutoff := now.Add(-9 * time.Hour)
	if !repo.overdueArg.Equal(wantCutoff) {
		t.Errorf("overdue cutoff = %v, want %v", repo.overdueArg, wantCutoff)
	}
	// 10h and 9h elapsed both credit at most the 480-minute daily cap.
	if len(repo.sweptMins) != 2 || repo.sweptMins[0] != 480 || repo.sweptMins[1] != 480 {
		t.Errorf("swept minutes = %v, want [480 480]", repo.sweptMins)
	}
}

func TestSweepSkipsFailedRowAndContinues(t *testing.T) {
	now := at(19, 0)
	repo := &fakeStaffLogRepo{
		overdue: []model.StaffLog{
			{ID: 1, StaffID: 3, Role: model.RoleRider, TimeIn: now.Add(-10 * time.Hour)},
			{ID: 2, StaffID: 4, Role: model.RoleCashier, TimeIn: now.Add(-11 * time.Hour)},
		},
		closeErrFor: map[uint]error{1: errors.New("deadlock")},
	}
	s := newTestSweeper(repo, now)

	if closed := s.Sweep(); closed != 1 {
		t.Fatalf("Sweep closed %d sessions, want 1", closed)
	}
	if len(repo.sweptIDs) != 1 || repo.sweptIDs[0] != 2 {
		t.Errorf("swept ids = %v, want [2]", repo.sweptIDs)
	}
}

func TestSweepNothingOverdue(t *testing.T) {
	s := newTestSweeper(&fakeStaffLogRepo{}, at(12, 0))
	if closed := s.Sweep(); closed != 0 {
		t.Errorf("Sweep closed %d sessions, want 0", closed)
	}
}

func TestSweepQueryFailure(t *testing.T) {
	repo := &fakeStaffLogRepo{overdueErr: errors.New("connection refused")}
	s := newTestSweeper(repo, at(12, 0))
	if closed := s.Sweep(); closed != 0 {
		t.Errorf("Sweep closed %d sessions, want 0 on query failure", closed)
	}
}

func TestSweepSingleFlight(t *testing.T) {
	repo := &fakeStaffLogRepo{
		overdue: []model.StaffLog{
			{ID: 1, StaffID: 3, Role: model.RoleRider, TimeIn: at(19, 0).Add(-10 * time.Hour)},
		},
	}
	s := newTestSweeper(repo, at(19, 0))

	s.mu.Lock()
	closed := s.Sweep()
	s.mu.Unlock()

	if closed != 0 {
		t.Errorf("concurrent Sweep closed %d sessions, want 0", closed)
	}
	if len(repo.sweptIDs) != 0 {
		t.Errorf("concurrent Sweep touched rows: %v", repo.sweptIDs)
	}
}

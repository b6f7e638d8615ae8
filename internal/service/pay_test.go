package service

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestComputePayHourly(t *testing.T) {
	b := ComputePay(PayTypeHourly, 42.5, 6)

	if !almostEqual(b.RegularPay, 1859.375) {
		t.Errorf("regular pay = %v, want 1859.375", b.RegularPay)
	}
	if !almostEqual(b.TotalPay, 1859.375) {
		t.Errorf("total pay = %v, want 1859.375", b.TotalPay)
	}
	if b.OvertimeHours != 0 || b.OvertimePay != 0 {
		t.Errorf("hourly scheme must not report overtime, got %v h / %v", b.OvertimeHours, b.OvertimePay)
	}
}

func TestComputePayFifteenDays(t *testing.T) {
	tests := []struct {
		name        string
		totalHours  float64
		workingDays int
		wantTotal   float64
		wantOTHours float64
	}{
		{
			name:        "under expected hours pays proportional salary",
			totalHours:  70,
			workingDays: 10,
			wantTotal:   10.0 / 15.0 * 4550.0,
		},
		{
			name:        "exactly expected hours stays proportional",
			totalHours:  80,
			workingDays: 10,
			wantTotal:   10.0 / 15.0 * 4550.0,
		},
		{
			// Past the expectation the whole period is rebilled hourly and
			// no overtime line appears.
			name:        "over expected hours switches to hourly",
			totalHours:  85,
			workingDays: 10,
			wantTotal:   85 * 43.75,
			wantOTHours: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputePay(PayTypeFifteenDays, tt.totalHours, tt.workingDays)
			if !almostEqual(b.TotalPay, tt.wantTotal) {
				t.Errorf("total pay = %v, want %v", b.TotalPay, tt.wantTotal)
			}
			if !almostEqual(b.OvertimeHours, tt.wantOTHours) {
				t.Errorf("overtime hours = %v, want %v", b.OvertimeHours, tt.wantOTHours)
			}
		})
	}
}

func TestComputePayMonthly(t *testing.T) {
	// 26 working days expect 208 hours; 210 worked leaves 2 overtime hours.
	b := ComputePay(PayTypeMonthly, 210, 26)

	wantRegular := 26.0 / 30.0 * 9100.0
	if !almostEqual(b.RegularPay, wantRegular) {
		t.Errorf("regular pay = %v, want %v", b.RegularPay, wantRegular)
	}
	if !almostEqual(b.OvertimeHours, 2) {
		t.Errorf("overtime hours = %v, want 2", b.OvertimeHours)
	}
	if !almostEqual(b.OvertimePay, 87.5) {
		t.Errorf("overtime pay = %v, want 87.5", b.OvertimePay)
	}
	if !almostEqual(b.TotalPay, wantRegular+87.5) {
		t.Errorf("total pay = %v, want %v", b.TotalPay, wantRegular+87.5)
	}
}

func TestComputePayMonthlyNoOvertime(t *testing.T) {
	b := ComputePay(PayTypeMonthly, 200, 26)
	if b.OvertimeHours != 0 || b.OvertimePay != 0 {
		t.Errorf("no overtime expected, got %v h / %v", b.OvertimeHours, b.OvertimePay)
	}
	if !almostEqual(b.TotalPay, 26.0/30.0*9100.0) {
		t.Errorf("total pay = %v, want proportional salary only", b.TotalPay)
	}
}

func TestComputePayZeroWorkingDays(t *testing.T) {
	b := ComputePay(PayTypeMonthly, 0, 0)
	if b.AverageHoursDay != 0 {
		t.Errorf("average hours/day = %v, want 0 when no working days", b.AverageHoursDay)
	}
	if b.TotalPay != 0 {
		t.Errorf("total pay = %v, want 0", b.TotalPay)
	}
}

func TestWorkingDays(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	}

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"full week excludes the Sunday", day(2026, time.August, 24), day(2026, time.August, 30), 6},
		{"single Sunday counts zero", day(2026, time.August, 30), day(2026, time.August, 30), 0},
		{"single weekday counts one", day(2026, time.August, 26), day(2026, time.August, 26), 1},
		{"two weeks exclude both Sundays", day(2026, time.August, 17), day(2026, time.August, 30), 12},
		{"time-of-day on the bounds is ignored", day(2026, time.August, 26).Add(23 * time.Hour), day(2026, time.August, 27).Add(time.Minute), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WorkingDays(tt.from, tt.to); got != tt.want {
				t.Errorf("WorkingDays(%v, %v) = %d, want %d",
					tt.from.Format("2006-01-02"), tt.to.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

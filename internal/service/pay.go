package service

import "time"

// Compensation schemes offered to staff.
const (
	PayTypeHourly      = "Hourly"
	PayTypeFifteenDays = "Fifteen Days"
	PayTypeMonthly     = "Monthly"
)

// Fixed compensation constants in PHP (pesos). The hourly rate is exposed as
// a field on the calculator form but is not user-configurable.
const (
	HourlyRate       = 43.75
	FifteenDaySalary = 4550.0
	MonthlySalary    = 9100.0
	fifteenDayPeriod = 15
	monthlyPeriod    = 30
	hoursPerIdealDay = 8
)

// PayBreakdown is the result of one pay computation.
type PayBreakdown struct {
	PayType         string  `json:"pay_type"`
	TotalHours      float64 `json:"total_hours"`
	WorkingDays     int     `json:"working_days"`
	HourlyRate      float64 `json:"hourly_rate"`
	RegularPay      float64 `json:"regular_pay"`
	OvertimeHours   float64 `json:"overtime_hours"`
	OvertimePay     float64 `json:"overtime_pay"`
	TotalPay        float64 `json:"total_pay"`
	AverageHoursDay float64 `json:"average_hours_per_day"`
}

// ComputePay converts aggregated duty hours and a working-day count into a
// pay breakdown under the chosen scheme.
//
// Hourly bills every hour at the flat rate. Fifteen Days pays proportionally
// against a 15-day period unless hours exceed the expected hours for the
// actual days, in which case the whole period is recomputed at the hourly
// rate and overtime reports as zero — that asymmetry with the Monthly scheme
// is long-standing behavior and is kept for compatibility with existing pay
// records. Monthly pays proportionally against a 30-day period plus an
// hourly-rate overtime component for hours past the expectation.
func ComputePay(payType string, totalHours float64, workingDays int) PayBreakdown {
	b := PayBreakdown{
		PayType:     payType,
		TotalHours:  totalHours,
		WorkingDays: workingDays,
		HourlyRate:  HourlyRate,
	}

	expectedHours := float64(workingDays * hoursPerIdealDay)

	switch payType {
	case PayTypeHourly:
		b.RegularPay = totalHours * HourlyRate
		b.TotalPay = b.RegularPay

	case PayTypeFifteenDays:
		if totalHours > expectedHours {
			b.RegularPay = totalHours * HourlyRate
			b.TotalPay = b.RegularPay
		} else {
			b.RegularPay = float64(workingDays) / fifteenDayPeriod * FifteenDaySalary
			b.TotalPay = b.RegularPay
		}

	case PayTypeMonthly:
		b.RegularPay = float64(workingDays) / monthlyPeriod * MonthlySalary
		if totalHours > expectedHours {
			b.OvertimeHours = totalHours - expectedHours
			b.OvertimePay = b.OvertimeHours * HourlyRate
		}
		b.TotalPay = b.RegularPay + b.OvertimePay
	}

	if workingDays > 0 {
		b.AverageHoursDay = totalHours / float64(workingDays)
	}
	return b
}

// WorkingDays counts the calendar days in [from, to] inclusive that are not
// Sundays.
func WorkingDays(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())

	days := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			days++
		}
	}
	return days
}

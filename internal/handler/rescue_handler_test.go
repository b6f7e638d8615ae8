package handler

import (
	"testing"
	"time"

	"cjpowerhouse-backend/internal/model"
)

func TestEstimatedArrival(t *testing.T) {
	clock := func(hour int) time.Time {
		return time.Date(2026, time.August, 26, hour, 30, 0, 0, time.Local)
	}

	tests := []struct {
		name     string
		status   string
		now      time.Time
		wantETA  string
		wantDate string
	}{
		{
			name:     "daytime dispatch arrives by end of day",
			status:   model.HelpStatusInProgress,
			now:      clock(10),
			wantETA:  "11:59 PM",
			wantDate: "August 26, 2026",
		},
		{
			name:     "evening dispatch rolls to next business day",
			status:   model.HelpStatusInProgress,
			now:      clock(18),
			wantETA:  "9:00 AM - 5:00 PM",
			wantDate: "August 27, 2026",
		},
		{
			name:     "early morning dispatch keeps the same day",
			status:   model.HelpStatusInProgress,
			now:      clock(3),
			wantETA:  "9:00 AM - 5:00 PM",
			wantDate: "August 26, 2026",
		},
		{
			name:   "pending request has no estimate",
			status: model.HelpStatusPending,
			now:    clock(10),
		},
		{
			name:   "completed request has no estimate",
			status: model.HelpStatusCompleted,
			now:    clock(10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eta, date := estimatedArrival(tt.status, tt.now)
			if eta != tt.wantETA || date != tt.wantDate {
				t.Errorf("estimatedArrival(%q) = (%q, %q), want (%q, %q)",
					tt.status, eta, date, tt.wantETA, tt.wantDate)
			}
		})
	}
}

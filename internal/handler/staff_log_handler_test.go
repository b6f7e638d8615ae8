package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

// rangeProbe runs parseDateRange against a request URL and reports what it saw.
func rangeProbe(t *testing.T, target string) (from, to time.Time, ok bool) {
	t.Helper()

	app := fiber.New()
	app.Get("/probe", func(c *fiber.Ctx) error {
		from, to, ok = parseDateRange(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("test request failed: %v", err)
	}
	resp.Body.Close()
	return from, to, ok
}

func TestParseDateRange(t *testing.T) {
	t.Run("explicit range", func(t *testing.T) {
		from, to, ok := rangeProbe(t, "/probe?from=2026-08-01&to=2026-08-15")
		if !ok {
			t.Fatal("valid range rejected")
		}
		if from.Format("2006-01-02") != "2026-08-01" || to.Format("2006-01-02") != "2026-08-15" {
			t.Errorf("parsed %v .. %v", from, to)
		}
	})

	t.Run("defaults to the last seven days", func(t *testing.T) {
		from, to, ok := rangeProbe(t, "/probe")
		if !ok {
			t.Fatal("default range rejected")
		}
		if d := to.Sub(from); d < 7*24*time.Hour-time.Minute || d > 7*24*time.Hour+time.Minute {
			t.Errorf("default span = %v, want about 7 days", d)
		}
	})

	t.Run("inverted range clamps to a single day", func(t *testing.T) {
		from, to, ok := rangeProbe(t, "/probe?from=2026-08-15&to=2026-08-01")
		if !ok {
			t.Fatal("inverted range rejected")
		}
		if !to.Equal(from) {
			t.Errorf("to = %v, want clamped to from %v", to, from)
		}
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		if _, _, ok := rangeProbe(t, "/probe?from=15-08-2026"); ok {
			t.Error("malformed from accepted")
		}
		if _, _, ok := rangeProbe(t, "/probe?to=yesterday"); ok {
			t.Error("malformed to accepted")
		}
	})
}

func TestRoundTo2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{7.0833333, 7.08},
		{7.086, 7.09},
		{0, 0},
		{479.0 / 60.0, 7.98},
	}
	for _, tt := range tests {
		if got := roundTo2(tt.in); got != tt.want {
			t.Errorf("roundTo2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

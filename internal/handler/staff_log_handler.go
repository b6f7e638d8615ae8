package handler

import (
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"cjpowerhouse-backend/internal/model"
	"cjpowerhouse-backend/internal/repository"
	"cjpowerhouse-backend/internal/service"
)

const logsPerPage = 10

type StaffLogHandler struct {
	logRepo   repository.StaffLogRepository
	staffRepo repository.StaffRepository
	duty      *service.DutyService
}

func NewStaffLogHandler(logRepo repository.StaffLogRepository, staffRepo repository.StaffRepository, duty *service.DutyService) *StaffLogHandler {
	return &StaffLogHandler{logRepo: logRepo, staffRepo: staffRepo, duty: duty}
}

// parseDateRange reads from/to query params, defaulting to the last 7 days.
// An inverted range is clamped to a single day rather than rejected.
func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, bool) {
	now := time.Now()
	from := now.AddDate(0, 0, -7)
	to := now

	if v := c.Query("from"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return from, to, false
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return from, to, false
		}
		to = parsed
	}
	if to.Before(from) {
		to = from
	}
	return from, to, true
}

// GetLogs is the admin staff-log listing: paged, date-filtered, joined with
// staff names, with the pay-form context (total hours, working days).
func (h *StaffLogHandler) GetLogs(c *fiber.Ctx) error {
	from, to, ok := parseDateRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format"})
	}
	roleFilter := c.Query("role")

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * logsPerPage

	filter := repository.LogFilter{From: from, To: to, Role: roleFilter}

	logs, err := h.logRepo.List(filter, logsPerPage, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch staff logs"})
	}
	total, err := h.logRepo.Count(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count staff logs"})
	}

	totalMinutes, err := h.logRepo.SumDutyMinutes(repository.DutyHoursFilter{From: from, To: to, Role: roleFilter})
	if err != nil {
		totalMinutes = 0 // listing still renders with a zeroed pay context
	}

	return c.JSON(fiber.Map{
		"data":         logs,
		"page":         page,
		"total_pages":  int(math.Ceil(float64(total) / float64(logsPerPage))),
		"total":        total,
		"total_hours":  roundTo2(float64(totalMinutes) / 60),
		"working_days": service.WorkingDays(from, to),
	})
}

// GetDutyStatus returns the per-day aggregation used by the duty badge on
// the staff-log page.
func (h *StaffLogHandler) GetDutyStatus(c *fiber.Ctx) error {
	staffID, err := strconv.Atoi(c.Query("staff_id"))
	if err != nil || staffID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid staff ID"})
	}
	role := c.Query("role")
	if !model.IsAccountedRole(role) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid role"})
	}

	var day time.Time
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format"})
		}
		day = parsed
	}

	status, _ := h.duty.Status(uint(staffID), role, day)
	return c.JSON(fiber.Map{
		"data":   status,
		"online": h.duty.IsOnline(uint(staffID), role),
	})
}

// GetStaffOptions fills the pay-calculator dropdown.
func (h *StaffLogHandler) GetStaffOptions(c *fiber.Ctx) error {
	opts, err := h.logRepo.StaffOptions()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch staff"})
	}
	return c.JSON(fiber.Map{"data": opts})
}

type ToggleStatusRequest struct {
	StaffID   uint   `json:"staff_id"`
	StaffType string `json:"staff_type"` // cashier / rider / mechanic
	IsActive  bool   `json:"is_active"`
}

func (h *StaffLogHandler) ToggleStaffStatus(c *fiber.Ctx) error {
	var req ToggleStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid parameters"})
	}
	if req.StaffID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid parameters"})
	}

	changed, err := h.staffRepo.SetActive(req.StaffID, req.StaffType, req.IsActive)
	if err != nil {
		if err == repository.ErrUnknownRole {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid staff type"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update staff status"})
	}
	if !changed {
		return c.JSON(fiber.Map{"success": false, "message": "No changes made or staff member not found"})
	}

	state := "inactive"
	if req.IsActive {
		state = "active"
	}
	return c.JSON(fiber.Map{"success": true, "message": "Staff status updated to " + state})
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

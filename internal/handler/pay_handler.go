package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cjpowerhouse-backend/internal/model"
	"cjpowerhouse-backend/internal/repository"
	"cjpowerhouse-backend/internal/service"
)

type PayHandler struct {
	logRepo repository.StaffLogRepository
}

func NewPayHandler(logRepo repository.StaffLogRepository) *PayHandler {
	return &PayHandler{logRepo: logRepo}
}

// GetPayData returns the raw inputs of the pay calculator: total closed-
// session duty hours in range and the working-day count (Sundays excluded).
// staff_id + staff_role pin one staff member; role alone pins a role group.
func (h *PayHandler) GetPayData(c *fiber.Ctx) error {
	from, to, ok := parseDateRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date format"})
	}

	filter := repository.DutyHoursFilter{From: from, To: to, Role: c.Query("role")}
	if v := c.Query("staff_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid staff ID"})
		}
		role := c.Query("staff_role")
		if !model.IsAccountedRole(role) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid staff role"})
		}
		filter.StaffID = uint(id)
		filter.StaffRole = role
	}

	totalMinutes, err := h.logRepo.SumDutyMinutes(filter)
	if err != nil {
		totalMinutes = 0 // degrade to a zero result, the form still renders
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"totalHours":  roundTo2(float64(totalMinutes) / 60),
			"workingDays": service.WorkingDays(from, to),
		},
	})
}

// ComputePay runs the full pay breakdown for a staff member (or all staff)
// over a date range under the requested scheme.
func (h *PayHandler) ComputePay(c *fiber.Ctx) error {
	payType := c.Query("pay_type", service.PayTypeHourly)
	switch payType {
	case service.PayTypeHourly, service.PayTypeFifteenDays, service.PayTypeMonthly:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Unknown pay type"})
	}

	from, to, ok := parseDateRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date format"})
	}

	filter := repository.DutyHoursFilter{From: from, To: to, Role: c.Query("role")}
	if v := c.Query("staff_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid staff ID"})
		}
		role := c.Query("staff_role")
		if !model.IsAccountedRole(role) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid staff role"})
		}
		filter.StaffID = uint(id)
		filter.StaffRole = role
	}

	totalMinutes, err := h.logRepo.SumDutyMinutes(filter)
	if err != nil {
		totalMinutes = 0
	}

	totalHours := roundTo2(float64(totalMinutes) / 60)
	breakdown := service.ComputePay(payType, totalHours, service.WorkingDays(from, to))

	return c.JSON(fiber.Map{
		"success": true,
		"data":    breakdown,
	})
}

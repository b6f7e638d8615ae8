package handler

import (
	"bufio"
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"cjpowerhouse-backend/config"
	"cjpowerhouse-backend/internal/model"
	"cjpowerhouse-backend/internal/repository"
	"cjpowerhouse-backend/pkg/mailer"
)

type RescueHandler struct {
	repo   repository.HelpRequestRepository
	mail   *mailer.Mailer
	logger *zap.Logger
}

func NewRescueHandler(repo repository.HelpRequestRepository, mail *mailer.Mailer, logger *zap.Logger) *RescueHandler {
	return &RescueHandler{repo: repo, mail: mail, logger: logger}
}

// estimatedArrival gives the ETA window for an in-progress rescue. Requests
// handled between 5 PM and 5 AM are promised for the next business window
// (9 AM - 5 PM); daytime requests are promised by end of day.
func estimatedArrival(status string, now time.Time) (string, string) {
	if status != model.HelpStatusInProgress {
		return "", ""
	}

	hour := now.Hour()
	if hour >= 17 || hour < 5 {
		date := now
		if hour >= 17 {
			date = date.AddDate(0, 0, 1)
		}
		return "9:00 AM - 5:00 PM", date.Format("January 2, 2006")
	}

	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	return endOfDay.Format("3:04 PM"), endOfDay.Format("January 2, 2006")
}

func requestPayload(req *model.HelpRequest, now time.Time) fiber.Map {
	if req == nil {
		return nil
	}

	payload := fiber.Map{
		"id":                  req.ID,
		"status":              req.Status,
		"bike_unit":           req.BikeUnit,
		"problem_description": req.ProblemDescription,
		"location":            req.Location,
		"mechanic_id":         req.MechanicID,
		"decline_reason":      req.DeclineReason,
		"decline_reason_text": req.DeclineReasonText,
		"declined_at":         req.DeclinedAt,
	}
	if req.Barangay != nil {
		payload["barangay_name"] = req.Barangay.BarangayName
	}
	if req.Mechanic != nil {
		payload["mechanic_name"] = req.Mechanic.FirstName + " " + req.Mechanic.LastName
		payload["mechanic_phone"] = req.Mechanic.PhoneNumber
		payload["mechanic_email"] = req.Mechanic.Email
		payload["mechanic_plate"] = req.Mechanic.PlateNumber
		payload["mechanic_motor_type"] = req.Mechanic.MotorType
		payload["mechanic_specialization"] = req.Mechanic.Specialization
		payload["mechanic_image"] = req.Mechanic.ImagePath
	}

	etaTime, etaDate := estimatedArrival(req.Status, now)
	if etaTime != "" {
		payload["estimated_time"] = etaTime
		payload["estimated_date"] = etaDate
	}
	return payload
}

// GetLatest returns the customer's most recent help request with mechanic
// details and the arrival estimate.
func (h *RescueHandler) GetLatest(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	req, err := h.repo.LatestByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch help request"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"request": requestPayload(req, time.Now()),
	})
}

// GetStats feeds the admin rescue notification badge.
func (h *RescueHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.repo.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch rescue stats"})
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}

type DispatchRequest struct {
	RequestID  uint `json:"request_id"`
	MechanicID uint `json:"mechanic_id"`
}

// Dispatch assigns a mechanic to a pending request and mails the shop inbox.
func (h *RescueHandler) Dispatch(c *fiber.Ctx) error {
	var req DispatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if req.RequestID == 0 || req.MechanicID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Request ID and mechanic ID are required"})
	}

	dispatched, err := h.repo.Dispatch(req.RequestID, req.MechanicID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Request not found or already handled"})
	}

	// Best effort: a failed mail never fails the dispatch.
	if dispatched.Mechanic != nil {
		go h.mail.SendDispatchNotice(
			config.GetEnv("RESCUE_NOTICE_EMAIL", "dispatch@cjpowerhouse.local"),
			dispatched.Mechanic.FirstName+" "+dispatched.Mechanic.LastName,
			dispatched.BikeUnit,
			dispatched.Location,
			dispatched.ProblemDescription,
		)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"request": requestPayload(dispatched, time.Now()),
	})
}

// GetNotifications lists the customer's unread notifications.
func (h *RescueHandler) GetNotifications(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	list, err := h.repo.Unread(userID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch notifications"})
	}
	return c.JSON(fiber.Map{"success": true, "data": list})
}

// MarkNotificationsRead clears the unread badge.
func (h *RescueHandler) MarkNotificationsRead(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	if err := h.repo.MarkRead(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update notifications"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Stream pushes the customer's help-request status and unread-notification
// count over SSE every few seconds until the client disconnects.
func (h *RescueHandler) Stream(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	interval, _ := strconv.Atoi(c.Query("interval", "3"))
	if interval < 1 {
		interval = 1
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		var lastStatus string
		for {
			req, err := h.repo.LatestByUser(userID)
			if err != nil {
				h.logger.Warn("sse help-request query failed", zap.Uint("user_id", userID), zap.Error(err))
			}
			unread, err := h.repo.UnreadCount(userID)
			if err != nil {
				unread = 0
			}

			event := fiber.Map{
				"unread_count": unread,
				"timestamp":    time.Now().Unix(),
			}
			if req != nil {
				event["request"] = requestPayload(req, time.Now())
				if req.Status != lastStatus {
					event["status_changed"] = lastStatus != ""
					lastStatus = req.Status
				}
			}

			data, err := json.Marshal(event)
			if err != nil {
				return
			}
			if _, err := w.WriteString("data: " + string(data) + "\n\n"); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return // client went away
			}

			time.Sleep(time.Duration(interval) * time.Second)
		}
	}))

	return nil
}

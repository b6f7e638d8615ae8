package handler

import (
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"cjpowerhouse-backend/internal/repository"
)

const transactionsPerPage = 10

type TransactionHandler struct {
	orderRepo repository.OrderRepository
}

func NewTransactionHandler(orderRepo repository.OrderRepository) *TransactionHandler {
	return &TransactionHandler{orderRepo: orderRepo}
}

// GetTransactions lists completed orders for the cashier screen along with
// the COD status counters shown in its header cards.
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * transactionsPerPage

	filter := repository.TransactionFilter{Search: c.Query("search")}
	if v := c.Query("date"); v != "" {
		if _, err := time.ParseInLocation("2006-01-02", v, time.Local); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format"})
		}
		filter.Date = v
	}

	orders, err := h.orderRepo.CompletedTransactions(filter, transactionsPerPage, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch transactions"})
	}
	total, err := h.orderRepo.CountCompleted(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count transactions"})
	}

	today := time.Now().Format("2006-01-02")
	counters := fiber.Map{}
	for label, args := range map[string][2]string{
		"pending_cod":         {"Pending", ""},
		"ready_to_ship_cod":   {"Ready to Ship", ""},
		"on_ship_cod":         {"On-Ship", ""},
		"today_pending":       {"Pending", today},
		"today_ready_to_ship": {"Ready to Ship", today},
		"today_on_delivery":   {"On-Ship", today},
		"today_successful":    {"Completed", today},
	} {
		count, err := h.orderRepo.CountByStatusAndMethod(args[0], "COD", args[1])
		if err != nil {
			count = 0
		}
		counters[label] = count
	}

	return c.JSON(fiber.Map{
		"data":        orders,
		"counters":    counters,
		"page":        page,
		"total_pages": int(math.Ceil(float64(total) / float64(transactionsPerPage))),
		"total":       total,
	})
}

func (h *TransactionHandler) GetOrderItems(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil || orderID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	items, err := h.orderRepo.Items(uint(orderID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch order items"})
	}
	return c.JSON(fiber.Map{"data": items})
}

// CheckStock reports whether inventory covers every line of an order.
func (h *TransactionHandler) CheckStock(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil || orderID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	checks, err := h.orderRepo.StockAvailability(uint(orderID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check stock"})
	}

	allSufficient := true
	for _, chk := range checks {
		if !chk.Sufficient {
			allSufficient = false
			break
		}
	}

	return c.JSON(fiber.Map{
		"data":       checks,
		"sufficient": allSufficient,
	})
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// CancelOrder marks an order cancelled, recording the reason. Used by the
// cashier when stock cannot cover the order.
func (h *TransactionHandler) CancelOrder(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil || orderID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req CancelOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Reason == "" {
		req.Reason = "Insufficient stock"
	}

	if err := h.orderRepo.Cancel(uint(orderID), req.Reason); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel order"})
	}
	return c.JSON(fiber.Map{"message": "Order cancelled"})
}
